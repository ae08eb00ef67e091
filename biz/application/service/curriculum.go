package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor/cmd"
	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
	mapper "github.com/xh-polaris/virtual-classroom/biz/infrastructure/mapper/curriculum"
)

type ICurriculumService interface {
	ListTopics(ctx context.Context, req *cmd.ListTopicsReq) (*cmd.ListTopicsResp, error)
	ListTracks(ctx context.Context, req *cmd.ListTracksReq) (*cmd.ListTracksResp, error)
}

type CurriculumService struct {
	Classroom *lesson.Classroom
}

var CurriculumServiceSet = wire.NewSet(
	wire.Struct(new(CurriculumService), "*"),
	wire.Bind(new(ICurriculumService), new(*CurriculumService)),
)

func (s *CurriculumService) ListTopics(ctx context.Context, req *cmd.ListTopicsReq) (*cmd.ListTopicsResp, error) {
	c := s.Classroom.Catalog()
	years := c.YearGroups(req.Track)
	if len(years) == 0 {
		return nil, consts.ErrUnknownTrack
	}
	if !slices.Contains(years, strings.TrimSpace(req.YearGroup)) {
		return nil, consts.ErrUnknownYear
	}
	topics := c.TopicsFor(req.Track, req.YearGroup)
	resp := &cmd.ListTopicsResp{
		Response: cmd.Success(),
		Tutor:  tutorOf(c.TutorFor(req.Track)),
		Topics: make([]*cmd.Topic, 0, len(topics)),
	}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, &cmd.Topic{
			Id:          t.Id,
			Name:        t.Name,
			Description: t.Description,
			Sections:    t.Sections,
		})
	}
	return resp, nil
}

func (s *CurriculumService) ListTracks(ctx context.Context, req *cmd.ListTracksReq) (*cmd.ListTracksResp, error) {
	c := s.Classroom.Catalog()
	tracks := c.Tracks()
	resp := &cmd.ListTracksResp{
		Response: cmd.Success(),
		Tracks: make([]*cmd.Track, 0, len(tracks)),
	}
	for _, track := range tracks {
		resp.Tracks = append(resp.Tracks, &cmd.Track{
			Track:      track,
			Tutor:      tutorOf(c.TutorFor(track)),
			YearGroups: c.YearGroups(track),
		})
	}
	return resp, nil
}

func tutorOf(t curriculum.Tutor) *cmd.Tutor {
	return &cmd.Tutor{Track: t.Track, Name: t.Name, Subject: t.Subject, Description: t.Description}
}

// NewCatalog 内置目录叠加 Mongo 中维护的课题, 加载失败时只用内置目录
func NewCatalog(m *mapper.MongoMapper) *curriculum.Catalog {
	catalog := curriculum.DefaultCatalog()
	if m == nil {
		return catalog
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	data, err := m.FindAll(ctx)
	if err != nil {
		log.Error("load curriculum err: %v", err)
		return catalog
	}
	return Overlay(catalog, data)
}

// Overlay 按 (学科, 年级) 分组替换目录条目, data 需要已按组内顺序排好
func Overlay(catalog *curriculum.Catalog, data []*mapper.Topic) *curriculum.Catalog {
	type group struct{ track, year string }
	var order []group
	groups := make(map[group][]curriculum.Topic)
	for _, d := range data {
		g := group{d.Track, d.YearGroup}
		if _, ok := groups[g]; !ok {
			order = append(order, g)
		}
		groups[g] = append(groups[g], curriculum.Topic{
			Id:          d.TopicId,
			Name:        d.Name,
			Description: d.Description,
			Sections:    d.Sections,
		})
	}
	for _, g := range order {
		catalog = catalog.With(g.track, g.year, groups[g])
	}
	log.Info("curriculum overlay: %d groups", len(order))
	return catalog
}
