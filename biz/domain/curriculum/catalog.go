package curriculum

import (
	"sort"
	"strings"

	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

// Topic 是一个教学单元, Sections 的顺序即讲授顺序
type Topic struct {
	Id          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Sections    []string `json:"sections" bson:"sections"`
}

// Tutor 每个学科的导师形象
type Tutor struct {
	Track       string `json:"track"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// Catalog 是 (学科, 年级) -> 有序课题 的静态映射, 构建后只读
type Catalog struct {
	tutors map[string]Tutor
	topics map[string]map[string][]Topic
}

// NewCatalog 以给定数据构建课程目录, 会复制一份数据
func NewCatalog(tutors []Tutor, topics map[string]map[string][]Topic) *Catalog {
	c := &Catalog{
		tutors: make(map[string]Tutor, len(tutors)),
		topics: make(map[string]map[string][]Topic, len(topics)),
	}
	for _, t := range tutors {
		c.tutors[t.Track] = t
	}
	for track, years := range topics {
		c.topics[track] = make(map[string][]Topic, len(years))
		for year, list := range years {
			c.topics[track][year] = cloneTopics(list)
		}
	}
	return c
}

// DefaultCatalog 内置课程目录
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinTutors, builtinTopics)
}

// TopicsFor 查询某学科某年级的课题, 未知的学科或年级返回空切片
func (c *Catalog) TopicsFor(track, year string) []Topic {
	years, ok := c.topics[normalize(track)]
	if !ok {
		return []Topic{}
	}
	return cloneTopics(years[strings.TrimSpace(year)])
}

// Topic 按id查找课题
func (c *Catalog) Topic(track, year, id string) (Topic, bool) {
	for _, t := range c.topics[normalize(track)][strings.TrimSpace(year)] {
		if t.Id == id {
			return cloneTopic(t), true
		}
	}
	return Topic{}, false
}

// TutorFor 学科对应的导师, 未知学科返回默认学科的导师
func (c *Catalog) TutorFor(track string) Tutor {
	if t, ok := c.tutors[normalize(track)]; ok {
		return t
	}
	return c.tutors[consts.DefaultTrack]
}

// Tracks 所有学科, 按名称排序
func (c *Catalog) Tracks() []string {
	tracks := make([]string, 0, len(c.topics))
	for track := range c.topics {
		tracks = append(tracks, track)
	}
	sort.Strings(tracks)
	return tracks
}

// YearGroups 学科下的所有年级
func (c *Catalog) YearGroups(track string) []string {
	years := make([]string, 0)
	for year := range c.topics[normalize(track)] {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// With 返回替换了某个 (学科, 年级) 条目的新目录, 原目录不变
func (c *Catalog) With(track, year string, topics []Topic) *Catalog {
	tutors := make([]Tutor, 0, len(c.tutors))
	for _, t := range c.tutors {
		tutors = append(tutors, t)
	}
	next := NewCatalog(tutors, c.topics)
	track = normalize(track)
	if next.topics[track] == nil {
		next.topics[track] = make(map[string][]Topic)
	}
	next.topics[track][strings.TrimSpace(year)] = cloneTopics(topics)
	return next
}

// normalize 学科名统一小写, 空学科视为默认学科
func normalize(track string) string {
	track = strings.ToLower(strings.TrimSpace(track))
	if track == "" {
		return consts.DefaultTrack
	}
	return track
}

func cloneTopic(t Topic) Topic {
	t.Sections = append([]string(nil), t.Sections...)
	return t
}

func cloneTopics(list []Topic) []Topic {
	out := make([]Topic, 0, len(list))
	for _, t := range list {
		out = append(out, cloneTopic(t))
	}
	return out
}
