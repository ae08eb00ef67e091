package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/application/dto"
	"github.com/xh-polaris/virtual-classroom/biz/domain"
	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

type ILessonService interface {
	Serve(ctx context.Context, conn *websocket.Conn)
}

type LessonService struct {
	Classroom *lesson.Classroom
}

var LessonServiceSet = wire.NewSet(
	wire.Struct(new(LessonService), "*"),
	wire.Bind(new(ILessonService), new(*LessonService)),
)

// Serve 处理一个课堂连接 TODO: 应该需要加上超时处理，避免连接空置太长时间
func (s *LessonService) Serve(ctx context.Context, conn *websocket.Conn) {
	ws := domain.NewWsHelper(conn)
	engine := s.Classroom.Open(ws)
	defer func() {
		engine.Close()
		if err := ws.Close(); err != nil {
			log.Error("close ws err: %v", err)
		}
	}()

	// 第一帧为开始请求
	var start dto.LessonStartReq
	if err := ws.ReadJSON(&start); err != nil || start.StudentId == "" {
		log.Error("read start req err: %v", err)
		_ = ws.Error(consts.ErrInvalidStart)
		return
	}
	log.CtxInfo(ctx, "调用方: %s, 调用时间: %s, 学生: %s", start.From, time.Unix(start.Timestamp, 0).String(), start.StudentId)

	err := engine.Start(ctx, lesson.StartOptions{
		StudentId:       start.StudentId,
		StudentName:     start.StudentName,
		Track:           start.Track,
		YearGroup:       start.YearGroup,
		ResumeSessionId: start.ResumeSessionId,
	})
	if err != nil {
		log.CtxError(ctx, "start lesson err: %v", err)
		return
	}

	for {
		var req dto.LessonReq
		if err = ws.ReadJSON(&req); err != nil {
			return
		}
		if err = dispatch(engine, ws, &req); err != nil {
			if errors.Is(err, errEnd) {
				return
			}
			var errno *consts.Errno
			if !errors.As(err, &errno) {
				log.CtxError(ctx, "lesson cmd %d err: %v", req.Cmd, err)
				return
			}
			if werr := ws.Error(errno); werr != nil {
				return
			}
		}
	}
}

var errEnd = errors.New("lesson end")

// dispatch 执行一条课堂指令
func dispatch(engine *lesson.Engine, ws *domain.WsHelper, req *dto.LessonReq) error {
	switch req.Cmd {
	case consts.EndCmd:
		engine.End()
		return errEnd
	case consts.Ping:
		return ws.WriteBytes([]byte{})
	case consts.MessageCmd:
		engine.Say(req.Msg)
	case consts.TopicCmd:
		return engine.Choose(req.TopicId)
	case consts.PhaseCmd:
		return engine.Select(req.Phase)
	case consts.AttachCmd:
		engine.Attach(req.FileName)
	default:
		return consts.ErrUnknownCmd
	}
	return nil
}
