package lesson

import (
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/application/dto"
)

// View 会话到客户端视图的投影, 不含对话记录
func View(s Session) *dto.SessionView {
	view := &dto.SessionView{}
	if err := copier.Copy(view, &s); err != nil {
		log.Error("copy session view err: %v", err)
	}
	view.SessionId = s.Id
	view.Phase = s.Phase.String()
	view.Step = s.Phase.Step()
	view.SectionCount = s.SectionCount()
	view.Understanding = string(s.Understanding)
	view.Busy = s.Busy()
	view.Transcript = nil
	if s.Topic != nil {
		view.Topic = &dto.TopicView{}
		if err := copier.Copy(view.Topic, s.Topic); err != nil {
			log.Error("copy topic view err: %v", err)
		}
	}
	return view
}

// FullView 带完整对话记录的视图, 用于断线恢复
func FullView(s Session) *dto.SessionView {
	view := View(s)
	view.Transcript = make([]*dto.MessageView, 0, len(s.Transcript))
	for i := range s.Transcript {
		view.Transcript = append(view.Transcript, MessageOf(s.Transcript[i]))
	}
	return view
}

// MessageOf 单条消息的视图
func MessageOf(m Message) *dto.MessageView {
	return &dto.MessageView{
		Id:         m.Id,
		Role:       string(m.Role),
		Text:       m.Text,
		Attachment: m.Attachment,
		Timestamp:  m.Timestamp.UnixMilli(),
	}
}
