package model

import (
	"context"
	"time"
)

// TutorRequest 远程导师请求
type TutorRequest struct {
	SessionId string `json:"session_id"`
	StudentId string `json:"student_id"`
	TutorType string `json:"tutor_type"`
	Message   string `json:"message"`
	BoardText string `json:"board_text"`
}

// TutorReply 远程导师的回复
type TutorReply struct {
	MessageId string
	Text      string
	Timestamp time.Time
}

// TutorApp 是远程AI导师的抽象
// 只负责调用与报告失败, 失败后的兜底由课堂决定
type TutorApp interface {
	Ask(ctx context.Context, req *TutorRequest) (*TutorReply, error)
}

// VoiceProfile 朗读音色
type VoiceProfile struct {
	// Family 音色族, female 或 male
	Family string
	// Speaker 语音合成服务的发音人
	Speaker string
	// Voices 浏览器端可用的候选音色, 按优先级排序
	Voices []string
	Rate   float64
	Pitch  float64
}

// Callbacks 朗读过程的回调, 均可为空
type Callbacks struct {
	OnStart func()
	OnAudio func(chunk []byte)
	OnEnd   func()
}

// NarrationSink 是语音合成的抽象, Speak 阻塞到朗读结束或ctx取消, 调用方自行异步
// 失败只影响"正在朗读"的提示, 不影响课堂状态; OnEnd 总会被调用
type NarrationSink interface {
	Speak(ctx context.Context, text string, profile VoiceProfile, cb Callbacks)
}

// LessonEnded 一节课结束, 交给下游做学习报告
type LessonEnded struct {
	SessionId string    `json:"session_id"`
	StudentId string    `json:"student_id"`
	Track     string    `json:"track"`
	YearGroup string    `json:"year_group"`
	TopicId   string    `json:"topic_id"`
	Rounds    int       `json:"rounds"`
	Start     time.Time `json:"-"`
	End       time.Time `json:"-"`
}

// LessonPublisher 投递课程事件
type LessonPublisher interface {
	Publish(ctx context.Context, ev *LessonEnded) error
}
