package lesson

import (
	"time"

	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
)

// Event 驱动状态机的外部事件
type Event interface{ isEvent() }

// TopicChosen 选择课题, 丢弃旧会话并开始新课
type TopicChosen struct {
	SessionId string
	Topic     curriculum.Topic
	Tutor     curriculum.Tutor
}

// TimerFired 定时器到期
type TimerFired struct {
	SessionId string
	Epoch     int64
	Kind      TimerKind
	// Note 附加信息, 附件回复时为文件名
	Note string
}

// StudentSaid 学生发送了一条文字消息(打字或语音听写)
type StudentSaid struct {
	Text string
}

// FileAttached 学生上传了附件, 这里只关心文件名
type FileAttached struct {
	Name string
}

// TutorReplied 远程导师返回
type TutorReplied struct {
	SessionId string
	CallId    string
	Reply     *model.TutorReply
}

// TutorFailed 远程导师调用失败
type TutorFailed struct {
	SessionId string
	CallId    string
	Err       error
}

// PhaseSelected 点击阶段徽章, 只切换阶段不重放内容
type PhaseSelected struct {
	Phase Phase
}

// SpeakingChanged 朗读开始或结束
type SpeakingChanged struct {
	SessionId string
	Speaking  bool
}

// Resumed 会话从快照恢复, 需要重新安排挂起的定时器
type Resumed struct{}

func (TopicChosen) isEvent()     {}
func (TimerFired) isEvent()      {}
func (StudentSaid) isEvent()     {}
func (FileAttached) isEvent()    {}
func (TutorReplied) isEvent()    {}
func (TutorFailed) isEvent()     {}
func (PhaseSelected) isEvent()   {}
func (SpeakingChanged) isEvent() {}
func (Resumed) isEvent()         {}

// Effect 状态转移产生的副作用, 由 Engine 执行
type Effect interface{ isEffect() }

// Narrate 朗读一段文字
type Narrate struct {
	Text string
}

// Schedule 安排一个定时器
type Schedule struct {
	Timer TimerFired
	After time.Duration
}

// CancelTimers 取消该会话所有未触发的定时器
type CancelTimers struct{}

// AskTutor 调用远程导师
type AskTutor struct {
	CallId  string
	Request model.TutorRequest
}

func (Narrate) isEffect()      {}
func (Schedule) isEffect()     {}
func (CancelTimers) isEffect() {}
func (AskTutor) isEffect()     {}
