package lesson

import (
	"strings"
	"time"

	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
)

// Phase 课程所处的阶段
type Phase int

const (
	Selecting Phase = iota
	Intro
	Teaching
	WorkedExample
	Practice
	Check
)

var phaseNames = []string{"selecting", "intro", "teaching", "worked_example", "practice", "check"}

func (p Phase) String() string {
	if p < Selecting || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Step 对应前端的阶段徽章序号, Selecting 为0
func (p Phase) Step() int { return int(p) }

// ParsePhase 解析阶段名或徽章序号("1".."5")
func ParsePhase(s string) (Phase, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range phaseNames {
		if i == int(Selecting) {
			continue
		}
		if s == name || (len(s) == 1 && s[0]-'0' == byte(i)) {
			return Phase(i), true
		}
	}
	switch s {
	case "teach":
		return Teaching, true
	case "example":
		return WorkedExample, true
	}
	return Selecting, false
}

// Role 消息发送方
type Role string

const (
	Student Role = "student"
	Tutor   Role = "tutor"
)

// Understanding 最近一次识别出的理解程度
type Understanding string

const (
	Confused  Understanding = "confused"
	Neutral   Understanding = "neutral"
	Confident Understanding = "confident"
)

// Message 对话记录中的一条消息, 创建后不可修改
type Message struct {
	Id         string
	Role       Role
	Text       string
	Attachment string
	Timestamp  time.Time
}

// TimerKind 自动推进的定时器类型
type TimerKind int

const (
	NoTimer TimerKind = iota
	IntroElapsed
	ExampleDue
	PracticeDue
	AttachmentAck
)

func (k TimerKind) String() string {
	switch k {
	case IntroElapsed:
		return "intro_elapsed"
	case ExampleDue:
		return "example_due"
	case PracticeDue:
		return "practice_due"
	case AttachmentAck:
		return "attachment_ack"
	default:
		return "none"
	}
}

// Session 一次课堂的全部状态
// Section 只在 Teaching 阶段有意义; Transcript 只追加
type Session struct {
	Id            string
	StudentId     string
	StudentName   string
	Track         string
	YearGroup     string
	Topic         *curriculum.Topic
	Phase         Phase
	Section       int
	Transcript    []Message
	Board         string
	Understanding Understanding

	// Epoch 定时器世代, 递增后之前安排的定时器全部作废
	Epoch int64
	// Awaiting 当前挂起的课程推进定时器, 用于断线恢复后重新安排
	Awaiting TimerKind
	// InFlight 正在进行的远程导师调用, 同一时刻最多一个
	InFlight string
	// Pending 远程调用期间排队的学生发言
	Pending []string

	Speaking  bool
	StartTime time.Time
	Rounds    int
}

// NewSession 尚未选择课题的空会话
func NewSession(id, studentId, studentName, track, year string, now time.Time) Session {
	return Session{
		Id:            id,
		StudentId:     studentId,
		StudentName:   studentName,
		Track:         track,
		YearGroup:     year,
		Phase:         Selecting,
		Understanding: Neutral,
		StartTime:     now,
	}
}

// Busy 是否有进行中的远程调用
func (s *Session) Busy() bool { return s.InFlight != "" }

// SectionCount 当前课题的小节数
func (s *Session) SectionCount() int {
	if s.Topic == nil {
		return 0
	}
	return len(s.Topic.Sections)
}

// append 追加消息, 三下标切片保证不会写入其他副本共享的底层数组
func (s *Session) append(m Message) {
	s.Transcript = append(s.Transcript[:len(s.Transcript):len(s.Transcript)], m)
}
