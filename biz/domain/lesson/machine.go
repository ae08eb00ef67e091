package lesson

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/intent"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

// Content 提供讲解材料
type Content interface {
	Explain(topic curriculum.Topic, section string) curriculum.Material
	Example(topic curriculum.Topic) curriculum.Material
	Practice(topic curriculum.Topic) curriculum.Material
	Alternative(topic curriculum.Topic) string
	Hint(topic curriculum.Topic, question string) string
}

// Delays 自动推进的间隔
type Delays struct {
	Intro      time.Duration
	Completion time.Duration
	Practice   time.Duration
	Attachment time.Duration
}

// Machine 课堂状态机, Apply 是纯函数: 不修改入参, 副作用以 Effect 返回
type Machine struct {
	content    Content
	classifier intent.Classifier
	delays     Delays
	queueLimit int

	now   func() time.Time
	newId func() string
}

// Option 定制状态机
type Option func(m *Machine)

// WithClock 指定时钟, 测试用
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithIdGenerator 指定消息id生成方式, 测试用
func WithIdGenerator(gen func() string) Option {
	return func(m *Machine) { m.newId = gen }
}

// NewMachine 创建状态机, queueLimit 为远程调用期间最多排队的发言数
func NewMachine(content Content, classifier intent.Classifier, delays Delays, queueLimit int, opts ...Option) *Machine {
	m := &Machine{
		content:    content,
		classifier: classifier,
		delays:     delays,
		queueLimit: queueLimit,
		now:        time.Now,
		newId:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply 处理一个事件, 返回新的会话和需要执行的副作用
// 出错时返回原会话, 错误只需要告知学生
func (m *Machine) Apply(s Session, ev Event) (Session, []Effect, error) {
	var effects []Effect
	var err error

	switch e := ev.(type) {
	case TopicChosen:
		s, effects = m.begin(s, e)
	case TimerFired:
		if e.SessionId != s.Id || e.Epoch != s.Epoch {
			return s, nil, nil
		}
		s, effects = m.fire(s, e)
	case StudentSaid:
		s, effects, err = m.receive(s, e.Text)
	case FileAttached:
		s, effects, err = m.attach(s, e.Name)
	case TutorReplied:
		if e.SessionId != s.Id || e.CallId == "" || e.CallId != s.InFlight {
			return s, nil, nil
		}
		s, effects = m.reply(s, e.Reply)
	case TutorFailed:
		if e.SessionId != s.Id || e.CallId == "" || e.CallId != s.InFlight {
			return s, nil, nil
		}
		s, effects = m.fallback(s)
	case PhaseSelected:
		s, effects, err = m.override(s, e.Phase)
	case SpeakingChanged:
		if e.SessionId == s.Id {
			s.Speaking = e.Speaking
		}
	case Resumed:
		s, effects = m.resume(s)
	}
	return s, effects, err
}

// begin 开始新课, 旧会话的一切随之作废
func (m *Machine) begin(old Session, e TopicChosen) (Session, []Effect) {
	s := NewSession(e.SessionId, old.StudentId, old.StudentName, old.Track, old.YearGroup, m.now())
	s.Epoch = old.Epoch + 1
	topic := e.Topic
	s.Topic = &topic
	s.Phase = Intro

	name := s.StudentName
	if name == "" {
		name = "Student"
	}
	s.append(m.tutorMessage(fmt.Sprintf("Hello %s! 👋\n\nI'm **%s**, and I'm excited to teach you **%s** today!\n\n%s\n\n"+
		"Let's begin our learning journey! 🚀", name, e.Tutor.Name, topic.Name, topic.Description)))
	s.Board = overviewBoard(&s, s.Topic)

	return s, []Effect{CancelTimers{}, m.schedule(&s, IntroElapsed, "")}
}

// fire 定时器到期
func (m *Machine) fire(s Session, e TimerFired) (Session, []Effect) {
	if e.Kind == AttachmentAck {
		msg := m.tutorMessage(fmt.Sprintf("Thanks for sharing **%s**! 📄\n\nI can see you've uploaded a file. "+
			"Let me help you with it!\n\nWhat specific question or part would you like me to explain?", e.Note))
		s.append(msg)
		return s, []Effect{Narrate{Text: msg.Text}}
	}
	if e.Kind != s.Awaiting {
		return s, nil
	}
	s.Awaiting = NoTimer

	switch e.Kind {
	case IntroElapsed:
		if s.Phase != Intro {
			return s, nil
		}
		if s.SectionCount() == 0 {
			return m.complete(s)
		}
		s.Phase = Teaching
		return m.teach(s, 0)
	case ExampleDue:
		if s.Phase != WorkedExample {
			return s, nil
		}
		example := m.content.Example(*s.Topic)
		s.append(m.tutorMessage("Now let's look at a **worked example**:\n\n" + example.Narration))
		s.Board = bannerBoard(&s, "💡 WORKED EXAMPLE", example.Board)
		return s, []Effect{Narrate{Text: example.Narration}, m.schedule(&s, PracticeDue, "")}
	case PracticeDue:
		if s.Phase != WorkedExample {
			return s, nil
		}
		s.Phase = Practice
		practice := m.content.Practice(*s.Topic)
		s.append(m.tutorMessage(fmt.Sprintf("Now it's **your turn**! 🎯\n\n%s\n\n"+
			"Take your time and show your working. You've got this! 💪", practice.Narration)))
		s.Board = bannerBoard(&s, "✏️ YOUR TURN!", practice.Board)
		return s, []Effect{Narrate{Text: practice.Narration}}
	}
	return s, nil
}

// teach 讲授第i个小节
func (m *Machine) teach(s Session, i int) (Session, []Effect) {
	s.Section = i
	name := s.Topic.Sections[i]
	material := m.content.Explain(*s.Topic, name)

	var text string
	if i == 0 {
		text = fmt.Sprintf("Great! Let's start with **Section %d**: %s\n\n%s\n\nTake your time to read the board and understand this section.\n\n"+
			"When you're ready, type **\"next\"** or ask me a question! 😊", i+1, name, material.Narration)
	} else {
		text = fmt.Sprintf("Perfect! Now let's move to **Section %d**: %s\n\n%s\n\n"+
			"Read the board carefully. Type **\"next\"** when you understand! 😊", i+1, name, material.Narration)
	}
	msg := m.tutorMessage(text)
	s.append(msg)
	s.Board = sectionBoard(&s, i, name, material.Board)
	return s, []Effect{Narrate{Text: msg.Text}}
}

// complete 所有小节讲完, 进入例题
func (m *Machine) complete(s Session) (Session, []Effect) {
	s.Phase = WorkedExample
	s.Section = 0
	msg := m.tutorMessage("🎉 Excellent! You've completed all sections!\n\n" +
		"Now let's look at a **worked example** to see how everything fits together...")
	s.append(msg)
	return s, []Effect{Narrate{Text: msg.Text}, m.schedule(&s, ExampleDue, "")}
}

// receive 学生发言, 远程调用进行中时排队
func (m *Machine) receive(s Session, text string) (Session, []Effect, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, nil, consts.ErrEmptyMessage
	}
	if s.Topic == nil {
		return s, nil, consts.ErrNoLesson
	}
	if s.Busy() {
		if len(s.Pending) >= m.queueLimit {
			return s, nil, consts.ErrBusy
		}
		s.Pending = append(s.Pending[:len(s.Pending):len(s.Pending)], text)
		return s, nil, nil
	}
	s, effects := m.respond(s, text)
	return s, effects, nil
}

// respond 记录学生发言并决定如何回应
// 只有 Teaching 阶段按意图走本地规则, 其余阶段都交给远程导师
func (m *Machine) respond(s Session, text string) (Session, []Effect) {
	s.append(m.studentMessage(text, ""))
	s.Rounds++

	if s.Phase != Teaching {
		return m.ask(s, text)
	}

	switch m.classifier.Classify(text) {
	case intent.Advance:
		if next := s.Section + 1; next < s.SectionCount() {
			return m.teach(s, next)
		}
		return m.complete(s)
	case intent.Confused:
		s.Understanding = Confused
		alt := m.content.Alternative(*s.Topic)
		msg := m.tutorMessage(fmt.Sprintf("I understand this might be confusing! Let me explain it **differently**...\n\n%s\n\n"+
			"Does this make more sense? Feel free to ask if you need more help! 😊", alt))
		s.append(msg)
		s.Board += "\n\n" + alt
		return s, []Effect{Narrate{Text: msg.Text}}
	case intent.Confident:
		s.Understanding = Confident
		msg := m.tutorMessage("Excellent! 🌟 I can see you really understand this!\n\n" +
			"Ready for a challenge question? Or shall we move to the mastery check?")
		s.append(msg)
		return s, []Effect{Narrate{Text: msg.Text}}
	default:
		return m.ask(s, text)
	}
}

// ask 发起远程导师调用
func (m *Machine) ask(s Session, text string) (Session, []Effect) {
	s.InFlight = m.newId()
	return s, []Effect{AskTutor{
		CallId: s.InFlight,
		Request: model.TutorRequest{
			SessionId: s.Id,
			StudentId: s.StudentId,
			TutorType: s.Track,
			Message:   text,
			BoardText: s.Board,
		},
	}}
}

// reply 远程导师回复
func (m *Machine) reply(s Session, r *model.TutorReply) (Session, []Effect) {
	s.InFlight = ""
	msg := m.tutorMessage(r.Text)
	if r.MessageId != "" {
		msg.Id = r.MessageId
	}
	if !r.Timestamp.IsZero() {
		msg.Timestamp = r.Timestamp
	}
	s.append(msg)
	return m.drain(s, []Effect{Narrate{Text: r.Text}})
}

// fallback 远程导师失败时的本地提示, 不朗读
func (m *Machine) fallback(s Session) (Session, []Effect) {
	s.InFlight = ""
	question := ""
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == Student {
			question = s.Transcript[i].Text
			break
		}
	}
	s.append(m.tutorMessage(m.content.Hint(*s.Topic, question)))
	return m.drain(s, nil)
}

// drain 依次处理排队的发言, 直到再次发起远程调用或队列清空
func (m *Machine) drain(s Session, effects []Effect) (Session, []Effect) {
	for len(s.Pending) > 0 && !s.Busy() {
		next := s.Pending[0]
		s.Pending = s.Pending[1:len(s.Pending):len(s.Pending)]
		var more []Effect
		s, more = m.respond(s, next)
		effects = append(effects, more...)
	}
	if len(s.Pending) == 0 {
		s.Pending = nil
	}
	return s, effects
}

// attach 学生上传附件
func (m *Machine) attach(s Session, name string) (Session, []Effect, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, nil, consts.ErrEmptyMessage
	}
	if s.Topic == nil {
		return s, nil, consts.ErrNoLesson
	}
	s.append(m.studentMessage("📎 Attached: "+name, name))
	return s, []Effect{m.schedule(&s, AttachmentAck, name)}, nil
}

// override 手动切换阶段, 不重放任何内容
func (m *Machine) override(s Session, p Phase) (Session, []Effect, error) {
	if s.Topic == nil {
		return s, nil, consts.ErrNoLesson
	}
	if p <= Selecting || p > Check {
		return s, nil, consts.ErrUnknownPhase
	}
	s.Phase = p
	if n := s.SectionCount(); s.Section >= n {
		s.Section = max(n-1, 0)
	}
	s.Epoch++
	s.Awaiting = NoTimer
	return s, []Effect{CancelTimers{}}, nil
}

// resume 快照恢复后重新安排定时器, 中断的远程调用按失败处理
func (m *Machine) resume(s Session) (Session, []Effect) {
	s.Epoch++
	s.Speaking = false
	effects := []Effect{CancelTimers{}}
	if s.Awaiting != NoTimer {
		effects = append(effects, m.schedule(&s, s.Awaiting, ""))
	}
	if s.Busy() {
		var more []Effect
		s, more = m.fallback(s)
		effects = append(effects, more...)
	}
	return s, effects
}

// schedule 生成定时器, 课程推进类定时器记录在 Awaiting 中
func (m *Machine) schedule(s *Session, kind TimerKind, note string) Effect {
	var after time.Duration
	switch kind {
	case IntroElapsed:
		after = m.delays.Intro
	case ExampleDue:
		after = m.delays.Completion
	case PracticeDue:
		after = m.delays.Practice
	case AttachmentAck:
		after = m.delays.Attachment
	}
	if kind != AttachmentAck {
		s.Awaiting = kind
	}
	return Schedule{
		Timer: TimerFired{SessionId: s.Id, Epoch: s.Epoch, Kind: kind, Note: note},
		After: after,
	}
}

func (m *Machine) tutorMessage(text string) Message {
	return Message{Id: m.newId(), Role: Tutor, Text: text, Timestamp: m.now()}
}

func (m *Machine) studentMessage(text, attachment string) Message {
	return Message{Id: m.newId(), Role: Student, Text: text, Attachment: attachment, Timestamp: m.now()}
}
