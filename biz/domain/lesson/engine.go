package lesson

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/uuid"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/application/dto"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/domain/narration"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

// Outbox 课堂连接的写端, 需要并发安全
type Outbox interface {
	WriteJSON(obj any) error
	WriteBytes(data []byte) error
}

// Store 会话快照, 用于断线恢复
type Store interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context, id string) (Session, bool, error)
	Remove(ctx context.Context, id string) error
}

// StartOptions 开始上课的参数
type StartOptions struct {
	StudentId       string
	StudentName     string
	Track           string
	YearGroup       string
	ResumeSessionId string
}

// spoken 朗读状态变化, seq 用于丢弃被打断的旧朗读的回调
type spoken struct {
	SpeakingChanged
	seq uint64
}

// due 定时器到期, id 用于从 timers 中移除
type due struct {
	TimerFired
	id uint64
}

// inspect 在事件循环中执行 fn
type inspect struct {
	fn func()
}

func (spoken) isEvent()  {}
func (due) isEvent()     {}
func (inspect) isEvent() {}

// Engine 一个课堂连接的事件循环
// 所有事件都在同一个协程中经过 Machine, 远程调用与朗读在 gopool 中执行
type Engine struct {
	ctx    context.Context
	cancel context.CancelFunc

	classroom *Classroom
	out       Outbox

	// events 事件队列, 只有 run 协程消费
	events chan Event
	done   chan struct{}

	// track, year 在 Start 中确定, 之后只读
	track   string
	year    string
	started bool

	// 以下字段只在 run 协程中访问
	session   Session
	timers    map[uint64]*time.Timer
	timerSeq  uint64
	calls     map[string]context.CancelFunc
	utterance uint64
	narrating context.CancelFunc
	ended     bool
}

func newEngine(c *Classroom, out Outbox) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		ctx:       ctx,
		cancel:    cancel,
		classroom: c,
		out:       out,
		events:    make(chan Event, 64),
		done:      make(chan struct{}),
		timers:    make(map[uint64]*time.Timer),
		calls:     make(map[string]context.CancelFunc),
	}
}

// Start 初始化会话并启动事件循环, 能恢复快照时恢复
func (e *Engine) Start(ctx context.Context, opts StartOptions) error {
	track := strings.ToLower(strings.TrimSpace(opts.Track))
	if track == "" {
		track = consts.DefaultTrack
	}
	e.track, e.year = track, strings.TrimSpace(opts.YearGroup)
	e.session = NewSession(uuid.New().String(), opts.StudentId, opts.StudentName, e.track, e.year, e.classroom.now())

	resumed := false
	if opts.ResumeSessionId != "" && e.classroom.store != nil {
		s, ok, err := e.classroom.store.Load(ctx, opts.ResumeSessionId)
		switch {
		case err != nil:
			log.CtxError(ctx, "[lesson] load snapshot %s err: %v", opts.ResumeSessionId, err)
		case ok && s.StudentId == opts.StudentId:
			e.session = s
			e.track, e.year = s.Track, s.YearGroup
			resumed = true
		}
	}
	log.CtxInfo(ctx, "[lesson] start session=%s student=%s track=%s year=%s resumed=%v",
		e.session.Id, opts.StudentId, e.session.Track, e.session.YearGroup, resumed)

	view := View(e.session)
	if resumed {
		view = FullView(e.session)
	}
	err := e.out.WriteJSON(&dto.LessonFrame{Type: "state", State: e.view(view)})

	e.started = true
	go e.run()
	if resumed {
		e.post(Resumed{})
	}
	return err
}

// Say 学生发言
func (e *Engine) Say(text string) {
	e.post(StudentSaid{Text: text})
}

// Choose 选择课题, 课题需要属于本次课堂的学科与年级
func (e *Engine) Choose(topicId string) error {
	c := e.classroom.catalog
	topic, ok := c.Topic(e.track, e.year, strings.TrimSpace(topicId))
	if !ok {
		return consts.ErrUnknownTopic
	}
	e.post(TopicChosen{SessionId: uuid.New().String(), Topic: topic, Tutor: c.TutorFor(e.track)})
	return nil
}

// Select 点击阶段徽章
func (e *Engine) Select(phase string) error {
	p, ok := ParsePhase(phase)
	if !ok {
		return consts.ErrUnknownPhase
	}
	e.post(PhaseSelected{Phase: p})
	return nil
}

// Attach 学生上传附件
func (e *Engine) Attach(name string) {
	e.post(FileAttached{Name: name})
}

// Snapshot 当前会话的副本, 循环结束后返回最后的状态
func (e *Engine) Snapshot() Session {
	var s Session
	if e.within(func() { s = e.session }) {
		return s
	}
	return e.session
}

// within 在事件循环中执行 fn 并等待完成, 循环已结束时返回 false
func (e *Engine) within(fn func()) bool {
	finished := make(chan struct{})
	select {
	case e.events <- inspect{fn: func() { fn(); close(finished) }}:
	case <-e.done:
		return false
	}
	select {
	case <-finished:
		return true
	case <-e.done:
		return false
	}
}

// End 学生主动下课, 课程结束后不再保留快照
func (e *Engine) End() {
	e.stop()
	e.ended = true
	e.retire(e.session)
	if err := e.out.WriteJSON(&dto.LessonFrame{Type: "end", Msg: "lesson ended"}); err != nil {
		log.Error("[lesson] write end frame err: %v", err)
	}
}

// Close 释放资源, 非主动下课时保留快照等待重连
func (e *Engine) Close() {
	e.stop()
	if !e.ended && e.session.Topic != nil {
		e.save()
	}
}

// stop 停止事件循环, 可重复调用
func (e *Engine) stop() {
	e.cancel()
	if e.started {
		<-e.done
	}
}

// post 投递事件, 循环结束后丢弃
func (e *Engine) post(ev Event) {
	select {
	case e.events <- ev:
	case <-e.ctx.Done():
	}
}

// run 事件循环
func (e *Engine) run() {
	defer close(e.done)
	defer e.halt()
	for {
		select {
		case <-e.ctx.Done():
			return
		case ev := <-e.events:
			e.handle(ev)
		}
	}
}

// handle 处理一个事件并执行副作用
func (e *Engine) handle(ev Event) {
	switch v := ev.(type) {
	case inspect:
		v.fn()
		return
	case spoken:
		if v.seq != e.utterance {
			return
		}
		ev = v.SpeakingChanged
	case due:
		delete(e.timers, v.id)
		ev = v.TimerFired
	case TutorReplied:
		e.settle(v.CallId)
	case TutorFailed:
		e.settle(v.CallId)
	}

	prev := e.session
	next, effects, err := e.classroom.machine.Apply(prev, ev)
	if err != nil {
		e.reject(err)
		return
	}
	e.session = next
	if prev.Id != next.Id {
		e.abandon()
	}
	for _, eff := range effects {
		e.execute(eff)
	}
	e.publish(prev, next)

	if prev.Id != next.Id && prev.Topic != nil {
		e.retire(prev)
	}
	if _, ok := ev.(SpeakingChanged); !ok && next.Topic != nil {
		e.save()
	}
}

// execute 执行一个副作用
func (e *Engine) execute(eff Effect) {
	switch v := eff.(type) {
	case Narrate:
		e.narrate(v.Text)
	case Schedule:
		e.timerSeq++
		id, timer := e.timerSeq, v.Timer
		e.timers[id] = time.AfterFunc(v.After, func() { e.post(due{TimerFired: timer, id: id}) })
	case CancelTimers:
		e.clearTimers()
		e.silence()
	case AskTutor:
		e.ask(v)
	}
}

// ask 异步调用远程导师, 结果以事件回到循环
func (e *Engine) ask(v AskTutor) {
	sessionId := e.session.Id
	req := v.Request
	ctx, cancel := context.WithCancel(e.ctx)
	e.calls[v.CallId] = cancel
	gopool.CtxGo(ctx, func() {
		defer cancel()
		reply, err := e.classroom.tutor.Ask(ctx, &req)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Error("[lesson] session=%s tutor call %s failed: %v", sessionId, v.CallId, err)
			}
			e.post(TutorFailed{SessionId: sessionId, CallId: v.CallId, Err: err})
			return
		}
		e.post(TutorReplied{SessionId: sessionId, CallId: v.CallId, Reply: reply})
	})
}

// settle 远程调用已返回
func (e *Engine) settle(callId string) {
	if cancel, ok := e.calls[callId]; ok {
		cancel()
		delete(e.calls, callId)
	}
}

// abandon 会话被替换, 取消旧会话仍在进行的远程调用
func (e *Engine) abandon() {
	for id, cancel := range e.calls {
		cancel()
		delete(e.calls, id)
	}
}

// narrate 打断上一段朗读并开始新的朗读
func (e *Engine) narrate(text string) {
	e.silence()
	e.utterance++
	seq := e.utterance
	sessionId := e.session.Id
	profile := narration.ProfileFor(e.track)

	ctx, cancel := context.WithCancel(e.ctx)
	e.narrating = cancel
	gopool.CtxGo(ctx, func() {
		defer cancel()
		e.classroom.sink.Speak(ctx, text, profile, model.Callbacks{
			OnStart: func() { e.post(spoken{SpeakingChanged{SessionId: sessionId, Speaking: true}, seq}) },
			OnAudio: func(chunk []byte) {
				if ctx.Err() != nil {
					return
				}
				if err := e.out.WriteBytes(chunk); err != nil {
					log.Error("[lesson] write audio err: %v", err)
				}
			},
			OnEnd: func() { e.post(spoken{SpeakingChanged{SessionId: sessionId, Speaking: false}, seq}) },
		})
	})
}

// silence 取消正在进行的朗读
func (e *Engine) silence() {
	if e.narrating != nil {
		e.narrating()
		e.narrating = nil
	}
}

func (e *Engine) clearTimers() {
	for _, t := range e.timers {
		t.Stop()
	}
	clear(e.timers)
}

// halt 循环退出时清理定时器和朗读
func (e *Engine) halt() {
	e.clearTimers()
	e.silence()
	e.abandon()
}

// publish 把变化推送给客户端
func (e *Engine) publish(prev, next Session) {
	var frames []*dto.LessonFrame

	from := len(prev.Transcript)
	if prev.Id != next.Id {
		from = 0
	}
	if from > len(next.Transcript) {
		from = len(next.Transcript)
	}
	if prev.Id != next.Id || stateChanged(prev, next) {
		frames = append(frames, &dto.LessonFrame{Type: "state", State: e.view(View(next))})
	}
	for _, m := range next.Transcript[from:] {
		frames = append(frames, &dto.LessonFrame{Type: "message", Message: MessageOf(m)})
	}
	if prev.Speaking != next.Speaking {
		speaking := next.Speaking
		frames = append(frames, &dto.LessonFrame{Type: "speaking", Speaking: &speaking})
	}

	for _, f := range frames {
		if err := e.out.WriteJSON(f); err != nil {
			log.Error("[lesson] session=%s write frame err: %v", next.Id, err)
			return
		}
	}
}

func stateChanged(prev, next Session) bool {
	return prev.Phase != next.Phase || prev.Section != next.Section || prev.Board != next.Board ||
		prev.Understanding != next.Understanding || prev.Busy() != next.Busy()
}

// view 补充导师形象和音色
func (e *Engine) view(v *dto.SessionView) *dto.SessionView {
	t := e.classroom.catalog.TutorFor(e.track)
	v.Tutor = &dto.TutorView{Track: t.Track, Name: t.Name, Subject: t.Subject, Description: t.Description}
	p := narration.ProfileFor(e.track)
	v.Voice = &dto.VoiceView{Family: p.Family, Voices: p.Voices, Rate: p.Rate, Pitch: p.Pitch}
	return v
}

// reject 告知学生操作被拒绝
func (e *Engine) reject(err error) {
	frame := &dto.LessonFrame{Type: "error", Msg: err.Error()}
	var errno *consts.Errno
	if errors.As(err, &errno) {
		frame.Code = errno.Code()
	}
	if werr := e.out.WriteJSON(frame); werr != nil {
		log.Error("[lesson] write error frame err: %v", werr)
	}
}

// save 保存快照
func (e *Engine) save() {
	if e.classroom.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.classroom.store.Save(ctx, e.session); err != nil {
		log.Error("[lesson] session=%s save snapshot err: %v", e.session.Id, err)
	}
}

// retire 会话被丢弃或结束, 删除快照并投递结束事件
func (e *Engine) retire(s Session) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if e.classroom.store != nil {
		if err := e.classroom.store.Remove(ctx, s.Id); err != nil {
			log.Error("[lesson] session=%s remove snapshot err: %v", s.Id, err)
		}
	}
	if e.classroom.publisher == nil || s.Rounds <= consts.MinRounds || s.Topic == nil {
		return
	}
	ev := &model.LessonEnded{
		SessionId: s.Id,
		StudentId: s.StudentId,
		Track:     s.Track,
		YearGroup: s.YearGroup,
		TopicId:   s.Topic.Id,
		Rounds:    s.Rounds,
		Start:     s.StartTime,
		End:       e.classroom.now(),
	}
	if err := e.classroom.publisher.Publish(ctx, ev); err != nil {
		log.Error("[lesson] session=%s publish lesson ended err: %v", s.Id, err)
	}
}

