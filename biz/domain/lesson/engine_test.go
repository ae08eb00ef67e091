package lesson

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/virtual-classroom/biz/application/dto"
	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/intent"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/domain/narration"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

type outbox struct {
	mu     sync.Mutex
	frames []*dto.LessonFrame
	audio  int
}

func (o *outbox) WriteJSON(obj any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if f, ok := obj.(*dto.LessonFrame); ok {
		o.frames = append(o.frames, f)
	}
	return nil
}

func (o *outbox) WriteBytes([]byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.audio++
	return nil
}

func (o *outbox) ofType(typ string) []*dto.LessonFrame {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []*dto.LessonFrame
	for _, f := range o.frames {
		if f.Type == typ {
			out = append(out, f)
		}
	}
	return out
}

// tutor 阻塞到 release 的假导师
type tutor struct {
	calls   atomic.Int32
	release chan struct{}
	asked   chan context.Context
}

func newTutor() *tutor {
	return &tutor{release: make(chan struct{}, 16), asked: make(chan context.Context, 16)}
}

func (t *tutor) Ask(ctx context.Context, req *model.TutorRequest) (*model.TutorReply, error) {
	t.calls.Add(1)
	t.asked <- ctx
	select {
	case <-t.release:
		return &model.TutorReply{Text: "re: " + req.Message}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type store struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func newStore() *store { return &store{sessions: map[string]Session{}} }

func (s *store) Save(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Id] = sess
	return nil
}

func (s *store) Load(_ context.Context, id string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok, nil
}

func (s *store) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *store) has(id string) bool {
	_, ok, _ := s.Load(context.Background(), id)
	return ok
}

type publisher struct {
	mu     sync.Mutex
	events []*model.LessonEnded
}

func (p *publisher) Publish(_ context.Context, ev *model.LessonEnded) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

type fixture struct {
	engine *Engine
	out    *outbox
	tutor  *tutor
	store  *store
	pub    *publisher
}

func newFixture(t *testing.T, intro time.Duration) *fixture {
	t.Helper()
	machine := NewMachine(curriculum.NewResolver(), intent.NewKeywordClassifier(), Delays{
		Intro:      intro,
		Completion: 10 * time.Millisecond,
		Practice:   10 * time.Millisecond,
		Attachment: 10 * time.Millisecond,
	}, 3)
	f := &fixture{out: &outbox{}, tutor: newTutor(), store: newStore(), pub: &publisher{}}
	c := newClassroom(machine, curriculum.DefaultCatalog(), f.tutor, narration.Nop{}, f.store, f.pub)
	f.engine = c.Open(f.out)
	t.Cleanup(f.engine.Close)
	return f
}

func (f *fixture) start(t *testing.T, opts StartOptions) {
	t.Helper()
	if opts.StudentId == "" {
		opts.StudentId = "stu-1"
	}
	if opts.YearGroup == "" {
		opts.YearGroup = "8"
	}
	require.NoError(t, f.engine.Start(context.Background(), opts))
}

func (f *fixture) waitPhase(t *testing.T, p Phase) Session {
	t.Helper()
	var s Session
	require.Eventually(t, func() bool {
		s = f.engine.Snapshot()
		return s.Phase == p
	}, 2*time.Second, 5*time.Millisecond, "waiting for %s", p)
	return s
}

func TestEngineLessonFlow(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)
	f.start(t, StartOptions{StudentName: "Ada", Track: "Maths"})
	require.NoError(t, f.engine.Choose("m1"))

	s := f.waitPhase(t, Teaching)
	assert.Equal(t, "m1", s.Topic.Id)
	assert.Equal(t, 0, s.Section)

	for i := 1; i <= 2; i++ {
		f.engine.Say("next")
		require.Eventually(t, func() bool { return f.engine.Snapshot().Section == i }, time.Second, 5*time.Millisecond)
	}
	f.engine.Say("next")
	s = f.waitPhase(t, Practice)
	assert.Contains(t, s.Board, "YOUR TURN")
	assert.Zero(t, f.tutor.calls.Load())

	states := f.out.ofType("state")
	require.NotEmpty(t, states)
	assert.Equal(t, "Prof. Mathew", states[len(states)-1].State.Tutor.Name)
	assert.Equal(t, narration.Male, states[len(states)-1].State.Voice.Family)
	assert.Equal(t, "practice", states[len(states)-1].State.Phase)

	var texts []string
	for _, fr := range f.out.ofType("message") {
		texts = append(texts, fr.Message.Text)
	}
	require.GreaterOrEqual(t, len(texts), 9)
	assert.Contains(t, texts[0], "Hello Ada!")
	assert.Contains(t, texts[1], "**Section 1**")
	assert.Equal(t, "next", texts[2])
	assert.Contains(t, texts[3], "**Section 2**")

	assert.Eventually(t, func() bool { return len(f.out.ofType("speaking")) > 0 }, time.Second, 5*time.Millisecond)
}

func TestEngineOneOutstandingCall(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m2"))
	f.waitPhase(t, Teaching)

	f.engine.Say("why is it squared?")
	f.engine.Say("and what about the other sides?")
	require.Eventually(t, func() bool { s := f.engine.Snapshot(); return s.Busy() }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), f.tutor.calls.Load())
	assert.Equal(t, []string{"and what about the other sides?"}, f.engine.Snapshot().Pending)

	f.tutor.release <- struct{}{}
	require.Eventually(t, func() bool { return f.tutor.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	f.tutor.release <- struct{}{}
	require.Eventually(t, func() bool { s := f.engine.Snapshot(); return !s.Busy() }, time.Second, 5*time.Millisecond)

	s := f.engine.Snapshot()
	n := len(s.Transcript)
	assert.Equal(t, "why is it squared?", s.Transcript[n-4].Text)
	assert.Equal(t, "re: why is it squared?", s.Transcript[n-3].Text)
	assert.Equal(t, "and what about the other sides?", s.Transcript[n-2].Text)
	assert.Equal(t, "re: and what about the other sides?", s.Transcript[n-1].Text)
}

func TestEngineStaleTimerAfterNewTopic(t *testing.T) {
	f := newFixture(t, 40*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, f.engine.Choose("m2"))

	s := f.waitPhase(t, Teaching)
	time.Sleep(80 * time.Millisecond)
	s = f.engine.Snapshot()
	assert.Equal(t, "m2", s.Topic.Id)
	require.Len(t, s.Transcript, 2)
	assert.Contains(t, s.Transcript[1].Text, "The theorem")
}

func TestEngineRejections(t *testing.T) {
	f := newFixture(t, time.Second)
	f.start(t, StartOptions{})

	assert.ErrorIs(t, f.engine.Choose("nope"), consts.ErrUnknownTopic)
	assert.ErrorIs(t, f.engine.Select("lunch"), consts.ErrUnknownPhase)

	f.engine.Say("hello?")
	require.Eventually(t, func() bool { return len(f.out.ofType("error")) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, consts.ErrNoLesson.Code(), f.out.ofType("error")[0].Code)
}

func TestEngineSelectPhase(t *testing.T) {
	f := newFixture(t, 30*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	f.waitPhase(t, Intro)
	require.NoError(t, f.engine.Select("practice"))
	f.waitPhase(t, Practice)

	time.Sleep(60 * time.Millisecond)
	s := f.engine.Snapshot()
	assert.Equal(t, Practice, s.Phase)
	assert.Len(t, s.Transcript, 1)
}

func TestEngineResume(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)
	m := f.engine.classroom.machine
	s := NewSession("old", "stu-1", "Ada", "maths", "8", time.Now())
	s, _, err := m.Apply(s, TopicChosen{SessionId: "resumable", Topic: linearEquations(t)})
	require.NoError(t, err)
	require.NoError(t, f.store.Save(context.Background(), s))

	f.start(t, StartOptions{ResumeSessionId: "resumable"})
	resumed := f.waitPhase(t, Teaching)
	assert.Equal(t, "resumable", resumed.Id)

	first := f.out.ofType("state")[0]
	assert.Equal(t, "resumable", first.State.SessionId)
	assert.Len(t, first.State.Transcript, 1)
}

func TestEngineResumeOtherStudent(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)
	s := NewSession("theirs", "stu-2", "Bo", "maths", "8", time.Now())
	require.NoError(t, f.store.Save(context.Background(), s))

	f.start(t, StartOptions{ResumeSessionId: "theirs"})
	assert.NotEqual(t, "theirs", f.engine.Snapshot().Id)
}

func TestEngineEnd(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	f.waitPhase(t, Teaching)
	for _, text := range []string{"I'm confused", "makes sense", "next", "next"} {
		f.engine.Say(text)
	}
	require.Eventually(t, func() bool { return f.engine.Snapshot().Rounds == 4 }, time.Second, 5*time.Millisecond)
	id := f.engine.Snapshot().Id
	require.True(t, f.store.has(id))

	f.engine.End()
	assert.False(t, f.store.has(id))
	require.Len(t, f.pub.events, 1)
	assert.Equal(t, id, f.pub.events[0].SessionId)
	assert.Equal(t, "m1", f.pub.events[0].TopicId)
	assert.Equal(t, 4, f.pub.events[0].Rounds)
	assert.Len(t, f.out.ofType("end"), 1)
}

func TestEngineCloseKeepsSnapshot(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	s := f.waitPhase(t, Teaching)

	f.engine.Close()
	assert.True(t, f.store.has(s.Id))
	assert.Empty(t, f.pub.events)
}

func TestEngineNewTopicRetiresOldSession(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	old := f.waitPhase(t, Teaching)
	require.True(t, f.store.has(old.Id))

	require.NoError(t, f.engine.Choose("m2"))
	require.Eventually(t, func() bool { return f.engine.Snapshot().Id != old.Id }, time.Second, 5*time.Millisecond)
	assert.False(t, f.store.has(old.Id))
}

func TestEngineReleasesFiredTimers(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m1"))
	f.waitPhase(t, Teaching)

	f.engine.Attach("notes.pdf")
	require.Eventually(t, func() bool {
		s := f.engine.Snapshot()
		m := s.Transcript[len(s.Transcript)-1]
		return m.Role == Tutor && strings.Contains(m.Text, "notes.pdf")
	}, time.Second, 5*time.Millisecond)

	armed := -1
	require.True(t, f.engine.within(func() { armed = len(f.engine.timers) }))
	assert.Zero(t, armed)
}

func TestEngineNewTopicCancelsOutstandingCall(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	f.start(t, StartOptions{})
	require.NoError(t, f.engine.Choose("m2"))
	f.waitPhase(t, Teaching)

	f.engine.Say("why is it squared?")
	var ctx context.Context
	select {
	case ctx = <-f.tutor.asked:
	case <-time.After(time.Second):
		t.Fatal("tutor was not asked")
	}
	old := f.engine.Snapshot().Id

	require.NoError(t, f.engine.Choose("m1"))
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("call of the discarded session is still running")
	}

	s := f.engine.Snapshot()
	assert.NotEqual(t, old, s.Id)
	assert.False(t, s.Busy())
	require.NotEmpty(t, s.Transcript)
	assert.Contains(t, s.Transcript[0].Text, "Linear Equations")
	for _, m := range s.Transcript {
		assert.NotEqual(t, Student, m.Role)
	}

	calls := -1
	require.True(t, f.engine.within(func() { calls = len(f.engine.calls) }))
	assert.Zero(t, calls)
}
