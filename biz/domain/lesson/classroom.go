package lesson

import (
	"time"

	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/intent"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
)

// Classroom 进程内共享的课堂依赖, 每个连接通过 Open 得到自己的 Engine
type Classroom struct {
	machine   *Machine
	catalog   *curriculum.Catalog
	tutor     model.TutorApp
	sink      model.NarrationSink
	store     Store
	publisher model.LessonPublisher
	now       func() time.Time
}

// NewClassroom store 和 publisher 可以为空
func NewClassroom(c *config.Config, catalog *curriculum.Catalog, tutor model.TutorApp, sink model.NarrationSink,
	store Store, publisher model.LessonPublisher) *Classroom {
	l := c.Lesson
	machine := NewMachine(curriculum.NewResolver(), intent.NewKeywordClassifier(), Delays{
		Intro:      ms(l.IntroDelayMs),
		Completion: ms(l.CompletionDelayMs),
		Practice:   ms(l.PracticeDelayMs),
		Attachment: ms(l.AttachmentDelayMs),
	}, l.QueueLimit)
	return newClassroom(machine, catalog, tutor, sink, store, publisher)
}

func newClassroom(machine *Machine, catalog *curriculum.Catalog, tutor model.TutorApp, sink model.NarrationSink,
	store Store, publisher model.LessonPublisher) *Classroom {
	return &Classroom{
		machine:   machine,
		catalog:   catalog,
		tutor:     tutor,
		sink:      sink,
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Open 为一个连接创建事件循环, 需要调用 Start 后才开始处理事件
func (c *Classroom) Open(out Outbox) *Engine {
	return newEngine(c, out)
}

// Catalog 课程目录
func (c *Classroom) Catalog() *curriculum.Catalog {
	return c.catalog
}

func ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}
