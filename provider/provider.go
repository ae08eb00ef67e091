package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/virtual-classroom/biz/application/service"
	"github.com/xh-polaris/virtual-classroom/biz/domain"
	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model/tutor"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model/volc"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/mapper/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/mq"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	LessonService     service.ILessonService
	CurriculumService service.ICurriculumService
}

func Get() *Provider {
	return provider
}

var RpcSet = wire.NewSet(
	tutor.NewTutorApp,
	volc.NewNarrationSink,
)

var ApplicationSet = wire.NewSet(
	service.LessonServiceSet,
	service.CurriculumServiceSet,
)

var DomainSet = wire.NewSet(
	service.NewCatalog,
	domain.NewSessionStore,
	lesson.NewClassroom,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	curriculum.NewMongoMapper,
	mq.NewLessonProducer,
	RpcSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	DomainSet,
	InfrastructureSet,
)
