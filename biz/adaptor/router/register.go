package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor/controller/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor/controller/lesson"
)

func Register(r *server.Hertz) {
	root := r.Group("/", _rootMw()...)
	{
		_lesson := root.Group("/lesson")
		_lesson.GET("/", append(_classroomMw(), lesson.Classroom)...)
	}
	{
		_curriculum := root.Group("/curriculum", _curriculumMw()...)
		_curriculum.GET("/topics", curriculum.ListTopics)
		_curriculum.GET("/tracks", curriculum.ListTracks)
	}
}
