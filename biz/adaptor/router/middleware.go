package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/gopkg/util/log"
)

func _rootMw() []app.HandlerFunc {
	return nil
}

// _classroomMw 记录课堂连接的建立
func _classroomMw() []app.HandlerFunc {
	return []app.HandlerFunc{
		func(ctx context.Context, c *app.RequestContext) {
			log.CtxInfo(ctx, "[lesson] connect from %s", c.ClientIP())
			c.Next(ctx)
		},
	}
}

func _curriculumMw() []app.HandlerFunc {
	return nil
}
