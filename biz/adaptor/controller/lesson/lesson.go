package lesson

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor"
	"github.com/xh-polaris/virtual-classroom/provider"
)

// Classroom 进入虚拟课堂
// @router /lesson/ [GET]
func Classroom(ctx context.Context, c *app.RequestContext) {
	// 尝试升级协议, 并处理
	p := provider.Get()
	err := adaptor.UpgradeWs(ctx, c, p.LessonService.Serve)
	if err != nil {
		log.Error(err.Error())
	}
}
