package curriculum

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor/cmd"
	"github.com/xh-polaris/virtual-classroom/provider"
)

// ListTopics .
// @router /curriculum/topics [GET]
func ListTopics(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ListTopicsReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.CurriculumService.ListTopics(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListTracks .
// @router /curriculum/tracks [GET]
func ListTracks(ctx context.Context, c *app.RequestContext) {
	var req cmd.ListTracksReq
	p := provider.Get()
	resp, err := p.CurriculumService.ListTracks(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
