package adaptor

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
	"github.com/xh-polaris/virtual-classroom/biz/adaptor/cmd"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

func TestPostProcess(t *testing.T) {
	ctx := context.Background()

	c := app.NewContext(0)
	PostProcess(ctx, c, &cmd.ListTracksReq{}, &cmd.ListTracksResp{Response: cmd.Success()}, nil)
	assert.Equal(t, hertz.StatusOK, c.Response.StatusCode())
	assert.Contains(t, string(c.Response.Body()), `"msg":"success"`)

	c = app.NewContext(0)
	PostProcess(ctx, c, &cmd.ListTopicsReq{Track: "art"}, nil, consts.ErrUnknownTrack)
	assert.Equal(t, hertz.StatusOK, c.Response.StatusCode())
	assert.Contains(t, string(c.Response.Body()), "1008")
	assert.Contains(t, string(c.Response.Body()), "unknown subject track")

	c = app.NewContext(0)
	PostProcess(ctx, c, &cmd.ListTracksReq{}, nil, errors.New("mongo down"))
	assert.Equal(t, hertz.StatusInternalServerError, c.Response.StatusCode())
	assert.NotContains(t, string(c.Response.Body()), "mongo down")
}
