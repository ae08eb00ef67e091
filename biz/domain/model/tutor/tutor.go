package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/util"
)

var _ model.TutorApp = (*App)(nil)

// ErrEmptyReply 导师服务返回了空内容
var ErrEmptyReply = errors.New("tutor returned empty response")

// App 远程AI导师, 上下文由远端按 session_id 管理
type App struct {
	url    string
	header http.Header
	client *util.HttpClient
}

// NewApp 创建远程导师客户端
func NewApp(baseURL string, client *util.HttpClient) *App {
	app := &App{
		url:    strings.TrimRight(baseURL, "/") + "/api/chat/send",
		header: http.Header{},
		client: client,
	}
	app.header.Set("Content-Type", "application/json")
	return app
}

// NewTutorApp 按配置创建, 供依赖注入使用
func NewTutorApp(c *config.Config) model.TutorApp {
	return NewApp(c.Tutor.BaseURL, util.NewHttpClient(c.Tutor.Timeout()))
}

// sendResp 导师服务的响应体
type sendResp struct {
	MessageId     string          `json:"message_id"`
	TutorResponse string          `json:"tutor_response"`
	Timestamp     json.RawMessage `json:"timestamp"`
}

// Ask 发送一条学生消息并等待回复, 不做任何兜底
func (app *App) Ask(ctx context.Context, req *model.TutorRequest) (*model.TutorReply, error) {
	var resp sendResp
	if err := app.client.Req(ctx, consts.Post, app.url, app.header, req, &resp); err != nil {
		log.CtxError(ctx, "[tutor] session=%s ask failed, err=%v", req.SessionId, err)
		return nil, err
	}
	if strings.TrimSpace(resp.TutorResponse) == "" {
		return nil, ErrEmptyReply
	}
	return &model.TutorReply{
		MessageId: resp.MessageId,
		Text:      resp.TutorResponse,
		Timestamp: parseTimestamp(resp.Timestamp),
	}, nil
}

// parseTimestamp 兼容 RFC3339 字符串和 unix 秒/毫秒, 无法解析时为零值
func parseTimestamp(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05.999999", s); err == nil {
			return t
		}
		raw = []byte(s)
	}
	n, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}
	}
	if n > 1e12 {
		return time.UnixMilli(int64(n))
	}
	sec := int64(n)
	return time.Unix(sec, int64((n-float64(sec))*float64(time.Second)))
}

