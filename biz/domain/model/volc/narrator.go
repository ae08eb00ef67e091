package volc

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/domain/narration"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/util"
)

var _ model.NarrationSink = (*Narrator)(nil)

// Narrator 火山引擎语音合成, 每次朗读使用一个独立的ws连接
type Narrator struct {
	appKey    string
	accessKey string
	cluster   string
	url       string
	// speakers 音色族 -> 发音人
	speakers map[string]string
	// header 是请求头, 携带鉴权信息
	header http.Header
	dialer *websocket.Dialer
}

// NewNarrator 构造一个语音合成器
func NewNarrator(c config.Narration) *Narrator {
	n := &Narrator{
		appKey:    c.AppKey,
		accessKey: c.AccessKey,
		cluster:   c.Cluster,
		url:       c.Url,
		speakers: map[string]string{
			narration.Female: c.ScienceSpeaker,
			narration.Male:   c.DefaultSpeaker,
		},
		dialer: websocket.DefaultDialer,
	}
	n.buildHTTPHeader()
	return n
}

// NewNarrationSink 按配置选择语音合成实现, 未开启时不合成
func NewNarrationSink(c *config.Config) model.NarrationSink {
	if !c.Narration.Enable || c.Narration.Url == "" {
		return narration.Nop{}
	}
	return NewNarrator(c.Narration)
}

// Speak 合成一段文本, 音频分片通过 OnAudio 回调
func (n *Narrator) Speak(ctx context.Context, text string, profile model.VoiceProfile, cb model.Callbacks) {
	if cb.OnStart != nil {
		cb.OnStart()
	}
	defer func() {
		if cb.OnEnd != nil {
			cb.OnEnd()
		}
	}()

	text = narration.StripMarkdown(text)
	if text == "" {
		return
	}
	if err := n.speak(ctx, text, profile, cb.OnAudio); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("narrate failed: %v", err)
	}
}

func (n *Narrator) speak(ctx context.Context, text string, profile model.VoiceProfile, onAudio func([]byte)) error {
	conn, err := n.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// ctx 取消时关闭连接, 打断阻塞的读
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	req, err := n.request(text, profile)
	if err != nil {
		return err
	}
	if err = conn.WriteMessage(websocket.BinaryMessage, req); err != nil {
		return err
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		resp, err := parseResponse(msg)
		if err != nil {
			return err
		}
		if len(resp.Audio) > 0 && onAudio != nil {
			onAudio(resp.Audio)
		}
		if resp.IsLast {
			return nil
		}
	}
}

// dial 建立ws连接
func (n *Narrator) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, r, err := n.dialer.DialContext(ctx, n.url, n.header)
	if err != nil {
		if r != nil {
			body, parseErr := io.ReadAll(r.Body)
			if parseErr != nil {
				parseErr = fmt.Errorf("parse response body failed: %w", parseErr)
				body = []byte(parseErr.Error())
			}
			err = fmt.Errorf("[code=%s] [body=%s] [logid=%s] %w", r.Status, body, r.Header.Get("X-Tt-Logid"), err)
		}
		return nil, err
	}
	return conn, nil
}

// request 构造一次完整的合成请求帧
func (n *Narrator) request(text string, profile model.VoiceProfile) ([]byte, error) {
	speaker := profile.Speaker
	if speaker == "" {
		speaker = n.speakers[profile.Family]
	}
	params := map[string]map[string]any{
		"app": {
			"appid":   n.appKey,
			"token":   "access_token",
			"cluster": n.cluster,
		},
		"user": {
			"uid": uuid.New().String(),
		},
		"audio": {
			"voice_type":   speaker,
			"encoding":     "pcm",
			"rate":         24000,
			"speed_ratio":  ratio(profile.Rate),
			"volume_ratio": 1.0,
			"pitch_ratio":  ratio(profile.Pitch),
		},
		"request": {
			"reqid":     uuid.New().String(),
			"text":      text,
			"text_type": "plain",
			"operation": optSubmit,
			"logid":     genLogID(),
		},
	}
	input, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	input, err = util.GzipCompress(input)
	if err != nil {
		return nil, err
	}
	payloadArr := make([]byte, 4)
	binary.BigEndian.PutUint32(payloadArr, uint32(len(input)))
	frame := make([]byte, 0, len(defaultHeader)+4+len(input))
	frame = append(frame, defaultHeader...)
	frame = append(frame, payloadArr...)
	frame = append(frame, input...)
	return frame, nil
}

func ratio(v float64) float64 {
	if v <= 0 {
		return 1.0
	}
	return v
}

// parseResponse 暂时只保留了有用部分, 之后需要再根据协议进行补充
func parseResponse(res []byte) (resp synResp, err error) {
	if len(res) < 4 {
		return resp, errors.New("response too short")
	}
	headSize := res[0] & 0x0f
	messageType := res[1] >> 4
	messageTypeSpecificFlags := res[1] & 0x0f
	messageCompression := res[2] & 0x0f
	if len(res) < int(headSize)*4 {
		return resp, errors.New("response header truncated")
	}
	payload := res[headSize*4:]

	switch messageType {
	case 0xb:
		// audio-only server response, 无序列号的是ACK
		if messageTypeSpecificFlags == 0 {
			return
		}
		if len(payload) < 8 {
			return resp, errors.New("audio payload truncated")
		}
		sequenceNumber := int32(binary.BigEndian.Uint32(payload[0:4]))
		resp.Audio = append(resp.Audio, payload[8:]...)
		if sequenceNumber < 0 {
			resp.IsLast = true
		}
	case 0xf:
		if len(payload) < 8 {
			return resp, errors.New("error payload truncated")
		}
		code := int32(binary.BigEndian.Uint32(payload[0:4]))
		errMsg := payload[8:]
		if messageCompression == 1 {
			errMsg, _ = util.GzipDecompress(errMsg)
		}
		err = fmt.Errorf("[code=%d] %s", code, errMsg)
	case 0xc:
		if len(payload) < 4 {
			return
		}
		payload = payload[4:]
		if messageCompression == 1 {
			payload, _ = util.GzipDecompress(payload)
		}
		glog.Infof("frontend message: %s", payload)
	}
	return
}

// buildHTTPHeader 构造鉴权请求头
func (n *Narrator) buildHTTPHeader() {
	n.header = http.Header{"Authorization": []string{fmt.Sprintf("Bearer;%s", n.accessKey)}}
}

// genLogID 生成日志ID
func genLogID() string {
	const (
		maxRandNum = 1<<24 - 1<<20
		length     = 53
		version    = "02"
		localIP    = "00000000000000000000000000000000"
	)
	ts := uint64(time.Now().UnixNano() / int64(time.Millisecond))
	r := uint64(fastrand.Uint32n(maxRandNum) + 1<<20)
	var sb strings.Builder
	sb.Grow(length)
	sb.WriteString(version)
	sb.WriteString(strconv.FormatUint(ts, 10))
	sb.WriteString(localIP)
	sb.WriteString(strconv.FormatUint(r, 16))
	return sb.String()
}

// version: b0001 (4 bits)
// header size: b0001 (4 bits)
// message type: b0001 (Full client request) (4bits)
// message type specific flags: b0000 (none) (4bits)
// message serialization method: b0001 (JSON) (4 bits)
// message compression: b0001 (gzip) (4bits)
// reserved data: 0x00 (1 byte)
var defaultHeader = []byte{0x11, 0x10, 0x11, 0x00}

const optSubmit = "submit"

type synResp struct {
	Audio  []byte
	IsLast bool
}
