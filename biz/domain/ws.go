package domain

import (
	"sync"
	"time"

	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/virtual-classroom/biz/application/dto"
	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
)

var _ lesson.Outbox = (*WsHelper)(nil)

// WsHelper 是封装Websocket协议的工具类
// 单协程读, 写操作加锁: 事件循环写文字帧, 朗读协程写音频帧
type WsHelper struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWsHelper(conn *websocket.Conn) *WsHelper {
	return &WsHelper{
		mu:   sync.Mutex{},
		conn: conn,
	}
}

// ReadJSON 从流中获取一个Json对象， 需要传入指针
func (ws *WsHelper) ReadJSON(obj any) error {
	return ws.conn.ReadJSON(obj)
}

// Error 写入一个错误信息
func (ws *WsHelper) Error(errno *consts.Errno) error {
	return ws.WriteJSON(&dto.LessonFrame{
		Type: "error",
		Code: errno.Code(),
		Msg:  errno.Error(),
	})
}

// WriteJSON 写入一个Json对象
func (ws *WsHelper) WriteJSON(obj any) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return ws.conn.WriteJSON(obj)
}

// WriteBytes 写入字节流
func (ws *WsHelper) WriteBytes(bytes []byte) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return ws.conn.WriteMessage(websocket.BinaryMessage, bytes)
}

// Close 关闭连接, 先尽量发送关闭帧
func (ws *WsHelper) Close() error {
	ws.mu.Lock()
	_ = ws.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	ws.mu.Unlock()
	return ws.conn.Close()
}
