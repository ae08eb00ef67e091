package domain

import (
	"context"
	"encoding/json"

	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	rs "github.com/xh-polaris/virtual-classroom/biz/infrastructure/redis"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const prefixSessionKey = "classroom:session:"

var _ lesson.Store = (*SessionStore)(nil)

// SessionStore 课堂会话快照, 只为断线重连保留一小段时间
type SessionStore struct {
	rs  *redis.Redis
	ttl int
}

// NewSessionStore 未配置 Redis 时不保存快照
func NewSessionStore(c *config.Config) lesson.Store {
	r := rs.NewRedis(c)
	if r == nil {
		return nil
	}
	return &SessionStore{rs: r, ttl: c.Lesson.ResumeTTLSeconds}
}

// Save 覆盖写入快照并刷新过期时间
func (s *SessionStore) Save(ctx context.Context, sess lesson.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rs.SetexCtx(ctx, prefixSessionKey+sess.Id, string(data), s.ttl)
}

// Load 读取快照, 不存在时 ok 为false
func (s *SessionStore) Load(ctx context.Context, id string) (lesson.Session, bool, error) {
	var sess lesson.Session
	data, err := s.rs.GetCtx(ctx, prefixSessionKey+id)
	if err != nil || data == "" {
		return sess, false, err
	}
	if err = json.Unmarshal([]byte(data), &sess); err != nil {
		return sess, false, err
	}
	return sess, true, nil
}

// Remove 删除快照
func (s *SessionStore) Remove(ctx context.Context, id string) error {
	_, err := s.rs.DelCtx(ctx, prefixSessionKey+id)
	return err
}
