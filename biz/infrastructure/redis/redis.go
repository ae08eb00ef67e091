package redis

import (
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// NewRedis 未配置 Redis 时返回nil
func NewRedis(c *config.Config) *redis.Redis {
	if c.Redis == nil || c.Redis.Host == "" {
		return nil
	}
	return redis.MustNewRedis(*c.Redis)
}
