package config

import (
	"os"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn string
	Mongo    struct {
		URL string `json:",optional"`
		DB  string `json:",optional"`
	} `json:",optional"`
	Redis     *redis.RedisConf `json:",optional"`
	RabbitMQ  RabbitMQ         `json:",optional"`
	Tutor     Tutor
	Narration Narration `json:",optional"`
	Lesson    Lesson    `json:",optional"`
}

type RabbitMQ struct {
	Url string `json:",optional"`
}

// Tutor 远程AI导师接口
type Tutor struct {
	BaseURL   string
	TimeoutMs int64 `json:",default=15000"`
}

// Narration 火山语音合成, Enable为false时不朗读
type Narration struct {
	Enable         bool   `json:",default=false"`
	Url            string `json:",optional"`
	AppKey         string `json:",optional"`
	AccessKey      string `json:",optional"`
	Cluster        string `json:",optional"`
	ScienceSpeaker string `json:",optional"`
	DefaultSpeaker string `json:",optional"`
}

// Lesson 课堂节奏相关参数
type Lesson struct {
	IntroDelayMs      int64 `json:",default=2000"`
	CompletionDelayMs int64 `json:",default=3000"`
	PracticeDelayMs   int64 `json:",default=8000"`
	AttachmentDelayMs int64 `json:",default=1000"`
	QueueLimit        int   `json:",default=3"`
	ResumeTTLSeconds  int   `json:",default=1800"`
}

// Timeout 远程调用超时时间
func (t Tutor) Timeout() time.Duration {
	return time.Duration(t.TimeoutMs) * time.Millisecond
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	return c, nil
}
