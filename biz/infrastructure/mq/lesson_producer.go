package mq

import (
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/virtual-classroom/biz/domain/model"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"golang.org/x/net/context"
)

const (
	Exchange        = "virtual_classroom"
	LessonEndedKey  = "lesson.ended"
	contentTypeJSON = "application/json"
)

var _ model.LessonPublisher = (*LessonProducer)(nil)

// LessonProducer 课程事件生产者
type LessonProducer struct {
	mu      sync.Mutex
	url     string
	channel *amqp.Channel
}

// NewLessonProducer 未配置 RabbitMQ 时不投递
func NewLessonProducer(c *config.Config) model.LessonPublisher {
	if c.RabbitMQ.Url == "" {
		return nil
	}
	return &LessonProducer{url: c.RabbitMQ.Url}
}

// lessonEndedMsg 消息体, 时间为unix秒
type lessonEndedMsg struct {
	*model.LessonEnded
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Publish 投递课程结束事件
func (p *LessonProducer) Publish(ctx context.Context, ev *model.LessonEnded) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}
	// 发布持久化消息
	err = ch.PublishWithContext(ctx, Exchange, LessonEndedKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentTypeJSON,
			Body:         body,
		})
	if err != nil {
		// 下次重新打开通道
		_ = ch.Close()
		p.channel = nil
		return err
	}
	log.CtxInfo(ctx, "[mq] lesson ended, session=%s rounds=%d", ev.SessionId, ev.Rounds)
	return nil
}

// ensureChannel 懒加载通道, 连接重建后随之重建
func (p *LessonProducer) ensureChannel() (*amqp.Channel, error) {
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	c, err := getConn(p.url)
	if err != nil {
		return nil, err
	}
	ch, err := c.Channel()
	if err != nil {
		return nil, err
	}
	if err = ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	p.channel = ch
	return ch, nil
}

func encode(ev *model.LessonEnded) ([]byte, error) {
	return json.Marshal(&lessonEndedMsg{LessonEnded: ev, Start: ev.Start.Unix(), End: ev.End.Unix()})
}
