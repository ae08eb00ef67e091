package mq

import (
	"math"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
)

const maxRetries = 5

// conn 复用同一个连接, 断开后由 monitor 重连, 重连失败时等下次使用再拨号
var (
	conn *amqp.Connection
	mu   sync.Mutex
)

// getConn 获取可用连接, 连接失败时返回错误而不是中止进程
func getConn(url string) (*amqp.Connection, error) {
	mu.Lock()
	defer mu.Unlock()
	if conn != nil && !conn.IsClosed() {
		return conn, nil
	}
	c, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	conn = c
	// 自动重连监听
	go monitor(url, c)
	return c, nil
}

// monitor 监听连接关闭并重连
func monitor(url string, c *amqp.Connection) {
	reason, ok := <-c.NotifyClose(make(chan *amqp.Error, 1))
	if !ok {
		// 主动关闭
		return
	}
	log.Info("RabbitMQ connection closed, reason: %v", reason)

	for retries := 0; retries < maxRetries; retries++ {
		time.Sleep(time.Duration(math.Pow(2, float64(retries))) * time.Second)

		mu.Lock()
		if conn != c {
			// 已经被 getConn 重新拨号
			mu.Unlock()
			return
		}
		newConn, err := amqp.Dial(url)
		if err == nil {
			conn = newConn
			mu.Unlock()
			log.Info("Reconnect to RabbitMQ")
			go monitor(url, newConn)
			return
		}
		mu.Unlock()
		log.Error("reconnect to RabbitMQ failed, retries=%d, err: %v", retries+1, err)
	}
	log.Error("RabbitMQ reconnect gave up after %d retries, will dial again on next publish", maxRetries)
}
