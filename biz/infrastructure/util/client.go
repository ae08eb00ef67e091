package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xh-polaris/gopkg/util/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HttpClient 是一个简单的 JSON HTTP 客户端, 出站请求带链路追踪
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 创建一个新的 HttpClient 实例, timeout<=0 时不设超时
func NewHttpClient(timeout time.Duration) *HttpClient {
	c := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return &HttpClient{Client: c}
}

// StatusError 非2xx响应
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, response body: %s", e.Code, e.Body)
}

// Req 发送 HTTP 请求, 并把响应体反序列化到out中
func (c *HttpClient) Req(ctx context.Context, method, url string, headers http.Header, body, out any) error {
	resp, err := c.do(ctx, method, url, headers, body)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭请求失败: %v", closeErr)
		}
	}()

	// 读取响应
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	// 反序列化响应体
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("反序列化响应失败: %w", err)
	}
	return nil
}

// do 实际执行请求
func (c *HttpClient) do(ctx context.Context, method, url string, headers http.Header, body any) (*http.Response, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.Client.Do(req)
}
