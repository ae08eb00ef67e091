package util

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// GzipCompress 按照gzip的方式压缩
func GzipCompress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// GzipDecompress 解压
func GzipDecompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("创建解压器失败: %w", err)
	}
	defer func() { _ = r.Close() }()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("解压数据读取失败: %w", err)
	}
	return buf.Bytes(), nil
}
