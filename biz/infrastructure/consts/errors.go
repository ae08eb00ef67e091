package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() int { return int(en.code) }

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrWsUpgrade    = NewErrno(codes.Code(1000), errors.New("websocket协议升级失败"))
	ErrInvalidStart = NewErrno(codes.Code(1001), errors.New("invalid start request, please retry"))
	ErrNoLesson     = NewErrno(codes.Code(1002), errors.New("please choose a topic first"))
	ErrBusy         = NewErrno(codes.Code(1003), errors.New("the tutor is still answering, please wait"))
	ErrUnknownTopic = NewErrno(codes.Code(1004), errors.New("topic not found for this year group"))
	ErrUnknownPhase = NewErrno(codes.Code(1005), errors.New("unknown lesson phase"))
	ErrEmptyMessage = NewErrno(codes.Code(1006), errors.New("message is empty"))
	ErrUnknownCmd   = NewErrno(codes.Code(1007), errors.New("unknown command"))
	ErrUnknownTrack = NewErrno(codes.Code(1008), errors.New("unknown subject track"))
	ErrUnknownYear  = NewErrno(codes.Code(1009), errors.New("unknown year group for this track"))
)
