package cmd

// Response 公共的响应码与提示
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Success 成功响应
func Success() Response {
	return Response{Code: 0, Msg: "success"}
}
