package controllers

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`
}

// SuccessResponse 成功响应
func SuccessResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: 0, Msg: msg, Data: data}
}

// BadRequestResponse 参数错误响应
func BadRequestResponse(msg string) *APIResponse {
	return &APIResponse{Status: 400, Msg: msg}
}

// NotFoundResponse 资源不存在响应
func NotFoundResponse(msg string) *APIResponse {
	return &APIResponse{Status: 404, Msg: msg}
}

// InternalErrorResponse 内部错误响应
func InternalErrorResponse(msg string, err error) *APIResponse {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return &APIResponse{Status: 500, Msg: msg}
}
