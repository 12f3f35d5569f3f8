package core

import "errors"

var (
	// ErrInvalidInput 输入无法计算，例如空的子组件列表
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState 状态不合法，例如群组宽高为 0 却包含子组件
	ErrInvalidState = errors.New("invalid state")
	// ErrProtocol 调用顺序错误：重复 encode 或对绝对位置执行 decode
	ErrProtocol = errors.New("protocol violation")
)
