package domain

import "errors"

var (
	// ErrNotFound 表示操作引用了不存在的 id。
	ErrNotFound = errors.New("資源不存在")

	// ErrSaturdayLeaveLimit 仅在启用周六休假上限策略时由 AddLeave 返回。
	ErrSaturdayLeaveLimit = errors.New("本月週六休假已達上限")
)
