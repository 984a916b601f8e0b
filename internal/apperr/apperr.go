package apperr

import (
	"fmt"
	"net/http"
)

// Error 业务错误：携带 HTTP 状态码与 detail 文案，
// 由 handler 层统一映射为 {"detail": ...} 响应。
type Error struct {
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(detail string) *Error {
	if detail == "" {
		detail = "User not found"
	}
	return &Error{Status: http.StatusNotFound, Detail: detail}
}

// AlreadyExists 预留给唯一约束，目前没有任何操作触发
func AlreadyExists(detail string) *Error {
	if detail == "" {
		detail = "User already exist"
	}
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

func InvalidSortingAttribute(attribute string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("Invalid attribute '%s' for sorting", attribute),
	}
}

func InvalidStatusAttribute(attribute string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("Invalid attribute '%s' for status", attribute),
	}
}

func BadRequest(detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}
