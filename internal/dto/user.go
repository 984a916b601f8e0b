package dto

import "time"

type UserCreate struct {
	FirstName   string `json:"firstName" binding:"required,max=512"`
	LastName    string `json:"lastName" binding:"required,max=512"`
	Gender      int    `json:"gender" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email,max=1024"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
	Status      *int   `json:"status"` // 入参允许带，但创建时一律重置为 ENABLED
}

// UserUpdate 指针字段区分“没传”和“传了”：nil 不覆盖
type UserUpdate struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=512"`
	LastName    *string `json:"lastName" binding:"omitempty,max=512"`
	Gender      *int    `json:"gender"`
	Email       *string `json:"email" binding:"omitempty,email,max=1024"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=20"`
	Status      *int    `json:"status"`
}

type UserStatusUpdate struct {
	Status *int `json:"status" binding:"required"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Gender      int       `json:"gender"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListQuery struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=asc"`
	Limit     int    `form:"limit,default=10"`
	Offset    int    `form:"offset,default=0"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
