package service

import (
	"go-user-api/internal/domain"
	"go-user-api/internal/dto"
)

// 纯映射函数：DTO 和实体互转，不碰数据库

func UserToResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Gender:      int(u.Gender),
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Status:      int(u.Status),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// CreateToUser 创建请求转实体：status 一律重置为 ENABLED，
// id 和时间戳留给 DAL / GORM 生成。
func CreateToUser(in dto.UserCreate) *domain.User {
	return &domain.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      domain.Gender(in.Gender),
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Status:      domain.StatusEnabled,
	}
}

// UpdateToPatch 没传的字段保持 nil，绝不覆盖
func UpdateToPatch(in dto.UserUpdate) domain.UserPatch {
	p := domain.UserPatch{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if in.Gender != nil {
		g := domain.Gender(*in.Gender)
		p.Gender = &g
	}
	if in.Status != nil {
		s := domain.Status(*in.Status)
		p.Status = &s
	}
	return p
}

func StatusUpdateToStatus(in dto.UserStatusUpdate) domain.Status {
	if in.Status == nil {
		return domain.StatusEnabled
	}
	return domain.Status(*in.Status)
}
