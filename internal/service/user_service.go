package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-user-api/internal/apperr"
	"go-user-api/internal/core/database"
	"go-user-api/internal/domain"
	"go-user-api/internal/dto"
)

// UserService 每个用例一个方法，全部跑在 database.InTx 里
type UserService struct {
	db   *gorm.DB
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserService(db *gorm.DB, repo domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{db: db, repo: repo, log: log}
}

func (s *UserService) GetByID(ctx context.Context, id string) (dto.UserResponse, error) {
	return database.InTx(ctx, s.db, func(tx *gorm.DB) (dto.UserResponse, error) {
		u, err := s.repo.Get(tx, id)
		if err != nil {
			return dto.UserResponse{}, err
		}
		if u == nil {
			return dto.UserResponse{}, apperr.NotFound("No User found")
		}
		return UserToResponse(u), nil
	})
}

func (s *UserService) Create(ctx context.Context, in dto.UserCreate) (dto.UserResponse, error) {
	return database.InTx(ctx, s.db, func(tx *gorm.DB) (dto.UserResponse, error) {
		u, err := s.repo.Create(tx, CreateToUser(in))
		if err != nil {
			return dto.UserResponse{}, err
		}
		s.log.Info("user created", zap.String("id", u.ID))
		return UserToResponse(u), nil
	})
}

func (s *UserService) Update(ctx context.Context, id string, in dto.UserUpdate) (dto.UserResponse, error) {
	return database.InTx(ctx, s.db, func(tx *gorm.DB) (dto.UserResponse, error) {
		u, err := s.repo.Update(tx, id, UpdateToPatch(in))
		if err != nil {
			return dto.UserResponse{}, err
		}
		if u == nil {
			return dto.UserResponse{}, apperr.NotFound("No User found")
		}
		return UserToResponse(u), nil
	})
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	_, err := database.InTx(ctx, s.db, func(tx *gorm.DB) (struct{}, error) {
		u, err := s.repo.Delete(tx, id)
		if err != nil {
			return struct{}{}, err
		}
		if u == nil {
			return struct{}{}, apperr.NotFound("No User found")
		}
		s.log.Info("user deleted", zap.String("id", id))
		return struct{}{}, nil
	})
	return err
}

func (s *UserService) List(ctx context.Context, f domain.ListFilter) ([]dto.UserResponse, error) {
	return database.InTx(ctx, s.db, func(tx *gorm.DB) ([]dto.UserResponse, error) {
		users, err := s.repo.List(tx, f)
		if err != nil {
			return nil, err
		}
		// 空结果按 404 处理（沿用既有行为）
		if len(users) == 0 {
			return nil, apperr.NotFound("No User found")
		}
		out := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			out = append(out, UserToResponse(&users[i]))
		}
		return out, nil
	})
}

func (s *UserService) ChangeStatus(ctx context.Context, id string, in dto.UserStatusUpdate) (dto.UserResponse, error) {
	return database.InTx(ctx, s.db, func(tx *gorm.DB) (dto.UserResponse, error) {
		u, err := s.repo.UpdateStatus(tx, id, StatusUpdateToStatus(in))
		if err != nil {
			return dto.UserResponse{}, err
		}
		if u == nil {
			return dto.UserResponse{}, apperr.NotFound("No User found")
		}
		return UserToResponse(u), nil
	})
}
