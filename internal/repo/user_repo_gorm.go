package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-user-api/internal/apperr"
	"go-user-api/internal/domain"
	"go-user-api/pkg/utils"
)

// sortableColumns 可排序字段白名单：sort_by 只查这张表，不走运行时反射
var sortableColumns = map[string]string{
	"id":           "id",
	"first_name":   "first_name",
	"last_name":    "last_name",
	"gender":       "gender",
	"email":        "email",
	"phone_number": "phone_number",
	"status":       "status",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

type UserRepo struct{}

func NewUserRepo() *UserRepo { return &UserRepo{} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Get(tx *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := tx.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(tx *gorm.DB, u *domain.User) (*domain.User, error) {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	if err := tx.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) Update(tx *gorm.DB, id string, patch domain.UserPatch) (*domain.User, error) {
	u, err := r.Get(tx, id)
	if err != nil || u == nil {
		return nil, err
	}
	applyPatch(u, patch)
	if err := tx.Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) Delete(tx *gorm.DB, id string) (*domain.User, error) {
	u, err := r.Get(tx, id)
	if err != nil || u == nil {
		return nil, err
	}
	if err := tx.Delete(&domain.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) UpdateStatus(tx *gorm.DB, id string, status domain.Status) (*domain.User, error) {
	return r.Update(tx, id, domain.UserPatch{Status: &status})
}

func (r *UserRepo) List(tx *gorm.DB, f domain.ListFilter) ([]domain.User, error) {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	col, ok := sortableColumns[sortBy]
	if !ok {
		return nil, apperr.InvalidSortingAttribute(sortBy)
	}

	q := tx.Model(&domain.User{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		// 整型列也按“忽略大小写的子串匹配”处理，保持原有契约：先转文本再比
		q = q.Where(
			`CAST(gender AS TEXT) ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR phone_number ILIKE ? OR CAST(status AS TEXT) ILIKE ?`,
			like, like, like, like, like, like,
		)
	}

	// asc/desc 之外的取值不排序（沿用既有行为）
	switch f.SortOrder {
	case "asc":
		q = q.Order(col + " ASC")
	case "desc":
		q = q.Order(col + " DESC")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var users []domain.User
	if err := q.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func applyPatch(u *domain.User, p domain.UserPatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}
