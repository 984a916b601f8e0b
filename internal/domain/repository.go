package domain

import "gorm.io/gorm"

// ListFilter 列表查询参数（默认值由绑定层填好）
type ListFilter struct {
	Search    string
	SortBy    string // 默认 created_at
	SortOrder string // asc / desc，其余值不排序
	Limit     int    // 默认 10
	Offset    int    // 默认 0
}

// UserRepository 每个方法都要求调用方传入事务会话，
// 查不到记录返回 (nil, nil)，不当错误处理。
type UserRepository interface {
	Get(tx *gorm.DB, id string) (*User, error)
	Create(tx *gorm.DB, u *User) (*User, error)
	Update(tx *gorm.DB, id string, patch UserPatch) (*User, error)
	Delete(tx *gorm.DB, id string) (*User, error)
	UpdateStatus(tx *gorm.DB, id string, status Status) (*User, error)
	List(tx *gorm.DB, f ListFilter) ([]User, error)
}
