package domain

import "time"

// Gender 性别编码
type Gender int

const (
	GenderMale              Gender = 1
	GenderFemale            Gender = 2
	GenderNonBinary         Gender = 3
	GenderPreferNotToAnswer Gender = 4
)

// Status 用户状态编码
type Status int

const (
	StatusDisabled Status = 0
	StatusEnabled  Status = 1
	StatusBlocked  Status = 2
)

func (s Status) Valid() bool {
	switch s {
	case StatusDisabled, StatusEnabled, StatusBlocked:
		return true
	}
	return false
}

type User struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FirstName   string    `gorm:"size:512;not null" json:"firstName"`
	LastName    string    `gorm:"size:512;not null" json:"lastName"`
	Gender      Gender    `gorm:"not null" json:"gender"`
	Email       string    `gorm:"size:1024" json:"email"`
	PhoneNumber string    `gorm:"size:20" json:"phoneNumber"`
	Status      Status    `gorm:"not null" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "user" }

// UserPatch 部分更新：nil 字段不动，非 nil 覆盖
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Gender      *Gender
	Email       *string
	PhoneNumber *string
	Status      *Status
}
