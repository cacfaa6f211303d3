package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserBlocked   UserStatus = "blocked"
)

type User struct {
	ID             int64      `json:"id" gorm:"column:id;primaryKey"`
	ExternalAuthID string     `json:"-" gorm:"column:external_auth_id"`
	FullName       string     `json:"full_name" gorm:"column:full_name"`
	Email          string     `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	PasswordHash   string     `json:"-" gorm:"column:password"`
	Role           UserRole   `json:"role" gorm:"column:role"`
	Status         UserStatus `json:"status" gorm:"column:status"`
	Orders         []Order    `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
