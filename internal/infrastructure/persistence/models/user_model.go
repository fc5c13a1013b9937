package models

import (
	"time"

	"booking_service/internal/domain/users"
)

// UserModel is the GORM database model for user accounts (infrastructure concern)
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Username        string    `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	FullName        string    `gorm:"type:varchar(100)"`
	Role            string    `gorm:"not null;type:varchar(20);default:user"`
	IsActive        bool      `gorm:"not null;default:true"`
	PasswordHash    string    `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated *time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		FullName:        m.FullName,
		Role:            m.Role,
		IsActive:        m.IsActive,
		PasswordHash:    m.PasswordHash,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.FullName = u.FullName
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.PasswordHash = u.PasswordHash
	m.DateTimeCreated = u.DateTimeCreated
	m.DateTimeUpdated = u.DateTimeUpdated
}
