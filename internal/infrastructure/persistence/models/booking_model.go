package models

import (
	"time"

	"booking_service/internal/domain/bookings"
)

// BookingModel is the GORM database model for bookings (infrastructure concern)
type BookingModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	User            UserModel `gorm:"foreignKey:UserID"`
	BookingDate     string    `gorm:"not null;type:varchar(50)"`
	Status          string    `gorm:"not null;type:varchar(20);default:pending"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated *time.Time
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts GORM model to domain entity
func (m *BookingModel) ToDomain() *bookings.Booking {
	return &bookings.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		BookingDate:     m.BookingDate,
		Status:          m.Status,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// ToDomainWithUser converts GORM model and its joined user to a domain pair
func (m *BookingModel) ToDomainWithUser() *bookings.BookingWithUser {
	return &bookings.BookingWithUser{
		Booking: *m.ToDomain(),
		User:    *m.User.ToDomain(),
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingModel) FromDomain(b *bookings.Booking) {
	m.ID = b.ID
	m.UserID = b.UserID
	m.BookingDate = b.BookingDate
	m.Status = b.Status
	m.DateTimeCreated = b.DateTimeCreated
	m.DateTimeUpdated = b.DateTimeUpdated
}
