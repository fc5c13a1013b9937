package persistence

import (
	"context"
	"errors"
	"fmt"

	"booking_service/internal/domain/bookings"
	"booking_service/internal/infrastructure/persistence/models"
	"booking_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRepository creates a new GORM-based BookingRepository implementation
func NewGormBookingRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRepository, error) {
	return &gormBookingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	r.logger.Info("Created booking with id ", booking.ID)
	return nil
}

func (r *gormBookingRepository) List(ctx context.Context, query *bookings.BookingQuery) ([]*bookings.Booking, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookingModel
	dbQuery := r.applyQuery(r.db.WithContext(ctx).Model(&models.BookingModel{}), query)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	domainList := make([]*bookings.Booking, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBookingRepository) ListWithUsers(ctx context.Context, query *bookings.BookingQuery) ([]*bookings.BookingWithUser, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookingModel
	dbQuery := r.applyQuery(r.db.WithContext(ctx).Model(&models.BookingModel{}), query)

	if err := dbQuery.Joins("User").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bookings with users: %w", err)
	}

	domainList := make([]*bookings.BookingWithUser, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomainWithUser()
	}

	return domainList, nil
}

func (r *gormBookingRepository) GetByID(ctx context.Context, bookingID string) (*bookings.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", bookingID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %s: %w", bookingID, bookings.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRepository) UpdateByID(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	r.logger.Info("Updated booking with id ", booking.ID)
	return nil
}

func (r *gormBookingRepository) DeleteByID(ctx context.Context, bookingID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", bookingID).Delete(&models.BookingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	r.logger.Info("Deleted booking with id ", bookingID)
	return nil
}

// applyQuery applies filter, sorting and pagination options shared by the
// list operations. Filters reference the bookings table explicitly so the
// query stays valid when the users join is added.
func (r *gormBookingRepository) applyQuery(dbQuery *gorm.DB, query *bookings.BookingQuery) *gorm.DB {
	if query.UserID != "" {
		dbQuery = dbQuery.Where("bookings.user_id = ?", query.UserID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("bookings.status = ?", query.Status)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("bookings.%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	return dbQuery
}
