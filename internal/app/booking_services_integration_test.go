//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"
	"booking_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_Create(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	booking, err := services.BookingService.Create(context.Background(), user, &bookings.CreateBooking{
		BookingDate: "10am-11am",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, user.ID, booking.UserID)
	assert.Equal(t, bookings.StatusPending, booking.Status)
}

func TestBookingService_List_UserSeesOnlyOwn(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)
	other := RegisterTestUser(t, services, "janedoe", users.RoleUser)

	_, err := services.BookingService.Create(context.Background(), owner, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)
	_, err = services.BookingService.Create(context.Background(), other, &bookings.CreateBooking{BookingDate: "2pm-3pm"})
	require.NoError(t, err)

	bookingList, err := services.BookingService.List(context.Background(), owner, bookings.NewBookingQuery())
	require.NoError(t, err)
	require.Len(t, bookingList, 1)
	assert.Equal(t, owner.ID, bookingList[0].UserID)
}

func TestBookingService_List_AdminSeesAll(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := RegisterTestUser(t, services, "admin", users.RoleAdmin)
	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	_, err := services.BookingService.Create(context.Background(), admin, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)
	_, err = services.BookingService.Create(context.Background(), user, &bookings.CreateBooking{BookingDate: "2pm-3pm"})
	require.NoError(t, err)

	bookingList, err := services.BookingService.List(context.Background(), admin, bookings.NewBookingQuery())
	require.NoError(t, err)
	assert.Len(t, bookingList, 2)
}

func TestBookingService_ListWithUsers_AdminOnly(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := RegisterTestUser(t, services, "admin", users.RoleAdmin)
	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	_, err := services.BookingService.Create(context.Background(), user, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	bookingList, err := services.BookingService.ListWithUsers(context.Background(), admin, bookings.NewBookingQuery())
	require.NoError(t, err)
	require.Len(t, bookingList, 1)
	assert.Equal(t, "johndoe", bookingList[0].User.Username)

	_, err = services.BookingService.ListWithUsers(context.Background(), user, bookings.NewBookingQuery())
	assert.True(t, errors.Is(err, bookings.ErrAdminOnly))
}

func TestBookingService_ListByUserID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := RegisterTestUser(t, services, "admin", users.RoleAdmin)
	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	_, err := services.BookingService.Create(context.Background(), user, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	bookingList, err := services.BookingService.ListByUserID(context.Background(), admin, user.ID, bookings.NewBookingQuery())
	require.NoError(t, err)
	assert.Len(t, bookingList, 1)
}

func TestBookingService_ListByUserID_UnknownUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := RegisterTestUser(t, services, "admin", users.RoleAdmin)

	_, err := services.BookingService.ListByUserID(context.Background(), admin, "b3b1f3a0-0000-4000-8000-000000000000", bookings.NewBookingQuery())
	assert.True(t, errors.Is(err, users.ErrUserNotFound))
}

func TestBookingService_ListByUserID_NonAdmin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	_, err := services.BookingService.ListByUserID(context.Background(), user, user.ID, bookings.NewBookingQuery())
	assert.True(t, errors.Is(err, bookings.ErrAdminOnly))
}

func TestBookingService_GetByID_AccessRules(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := RegisterTestUser(t, services, "admin", users.RoleAdmin)
	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)
	other := RegisterTestUser(t, services, "janedoe", users.RoleUser)

	booking, err := services.BookingService.Create(context.Background(), owner, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	// Owner and admin can read
	_, err = services.BookingService.GetByID(context.Background(), owner, booking.ID)
	assert.NoError(t, err)
	_, err = services.BookingService.GetByID(context.Background(), admin, booking.ID)
	assert.NoError(t, err)

	// Other users cannot
	_, err = services.BookingService.GetByID(context.Background(), other, booking.ID)
	assert.True(t, errors.Is(err, bookings.ErrAccessDenied))
}

func TestBookingService_UpdateByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	booking, err := services.BookingService.Create(context.Background(), owner, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	status := bookings.StatusConfirmed
	updatedBooking, err := services.BookingService.UpdateByID(context.Background(), owner, booking.ID, &bookings.UpdateBooking{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusConfirmed, updatedBooking.Status)
	assert.NotNil(t, updatedBooking.DateTimeUpdated)
}

func TestBookingService_UpdateByID_ForeignBooking(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)
	other := RegisterTestUser(t, services, "janedoe", users.RoleUser)

	booking, err := services.BookingService.Create(context.Background(), owner, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	status := bookings.StatusCancelled
	_, err = services.BookingService.UpdateByID(context.Background(), other, booking.ID, &bookings.UpdateBooking{
		Status: &status,
	})
	assert.True(t, errors.Is(err, bookings.ErrAccessDenied))
}

func TestBookingService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	booking, err := services.BookingService.Create(context.Background(), owner, &bookings.CreateBooking{BookingDate: "10am-11am"})
	require.NoError(t, err)

	require.NoError(t, services.BookingService.DeleteByID(context.Background(), owner, booking.ID))

	_, err = services.BookingService.GetByID(context.Background(), owner, booking.ID)
	assert.True(t, errors.Is(err, bookings.ErrBookingNotFound))
}

func TestBookingService_DeleteByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	owner := RegisterTestUser(t, services, "johndoe", users.RoleUser)

	err := services.BookingService.DeleteByID(context.Background(), owner, "b3b1f3a0-0000-4000-8000-000000000000")
	assert.True(t, errors.Is(err, bookings.ErrBookingNotFound))
}
