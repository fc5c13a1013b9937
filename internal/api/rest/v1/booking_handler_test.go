//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking_service/internal/domain/bookings"
	"booking_service/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testBooking(owner *users.User) *bookings.Booking {
	return &bookings.Booking{
		ID:              "7c2d3e4f-5a6b-4c8d-9e0f-1a2b3c4d5e6f",
		UserID:          owner.ID,
		BookingDate:     "10am-11am",
		Status:          bookings.StatusPending,
		DateTimeCreated: time.Now(),
	}
}

func TestBookingHandler_Create_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()
	booking := testBooking(actor)

	mockBookingService.
		On("Create", mock.Anything, actor, mock.AnythingOfType("*bookings.CreateBooking")).
		Return(booking, nil)

	requestBody := `{"booking_date": "10am-11am"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, actor)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_Create_MissingBookingDate(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	requestBody := `{"status": "pending"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, testUser())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockBookingService.AssertNotCalled(t, "Create")
}

func TestBookingHandler_List_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()
	booking := testBooking(actor)

	mockBookingService.
		On("List", mock.Anything, actor, mock.Anything).
		Return([]*bookings.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings?limit=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, actor)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_List_InvalidLimitFallsBackToDefault(t *testing.T) {
	for _, limit := range []string{"0", "abc"} {
		mockBookingService := new(MockBookingService)

		handler := NewBookingHandler(mockBookingService)

		actor := testUser()

		mockBookingService.
			On("List", mock.Anything, actor, mock.MatchedBy(func(query *bookings.BookingQuery) bool {
				return query.Limit == 100
			})).
			Return([]*bookings.Booking{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/bookings?limit="+limit, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Set(contextUserKey, actor)

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockBookingService.AssertExpectations(t)
	}
}

func TestBookingHandler_List_ValidationError(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings?status=unknown", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, testUser())

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockBookingService.AssertNotCalled(t, "List")
}

func TestBookingHandler_ListAll_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	admin := testAdmin()
	owner := testUser()
	booking := testBooking(owner)

	mockBookingService.
		On("ListWithUsers", mock.Anything, admin, mock.Anything).
		Return([]*bookings.BookingWithUser{{Booking: *booking, User: *owner}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/all", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, admin)

	handler.ListAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	assert.Contains(t, w.Body.String(), owner.Username)
	assert.NotContains(t, w.Body.String(), owner.PasswordHash)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_ListAll_Forbidden(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()

	mockBookingService.
		On("ListWithUsers", mock.Anything, actor, mock.Anything).
		Return(nil, bookings.ErrAdminOnly)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/all", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(contextUserKey, actor)

	handler.ListAll(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_ListByUserID_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	admin := testAdmin()
	owner := testUser()
	booking := testBooking(owner)

	mockBookingService.
		On("ListByUserID", mock.Anything, admin, owner.ID, mock.Anything).
		Return([]*bookings.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/user/"+owner.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "userId", Value: owner.ID}}
	c.Set(contextUserKey, admin)

	handler.ListByUserID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_ListByUserID_UnknownUser(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	admin := testAdmin()

	mockBookingService.
		On("ListByUserID", mock.Anything, admin, "missing-id", mock.Anything).
		Return(nil, users.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/user/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "userId", Value: "missing-id"}}
	c.Set(contextUserKey, admin)

	handler.ListByUserID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_GetByID_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()
	booking := testBooking(actor)

	mockBookingService.
		On("GetByID", mock.Anything, actor, booking.ID).
		Return(booking, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/"+booking.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: booking.ID}}
	c.Set(contextUserKey, actor)

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_GetByID_Forbidden(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()

	mockBookingService.
		On("GetByID", mock.Anything, actor, "foreign-id").
		Return(nil, bookings.ErrAccessDenied)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/foreign-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "foreign-id"}}
	c.Set(contextUserKey, actor)

	handler.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_UpdateByID_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()
	booking := testBooking(actor)
	booking.Status = bookings.StatusConfirmed

	mockBookingService.
		On("UpdateByID", mock.Anything, actor, booking.ID, mock.AnythingOfType("*bookings.UpdateBooking")).
		Return(booking, nil)

	requestBody := `{"status": "confirmed"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/bookings/"+booking.ID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: booking.ID}}
	c.Set(contextUserKey, actor)

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "confirmed")
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_UpdateByID_InvalidStatus(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	requestBody := `{"status": "unknown"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/bookings/some-id", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "some-id"}}
	c.Set(contextUserKey, testUser())

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockBookingService.AssertNotCalled(t, "UpdateByID")
}

func TestBookingHandler_DeleteByID_Success(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()
	booking := testBooking(actor)

	mockBookingService.
		On("DeleteByID", mock.Anything, actor, booking.ID).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/bookings/"+booking.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: booking.ID}}
	c.Set(contextUserKey, actor)

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_DeleteByID_NotFound(t *testing.T) {
	mockBookingService := new(MockBookingService)

	handler := NewBookingHandler(mockBookingService)

	actor := testUser()

	mockBookingService.
		On("DeleteByID", mock.Anything, actor, "missing-id").
		Return(bookings.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/bookings/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}
	c.Set(contextUserKey, actor)

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockBookingService.AssertExpectations(t)
}
