//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterUserRequest
		shouldErr bool
	}{
		{"Valid request", RegisterUserRequest{Username: "johndoe", Email: "johndoe@example.com", Password: "secretpassword123"}, false},
		{"Valid with role", RegisterUserRequest{Username: "admin", Email: "admin@example.com", Role: "admin", Password: "secretpassword123"}, false},
		{"Short username", RegisterUserRequest{Username: "jd", Email: "johndoe@example.com", Password: "secretpassword123"}, true},
		{"Invalid email", RegisterUserRequest{Username: "johndoe", Email: "not-an-email", Password: "secretpassword123"}, true},
		{"Short password", RegisterUserRequest{Username: "johndoe", Email: "johndoe@example.com", Password: "short"}, true},
		{"Unknown role", RegisterUserRequest{Username: "johndoe", Email: "johndoe@example.com", Role: "superuser", Password: "secretpassword123"}, true},
		{"Missing username", RegisterUserRequest{Email: "johndoe@example.com", Password: "secretpassword123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CreateBookingRequest
		shouldErr bool
	}{
		{"Valid request", CreateBookingRequest{BookingDate: "10am-11am"}, false},
		{"Valid with status", CreateBookingRequest{BookingDate: "10am-11am", Status: "confirmed"}, false},
		{"Missing booking date", CreateBookingRequest{}, true},
		{"Unknown status", CreateBookingRequest{BookingDate: "10am-11am", Status: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUpdateUserRequest_Validate_EmptyIsValid(t *testing.T) {
	request := UpdateUserRequest{}
	require.NoError(t, request.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Username: "johndoe", Password: "secretpassword123"}
	require.NoError(t, valid.Validate())

	missingPassword := LoginRequest{Username: "johndoe"}
	require.Error(t, missingPassword.Validate())
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
