package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given ID.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAccessDenied is returned when a non-admin user operates on a
	// booking owned by someone else.
	ErrAccessDenied = errors.New("access to booking denied")
	// ErrAdminOnly is returned when a non-admin user calls an admin-only
	// operation.
	ErrAdminOnly = errors.New("operation restricted to admin users")
)
