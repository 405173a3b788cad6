package utils

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidLimit    = errors.New("invalid limit parameter")
	ErrInvalidID       = errors.New("invalid id")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrRegistrationClosed  = errors.New("registration is disabled")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrCannotDeleteSelf    = errors.New("cannot delete own account")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrDuplicateRecord     = errors.New("duplicate record")
	ErrInvalidReference    = errors.New("referenced record does not exist")
	ErrInvalidItinerary    = errors.New("invalid itinerary")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidTravelers    = errors.New("invalid number of travelers")
	ErrInvalidStatus       = errors.New("invalid status transition")
	ErrInvalidPaymentState = errors.New("invalid payment status transition")
	ErrBookingMismatch     = errors.New("booking does not belong to user and package")
	ErrPackageHasBookings  = errors.New("package has bookings")

	ErrUserNotFound       = errors.New("user not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrFoodOptionNotFound = errors.New("food option not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrImageNotFound      = errors.New("gallery image not found")

	ErrImageRequired = errors.New("image is required")
	ErrInvalidImage  = errors.New("unsupported image type")
	ErrImageTooLarge = errors.New("image too large")
	ErrUploadFailed  = errors.New("media upload failed")
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// errorTable is checked in order with errors.Is, so wrapped errors keep their status.
var errorTable = []errorMapping{
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Limit must be between 1 and 100"},
	{ErrInvalidLimit, http.StatusBadRequest, "Invalid limit"},
	{ErrInvalidID, http.StatusBadRequest, "Invalid id"},
	{ErrInvalidReference, http.StatusBadRequest, "Referenced record does not exist"},
	{ErrInvalidItinerary, http.StatusBadRequest, "Invalid itinerary"},
	{ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{ErrInvalidTravelers, http.StatusBadRequest, "Invalid number of travelers"},
	{ErrInvalidStatus, http.StatusBadRequest, "Invalid booking status transition"},
	{ErrInvalidPaymentState, http.StatusBadRequest, "Invalid payment status transition"},
	{ErrBookingMismatch, http.StatusBadRequest, "Booking does not belong to this user and package"},
	{ErrImageRequired, http.StatusBadRequest, "Image is required"},
	{ErrInvalidImage, http.StatusBadRequest, "Image must be jpeg, png, webp or gif"},

	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{ErrForbidden, http.StatusForbidden, "Forbidden: insufficient permissions"},
	{ErrRegistrationClosed, http.StatusForbidden, "Registration is disabled"},
	{ErrCannotDeleteSelf, http.StatusForbidden, "You cannot delete your own account"},

	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrUserNotFound, http.StatusNotFound, "User not found"},
	{ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{ErrLocationNotFound, http.StatusNotFound, "Location not found"},
	{ErrFoodOptionNotFound, http.StatusNotFound, "Food option not found"},
	{ErrPackageNotFound, http.StatusNotFound, "Package not found"},
	{ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{ErrImageNotFound, http.StatusNotFound, "Gallery image not found"},

	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
	{ErrDuplicateRecord, http.StatusConflict, "A record with the same unique value already exists"},
	{ErrPackageHasBookings, http.StatusConflict, "Package has bookings and cannot be deleted"},

	{ErrImageTooLarge, http.StatusRequestEntityTooLarge, "Image must be at most 5 MiB"},
	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests, try again later"},
	{ErrUploadFailed, http.StatusBadGateway, "Media upload failed"},

	{ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
}

// StatusFor returns the HTTP status and client message for err.
// Client errors wrapped with extra detail keep that detail in the message.
// Unknown errors map to a generic 500.
func StatusFor(err error) (int, string) {
	for _, m := range errorTable {
		if !errors.Is(err, m.err) {
			continue
		}
		if m.status < http.StatusInternalServerError {
			if detail := strings.TrimPrefix(err.Error(), m.err.Error()+": "); detail != err.Error() {
				return m.status, m.message + ": " + detail
			}
		}
		return m.status, m.message
	}
	return http.StatusInternalServerError, "Internal server error"
}
