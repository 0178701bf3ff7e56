package httperr

var messages = map[string]string{
	"internal_error":          "Something went wrong. Please try again later.",
	"invalid_request":         "Invalid request data.",
	"invalid_id":              "Invalid identifier.",
	"invalid_date":            "Dates must use the YYYY-MM-DD format.",
	"invalid_date_range":      "Check-out date must be after check-in date.",
	"invalid_status":          "Unknown status value.",
	"invalid_transition":      "The booking cannot move to the requested status.",
	"invalid_credentials":     "Invalid email or password.",
	"invalid_email_domain":    "The email domain does not look valid.",
	"booking_not_found":       "Booking not found.",
	"booking_not_cancellable": "Only pending or confirmed bookings can be cancelled.",
	"booking_not_checked_in":  "Cat status can only be recorded while the cat is checked in.",
	"cat_not_found":           "Cat not found.",
	"cat_has_bookings":        "The cat has bookings and cannot be deleted.",
	"room_not_found":          "Room not found.",
	"room_not_available":      "The room is not available for the selected dates.",
	"room_number_exists":      "A room with this number already exists.",
	"room_has_bookings":       "The room has bookings and cannot be deleted.",
	"room_type_not_found":     "Room type not found.",
	"room_type_in_use":        "The room type still has rooms.",
	"room_image_not_found":    "Room image not found.",
	"service_not_found":       "Service not found.",
	"service_in_use":          "The service is used by existing bookings.",
	"food_not_found":          "Food not found.",
	"food_in_use":             "The food is used by existing bookings.",
	"user_not_found":          "User not found.",
	"email_already_exists":    "Email is already registered.",
	"forbidden":               "You do not have access to this resource.",
	"admin_required":          "Administrator access required.",
	"invalid_image":           "The uploaded file is not a supported image.",
	"image_required":          "An image file is required.",
	"missing_authorization":   "Authorization header is missing.",
	"invalid_authorization":   "Authorization header must use the Bearer scheme.",
	"invalid_token":           "Token is invalid or expired.",
	"rate_limited":            "Too many requests. Please slow down.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
