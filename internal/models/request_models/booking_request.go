package request_models

type BookingRequest struct {
	UserID          string                 `json:"user_id" binding:"required,uuid"`
	PackageID       string                 `json:"package_id" binding:"required,uuid"`
	TravelDate      string                 `json:"travel_date" binding:"required,datetime=2006-01-02"`
	Travelers       int                    `json:"travelers" binding:"required,min=1"`
	ContactName     string                 `json:"contact_name" binding:"max=120"`
	ContactEmail    string                 `json:"contact_email" binding:"omitempty,email"`
	ContactPhone    string                 `json:"contact_phone" binding:"max=30"`
	SpecialRequests string                 `json:"special_requests" binding:"max=2000"`
	PaymentMethod   string                 `json:"payment_method" binding:"max=40"`
	PaymentMeta     map[string]interface{} `json:"payment_meta"`
}

// BookingUpdateRequest only touches the fields that are present.
type BookingUpdateRequest struct {
	Status           string                 `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus    string                 `json:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
	PaymentMethod    *string                `json:"payment_method" binding:"omitempty,max=40"`
	PaymentReference *string                `json:"payment_reference" binding:"omitempty,max=120"`
	TravelDate       string                 `json:"travel_date" binding:"omitempty,datetime=2006-01-02"`
	Travelers        int                    `json:"travelers" binding:"omitempty,min=1"`
	ContactName      *string                `json:"contact_name" binding:"omitempty,max=120"`
	ContactEmail     *string                `json:"contact_email" binding:"omitempty,email"`
	ContactPhone     *string                `json:"contact_phone" binding:"omitempty,max=30"`
	SpecialRequests  *string                `json:"special_requests" binding:"omitempty,max=2000"`
	PaymentMeta      map[string]interface{} `json:"payment_meta"`
}
