package request_models

// Page and Limit are filled from utils.ParsePagination, the rest from the query string.
type ListFilter struct {
	Page  int    `form:"-"`
	Limit int    `form:"-"`
	Query string `form:"q" binding:"max=200"`
}

type PackageFilter struct {
	ListFilter
	Destination string `form:"destination" binding:"max=200"`
	Active      *bool  `form:"active"`
	MinPrice    *int64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice    *int64 `form:"max_price" binding:"omitempty,gte=0"`
}

type BookingFilter struct {
	ListFilter
	Status        string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
	PackageID     string `form:"package_id" binding:"omitempty,uuid"`
	UserID        string `form:"user_id" binding:"omitempty,uuid"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type ReviewFilter struct {
	ListFilter
	Rating    int    `form:"rating" binding:"omitempty,min=1,max=5"`
	MinRating int    `form:"min_rating" binding:"omitempty,min=1,max=5"`
	PackageID string `form:"package_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Sort      string `form:"sort" binding:"omitempty,oneof=newest oldest rating_high rating_low"`
}

type GalleryFilter struct {
	ListFilter
	Category string `form:"category" binding:"max=80"`
}
