package response_models

import "time"

type BookingStatusCounts struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type DashboardSummary struct {
	Users          int64               `json:"users"`
	Hotels         int64               `json:"hotels"`
	Locations      int64               `json:"locations"`
	FoodOptions    int64               `json:"food_options"`
	Packages       int64               `json:"packages"`
	ActivePackages int64               `json:"active_packages"`
	Bookings       int64               `json:"bookings"`
	BookingsBy     BookingStatusCounts `json:"bookings_by_status"`
	Reviews        int64               `json:"reviews"`
	AverageRating  float64             `json:"average_rating"`
	GalleryImages  int64               `json:"gallery_images"`
	// Amounts are in minor units of Currency.
	TotalRevenue        int64  `json:"total_revenue"`
	CurrentMonthRevenue int64  `json:"current_month_revenue"`
	Currency            string `json:"currency"`
}

type MonthlyRevenuePoint struct {
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Revenue  int64  `json:"revenue"`
	Bookings int64  `json:"bookings"`
}

type MonthlyRevenue struct {
	Year     int                   `json:"year"`
	Timezone string                `json:"timezone"`
	Currency string                `json:"currency"`
	Total    int64                 `json:"total"`
	Months   []MonthlyRevenuePoint `json:"months"`
}

type TopPackage struct {
	PackageID     string  `json:"package_id" db:"package_id"`
	Title         string  `json:"title" db:"title"`
	Destination   string  `json:"destination" db:"destination"`
	Bookings      int64   `json:"bookings" db:"bookings"`
	Revenue       int64   `json:"revenue" db:"revenue"`
	AverageRating float64 `json:"average_rating" db:"average_rating"`
}

const (
	ActivityBooking = "booking"
	ActivityReview  = "review"
	ActivitySignup  = "signup"
)

type ActivityItem struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
