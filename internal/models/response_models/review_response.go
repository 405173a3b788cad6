package response_models

// ReviewItem is a review flattened with its author and package for listing.
type ReviewItem struct {
	ID           string  `json:"id" db:"id"`
	PackageID    string  `json:"package_id" db:"package_id"`
	PackageTitle string  `json:"package_title" db:"package_title"`
	UserID       string  `json:"user_id" db:"user_id"`
	UserName     string  `json:"user_name" db:"user_name"`
	UserEmail    string  `json:"user_email" db:"user_email"`
	BookingID    *string `json:"booking_id,omitempty" db:"booking_id"`
	Rating       int     `json:"rating" db:"rating"`
	Title        string  `json:"title" db:"title"`
	Comment      string  `json:"comment" db:"comment"`
	Status       string  `json:"status" db:"status"`
	CreatedAt    int64   `json:"created_at" db:"created_at"`
	UpdatedAt    int64   `json:"updated_at" db:"updated_at"`
}

type RatingFacet struct {
	Rating int   `json:"rating" db:"rating"`
	Count  int64 `json:"count" db:"count"`
}

type StatusFacet struct {
	Status string `json:"status" db:"status"`
	Count  int64  `json:"count" db:"count"`
}

type PackageFacet struct {
	PackageID string `json:"package_id" db:"package_id"`
	Title     string `json:"title" db:"title"`
	Count     int64  `json:"count" db:"count"`
}

type ReviewFacets struct {
	Ratings  []RatingFacet  `json:"ratings"`
	Statuses []StatusFacet  `json:"statuses"`
	Packages []PackageFacet `json:"packages"`
}

type ReviewSearchResponse struct {
	Items         []ReviewItem `json:"items"`
	Facets        ReviewFacets `json:"facets"`
	AverageRating float64      `json:"average_rating"`
	Pagination    PageMeta     `json:"pagination"`
}
