package request_models

type ReviewRequest struct {
	PackageID string `json:"package_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	BookingID string `json:"booking_id" binding:"omitempty,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title" binding:"max=200"`
	Comment   string `json:"comment" binding:"max=5000"`
	Status    string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type ReviewUpdateRequest struct {
	Rating  int     `json:"rating" binding:"omitempty,min=1,max=5"`
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Comment *string `json:"comment" binding:"omitempty,max=5000"`
	Status  string  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}
