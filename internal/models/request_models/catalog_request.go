package request_models

// Create and update share one shape: PUT replaces the whole record.

type HotelRequest struct {
	Name          string   `json:"name" binding:"required,max=200"`
	City          string   `json:"city" binding:"required,max=120"`
	Country       string   `json:"country" binding:"required,max=120"`
	Address       string   `json:"address" binding:"max=500"`
	Description   string   `json:"description" binding:"max=5000"`
	StarRating    int      `json:"star_rating" binding:"required,min=1,max=5"`
	PricePerNight int64    `json:"price_per_night" binding:"gte=0"`
	Currency      string   `json:"currency" binding:"omitempty,len=3"`
	Amenities     []string `json:"amenities" binding:"max=50,dive,required,max=80"`
	ContactPhone  string   `json:"contact_phone" binding:"max=30"`
	ContactEmail  string   `json:"contact_email" binding:"omitempty,email"`
	Active        *bool    `json:"active"`
}

type LocationRequest struct {
	Name            string   `json:"name" binding:"required,max=200"`
	City            string   `json:"city" binding:"max=120"`
	Country         string   `json:"country" binding:"max=120"`
	Description     string   `json:"description" binding:"max=5000"`
	Highlights      []string `json:"highlights" binding:"max=30,dive,required,max=200"`
	BestTimeToVisit string   `json:"best_time_to_visit" binding:"max=120"`
}

type FoodOptionRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Cuisine     string `json:"cuisine" binding:"max=120"`
	MealType    string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snacks"`
	Vegetarian  bool   `json:"vegetarian"`
	Description string `json:"description" binding:"max=5000"`
	Price       int64  `json:"price" binding:"gte=0"`
}

type ItineraryDayRequest struct {
	Day         int    `json:"day" binding:"required,min=1"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	LocationID  string `json:"location_id" binding:"required,uuid"`
}

type PackageRequest struct {
	Title           string                `json:"title" binding:"required,min=3,max=200"`
	Description     string                `json:"description" binding:"max=10000"`
	Destination     string                `json:"destination" binding:"required,max=200"`
	DurationDays    int                   `json:"duration_days" binding:"required,min=1,max=60"`
	DurationNights  int                   `json:"duration_nights" binding:"gte=0,max=60"`
	Price           int64                 `json:"price" binding:"required,gt=0"`
	Currency        string                `json:"currency" binding:"omitempty,len=3"`
	DiscountPercent int                   `json:"discount_percent" binding:"gte=0,max=90"`
	MaxGroupSize    int                   `json:"max_group_size" binding:"required,min=1,max=500"`
	Inclusions      []string              `json:"inclusions" binding:"max=50,dive,required,max=200"`
	Exclusions      []string              `json:"exclusions" binding:"max=50,dive,required,max=200"`
	HotelIDs        []string              `json:"hotel_ids" binding:"dive,uuid"`
	FoodOptionIDs   []string              `json:"food_option_ids" binding:"dive,uuid"`
	Itinerary       []ItineraryDayRequest `json:"itinerary" binding:"dive"`
	Active          *bool                 `json:"active"`
}

type GalleryImageRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Caption  string   `json:"caption" binding:"max=500"`
	Category string   `json:"category" binding:"max=80"`
	Tags     []string `json:"tags" binding:"max=20,dive,required,max=40"`
}
