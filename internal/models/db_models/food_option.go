package db_models

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

type FoodOption struct {
	BaseModel
	Name        string `gorm:"size:200;not null;index" json:"name"`
	Cuisine     string `gorm:"size:120;index" json:"cuisine"`
	MealType    string `gorm:"size:20;not null" json:"meal_type"`
	Vegetarian  bool   `gorm:"not null" json:"vegetarian"`
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	ImageAsset
}
