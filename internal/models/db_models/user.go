package db_models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	BaseModel
	Name         string `gorm:"size:120;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:20;index;not null" json:"role"`
	Phone        string `gorm:"size:30" json:"phone,omitempty"`
}
