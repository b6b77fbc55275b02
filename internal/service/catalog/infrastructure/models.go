package infrastructure

import "time"

type FoodMenuModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null"`
	Image       string  `gorm:"size:512"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FoodMenuModel) TableName() string {
	return "food_menus"
}

type CategoryModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}
