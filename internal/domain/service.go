package domain

import "time"

// Service is a catalog entry: a fixed-price offering (mixing, mastering, ...)
// or an hourly studio rental when IsRent is set.
type Service struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	NameValue   string    `json:"name_value" gorm:"column:name_value;uniqueIndex"`
	Name        string    `json:"name" gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	Price       float64   `json:"price" gorm:"column:price"`
	IsRent      bool      `json:"is_rent" gorm:"column:is_rent"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Service) TableName() string { return "services" }
