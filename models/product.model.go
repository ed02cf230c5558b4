package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog product
type Product struct {
	ID               *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	CreatedAt        *time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt        *time.Time `gorm:"not null;default:now()" json:"updatedAt"`
	ProductName      string     `gorm:"type:varchar(255);not null" json:"productName"`
	ProductType      string     `gorm:"type:varchar(100);not null" json:"productType"`
	Stock            int        `gorm:"default:0" json:"stock"`
	MRP              float64    `gorm:"not null" json:"mrp"`
	SellingPrice     float64    `gorm:"not null" json:"sellingPrice"`
	BrandName        string     `gorm:"type:varchar(150)" json:"brandName"`
	ExchangeEligible string     `gorm:"type:varchar(3);default:'Yes'" json:"exchangeEligible"`
	Images           []string   `gorm:"serializer:json;type:jsonb" json:"images"`
	IsPublished      bool       `gorm:"default:false" json:"isPublished"`
}
