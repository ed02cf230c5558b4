package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/productr/server/connect"
	"github.com/productr/server/enums"
	"github.com/productr/server/models"
	"gorm.io/gorm"
)

// A product holds at most this many image references
const maxProductImages = 5

// Product contains all the product related services
type Product struct {
	Conn *connect.Connector
}

// Create is a function that stores a new product in the catalog
func (p *Product) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ExchangeEligible == "" {
		product.ExchangeEligible = enums.ExchangeEligibleYes
	}
	if len(product.Images) > maxProductImages {
		product.Images = product.Images[:maxProductImages]
	}

	err := p.Conn.DB.WithContext(ctx).Create(&product).Error
	if err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// All is a function that returns every product, newest first
func (p *Product) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.Conn.DB.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Get is a function that returns the product with the given ID
func (p *Product) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := p.Conn.DB.WithContext(ctx).Where(&models.Product{
		ID: &id,
	}).First(&product).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Update is a function that merges the given fields into the stored product,
// zero valued fields keep their stored value and appended images are capped
func (p *Product) Update(ctx context.Context, id uuid.UUID, changes models.Product) (*models.Product, error) {
	product, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.ProductName != "" {
		product.ProductName = changes.ProductName
	}
	if changes.ProductType != "" {
		product.ProductType = changes.ProductType
	}
	if changes.Stock != 0 {
		product.Stock = changes.Stock
	}
	if changes.MRP != 0 {
		product.MRP = changes.MRP
	}
	if changes.SellingPrice != 0 {
		product.SellingPrice = changes.SellingPrice
	}
	if changes.BrandName != "" {
		product.BrandName = changes.BrandName
	}
	if changes.ExchangeEligible != "" {
		product.ExchangeEligible = changes.ExchangeEligible
	}
	if len(changes.Images) > 0 {
		product.Images = append(product.Images, changes.Images...)
		if len(product.Images) > maxProductImages {
			product.Images = product.Images[:maxProductImages]
		}
	}

	err = p.Conn.DB.WithContext(ctx).Save(product).Error
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Delete is a function that removes the product with the given ID
func (p *Product) Delete(ctx context.Context, id uuid.UUID) error {
	return p.Conn.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// TogglePublish is a function that flips the published state of the product
func (p *Product) TogglePublish(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product *models.Product

	err := p.Conn.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored models.Product
		if err := tx.Where(&models.Product{ID: &id}).First(&stored).Error; err != nil {
			return err
		}

		published := !stored.IsPublished
		if err := tx.Model(&stored).Update("is_published", published).Error; err != nil {
			return err
		}

		stored.IsPublished = published
		product = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
