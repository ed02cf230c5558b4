package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/productr/server/errors"
	"github.com/productr/server/models"
	"github.com/productr/server/services"
	"gorm.io/gorm"
)

// Product is a struct that contains product related controllers
type Product struct {
	Service *services.Product
}

type productPayload struct {
	ProductName      string   `json:"productName" validate:"required,max=255"`
	ProductType      string   `json:"productType" validate:"required,max=100"`
	Stock            int      `json:"stock" validate:"min=0"`
	MRP              float64  `json:"mrp" validate:"required,gt=0"`
	SellingPrice     float64  `json:"sellingPrice" validate:"required,gt=0"`
	BrandName        string   `json:"brandName" validate:"max=150"`
	ExchangeEligible string   `json:"exchangeEligible" validate:"omitempty,oneof=Yes No"`
	Images           []string `json:"images" validate:"max=5"`
}

// Add is a function that adds a new product to the catalog
func (p *Product) Add(c *fiber.Ctx) error {
	var payload productPayload

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	v := validator.New()
	if err := v.Struct(payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	product, err := p.Service.Create(c.Context(), models.Product{
		ProductName:      payload.ProductName,
		ProductType:      payload.ProductType,
		Stock:            payload.Stock,
		MRP:              payload.MRP,
		SellingPrice:     payload.SellingPrice,
		BrandName:        payload.BrandName,
		ExchangeEligible: payload.ExchangeEligible,
		Images:           payload.Images,
	})
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// GetAll is a function that returns all the products in the catalog
func (p *Product) GetAll(c *fiber.Ctx) error {
	products, err := p.Service.All(c.Context())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// Get is a function that returns a single product
func (p *Product) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	product, err := p.Service.Get(c.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ProductNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// Update is a function that merges the submitted fields into a stored product
func (p *Product) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	var payload productPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	product, err := p.Service.Update(c.Context(), id, models.Product{
		ProductName:      payload.ProductName,
		ProductType:      payload.ProductType,
		Stock:            payload.Stock,
		MRP:              payload.MRP,
		SellingPrice:     payload.SellingPrice,
		BrandName:        payload.BrandName,
		ExchangeEligible: payload.ExchangeEligible,
		Images:           payload.Images,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ProductNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// Delete is a function that removes a product from the catalog
func (p *Product) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	if err := p.Service.Delete(c.Context(), id); err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return errors.Done(c, "Product deleted")
}

// TogglePublish is a function that publishes or unpublishes a product
func (p *Product) TogglePublish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrBadRequest)
	}

	product, err := p.Service.TogglePublish(c.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ProductNotFound(c)
		}

		logger.Error(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}
