package domain

import (
	"context"
	"time"
)

type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
)

func IsValidProductStatus(status ProductStatus) bool {
	switch status {
	case ProductActive, ProductInactive, ProductDiscontinued:
		return true
	}
	return false
}

// Product is the normalized shape the dashboard works with. Price is kept as
// text so the backend's decimal values survive transit untouched.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	Price        string        `json:"price"`
	CategoryID   string        `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	Stock        int           `json:"stock"`
	Status       ProductStatus `json:"status"`
	ImageURL     *string       `json:"imageUrl"`
	CreatedAt    *time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time    `json:"updatedAt"`
}

// ProductInput carries the dashboard-side fields for create and update.
// Price arrives as text and is coerced to a number for the backend.
type ProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
}

type ProductUseCase interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, in ProductInput) (*Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*Product, error)
	Delete(ctx context.Context, id string) (map[string]any, error)
}
