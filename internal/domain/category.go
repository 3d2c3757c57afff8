package domain

import "context"

// Category is the normalized category shape. ProductCount is always 0: the
// external backend has no endpoint that supplies it.
type Category struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ProductCount int     `json:"productCount"`
	Status       string  `json:"status"`
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryUseCase interface {
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, in CategoryInput) (*Category, error)
	Delete(ctx context.Context, id string) (map[string]any, error)
}
