package mapper

import "github.com/sahil00000001/SMFurnishAdmin/internal/domain"

// RawProduct is a product record as the external backend ships it. Price is
// left untyped: the backend sends numbers, but already-normalized records
// carry it as text.
type RawProduct struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	CategoryID  string  `json:"categoryId"`
	Stock       int     `json:"stock"`
	Status      string  `json:"status"`
	ImageURL    *string `json:"imageUrl"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

const unknownCategoryName = "Unknown Category"

// Product normalizes a raw backend product. The category display name is
// resolved against the supplied already-normalized category list, so
// categories must be fetched before products can be mapped.
func Product(raw RawProduct, categories []domain.Category) domain.Product {
	categoryName := unknownCategoryName
	for _, cat := range categories {
		if cat.ID == raw.CategoryID {
			categoryName = cat.Name
			break
		}
	}

	status := domain.ProductStatus(raw.Status)
	if !domain.IsValidProductStatus(status) {
		status = domain.ProductActive
	}

	stock := raw.Stock
	if stock < 0 {
		stock = 0
	}

	return domain.Product{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		Price:        priceString(raw.Price),
		CategoryID:   raw.CategoryID,
		CategoryName: categoryName,
		Stock:        stock,
		Status:       status,
		ImageURL:     raw.ImageURL,
		CreatedAt:    parseTimestamp(raw.CreatedAt),
		UpdatedAt:    parseTimestamp(raw.UpdatedAt),
	}
}

func Products(raw []RawProduct, categories []domain.Category) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, Product(r, categories))
	}
	return products
}
