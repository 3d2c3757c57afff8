package mapper

import "github.com/sahil00000001/SMFurnishAdmin/internal/domain"

// RawCategory is a category record as the external backend ships it.
type RawCategory struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// Category normalizes a raw backend category. Total: every field has a
// default. ProductCount is always 0 because no backend endpoint supplies it.
func Category(raw RawCategory) domain.Category {
	status := raw.Status
	if status == "" {
		status = "active"
	}
	return domain.Category{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		ProductCount: 0,
		Status:       status,
	}
}

func Categories(raw []RawCategory) []domain.Category {
	categories := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, Category(r))
	}
	return categories
}
