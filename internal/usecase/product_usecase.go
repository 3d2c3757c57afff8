package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
	"github.com/sahil00000001/SMFurnishAdmin/internal/mapper"
)

var _ domain.ProductUseCase = (*productUseCase)(nil)

type productUseCase struct {
	backend clients.BackendClient
	log     *logrus.Logger
}

func NewProductUseCase(backend clients.BackendClient, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{
		backend: backend,
		log:     logger,
	}
}

type productListResponse struct {
	Data []mapper.RawProduct `json:"data"`
}

type productResponse struct {
	Data *mapper.RawProduct `json:"data"`
}

type categoryListResponse struct {
	Data []mapper.RawCategory `json:"data"`
}

// externalProduct is the field naming the backend expects on writes; price
// goes back out as a number.
type externalProduct struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
}

func toExternalProduct(in domain.ProductInput) (*externalProduct, error) {
	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", in.Price, err)
	}
	return &externalProduct{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}, nil
}

// GetAll fetches the product and category lists concurrently; categories are
// normalized first so every product resolves its display name the same way.
// Either fetch failing fails the whole call.
func (uc *productUseCase) GetAll(ctx context.Context) ([]domain.Product, error) {
	var productsRes productListResponse
	var categoriesRes categoryListResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodGet, "/api/products", nil, &productsRes)
	})
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodGet, "/api/categories", nil, &categoriesRes)
	})
	if err := g.Wait(); err != nil {
		uc.log.Errorf("Use Case: Failed to load products with categories: %v", err)
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	categories := mapper.Categories(categoriesRes.Data)
	products := mapper.Products(productsRes.Data, categories)
	uc.log.Infof("Use Case: Loaded %d products (%d categories resolved)", len(products), len(categories))
	return products, nil
}

func (uc *productUseCase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var productRes productResponse
	var categoriesRes categoryListResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodGet, "/api/products/"+id, nil, &productRes)
	})
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodGet, "/api/categories", nil, &categoriesRes)
	})
	if err := g.Wait(); err != nil {
		uc.log.Warnf("Use Case: Failed to load product %s: %v", id, err)
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}

	if productRes.Data == nil {
		return nil, domain.ErrProductNotFound
	}
	product := mapper.Product(*productRes.Data, mapper.Categories(categoriesRes.Data))
	return &product, nil
}

// Create posts the re-shaped product and fetches categories alongside so the
// returned record normalizes exactly like GetAll output.
func (uc *productUseCase) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	external, err := toExternalProduct(in)
	if err != nil {
		return nil, err
	}

	var productRes productResponse
	var categoriesRes categoryListResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodPost, "/api/products", external, &productRes)
	})
	g.Go(func() error {
		return uc.backend.DoJSON(gctx, http.MethodGet, "/api/categories", nil, &categoriesRes)
	})
	if err := g.Wait(); err != nil {
		uc.log.Errorf("Use Case: Failed to create product %q: %v", in.Name, err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if productRes.Data == nil {
		return nil, fmt.Errorf("backend returned no product data on create")
	}
	product := mapper.Product(*productRes.Data, mapper.Categories(categoriesRes.Data))
	uc.log.Infof("Use Case: Created product %s (%q)", product.ID, product.Name)
	return &product, nil
}

// Update issues the write, then re-fetches categories to re-normalize the
// returned product consistently with GetAll.
func (uc *productUseCase) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	external, err := toExternalProduct(in)
	if err != nil {
		return nil, err
	}

	var productRes productResponse
	if err := uc.backend.DoJSON(ctx, http.MethodPut, "/api/products/"+id, external, &productRes); err != nil {
		uc.log.Errorf("Use Case: Failed to update product %s: %v", id, err)
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	if productRes.Data == nil {
		return nil, domain.ErrProductNotFound
	}

	var categoriesRes categoryListResponse
	if err := uc.backend.DoJSON(ctx, http.MethodGet, "/api/categories", nil, &categoriesRes); err != nil {
		uc.log.Errorf("Use Case: Failed to refresh categories after updating product %s: %v", id, err)
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	product := mapper.Product(*productRes.Data, mapper.Categories(categoriesRes.Data))
	uc.log.Infof("Use Case: Updated product %s", product.ID)
	return &product, nil
}

// Delete issues a single call; success is the wrapper not failing. The parsed
// response body is handed back as-is.
func (uc *productUseCase) Delete(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := uc.backend.DoJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, &body); err != nil {
		uc.log.Errorf("Use Case: Failed to delete product %s: %v", id, err)
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Deleted product %s", id)
	return body, nil
}
