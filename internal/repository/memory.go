package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

var _ domain.Storage = (*MemoryStorage)(nil)

// MemoryStorage is the local, non-persistent store: uuid-keyed maps guarded
// by one mutex. It is seeded with a single admin user built from the injected
// credential pair; nothing here survives a restart.
type MemoryStorage struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	products   map[string]domain.Product
	categories map[string]domain.Category
	log        *logrus.Logger
}

func NewMemoryStorage(adminUsername, adminPassword string, logger *logrus.Logger) (*MemoryStorage, error) {
	s := &MemoryStorage{
		users:      make(map[string]domain.User),
		products:   make(map[string]domain.Product),
		categories: make(map[string]domain.Category),
		log:        logger,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.User{
		ID:       uuid.NewString(),
		Username: adminUsername,
		Password: string(hash),
	}
	s.users[admin.ID] = admin
	logger.Infof("Storage: Seeded admin user %q (id %s)", admin.Username, admin.ID)

	return s, nil
}

func (s *MemoryStorage) GetUser(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *MemoryStorage) CreateUser(username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return nil, fmt.Errorf("user %q already exists", username)
		}
	}
	user := domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: passwordHash,
	}
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStorage) GetProducts() ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products, nil
}

func (s *MemoryStorage) GetProduct(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (s *MemoryStorage) CreateProduct(p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = domain.ProductActive
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.CreatedAt = &now
	p.UpdatedAt = &now
	s.products[p.ID] = p
	return &p, nil
}

func (s *MemoryStorage) UpdateProduct(id string, p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	now := time.Now().UTC()
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = &now
	s.products[id] = p
	return &p, nil
}

func (s *MemoryStorage) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemoryStorage) GetCategories() ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *MemoryStorage) GetCategory(id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &category, nil
}

func (s *MemoryStorage) CreateCategory(c domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.ProductCount = 0
	if c.Status == "" {
		c.Status = "active"
	}
	s.categories[c.ID] = c
	return &c, nil
}

func (s *MemoryStorage) UpdateCategory(id string, c domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c.ID = existing.ID
	c.ProductCount = existing.ProductCount
	s.categories[id] = c
	return &c, nil
}

func (s *MemoryStorage) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}
