package domain

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

type AuthUseCase interface {
	Login(username, password string) (*User, error)
}

// Storage is the local, non-persistent store. Products and categories live
// here only incidentally (the admin flows go straight to the external
// backend); users back the login check.
type Storage interface {
	GetUser(id string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	CreateUser(username, passwordHash string) (*User, error)

	GetProducts() ([]Product, error)
	GetProduct(id string) (*Product, error)
	CreateProduct(p Product) (*Product, error)
	UpdateProduct(id string, p Product) (*Product, error)
	DeleteProduct(id string) error

	GetCategories() ([]Category, error)
	GetCategory(id string) (*Category, error)
	CreateCategory(c Category) (*Category, error)
	UpdateCategory(id string, c Category) (*Category, error)
	DeleteCategory(id string) error
}
