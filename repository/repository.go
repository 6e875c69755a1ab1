// Package repository holds the per-entity storage contracts and their gorm
// implementations. Every method is a single-table query.
package repository

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/echocart-api/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByUsernameOrEmail matches identifier against either column.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, id uint) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	DeleteByID(ctx context.Context, id uint) error
}

type CartRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Cart, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Cart, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
	// MergeQuantity adds quantity to the (userID, productID) row, creating it
	// when absent. The read-modify-write is atomic per row.
	MergeQuantity(ctx context.Context, userID, productID uint, quantity int) (*models.Cart, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	// FindByUserID returns the user's orders, newest order date first.
	FindByUserID(ctx context.Context, userID uint) ([]models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	Create(ctx context.Context, order *models.Order) error
	// UpdateStatus overwrites the status and returns the updated row.
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

type PaymentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

// Store bundles the repositories the services depend on.
type Store struct {
	Users    UserRepository
	Products ProductRepository
	Carts    CartRepository
	Orders   OrderRepository
	Payments PaymentRepository
}

// NewGormStore builds a Store backed by db.
func NewGormStore(db *gorm.DB) Store {
	return Store{
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
		Carts:    NewCartRepository(db),
		Orders:   NewOrderRepository(db),
		Payments: NewPaymentRepository(db),
	}
}

// translate maps gorm sentinel errors onto the repository ones.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
