package repository

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/echocart-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByID(ctx context.Context, id uint) (*models.Cart, error) {
	var item models.Cart
	if err := r.db.WithContext(ctx).First(&item, "cart_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Cart, error) {
	var items []models.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("cart_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Cart{}, "cart_id = ?", id)
}

func (r *cartRepository) DeleteByID(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Cart{}, id)
}

// MergeQuantity locks the existing (user, product) row before incrementing it
// so concurrent adds cannot overwrite each other's increment.
func (r *cartRepository) MergeQuantity(ctx context.Context, userID, productID uint, quantity int) (*models.Cart, error) {
	var merged models.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Order("cart_id").
			First(&existing).Error

		switch {
		case err == nil:
			existing.Quantity += quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			merged = existing
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			item := models.Cart{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			merged = item
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, translate(err)
	}
	return &merged, nil
}
