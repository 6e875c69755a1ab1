package repository

import (
	"context"

	"github.com/junaidrashid-git/echocart-api/models"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "product_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Product{}, "product_id = ?", id)
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *productRepository) Save(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Save(product).Error)
}

func (r *productRepository) DeleteByID(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Product{}, id)
}
