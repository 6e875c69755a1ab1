package services

import (
	"context"
	"io"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
)

// ProductInput is the admin payload for creating or replacing a product.
type ProductInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *uint            `json:"categoryId"`
	StockQuantity *int             `json:"stockQuantity"`
	ImageURL      *string          `json:"imageUrl"`
}

// validate checks the entity rules. Updates never touch the image, so
// withImage is false for them.
func (in ProductInput) validate(withImage bool) error {
	switch {
	case in.Name == nil || isBlank(*in.Name):
		return apperrors.Validation("Product name is required")
	case in.Price == nil:
		return apperrors.Validation("Price is required")
	case !in.Price.Round(2).IsPositive():
		return apperrors.Validation("Price must be greater than 0")
	case in.Price.Round(2).GreaterThanOrEqual(maxMoney):
		return apperrors.Validation("Price must be less than 100000000")
	case in.CategoryID == nil:
		return apperrors.Validation("Category ID is required")
	case in.StockQuantity == nil:
		return apperrors.Validation("Stock quantity is required")
	case *in.StockQuantity < 0:
		return apperrors.Validation("Stock quantity cannot be negative")
	case withImage && (in.ImageURL == nil || isBlank(*in.ImageURL)):
		return apperrors.Validation("Image URL is required")
	}
	return nil
}

func (in ProductInput) applyTo(p *models.Product) {
	p.Name = *in.Name
	p.Description = ""
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.Price = in.Price.Round(2)
	p.CategoryID = *in.CategoryID
	p.StockQuantity = *in.StockQuantity
}

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(store repository.Store) *ProductService {
	return &ProductService{products: store.Products}
}

func (s *ProductService) Add(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	var product models.Product
	in.applyTo(&product)
	product.ImageURL = *in.ImageURL
	if err := s.products.Create(ctx, &product); err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{"productId": product.ID, "name": product.Name}).Info("product added")
	return &product, nil
}

// Update replaces everything but the image URL of an existing product.
func (s *ProductService) Update(ctx context.Context, productID uint, in ProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}

	in.applyTo(product)
	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, lookupError(err, "Product not found")
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, productID uint) error {
	if err := s.products.DeleteByID(ctx, productID); err != nil {
		return lookupError(err, "Product not found")
	}
	log.WithField("productId", productID).Info("product deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get products", err)
	}
	return products, nil
}

// ExportExcel writes every product as a single-sheet xlsx workbook to w.
func (s *ProductService) ExportExcel(ctx context.Context, w io.Writer) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return apperrors.Unexpected("Failed to create Excel sheet", err)
	}

	// Header row
	headers := []string{"ID", "Name", "Description", "Price", "CategoryID", "StockQuantity", "ImageURL"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.CategoryID)
		row.AddCell().SetValue(p.StockQuantity)
		row.AddCell().SetValue(p.ImageURL)
	}

	if err := file.Write(w); err != nil {
		return apperrors.Unexpected("Failed to write Excel file", err)
	}
	return nil
}
