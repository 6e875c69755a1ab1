package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	log "github.com/sirupsen/logrus"
)

// ErrInsufficientStock is wrapped by the validation error returned when a
// cart addition asks for more than the product has in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

type AddToCartInput struct {
	UserID    *uint `json:"userId"`
	ProductID *uint `json:"productId"`
	Quantity  *int  `json:"quantity"`
}

type CartService struct {
	carts    repository.CartRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{carts: store.Carts, users: store.Users, products: store.Products}
}

// AddToCart merges quantity into the user's line for the product.
//
// Stock is checked against the requested quantity alone, not the merged
// total, so repeated additions may exceed stock.
func (s *CartService) AddToCart(ctx context.Context, in AddToCartInput) (*models.Cart, error) {
	switch {
	case in.UserID == nil:
		return nil, apperrors.Validation("User ID cannot be null")
	case in.ProductID == nil:
		return nil, apperrors.Validation("Product ID cannot be null")
	case in.Quantity == nil || *in.Quantity <= 0:
		return nil, apperrors.Validation("Quantity must be greater than 0")
	}
	userID, productID, quantity := *in.UserID, *in.ProductID, *in.Quantity

	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if !ok {
		return nil, apperrors.NotFound("User not found with ID: %d", userID)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, lookupError(err, "Product not found with ID: %d", productID)
	}
	if product.StockQuantity < quantity {
		return nil, &apperrors.Error{
			Kind:    apperrors.KindValidation,
			Message: "Insufficient stock. Available: " + strconv.Itoa(product.StockQuantity),
			Err:     ErrInsufficientStock,
		}
	}

	item, err := s.carts.MergeQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{
		"userId":    userID,
		"productId": productID,
		"quantity":  item.Quantity,
	}).Debug("cart line merged")
	return item, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, cartID uint) error {
	if err := s.carts.DeleteByID(ctx, cartID); err != nil {
		return lookupError(err, "Cart item not found with ID: %d", cartID)
	}
	return nil
}

// GetCartDetails returns the user's cart lines. An unknown user has an empty cart.
func (s *CartService) GetCartDetails(ctx context.Context, userID uint) ([]models.Cart, error) {
	items, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if items == nil {
		items = []models.Cart{}
	}
	return items, nil
}
