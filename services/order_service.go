package services

import (
	"context"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// OrderNotifier is told about order changes after they are stored.
type OrderNotifier interface {
	OrderCreated(order models.Order)
	OrderStatusChanged(order models.Order)
}

type noopNotifier struct{}

func (noopNotifier) OrderCreated(models.Order)       {}
func (noopNotifier) OrderStatusChanged(models.Order) {}

type CreateOrderInput struct {
	UserID      *uint            `json:"userId"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type OrderService struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier OrderNotifier
	clock    clock
}

func NewOrderService(store repository.Store, notifier OrderNotifier) *OrderService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &OrderService{orders: store.Orders, users: store.Users, notifier: notifier}
}

// CreateOrder stores a PENDING order dated today for an existing user.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.UserID == nil {
		return nil, apperrors.Validation("User ID cannot be null")
	}
	if in.TotalAmount == nil {
		return nil, apperrors.Validation("Total amount must be greater than 0")
	}
	total, err := validateMoney(*in.TotalAmount, "Total amount must be greater than 0", "Total amount must be less than 100000000")
	if err != nil {
		return nil, err
	}

	ok, err := s.users.ExistsByID(ctx, *in.UserID)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if !ok {
		return nil, apperrors.NotFound("User not found with ID: %d", *in.UserID)
	}

	order := &models.Order{
		UserID:      *in.UserID,
		TotalAmount: total,
		OrderDate:   s.clock.today(),
		Status:      models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{"orderId": order.ID, "userId": order.UserID}).Info("order created")
	s.notifier.OrderCreated(*order)
	return order, nil
}

func (s *OrderService) GetOrderDetails(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, lookupError(err, "Order not found with ID: %d", orderID)
	}
	return order, nil
}

// ListUserOrders returns the user's orders, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get user orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders, err := s.orders.FindByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.Unexpected("Failed to get orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateOrderStatus sets the order's status. Any status may move to any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	if isBlank(status) {
		return nil, apperrors.Validation("Status cannot be null")
	}
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, apperrors.Validation("Invalid status: %s", status)
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, parsed)
	if err != nil {
		return nil, lookupError(err, "Order not found with ID: %d", orderID)
	}

	log.WithFields(log.Fields{"orderId": order.ID, "status": order.Status}).Info("order status updated")
	s.notifier.OrderStatusChanged(*order)
	return order, nil
}
