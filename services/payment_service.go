package services

import (
	"context"

	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type PaymentInput struct {
	OrderID *uint            `json:"orderId"`
	Amount  *decimal.Decimal `json:"amount"`
}

type PaymentService struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	gateway  Gateway
	clock    clock
}

func NewPaymentService(store repository.Store, gateway Gateway) *PaymentService {
	if gateway == nil {
		gateway = SimulatedGateway{}
	}
	return &PaymentService{payments: store.Payments, orders: store.Orders, gateway: gateway}
}

// ProcessPayment records a COMPLETED payment dated today against an existing
// order. The amount is not compared with the order total.
func (s *PaymentService) ProcessPayment(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	if in.OrderID == nil {
		return nil, apperrors.Validation("Order ID cannot be null")
	}
	if in.Amount == nil {
		return nil, apperrors.Validation("Payment amount must be greater than 0")
	}
	amount, err := validateMoney(*in.Amount, "Payment amount must be greater than 0", "Payment amount must be less than 100000000")
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.ExistsByID(ctx, *in.OrderID)
	if err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}
	if !ok {
		return nil, apperrors.NotFound("Order not found with ID: %d", *in.OrderID)
	}

	ref, err := s.gateway.Charge(ctx, *in.OrderID, amount)
	if err != nil {
		return nil, apperrors.Unexpected("Payment processing failed", err)
	}

	payment := &models.Payment{
		OrderID:        *in.OrderID,
		Amount:         amount,
		PaymentStatus:  models.PaymentStatusCompleted,
		PaymentDate:    s.clock.today(),
		TransactionRef: ref,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, apperrors.Unexpected("storage failure", err)
	}

	log.WithFields(log.Fields{"paymentId": payment.ID, "orderId": payment.OrderID}).Info("payment processed")
	return payment, nil
}

func (s *PaymentService) GetPaymentStatus(ctx context.Context, paymentID uint) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, lookupError(err, "Payment not found with ID: %d", paymentID)
	}
	return payment, nil
}
