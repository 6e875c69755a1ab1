package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway charges an order. Only the simulated gateway exists today.
type Gateway interface {
	Charge(ctx context.Context, orderID uint, amount decimal.Decimal) (string, error)
}

// SimulatedGateway accepts every charge and hands back a fresh reference.
type SimulatedGateway struct{}

func (SimulatedGateway) Charge(ctx context.Context, orderID uint, amount decimal.Decimal) (string, error) {
	return generateTransactionRef(time.Now()), nil
}

func generateTransactionRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}
