package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses. Any status may follow any other.
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	// Payment statuses
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// OrderStatuses lists every order status in dashboard order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Map string to OrderStatus
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(status))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status: %s", status)
	}
}

type Order struct {
	ID          uint            `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderId"`
	UserID      uint            `gorm:"not null;index" json:"userId"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	OrderDate   Date            `gorm:"type:date;not null" json:"orderDate"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);not null;default:'PENDING'" json:"status"`
}

func (Order) TableName() string { return "orders" }
