package models

import "github.com/shopspring/decimal"

type Payment struct {
	ID             uint            `gorm:"column:payment_id;primaryKey;autoIncrement" json:"paymentId"`
	OrderID        uint            `gorm:"not null;index" json:"orderId"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentStatus  PaymentStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"paymentStatus"`
	PaymentDate    Date            `gorm:"type:date;not null" json:"paymentDate"`
	TransactionRef string          `gorm:"size:64" json:"transactionRef,omitempty"`
}

func (Payment) TableName() string { return "payments" }
