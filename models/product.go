package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices and amounts go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID            uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"productId"`
	Name          string          `gorm:"size:1000;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CategoryID    uint            `gorm:"not null" json:"categoryId"` // no referential check
	StockQuantity int             `gorm:"not null" json:"stockQuantity"`
	ImageURL      string          `gorm:"not null" json:"imageUrl"`
}

func (Product) TableName() string { return "products" }
