package models

// Cart is a single line of a user's cart. One row per (user, product) is kept
// by merge-on-insert, not by a unique constraint.
type Cart struct {
	ID        uint `gorm:"column:cart_id;primaryKey;autoIncrement" json:"cartId"`
	UserID    uint `gorm:"not null;index:idx_cart_user_product" json:"userId"`
	ProductID uint `gorm:"not null;index:idx_cart_user_product" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

func (Cart) TableName() string { return "cart" }
