package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"not null"                 json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Description string  `json:"description"`
}

// CartItem carries a composite unique index so two concurrent adds of the
// same (user, product) pair cannot produce two rows.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                   json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int  `gorm:"not null;default:0"                         json:"quantity"`
}
