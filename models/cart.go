package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart holds one user's shopping cart. The user id is supplied by the
// client and is not checked against the users table. Carts are created
// lazily on first access and are never deleted; clearing a cart only
// empties its items.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ProductSnapshot is the copy of product fields stored inside a cart line
// at add-time. Later product edits do not change it; only product deletion
// touches cart contents. The id is kept as a string and is the identity
// lines are merged by.
type ProductSnapshot struct {
	ID    string  `gorm:"column:id;not null;index;uniqueIndex:idx_cart_item_product" json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartItem is one line in a cart. At most one line exists per product id
// within a cart, enforced by the (cart_id, product_id) unique index, and
// quantity is always at least 1: a line decremented to zero is deleted,
// never stored. Lines are hard-deleted so a product can be re-added after
// removal without tripping the index.
type CartItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_product" json:"-"`
	Product   ProductSnapshot `gorm:"embedded;embeddedPrefix:product_" json:"product"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
