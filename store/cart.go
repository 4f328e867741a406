package store

import (
	"errors"
	"fmt"

	"shoply-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartEngine owns per-user carts. Every operation is keyed by a user id,
// returns the post-operation cart, and creates the cart lazily if the
// user does not have one yet.
//
// Mutations are single-statement conditional updates (guarded increments
// and upserts) instead of read-modify-write, so concurrent requests for
// the same cart cannot lose an increment or create duplicate lines for
// one product.
type CartEngine struct {
	DB       *gorm.DB
	Products *ProductStore
}

func NewCartEngine(db *gorm.DB, products *ProductStore) *CartEngine {
	return &CartEngine{DB: db, Products: products}
}

// GetCart returns the user's cart, creating an empty one on first access.
// Safe to call concurrently; at most one cart row ever exists per user.
func (e *CartEngine) GetCart(userID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	cartID, err := e.ensureCart(userID)
	if err != nil {
		return nil, err
	}
	return e.fetchCart(cartID)
}

// AddItem puts one unit of the product into the user's cart. An existing
// line for the product gets its quantity bumped with the stored snapshot
// left untouched; otherwise a new line is created with a snapshot of the
// product as it is right now. Returns ErrProductNotFound, with the cart
// unmodified, when the product does not exist.
func (e *CartEngine) AddItem(userID, productID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if productID == "" {
		return nil, ErrProductIDRequired
	}

	product, err := e.Products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	cartID, err := e.ensureCart(userID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ID:     uuid.New(),
		CartID: cartID,
		Product: models.ProductSnapshot{
			ID:    product.ID.String(),
			Name:  product.Name,
			Price: product.Price,
			Image: product.Image,
		},
		Quantity: 1,
	}
	// Insert-or-increment in one statement. Two concurrent first adds of
	// the same product race on the (cart_id, product_id) index: one
	// inserts, the other lands on the conflict branch and increments.
	err = e.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + 1"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return e.fetchCart(cartID)
}

// RemoveItem takes one unit of the product out of the user's cart. A line
// at quantity 1 is deleted outright; a missing line is a no-op and the
// current cart is returned unchanged.
func (e *CartEngine) RemoveItem(userID, productID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if productID == "" {
		return nil, ErrProductIDRequired
	}

	cartID, err := e.ensureCart(userID)
	if err != nil {
		return nil, err
	}

	// The quantity > 1 guard keeps a line from ever reaching zero. When
	// the guarded decrement matches nothing, the line is either at
	// quantity 1 (delete it) or absent (the delete matches nothing too).
	res := e.DB.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ? AND quantity > 1", cartID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return nil, fmt.Errorf("decrement cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := e.DB.Where("cart_id = ? AND product_id = ?", cartID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return nil, fmt.Errorf("remove cart item: %w", err)
		}
	}

	return e.fetchCart(cartID)
}

// ClearCart empties the user's cart. The cart row itself persists.
func (e *CartEngine) ClearCart(userID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	cartID, err := e.ensureCart(userID)
	if err != nil {
		return nil, err
	}

	if err := e.DB.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	return e.fetchCart(cartID)
}

// ensureCart creates the user's cart row if it does not exist and returns
// its id. The insert lands on the user_id unique index, so concurrent
// first accesses cannot create a second cart.
func (e *CartEngine) ensureCart(userID string) (uuid.UUID, error) {
	cart := models.Cart{ID: uuid.New(), UserID: userID}
	err := e.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("create cart: %w", err)
	}

	// Read the id back: on conflict the insert was a no-op and the
	// generated id above does not belong to the stored row.
	var stored models.Cart
	if err := e.DB.Select("id").Where("user_id = ?", userID).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("cart for user %q disappeared after create", userID)
		}
		return uuid.Nil, fmt.Errorf("load cart: %w", err)
	}
	return stored.ID, nil
}

func (e *CartEngine) fetchCart(cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := e.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at")
		}).
		Where("id = ?", cartID).First(&cart).Error
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}
