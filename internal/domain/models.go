package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record. Catalog data is read-only reference data
// served by the catalog package; the storefront never mutates it.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	Discount       int               `json:"discount,omitempty"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	SellerID       string            `json:"seller_id"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Features       []string          `json:"features,omitempty"`
	IsActive       bool              `json:"is_active"`
	IsFeatured     bool              `json:"is_featured"`
	Slug           string            `json:"slug"`
	SKU            string            `json:"sku"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Category groups products under a human-readable slug
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NameEn       string    `json:"name_en"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Slug         string    `json:"slug"`
	ProductCount int       `json:"product_count"`
	IsActive     bool      `json:"is_active"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Seller is a storefront merchant
type Seller struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	ProductCount int       `json:"product_count"`
	TotalSales   int       `json:"total_sales"`
	IsVerified   bool      `json:"is_verified"`
	Slug         string    `json:"slug"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	JoinedAt     time.Time `json:"joined_at"`
}

// Offer is a promotional record with a validity window
type Offer struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    int       `json:"discount"`
	Category    string    `json:"category"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
	IsActive    bool      `json:"is_active"`
}

// ActiveAt reports whether the offer is enabled and its validity window
// covers the given instant
func (o Offer) ActiveAt(now time.Time) bool {
	return o.IsActive && !now.Before(o.ValidFrom) && !now.After(o.ValidUntil)
}

// DefaultMaxQuantity is the per-line cap used when a line does not carry
// its own
const DefaultMaxQuantity = 10

// CartLine is one product's entry in a cart. Display fields are
// denormalized at add time; Price is the price at add time. Quantity stays
// within [1, Cap()]; a mutation that would drive it to zero removes the
// line instead.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	SellerID    string  `json:"seller_id"`
	MaxQuantity int     `json:"max_quantity,omitempty"`
}

// Cap returns the effective per-line quantity cap
func (l CartLine) Cap() int {
	if l.MaxQuantity > 0 {
		return l.MaxQuantity
	}
	return DefaultMaxQuantity
}

// WishlistEntry is a saved product reference. AddedAt is set once at
// insertion and never refreshed.
type WishlistEntry struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	SellerID  string    `json:"seller_id"`
	AddedAt   time.Time `json:"added_at"`
}

// ShippingAddress is the step-one checkout form
type ShippingAddress struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// MissingFields returns the required fields that are empty. The required
// set is {name, email, phone, address, city}.
func (a ShippingAddress) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"phone", a.Phone},
		{"address", a.Address},
		{"city", a.City},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Order is a placed order snapshot
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a cart line frozen into an order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	SellerID  string  `json:"seller_id"`
}

// User is the profile shape exposed by the identity provider
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletTransaction records a wallet credit or debit
type WalletTransaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      string            `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Method      string            `json:"method,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
