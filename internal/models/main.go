// Package models defines the core data structures for accounts, orders,
// and the food catalog.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account represents a registered user with credentials.
type Account struct {
	// ID is the unique identifier for the account.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	// Name is the display name chosen by the user.
	Name string `bson:"name" json:"name"`
	// Email identifies the account. Unique across the collection.
	Email string `bson:"email" json:"email"`
	// Address is the free-text delivery address.
	Address string `bson:"address" json:"address"`
	// PasswordHash is the bcrypt hash of the password. Never the plaintext.
	PasswordHash string `bson:"password" json:"-"`
	// ResetToken is the outstanding password-reset token, if any.
	ResetToken string `bson:"resetPasswordToken,omitempty" json:"-"`
	// ResetExpires is when the outstanding reset token stops being valid.
	ResetExpires time.Time `bson:"resetPasswordExpires,omitempty" json:"-"`
	// CreatedAt is when the account was created.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// OrderLog is the append-only order history for one account. One document
// per email; entries are never removed or reordered once appended.
type OrderLog struct {
	// ID is the unique identifier for the log document.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	// Email is the owning account's email.
	Email string `bson:"email" json:"email"`
	// Entries holds every checkout in insertion order.
	Entries []OrderEntry `bson:"orderData" json:"orderData"`
}

// OrderEntry is one checkout event. Immutable once appended.
type OrderEntry struct {
	// ID is the server-assigned identifier for the entry.
	ID string `bson:"id" json:"id"`
	// OrderDate is when the order was placed.
	OrderDate time.Time `bson:"orderDate" json:"orderDate"`
	// Items is the non-empty list of purchased line items.
	Items []LineItem `bson:"items" json:"items"`
}

// LineItem is one product/variant/quantity/price tuple within an order.
type LineItem struct {
	// Name is the product name as shown in the catalog.
	Name string `bson:"name" json:"name"`
	// Size is the chosen variant, e.g. "half" or "full".
	Size string `bson:"size,omitempty" json:"size,omitempty"`
	// Quantity is the number of units ordered. Positive.
	Quantity int `bson:"qty" json:"qty"`
	// Price is the unit price in the smallest currency unit.
	Price int64 `bson:"price" json:"price"`
}

// FoodItem is one catalog product.
type FoodItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	CategoryName string             `bson:"CategoryName" json:"CategoryName"`
	Img          string             `bson:"img" json:"img"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	// Options maps a variant name to its price, e.g. {"half": 150, "full": 280}.
	Options map[string]int64 `bson:"options" json:"options"`
}

// FoodCategory is one catalog category.
type FoodCategory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CategoryName string             `bson:"CategoryName" json:"CategoryName"`
}
