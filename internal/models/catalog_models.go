package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopStatus is the marketplace state of a seller's store.
type ShopStatus string

const (
	ShopActive    ShopStatus = "active"
	ShopPending   ShopStatus = "pending"
	ShopSuspended ShopStatus = "suspended"
)

// IsValidShopStatus checks if the provided status is a known ShopStatus.
func IsValidShopStatus(s ShopStatus) bool {
	return s == ShopActive || s == ShopPending || s == ShopSuspended
}

// Shop is a seller's store on the marketplace.
type Shop struct {
	ID        int64      `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name" validate:"required"`
	OwnerName string     `json:"owner_name" yaml:"owner_name" validate:"required"`
	Email     string     `json:"email" yaml:"email" validate:"required,email"`
	Phone     string     `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address   string     `json:"address,omitempty" yaml:"address,omitempty"`
	Status    ShopStatus `json:"status" yaml:"status"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
}

func (s Shop) RecordID() int64            { return s.ID }
func (s Shop) RecordCreatedAt() time.Time { return s.CreatedAt }

func (s Shop) WithIdentity(id int64, createdAt time.Time) Shop {
	s.ID = id
	s.CreatedAt = createdAt
	return s
}

func (s Shop) Validate() error {
	if err := validateTags(s); err != nil {
		return err
	}
	if !IsValidShopStatus(s.Status) {
		return validationErrorf("unknown shop status %q", s.Status)
	}
	return nil
}

// ProductStatus is the listing state of a product.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductInactive   ProductStatus = "inactive"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// IsValidProductStatus checks if the provided status is a known ProductStatus.
func IsValidProductStatus(s ProductStatus) bool {
	return s == ProductActive || s == ProductInactive || s == ProductOutOfStock
}

// Product is a listing owned by a shop. ShopID is a reference, never an embedded shop.
type Product struct {
	ID        int64           `json:"id" yaml:"id"`
	ShopID    int64           `json:"shop_id" yaml:"shop_id" validate:"required"`
	Name      string          `json:"name" yaml:"name" validate:"required"`
	Category  string          `json:"category" yaml:"category" validate:"required"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Stock     int             `json:"stock" yaml:"stock" validate:"min=0"`
	Status    ProductStatus   `json:"status" yaml:"status"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

func (p Product) RecordID() int64            { return p.ID }
func (p Product) RecordCreatedAt() time.Time { return p.CreatedAt }

func (p Product) WithIdentity(id int64, createdAt time.Time) Product {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}

func (p Product) Validate() error {
	if err := validateTags(p); err != nil {
		return err
	}
	if !IsValidProductStatus(p.Status) {
		return validationErrorf("unknown product status %q", p.Status)
	}
	if p.Price.IsNegative() {
		return validationErrorf("price must not be negative")
	}
	return nil
}
