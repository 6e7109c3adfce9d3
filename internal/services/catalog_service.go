package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/reports"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/pkg/utils"
)

// --- Shop DTOs ---
type CreateShopRequest struct {
	Name      string            `json:"name" binding:"required"`
	OwnerName string            `json:"owner_name" binding:"required"`
	Email     string            `json:"email" binding:"required,email"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Status    models.ShopStatus `json:"status"`
}

type UpdateShopRequest struct {
	Name      *string            `json:"name"`
	OwnerName *string            `json:"owner_name"`
	Email     *string            `json:"email"`
	Phone     *string            `json:"phone"`
	Address   *string            `json:"address"`
	Status    *models.ShopStatus `json:"status"`
}

type ShopFilter struct {
	Search string
	Status models.ShopStatus
}

// --- Product DTOs ---
type CreateProductRequest struct {
	ShopID   int64                `json:"shop_id" binding:"required"`
	Name     string               `json:"name" binding:"required"`
	Category string               `json:"category" binding:"required"`
	Price    decimal.Decimal      `json:"price"`
	Stock    int                  `json:"stock"`
	Status   models.ProductStatus `json:"status"`
}

type UpdateProductRequest struct {
	Name     *string               `json:"name"`
	Category *string               `json:"category"`
	Price    *decimal.Decimal      `json:"price"`
	Stock    *int                  `json:"stock"`
	Status   *models.ProductStatus `json:"status"`
}

type ProductFilter struct {
	Search   string
	ShopID   int64
	Category string
	Status   models.ProductStatus
}

// --- CatalogService Interface ---
type CatalogService interface {
	CreateShop(req CreateShopRequest) (models.Shop, error)
	GetShop(id int64) (models.Shop, error)
	ListShops(filter ShopFilter) []models.Shop
	UpdateShop(id int64, req UpdateShopRequest) (models.Shop, error)
	DeleteShop(id int64) error

	CreateProduct(req CreateProductRequest) (models.Product, error)
	GetProduct(id int64) (models.Product, error)
	ListProducts(filter ProductFilter) []models.Product
	UpdateProduct(id int64, req UpdateProductRequest) (models.Product, error)
	DeleteProduct(id int64) error

	GetCatalogStats() models.CatalogStats
}

// --- catalogService Implementation ---
type catalogService struct {
	// refMu serializes the shop reference check with the write that depends on it.
	refMu    sync.Mutex
	shops    *repositories.RecordStore[models.Shop]
	products *repositories.RecordStore[models.Product]
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(shops *repositories.RecordStore[models.Shop], products *repositories.RecordStore[models.Product]) CatalogService {
	return &catalogService{shops: shops, products: products}
}

// NewShopStore builds the shop collection. New shops wait for approval.
func NewShopStore(clock func() time.Time) *repositories.RecordStore[models.Shop] {
	return repositories.NewRecordStore("shop",
		repositories.WithClock[models.Shop](clock),
		repositories.WithDefaults(func(s models.Shop) models.Shop {
			if s.Status == "" {
				s.Status = models.ShopPending
			}
			return s
		}),
	)
}

// NewProductStore builds the product collection. Products without stock are
// listed as out of stock unless they were taken down.
func NewProductStore(clock func() time.Time) *repositories.RecordStore[models.Product] {
	return repositories.NewRecordStore("product",
		repositories.WithClock[models.Product](clock),
		repositories.WithDefaults(func(p models.Product) models.Product {
			if p.Status == "" {
				p.Status = models.ProductActive
			}
			return stockStatus(p)
		}),
	)
}

func stockStatus(p models.Product) models.Product {
	switch {
	case p.Stock == 0 && p.Status == models.ProductActive:
		p.Status = models.ProductOutOfStock
	case p.Stock > 0 && p.Status == models.ProductOutOfStock:
		p.Status = models.ProductActive
	}
	return p
}

func (s *catalogService) CreateShop(req CreateShopRequest) (models.Shop, error) {
	created, err := s.shops.Create(models.Shop{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Status:    req.Status,
	})
	if err != nil {
		return models.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}
	utils.LogDebug("shop created", map[string]interface{}{"id": created.ID})
	return created, nil
}

func (s *catalogService) GetShop(id int64) (models.Shop, error) {
	return s.shops.Get(id)
}

func (s *catalogService) ListShops(filter ShopFilter) []models.Shop {
	return s.shops.List(func(shop models.Shop) bool {
		if filter.Status != "" && shop.Status != filter.Status {
			return false
		}
		return filter.Search == "" || utils.ContainsFold(filter.Search, shop.Name, shop.OwnerName, shop.Email)
	})
}

func (s *catalogService) UpdateShop(id int64, req UpdateShopRequest) (models.Shop, error) {
	updated, err := s.shops.Update(id, func(shop models.Shop) models.Shop {
		if req.Name != nil {
			shop.Name = *req.Name
		}
		if req.OwnerName != nil {
			shop.OwnerName = *req.OwnerName
		}
		if req.Email != nil {
			shop.Email = *req.Email
		}
		if req.Phone != nil {
			shop.Phone = *req.Phone
		}
		if req.Address != nil {
			shop.Address = *req.Address
		}
		if req.Status != nil {
			shop.Status = *req.Status
		}
		return shop
	})
	if err != nil {
		return models.Shop{}, fmt.Errorf("failed to update shop: %w", err)
	}
	return updated, nil
}

func (s *catalogService) DeleteShop(id int64) error {
	s.refMu.Lock()
	defer s.refMu.Unlock()

	if _, err := s.shops.Get(id); err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	owned := s.products.List(func(p models.Product) bool { return p.ShopID == id })
	if len(owned) > 0 {
		return fmt.Errorf("%w: %d products reference shop %d", ErrShopInUse, len(owned), id)
	}
	if err := s.shops.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	utils.LogDebug("shop deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *catalogService) checkShop(id int64) error {
	if _, err := s.shops.Get(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrUnknownShop, id)
		}
		return err
	}
	return nil
}

func (s *catalogService) CreateProduct(req CreateProductRequest) (models.Product, error) {
	s.refMu.Lock()
	defer s.refMu.Unlock()

	if err := s.checkShop(req.ShopID); err != nil {
		return models.Product{}, err
	}
	created, err := s.products.Create(models.Product{
		ShopID:   req.ShopID,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		Status:   req.Status,
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	utils.LogDebug("product created", map[string]interface{}{"id": created.ID, "shop_id": created.ShopID})
	return created, nil
}

func (s *catalogService) GetProduct(id int64) (models.Product, error) {
	return s.products.Get(id)
}

func (s *catalogService) ListProducts(filter ProductFilter) []models.Product {
	return s.products.List(func(p models.Product) bool {
		if filter.ShopID != 0 && p.ShopID != filter.ShopID {
			return false
		}
		if filter.Category != "" && !utils.ContainsFold(filter.Category, p.Category) {
			return false
		}
		if filter.Status != "" && p.Status != filter.Status {
			return false
		}
		return filter.Search == "" || utils.ContainsFold(filter.Search, p.Name, p.Category)
	})
}

func (s *catalogService) UpdateProduct(id int64, req UpdateProductRequest) (models.Product, error) {
	updated, err := s.products.Update(id, func(p models.Product) models.Product {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		return stockStatus(p)
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

func (s *catalogService) DeleteProduct(id int64) error {
	if err := s.products.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	utils.LogDebug("product deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *catalogService) GetCatalogStats() models.CatalogStats {
	shops := s.shops.List(nil)
	products := s.products.List(nil)
	return models.CatalogStats{
		Shops:           len(shops),
		ShopsByStatus:   reports.StatusCounts(shops, func(shop models.Shop) models.ShopStatus { return shop.Status }),
		Products:        len(products),
		ProductsByState: reports.StatusCounts(products, func(p models.Product) models.ProductStatus { return p.Status }),
	}
}
