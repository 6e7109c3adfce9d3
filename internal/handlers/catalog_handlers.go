package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/services"
)

// CatalogHandler serves shops and products.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// --- Shop Handler Methods ---

func (h *CatalogHandler) CreateShop(c *gin.Context) {
	var req services.CreateShopRequest
	if !bindJSON(c, &req, "CreateShop") {
		return
	}

	shop, err := h.catalogService.CreateShop(req)
	if err != nil {
		respondServiceError(c, err, "CreateShop")
		return
	}
	c.JSON(http.StatusCreated, shop)
}

func (h *CatalogHandler) GetShops(c *gin.Context) {
	shops := h.catalogService.ListShops(services.ShopFilter{
		Search: c.Query("search"),
		Status: models.ShopStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, listResponse(shops))
}

func (h *CatalogHandler) GetShopByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.catalogService.GetShop(id)
	if err != nil {
		respondServiceError(c, err, "GetShopByID")
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *CatalogHandler) UpdateShop(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateShopRequest
	if !bindJSON(c, &req, "UpdateShop") {
		return
	}

	shop, err := h.catalogService.UpdateShop(id, req)
	if err != nil {
		respondServiceError(c, err, "UpdateShop")
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *CatalogHandler) DeleteShop(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteShop(id); err != nil {
		respondServiceError(c, err, "DeleteShop")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}

// --- Product Handler Methods ---

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if !bindJSON(c, &req, "CreateProduct") {
		return
	}

	product, err := h.catalogService.CreateProduct(req)
	if err != nil {
		respondServiceError(c, err, "CreateProduct")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	shopID, ok := queryInt64(c, "shop_id")
	if !ok {
		return
	}

	products := h.catalogService.ListProducts(services.ProductFilter{
		Search:   c.Query("search"),
		ShopID:   shopID,
		Category: c.Query("category"),
		Status:   models.ProductStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, listResponse(products))
}

func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		respondServiceError(c, err, "GetProductByID")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if !bindJSON(c, &req, "UpdateProduct") {
		return
	}

	product, err := h.catalogService.UpdateProduct(id, req)
	if err != nil {
		respondServiceError(c, err, "UpdateProduct")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		respondServiceError(c, err, "DeleteProduct")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetCatalogStats returns shop and product counts by status.
func (h *CatalogHandler) GetCatalogStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetCatalogStats())
}
