package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

// FinanceHandler holds the finance service.
type FinanceHandler struct {
	financeService services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(fs services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: fs}
}

func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req services.CreateTransactionRequest
	if !bindJSON(c, &req, "CreateTransaction") {
		return
	}

	txn, err := h.financeService.CreateTransaction(req, utils.RequestTime(c))
	if err != nil {
		respondServiceError(c, err, "CreateTransaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// GetTransactions lists the ledger, optionally only one kind (?kind=revenue).
func (h *FinanceHandler) GetTransactions(c *gin.Context) {
	var kind *models.TransactionKind
	if raw := c.Query("kind"); raw != "" {
		k := models.TransactionKind(raw)
		if !models.IsValidTransactionKind(k) {
			utils.RespondValidationFailed(c, "kind must be revenue or expense")
			return
		}
		kind = &k
	}
	c.JSON(http.StatusOK, listResponse(h.financeService.ListTransactions(kind)))
}

func (h *FinanceHandler) GetTransactionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	txn, err := h.financeService.GetTransaction(id)
	if err != nil {
		respondServiceError(c, err, "GetTransactionByID")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// GetOverview returns period rollups and totals for the request time.
func (h *FinanceHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.financeService.GetOverview(utils.RequestTime(c)))
}
