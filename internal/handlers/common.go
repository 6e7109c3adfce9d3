package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes the
// error response and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param(name))
	if err != nil || id <= 0 {
		details := "id must be a positive integer"
		if err != nil {
			details = err.Error()
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" format.", details))
		return 0, false
	}
	return id, true
}

// queryInt64 returns 0 when the parameter is absent.
func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := utils.StrToInt64(raw)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" query parameter.", err.Error()))
		return 0, false
	}
	return v, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" query parameter.", err.Error()))
		return 0, false
	}
	return v, true
}

func bindJSON(c *gin.Context, req interface{}, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogError(err, op+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

// respondServiceError maps a service error onto the API error envelope.
func respondServiceError(c *gin.Context, err error, op string) {
	var apiErr *utils.APIError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		apiErr = utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found.", err.Error())
	case errors.Is(err, rules.ErrUnknownRole):
		apiErr = utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeUnknownRole, "Unknown role.", err.Error())
	case errors.Is(err, rules.ErrUsageLimitExceeded):
		apiErr = utils.NewAPIError(http.StatusConflict, utils.ErrCodeUsageLimitExceeded, "Promotion usage limit reached.", err.Error())
	case errors.Is(err, services.ErrShopInUse), errors.Is(err, repositories.ErrDuplicateKey):
		apiErr = utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Request conflicts with existing data.", err.Error())
	case errors.Is(err, models.ErrValidation):
		apiErr = utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error())
	default:
		utils.LogError(err, op+": unexpected error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process request.", "Internal error"))
		return
	}
	utils.LogWarn(op+": request rejected", map[string]interface{}{"code": apiErr.Code, "error": err.Error(), "request_id": c.GetString(utils.RequestIDKey)})
	utils.RespondWithError(c, apiErr)
}

// listResponse wraps a collection the way every list endpoint returns it.
func listResponse[T any](items []T) gin.H {
	if items == nil {
		items = []T{}
	}
	return gin.H{"data": items, "total": len(items)}
}
