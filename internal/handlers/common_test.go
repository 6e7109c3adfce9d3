package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("%w: review 9", repositories.ErrNotFound), http.StatusNotFound, utils.ErrCodeNotFound},
		{"unknown role", fmt.Errorf("%w: owner", rules.ErrUnknownRole), http.StatusBadRequest, utils.ErrCodeUnknownRole},
		{"usage limit", fmt.Errorf("failed to redeem: %w", rules.ErrUsageLimitExceeded), http.StatusConflict, utils.ErrCodeUsageLimitExceeded},
		{"shop in use", services.ErrShopInUse, http.StatusConflict, utils.ErrCodeConflict},
		{"duplicate key", repositories.ErrDuplicateKey, http.StatusConflict, utils.ErrCodeConflict},
		{"invalid transition", rules.ErrInvalidTransition, http.StatusBadRequest, utils.ErrCodeValidationFailed},
		{"not eligible", services.ErrPromotionNotEligible, http.StatusBadRequest, utils.ErrCodeValidationFailed},
		{"validation", fmt.Errorf("%w: name is required", models.ErrValidation), http.StatusBadRequest, utils.ErrCodeValidationFailed},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, utils.ErrCodeInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondServiceError(c, tt.err, "Test")

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			var body struct {
				Error utils.APIError `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, want := range map[string]bool{"42": true, "0": false, "-3": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		id, ok := parseIDParam(c, "id")
		assert.Equal(t, want, ok, raw)
		if ok {
			assert.Equal(t, int64(42), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}

func TestListResponse_NeverNull(t *testing.T) {
	body, err := json.Marshal(listResponse[models.Review](nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0}`, string(body))
}
