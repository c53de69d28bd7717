package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clocker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, response.NewPaginationMeta(21, 1, 10).TotalPages)
	assert.Equal(t, 2, response.NewPaginationMeta(20, 1, 10).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with meta", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		meta := response.NewPaginationMeta(12, 2, 5)
		response.Success(c, http.StatusOK, []string{"a"}, &meta)

		assert.JSONEq(t, `{"ok":true,"data":["a"],"meta":{"total":12,"totalPages":3,"page":2,"pageSize":5}}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Leave not found", nil)

		var body response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Ok)
		if assert.NotNil(t, body.Error) {
			assert.Equal(t, "NOT_FOUND", body.Error.Code)
			assert.Equal(t, "Leave not found", body.Error.Message)
		}
		assert.Contains(t, w.Body.String(), `"details":null`)
	})
}
