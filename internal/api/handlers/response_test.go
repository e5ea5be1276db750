package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("quantity", "must be positive"), http.StatusBadRequest},
		{"wrapped validation", errors.Join(domain.NewValidationError("name", "must not be empty")), http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"insufficient data", domain.ErrInsufficientData, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestQueryItemID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// gin caches query params on first access, so each request needs its own
	// test context.
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?item_id=12", nil)

	id, err := queryItemID(c)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?item_id=abc", nil)
	_, err = queryItemID(c)
	assert.True(t, domain.IsValidation(err))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	id, err = queryItemID(c)
	assert.NoError(t, err)
	assert.Zero(t, id)
}
