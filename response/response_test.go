package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccessMergesPayload(t *testing.T) {
	w, body := render(func(c *gin.Context) {
		Success(c, http.StatusCreated, "Registration successful!", gin.H{"userId": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful!", body["message"])
	assert.Equal(t, float64(1), body["userId"])
}

func TestSuccessOmitsEmptyMessage(t *testing.T) {
	_, body := render(func(c *gin.Context) {
		Success(c, http.StatusOK, "", gin.H{"products": []int{}})
	})

	_, ok := body["message"]
	assert.False(t, ok)
	assert.Contains(t, body, "products")
}

func TestErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperrors.Validation("Quantity must be greater than 0"), http.StatusBadRequest, "Quantity must be greater than 0"},
		{apperrors.Conflict("Username already exists"), http.StatusBadRequest, "Username already exists"},
		{apperrors.NotFound("Order not found with ID: %d", 9), http.StatusNotFound, "Order not found with ID: 9"},
		{apperrors.Auth("Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{apperrors.Forbidden("Admin access required"), http.StatusForbidden, "Admin access required"},
		{apperrors.Unexpected("storage failure", errors.New("db down")), http.StatusInternalServerError, "Failed to get orders"},
		{errors.New("raw"), http.StatusInternalServerError, "Failed to get orders"},
	}

	for _, tc := range cases {
		w, body := render(func(c *gin.Context) { Error(c, tc.err, "Failed to get orders") })
		require.Equal(t, tc.status, w.Code, tc.msg)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tc.msg, body["message"])
	}
}

func TestPathID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := PathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "-1"}}
	_, ok = PathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id")
}

func TestInternalHidesKind(t *testing.T) {
	w, body := render(func(c *gin.Context) {
		Internal(c, apperrors.Validation("bad"), "Failed to get users")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to get users", body["message"])
}
