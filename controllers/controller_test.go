package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shawon-burger/mocks"
	"shawon-burger/payment"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", fmt.Errorf("Order %w", services.ErrNotFound), http.StatusNotFound, `{"error":"Order not found"}`},
		{"duplicate review", services.ErrReviewExists, http.StatusBadRequest, `{"error":"You have already reviewed this order"}`},
		{"edit window", services.ErrReviewLocked, http.StatusBadRequest, ""},
		{"email taken", services.ErrEmailTaken, http.StatusBadRequest, `{"error":"Email already registered"}`},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, ""},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Invalid email or password"}`},
		{"bad signature", payment.ErrInvalidSignature, http.StatusBadRequest, ""},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, `{"error":"Something went wrong!"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

			respondError(c, tt.err)
			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRespondErrorUnverifiedCarriesUserID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	respondError(c, &services.UnverifiedError{UserID: "665f1c2b9d3e4a0012345678"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"665f1c2b9d3e4a0012345678"`)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query       string
		page, limit int
	}{
		{"", 1, 10},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=-1", 1, 10},
		{"page=abc&limit=1000", 1, 100},
		{"page=9223372036854775807&limit=100", maxPage, 100},
		{"page=99999999999999999999999", 1, 10},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/orders?"+tt.query, nil)
		p := parsePage(c)
		assert.Equal(t, tt.page, p.Number, tt.query)
		assert.Equal(t, tt.limit, p.Limit, tt.query)
		assert.GreaterOrEqual(t, p.Skip(), int64(0), tt.query)
	}
}

func withUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("uid", uid)
		c.Next()
	}
}

func TestUpdateProfileRejectsUnknownKeys(t *testing.T) {
	r := gin.New()
	r.PATCH("/profile", withUser(primitive.NewObjectID().Hex()), UpdateProfile(services.NewAuthService(nil, nil, nil)))

	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(`{"name":"X","role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid updates"}`, w.Body.String())
}

func TestPaymentWebhook(t *testing.T) {
	gateway := mocks.NewMockGateway(gomock.NewController(t))
	orders := services.NewOrderService(services.OrderServiceConfig{Gateway: gateway})
	r := gin.New()
	r.POST("/api/orders/webhook", PaymentWebhook(orders))

	gateway.EXPECT().ParseWebhook([]byte(`{"id":"evt_1"}`), "t=1,v1=bad").Return(nil, payment.ErrInvalidSignature)
	req := httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	gateway.EXPECT().ParseWebhook(gomock.Any(), "t=1,v1=good").
		Return(&payment.Event{ID: "evt_2", Type: "customer.created"}, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/orders/webhook", strings.NewReader(`{"id":"evt_2"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=good")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	orders := services.NewOrderService(services.OrderServiceConfig{})
	r := gin.New()
	r.POST("/api/orders", withUser(primitive.NewObjectID().Hex()), CreateOrder(orders))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[],"deliveryAddress":"GEC","paymentMethod":"bkash"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentUserRequired(t *testing.T) {
	orders := services.NewOrderService(services.OrderServiceConfig{})
	r := gin.New()
	r.GET("/api/orders/my-orders", GetMyOrders(orders))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
