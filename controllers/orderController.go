package controllers

import (
	"net/http"

	"shawon-burger/models"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

const maxWebhookBytes = 64 << 10

func CreateOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req models.CreateOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		created, err := orders.Create(ctx, userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		if created.ClientSecret != "" {
			c.JSON(http.StatusCreated, created)
			return
		}
		c.JSON(http.StatusCreated, created.Order)
	}
}

func GetMyOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		list, err := orders.ListMine(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := paramID(c, "id", "order")
		if !ok {
			return
		}
		order, err := orders.GetForUser(ctx, userID, orderID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PaymentWebhook must see the body exactly as sent so the signature can be checked.
func PaymentWebhook(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
		payload, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
			return
		}
		if err := orders.HandleWebhook(ctx, payload, c.GetHeader("Stripe-Signature")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func GetOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := orders.List(ctx, c.Query("status"), parsePage(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":      result.Items,
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
		})
	}
}

func UpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		adminID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := paramID(c, "id", "order")
		if !ok {
			return
		}
		var req models.OrderStatusRequest
		if !bindJSON(c, &req) {
			return
		}
		order, err := orders.UpdateStatus(ctx, orderID, req, adminID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
