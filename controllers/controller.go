package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"shawon-burger/models"
	"shawon-burger/payment"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 30 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondError maps service errors onto status codes. Unexpected errors are
// logged with the request id and hidden from the client.
func respondError(c *gin.Context, err error) {
	var unverified *services.UnverifiedError
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unverified):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Account not verified",
			"message": err.Error(),
			"userId":  unverified.UserID,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrReviewExists),
		errors.Is(err, services.ErrReviewLocked),
		errors.Is(err, services.ErrAlreadyVerified),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrOTPExpired),
		errors.Is(err, payment.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrCardPaymentsDisabled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card payments are currently unavailable"})
	default:
		log.Printf("request %s %s %s failed: %v", c.GetString("request_id"), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}

// maxPage keeps (page-1)*limit well inside int64 for Mongo's $skip.
const maxPage = 1000000

// parsePage reads ?page=&limit=, falling back to page 1 of 10.
func parsePage(c *gin.Context) models.Page {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return models.Page{Number: page, Limit: limit}
}

func paramID(c *gin.Context, name, what string) (primitive.ObjectID, bool) {
	id, err := services.ParseID(c.Param(name), what)
	if err != nil {
		respondError(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentUserID is the authenticated caller set by middleware.Authentication.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("uid"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}
