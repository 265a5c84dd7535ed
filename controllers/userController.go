package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shawon-burger/models"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

func SignUp(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.RegisterRequest
		if !bindJSON(c, &req) {
			return
		}
		userID, err := auth.Register(ctx, req)
		if errors.Is(err, services.ErrEmailDelivery) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "Failed to send verification email. Please request a new code.",
				"userId": userID,
			})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful. Please check your email for the verification code.",
			"userId":  userID,
		})
	}
}

func VerifyOTP(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.VerifyOTPRequest
		if !bindJSON(c, &req) {
			return
		}
		session, err := auth.VerifyOTP(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

func ResendOTP(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.ResendOTPRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := auth.ResendOTP(ctx, req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "A new verification code has been sent to your email"})
	}
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		session, err := auth.Login(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": session.Token, "user": session.User})
	}
}

func GetProfile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		user, err := auth.Profile(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

var profileFields = map[string]bool{"name": true, "phone": true, "address": true}

// UpdateProfile rejects the whole request when any key other than
// name, phone or address is present.
func UpdateProfile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		for key := range fields {
			if !profileFields[key] {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
				return
			}
		}
		var upd models.ProfileUpdate
		if err := json.Unmarshal(body, &upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
			return
		}
		user, err := auth.UpdateProfile(ctx, userID, upd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func GetUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := users.List(ctx, parsePage(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users":       result.Items,
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
		})
	}
}
