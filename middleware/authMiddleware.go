package middleware

import (
	"net/http"
	"strings"

	"shawon-burger/helpers"
	"shawon-burger/models"

	"github.com/gin-gonic/gin"
)

// TokenValidator is satisfied by helpers.TokenMaker.
type TokenValidator interface {
	ValidateToken(signedToken string) (*helpers.SignedDetails, string)
}

// Authentication accepts "Authorization: Bearer <jwt>" and, for older clients,
// the bare "token" header.
func Authentication(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := bearerToken(c.Request)
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		authenticate(c, tokens, clientToken)
	}
}

// WebSocketAuthentication reads the token from the query string since browsers
// cannot set headers on a websocket handshake.
func WebSocketAuthentication(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Query("token")
		if clientToken == "" {
			clientToken = bearerToken(c.Request)
		}
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		authenticate(c, tokens, clientToken)
	}
}

func authenticate(c *gin.Context, tokens TokenValidator, clientToken string) {
	claims, msg := tokens.ValidateToken(clientToken)
	if msg != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}
	c.Set("email", claims.Email)
	c.Set("name", claims.Name)
	c.Set("uid", claims.Uid)
	c.Set("user_role", claims.User_role)
	c.Next()
}

// AdminOnly must run after Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only."})
			return
		}
		c.Next()
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(r.Header.Get("token"))
}
