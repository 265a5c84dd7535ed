package controllers

import (
	"net/http"

	"shawon-burger/models"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

// GetMenu is the public storefront listing, optionally filtered by ?category=.
func GetMenu(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		items, err := catalog.ListMenu(ctx, models.MenuFilter{Category: c.Query("category")})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetMenuItems(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		items, err := catalog.ListMenu(ctx, models.MenuFilter{Category: c.Query("category")})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func CreateMenuItem(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var item models.MenuItem
		if !bindJSON(c, &item) {
			return
		}
		created, err := catalog.CreateMenuItem(ctx, item)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateMenuItem(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "menu item")
		if !ok {
			return
		}
		var upd models.MenuItemUpdate
		if !bindJSON(c, &upd) {
			return
		}
		item, err := catalog.UpdateMenuItem(ctx, id, upd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func UpdateMenuStock(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "menu item")
		if !ok {
			return
		}
		var body struct {
			InStock *bool `json:"inStock"`
		}
		if !bindJSON(c, &body) {
			return
		}
		if body.InStock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inStock is required"})
			return
		}
		item, err := catalog.SetStock(ctx, id, *body.InStock)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func UpdateMenuPrice(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "menu item")
		if !ok {
			return
		}
		var body struct {
			Price *float64 `json:"price"`
		}
		if !bindJSON(c, &body) {
			return
		}
		if body.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
			return
		}
		item, err := catalog.SetPrice(ctx, id, *body.Price)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteMenuItem(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "menu item")
		if !ok {
			return
		}
		if err := catalog.DeleteMenuItem(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
	}
}
