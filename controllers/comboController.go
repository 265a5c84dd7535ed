package controllers

import (
	"net/http"

	"shawon-burger/models"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

// GetActiveCombos lists the deals a customer can order right now.
func GetActiveCombos(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		combos, err := catalog.ListAvailableCombos(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, combos)
	}
}

func GetCombos(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		combos, err := catalog.ListCombos(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"combos": combos})
	}
}

func CreateCombo(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.ComboDealRequest
		if !bindJSON(c, &req) {
			return
		}
		combo, err := catalog.CreateCombo(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, combo)
	}
}

func UpdateCombo(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "combo")
		if !ok {
			return
		}
		var upd models.ComboDealUpdate
		if !bindJSON(c, &upd) {
			return
		}
		combo, err := catalog.UpdateCombo(ctx, id, upd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, combo)
	}
}

func DeleteCombo(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "id", "combo")
		if !ok {
			return
		}
		if err := catalog.DeleteCombo(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Combo deal deleted successfully"})
	}
}
