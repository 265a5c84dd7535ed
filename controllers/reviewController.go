package controllers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"shawon-burger/export"
	"shawon-burger/models"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

func CreateReview(reviews *services.ReviewService) gin.HandlerFunc {
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
		var req models.CreateReviewRequest
		if !bindJSON(c, &req) {
			return
		}
		review, err := reviews.Create(ctx, userID, orderID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func GetOrderReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		orderID, ok := paramID(c, "id", "order")
		if !ok {
			return
		}
		list, err := reviews.ListByOrder(ctx, orderID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func UpdateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		reviewID, ok := paramID(c, "id", "review")
		if !ok {
			return
		}
		var upd models.ReviewUpdate
		if !bindJSON(c, &upd) {
			return
		}
		review, err := reviews.Update(ctx, userID, reviewID, upd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func GetReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var filter models.ReviewFilter
		if raw := c.Query("rating"); raw != "" && raw != "all" {
			rating, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be a number"})
				return
			}
			filter.Rating = rating
		}
		result, err := reviews.List(ctx, filter, parsePage(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"reviews":     result.Items,
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
			"stats":       result.Stats,
		})
	}
}

func RespondToReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		adminID, ok := currentUserID(c)
		if !ok {
			return
		}
		reviewID, ok := paramID(c, "id", "review")
		if !ok {
			return
		}
		var req models.RespondRequest
		if !bindJSON(c, &req) {
			return
		}
		review, err := reviews.Respond(ctx, reviewID, adminID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func DeleteReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		reviewID, ok := paramID(c, "id", "review")
		if !ok {
			return
		}
		if err := reviews.Delete(ctx, reviewID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}

// ExportReviews renders the CSV in memory so a failure can still become a JSON error.
func ExportReviews(reviews *services.ReviewService, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		all, err := reviews.ExportAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := export.WriteReviewsCSV(&buf, all, loc); err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="reviews-export.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}
