package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"shawon-burger/models"
)

const dateLayout = "2006-01-02"

var reviewHeader = []string{
	"Date", "Customer Name", "Customer Email", "Order Number",
	"Rating", "Comment", "Admin Response", "Response Date",
}

// WriteReviewsCSV writes one row per review in the order given.
func WriteReviewsCSV(w io.Writer, reviews []models.ReviewView, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reviewHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range reviews {
		if err := cw.Write(reviewRecord(r, loc)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func reviewRecord(r models.ReviewView, loc *time.Location) []string {
	var name, email, orderNumber, response, responseDate string
	if r.Author != nil {
		name, email = r.Author.Name, r.Author.Email
	}
	if r.OrderDetail != nil {
		orderNumber = r.OrderDetail.OrderNumber
	}
	if r.AdminResponse != nil {
		response = r.AdminResponse.Text
		if !r.AdminResponse.Responded_at.IsZero() {
			responseDate = r.AdminResponse.Responded_at.In(loc).Format(dateLayout)
		}
	}
	return []string{
		r.Created_at.In(loc).Format(dateLayout),
		name,
		email,
		orderNumber,
		strconv.Itoa(r.Rating),
		r.Comment,
		response,
		responseDate,
	}
}
