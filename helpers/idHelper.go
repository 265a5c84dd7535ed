package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderNumber returns a short human-facing order reference such as SB-1A2B3C4D.
func NewOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SB-" + strings.ToUpper(id[:8])
}

func NewRequestID() string {
	return uuid.NewString()
}
