package helpers

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const (
	OTPLength = 6
	OTPTTL    = 15 * time.Minute
)

// GenerateOTP returns a zero-padded numeric code of OTPLength digits.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func OTPMatches(expected, provided string) bool {
	if len(expected) != OTPLength || len(provided) != OTPLength {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
