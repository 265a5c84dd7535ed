package helpers

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		subtotal float64
		address  string
		want     float64
	}{
		{620, "GEC Circle", 30},
		{200, "Agrabad C/A", 30},
		{999.99, "Nasirabad Housing", 50},
		{300, "halishahar block b", 70},
		{300, "Khulshi", 100},
		{1000, "Khulshi", 0},
		{1500, "GEC Circle", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeliveryFee(tt.subtotal, tt.address), "%v %q", tt.subtotal, tt.address)
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(65000), MinorUnits(650))
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(10), MinorUnits(0.1))
}

func TestRangeStart(t *testing.T) {
	dhaka := time.FixedZone("BDT", 6*60*60)
	now := time.Date(2024, 3, 31, 15, 4, 5, 0, dhaka)

	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, dhaka), RangeStart(now, "today"))
	assert.Equal(t, time.Date(2024, 3, 24, 0, 0, 0, 0, dhaka), RangeStart(now, "week"))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, dhaka), RangeStart(now, "month"))
	assert.Equal(t, time.Date(2023, 3, 31, 0, 0, 0, 0, dhaka), RangeStart(now, "year"))
	assert.Equal(t, RangeStart(now, "today"), RangeStart(now, "decade"))
}

func TestOTP(t *testing.T) {
	code, err := GenerateOTP()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	assert.True(t, OTPMatches(code, code))
	assert.False(t, OTPMatches(code, "12345"))
	assert.False(t, OTPMatches("", ""))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, msg := VerifyPassword("secret123", hash)
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = VerifyPassword("wrong", hash)
	assert.False(t, ok)
	assert.Equal(t, "Invalid email or password", msg)
}

func TestTokenRoundTrip(t *testing.T) {
	maker := NewTokenMaker("secret", time.Hour)
	token, err := maker.GenerateToken("a@example.com", "Admin", "uid-1", "admin")
	require.NoError(t, err)

	claims, msg := maker.ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "uid-1", claims.Uid)
	assert.Equal(t, "admin", claims.User_role)

	_, msg = NewTokenMaker("other", time.Hour).ValidateToken(token)
	assert.Equal(t, "token is invalid", msg)
}

func TestNewOrderNumber(t *testing.T) {
	a, b := NewOrderNumber(), NewOrderNumber()
	assert.Regexp(t, regexp.MustCompile(`^SB-[0-9A-F]{8}$`), a)
	assert.NotEqual(t, a, b)
}
