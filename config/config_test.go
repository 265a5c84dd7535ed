package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("MAIL_PROVIDER", "SendGrid")

	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "shawon-burger", cfg.MongoDatabase)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.UTC, cfg.Timezone)
	assert.Equal(t, "sendgrid", cfg.MailProvider)
	assert.Equal(t, "bdt", cfg.PaymentCurrency)
}

func TestGetLocationRejectsLocal(t *testing.T) {
	for _, name := range []string{"Local", "local"} {
		t.Setenv("TIMEZONE", name)
		loc := getLocation("TIMEZONE", "UTC")
		assert.Equal(t, "UTC", loc.String(), name)
	}
}

func TestGetLocationFallsBackToUTC(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, getLocation("TIMEZONE", "Asia/Dhaka"))
}
