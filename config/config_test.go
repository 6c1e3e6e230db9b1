package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soffit-quote/domain"
	"soffit-quote/service"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 5, cfg.RateLimit.SubmitMax)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.SubmitWindow)
	assert.Equal(t, 90, cfg.Retention.MaxAgeDays)
	assert.Equal(t, service.DefaultPricing(), cfg.Pricing)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialPricingOverride(t *testing.T) {
	path := writeConfig(t, `
pricing:
  labor_per_foot: 7.5
  unit_costs:
    nails: 15
  service_multipliers:
    repair: 0.9
rate_limit:
  submit_window: 5m
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7.5, cfg.Pricing.LaborPerFoot)
	assert.Equal(t, 15.0, cfg.Pricing.UnitCosts.Nails)
	assert.Equal(t, 0.9, cfg.Pricing.ServiceMultipliers[domain.ServiceRepair])
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.SubmitWindow)

	// untouched fields keep their defaults
	assert.Equal(t, service.DefaultSoffitPanelAluminum, cfg.Pricing.UnitCosts.SoffitPanelAluminum)
	assert.Equal(t, 1.3, cfg.Pricing.ServiceMultipliers[domain.ServiceRemoveReplace])
	assert.Equal(t, service.DefaultTaxRate, cfg.Pricing.TaxRate)
	assert.Equal(t, service.DefaultVolumeDiscountThreshold, cfg.Pricing.VolumeDiscountThreshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RETENTION_DAYS", "30")

	cfg, err := Load(writeConfig(t, "http:\n  addr: \":7000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, 30, cfg.Retention.MaxAgeDays)
	assert.Equal(t, 30*24*time.Hour, cfg.RetentionMaxAge())
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "pricing: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	cfg.Retention.Cron = "every tuesday"
	assert.Error(t, cfg.Validate())

	cfg.Retention.Cron = "@daily"
	assert.NoError(t, cfg.Validate())

	cfg.Pricing.TaxRate = -0.1
	assert.Error(t, cfg.Validate())
}
