package shared_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_simulation/internal/shared"
)

var simEnv = []string{
	"APP_ENV", "LOG_LEVEL", "METRICS_ADDR", "SIM_DAYS", "SIM_SEED", "SIM_DELIVERIES",
	"PAYMENT_METHOD", "PAYMENT_CARD", "PAYMENT_EMAIL", "PAYMENT_AMOUNT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range simEnv {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, warns := shared.Load()
	assert.Empty(t, warns)
	assert.Equal(t, "prod", c.AppEnv)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.MetricsAddr)
	assert.Equal(t, 5, c.Days)
	assert.Zero(t, c.Seed)
	assert.False(t, c.Deliveries)
	assert.Equal(t, shared.PaymentConfig{
		Method: "card",
		Card:   "1234-5678-9876-5432",
		Email:  "visitor@example.com",
		Amount: 100,
	}, c.Payment)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SIM_DAYS", "3")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("SIM_DELIVERIES", "true")
	t.Setenv("PAYMENT_METHOD", "wallet")
	t.Setenv("PAYMENT_EMAIL", "guest@hotel.test")
	t.Setenv("PAYMENT_AMOUNT", "12.5")

	c, warns := shared.Load()
	assert.Empty(t, warns)
	assert.Equal(t, "dev", c.AppEnv)
	assert.Equal(t, 3, c.Days)
	assert.Equal(t, uint64(42), c.Seed)
	assert.True(t, c.Deliveries)
	assert.Equal(t, "wallet", c.Payment.Method)
	assert.Equal(t, "guest@hotel.test", c.Payment.Email)
	assert.Equal(t, 12.5, c.Payment.Amount)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_DAYS", "many")
	t.Setenv("SIM_DELIVERIES", "sometimes")
	t.Setenv("PAYMENT_AMOUNT", "-3")
	c, warns := shared.Load()
	assert.Equal(t, 5, c.Days)
	assert.False(t, c.Deliveries)
	assert.Equal(t, 100.0, c.Payment.Amount)
	assert.Equal(t, []shared.Warning{
		{Key: "SIM_DAYS", Value: "many", Msg: "not an integer, using default"},
		{Key: "SIM_DELIVERIES", Value: "sometimes", Msg: "not a boolean, using default"},
		{Key: "PAYMENT_AMOUNT", Value: "-3", Msg: "not a positive number, using default"},
	}, warns)

	t.Setenv("SIM_DAYS", "0")
	c, warns = shared.Load()
	assert.Equal(t, 5, c.Days)
	require.Len(t, warns, 3)
	assert.Equal(t, "SIM_DAYS", warns[2].Key)
	assert.Equal(t, "0", warns[2].Value)
}

func TestLoad_SeedMustBeUnsigned(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_SEED", "-1")
	c, warns := shared.Load()
	assert.Zero(t, c.Seed)
	require.Len(t, warns, 1)
	assert.Equal(t, shared.Warning{Key: "SIM_SEED", Value: "-1", Msg: "not an unsigned integer, using default"}, warns[0])

	t.Setenv("SIM_SEED", "18446744073709551615")
	c, warns = shared.Load()
	assert.Equal(t, uint64(18446744073709551615), c.Seed)
	assert.Empty(t, warns)
}

func TestLoad_AmountMustBeFinite(t *testing.T) {
	clearEnv(t)
	for _, v := range []string{"Inf", "+Inf", "-Inf", "NaN", "1e400"} {
		t.Setenv("PAYMENT_AMOUNT", v)
		c, warns := shared.Load()
		assert.Equal(t, 100.0, c.Payment.Amount, v)
		assert.Len(t, warns, 1, v)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hotelsim.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile_Overlay(t *testing.T) {
	clearEnv(t)
	base, _ := shared.Load()
	p := writeFile(t, `
days: 2
deliveries: true
payment:
  method: wallet
  email: yaml@hotel.test
`)
	c, err := shared.LoadFile(p, base)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Days)
	assert.True(t, c.Deliveries)
	assert.Equal(t, "wallet", c.Payment.Method)
	assert.Equal(t, "yaml@hotel.test", c.Payment.Email)
	// untouched keys keep the base values
	assert.Equal(t, base.Payment.Card, c.Payment.Card)
	assert.Equal(t, base.Payment.Amount, c.Payment.Amount)
	assert.Equal(t, base.AppEnv, c.AppEnv)
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnv(t)
	base, _ := shared.Load()

	_, err := shared.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), base)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = shared.LoadFile(writeFile(t, "days: [1, 2"), base)
	assert.ErrorContains(t, err, "parse config")

	_, err = shared.LoadFile(writeFile(t, "days: 0"), base)
	assert.ErrorContains(t, err, "days must be positive")

	_, err = shared.LoadFile(writeFile(t, "payment:\n  amount: -1\n"), base)
	assert.ErrorContains(t, err, "payment amount must be positive")

	for _, v := range []string{".inf", "-.inf", ".nan"} {
		_, err = shared.LoadFile(writeFile(t, "payment:\n  amount: "+v+"\n"), base)
		assert.ErrorContains(t, err, "payment amount must be positive", v)
	}
}
