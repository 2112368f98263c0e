package shared

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	MetricsAddr string
	Days        int
	Seed        uint64
	Deliveries  bool
	Payment     PaymentConfig
}

type PaymentConfig struct {
	Method string
	Card   string
	Email  string
	Amount float64
}

// Warning is an environment value Load ignored in favour of its default.
// Load runs before the logger exists, so the caller logs these.
type Warning struct {
	Key   string
	Value string
	Msg   string
}

func Load() (Config, []Warning) {
	var warns []Warning
	warn := func(k, v, msg string) {
		warns = append(warns, Warning{Key: k, Value: v, Msg: msg})
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
			warn(k, v, "not an integer, using default")
		}
		return def
	}
	atou := func(k string, def uint64) uint64 {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64); err == nil {
				return n
			}
			warn(k, v, "not an unsigned integer, using default")
		}
		return def
	}
	boolean := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
			warn(k, v, "not a boolean, using default")
		}
		return def
	}
	float := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && positive(f) {
				return f
			}
			warn(k, v, "not a positive number, using default")
		}
		return def
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		MetricsAddr: env("METRICS_ADDR", ""),
		Days:        atoi("SIM_DAYS", 5),
		Seed:        atou("SIM_SEED", 0),
		Deliveries:  boolean("SIM_DELIVERIES", false),
		Payment: PaymentConfig{
			Method: env("PAYMENT_METHOD", "card"),
			Card:   env("PAYMENT_CARD", "1234-5678-9876-5432"),
			Email:  env("PAYMENT_EMAIL", "visitor@example.com"),
			Amount: float("PAYMENT_AMOUNT", 100.0),
		},
	}
	if c.Days <= 0 {
		warn("SIM_DAYS", strconv.Itoa(c.Days), "must be positive, using 5")
		c.Days = 5
	}
	return c, warns
}

// fileConfig mirrors Config with optional fields so a file only
// overrides what it sets.
type fileConfig struct {
	AppEnv      *string `yaml:"app_env"`
	LogLevel    *string `yaml:"log_level"`
	MetricsAddr *string `yaml:"metrics_addr"`
	Days        *int    `yaml:"days"`
	Seed        *uint64 `yaml:"seed"`
	Deliveries  *bool   `yaml:"deliveries"`
	Payment     *struct {
		Method *string  `yaml:"method"`
		Card   *string  `yaml:"card"`
		Email  *string  `yaml:"email"`
		Amount *float64 `yaml:"amount"`
	} `yaml:"payment"`
}

// LoadFile overlays the YAML file at path on top of base.
func LoadFile(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}

	c := base
	set(&c.AppEnv, fc.AppEnv)
	set(&c.LogLevel, fc.LogLevel)
	set(&c.MetricsAddr, fc.MetricsAddr)
	set(&c.Days, fc.Days)
	set(&c.Seed, fc.Seed)
	set(&c.Deliveries, fc.Deliveries)
	if p := fc.Payment; p != nil {
		set(&c.Payment.Method, p.Method)
		set(&c.Payment.Card, p.Card)
		set(&c.Payment.Email, p.Email)
		set(&c.Payment.Amount, p.Amount)
	}

	if c.Days <= 0 {
		return base, fmt.Errorf("config %s: days must be positive, got %d", path, c.Days)
	}
	if !positive(c.Payment.Amount) {
		return base, fmt.Errorf("config %s: payment amount must be positive, got %v", path, c.Payment.Amount)
	}
	return c, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// positive reports whether f is a finite number above zero.
func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
