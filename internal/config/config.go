package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override file values,
// e.g. AUCTION_POSTGRES__DSN or AUCTION_SWEEP__INTERVAL.
const EnvPrefix = "AUCTION_"

type Config struct {
	App struct {
		HTTPAddr   string `koanf:"http_addr"`
		WebsiteURL string `koanf:"website_url"`
	} `koanf:"app"`

	Log struct {
		Level string `koanf:"level"`
		File  string `koanf:"file"`
	} `koanf:"log"`

	Postgres struct {
		DSN string `koanf:"dsn"`
	} `koanf:"postgres"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	NATS struct {
		URL           string `koanf:"url"`
		SubjectPrefix string `koanf:"subject_prefix"`
		QueueGroup    string `koanf:"queue_group"`
	} `koanf:"nats"`

	Bidding struct {
		Currency             string             `koanf:"currency"`
		MinIncrementPct      float64            `koanf:"min_increment_pct"`
		IntentTTL            time.Duration      `koanf:"intent_ttl"`
		VerificationCooldown time.Duration      `koanf:"verification_cooldown"`
		DepositPercentages   map[string]float64 `koanf:"deposit_percentages"`
		DefaultDepositPct    float64            `koanf:"default_deposit_pct"`
	} `koanf:"bidding"`

	Sweep struct {
		Interval      time.Duration `koanf:"interval"`
		RequireExpiry bool          `koanf:"require_expiry"`
	} `koanf:"sweep"`

	Payments struct {
		Provider      string        `koanf:"provider"`
		StripeKey     string        `koanf:"stripe_key"`
		WebhookSecret string        `koanf:"webhook_secret"`
		SuccessURL    string        `koanf:"success_url"`
		ReuseWindow   time.Duration `koanf:"reuse_window"`
	} `koanf:"payments"`
}

// Default returns the configuration used when no file or env override is present.
func Default() Config {
	var c Config
	c.App.HTTPAddr = ":8080"
	c.App.WebsiteURL = "http://localhost:3000"
	c.Log.Level = "info"
	c.NATS.SubjectPrefix = "notifications"
	c.NATS.QueueGroup = "mailer"
	c.Bidding.Currency = "USD"
	c.Bidding.MinIncrementPct = 5
	c.Bidding.IntentTTL = 15 * time.Minute
	c.Bidding.VerificationCooldown = 10 * time.Minute
	c.Bidding.DepositPercentages = map[string]float64{
		"FL": 5, "TX": 5,
		"NJ": 20, "DE": 20,
		"PA": 10, "WI": 10, "OH": 10, "AZ": 10, "CA": 10,
	}
	c.Bidding.DefaultDepositPct = 10
	c.Sweep.Interval = time.Minute
	c.Payments.Provider = "sandbox"
	c.Payments.ReuseWindow = 3 * time.Minute
	return c
}

// Load reads <dir>/base.yaml, then the optional <dir>/<envName>.yaml, then AUCTION_* variables.
// A missing base file is tolerated so the binary runs with defaults alone.
func Load(dir, envName string) (Config, error) {
	k := koanf.New(".")

	base := fmt.Sprintf("%s/base.yaml", dir)
	if _, err := os.Stat(base); err == nil {
		if err := k.Load(file.Provider(base), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load base: %w", err)
		}
	}

	if envName != "" {
		_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", dir, envName)), yaml.Parser())
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	pcts := make(map[string]float64, len(c.Bidding.DepositPercentages))
	// env keys arrive lower-cased and must win over the upper-cased file keys
	for state, pct := range c.Bidding.DepositPercentages {
		if state == strings.ToUpper(state) {
			pcts[strings.TrimSpace(state)] = pct
		}
	}
	for state, pct := range c.Bidding.DepositPercentages {
		if state != strings.ToUpper(state) {
			pcts[strings.ToUpper(strings.TrimSpace(state))] = pct
		}
	}
	c.Bidding.DepositPercentages = pcts
	c.Bidding.Currency = strings.ToUpper(c.Bidding.Currency)
	c.Payments.Provider = strings.ToLower(c.Payments.Provider)
}

func (c Config) Validate() error {
	var errs []error
	if c.App.HTTPAddr == "" {
		errs = append(errs, errors.New("app.http_addr required"))
	}
	if c.Bidding.MinIncrementPct <= 0 {
		errs = append(errs, errors.New("bidding.min_increment_pct must be positive"))
	}
	if c.Bidding.IntentTTL <= 0 {
		errs = append(errs, errors.New("bidding.intent_ttl must be positive"))
	}
	if c.Bidding.VerificationCooldown <= 0 {
		errs = append(errs, errors.New("bidding.verification_cooldown must be positive"))
	}
	if c.Bidding.DefaultDepositPct <= 0 || c.Bidding.DefaultDepositPct > 100 {
		errs = append(errs, errors.New("bidding.default_deposit_pct must be in (0, 100]"))
	}
	for state, pct := range c.Bidding.DepositPercentages {
		if pct <= 0 || pct > 100 {
			errs = append(errs, fmt.Errorf("bidding.deposit_percentages.%s must be in (0, 100]", state))
		}
	}
	if c.Sweep.Interval <= 0 {
		errs = append(errs, errors.New("sweep.interval must be positive"))
	}
	switch c.Payments.Provider {
	case "sandbox":
	case "stripe":
		if c.Payments.StripeKey == "" {
			errs = append(errs, errors.New("payments.stripe_key required for the stripe provider"))
		}
		if c.Payments.WebhookSecret == "" {
			errs = append(errs, errors.New("payments.webhook_secret required for the stripe provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("payments.provider %q unknown", c.Payments.Provider))
	}
	return errors.Join(errs...)
}

// DepositPercentage returns the deposit share for a listing in state.
func (c Config) DepositPercentage(state string) float64 {
	if pct, ok := c.Bidding.DepositPercentages[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return pct
	}
	return c.Bidding.DefaultDepositPct
}
