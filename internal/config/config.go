package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/govalues/coins"
	"github.com/govalues/coins/internal/machine"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CoinConfig is a coin with its quantity, both in text form,
// for example {coin: "EUR 0.50", quantity: "15"}.
type CoinConfig struct {
	Coin     string `mapstructure:"coin" validate:"required"`
	Quantity string `mapstructure:"quantity" validate:"required"`
}

// ProductConfig is a product stack of the machine.
type ProductConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Price    string `mapstructure:"price" validate:"required"`
	Portions uint32 `mapstructure:"portions"`
}

// Config holds the configuration of a machine and the wallet of its user.
type Config struct {
	Currency string          `mapstructure:"currency" validate:"required"`
	Width    int             `mapstructure:"width" validate:"min=1"`
	Products []ProductConfig `mapstructure:"products" validate:"min=1,dive"`
	Pool     []CoinConfig    `mapstructure:"pool" validate:"dive"`
	User     []CoinConfig    `mapstructure:"user" validate:"dive"`
	LogFile  string          `mapstructure:"log_file"`
	LogLevel string          `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("config", "")
	v.SetDefault("currency", "EUR")
	v.SetDefault("width", 2)
	v.SetDefault("products", []map[string]any{
		{"name": "Candy", "price": "1.00", "portions": 6},
		{"name": "Coffee", "price": "1.40", "portions": 14},
		{"name": "Beer", "price": "1.80", "portions": 11},
		{"name": "Soup", "price": "1.30", "portions": 8},
	})
	v.SetDefault("pool", []map[string]any{
		{"coin": "EUR 0.10", "quantity": "20"},
		{"coin": "EUR 0.20", "quantity": "10"},
		{"coin": "EUR 0.50", "quantity": "15"},
		{"coin": "EUR 1.00", "quantity": "8"},
	})
	v.SetDefault("user", []map[string]any{
		{"coin": "EUR 0.10", "quantity": "unbounded"},
		{"coin": "EUR 0.20", "quantity": "unbounded"},
		{"coin": "EUR 0.50", "quantity": "unbounded"},
		{"coin": "EUR 1.00", "quantity": "unbounded"},
	})
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

// Load reads the configuration from the environment and an optional
// YAML file. Variables are prefixed with VENDING_, and a .env file in the
// working directory is loaded first if present.
// The file path is taken from VENDING_CONFIG.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("VENDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %v: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Curr returns the currency of the machine.
func (c *Config) Curr() (coins.Currency, error) {
	return coins.ParseCurr(c.Currency)
}

// Machine builds a vending machine with an empty inserted wallet.
func (c *Config) Machine() (*machine.Machine, error) {
	curr, err := c.Curr()
	if err != nil {
		return nil, err
	}
	stacks := make([]*machine.ProductStack, 0, len(c.Products))
	for _, p := range c.Products {
		price, err := coins.ParsePositiveMoney(curr.Code(), p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %v: %w", p.Name, err)
		}
		stacks = append(stacks, machine.NewProductStack(machine.Product{Name: p.Name, Price: price}, p.Portions))
	}
	pool, err := buildWallet(curr, c.Pool)
	if err != nil {
		return nil, fmt.Errorf("pool: %w", err)
	}
	return machine.New(stacks, c.Width, pool, coins.NewEmptyWallet(curr))
}

// UserWallet builds the wallet of the user.
func (c *Config) UserWallet() (*coins.Wallet, error) {
	curr, err := c.Curr()
	if err != nil {
		return nil, err
	}
	w, err := buildWallet(curr, c.User)
	if err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}
	return w, nil
}

func buildWallet(curr coins.Currency, entries []CoinConfig) (*coins.Wallet, error) {
	if len(entries) == 0 {
		return coins.NewEmptyWallet(curr), nil
	}
	m := make(map[coins.Coin]coins.Quantity, len(entries))
	for _, e := range entries {
		c, err := coins.ParseCoin(e.Coin)
		if err != nil {
			return nil, err
		}
		if _, ok := m[c]; ok {
			return nil, fmt.Errorf("coin %v listed twice", c)
		}
		q, err := coins.ParseQuantity(e.Quantity)
		if err != nil {
			return nil, fmt.Errorf("coin %v: %w", c, err)
		}
		m[c] = q
	}
	return coins.NewWallet(curr, m)
}
