package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/coins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vending.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VENDING_CONFIG", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	require.Len(t, cfg.Products, 4)
	assert.Equal(t, ProductConfig{Name: "Coffee", Price: "1.40", Portions: 14}, cfg.Products[1])

	m, err := cfg.Machine()
	require.NoError(t, err)
	assert.Equal(t, coins.EUR, m.Curr())
	assert.Equal(t, "EUR [1.00×8 0.50×15 0.20×10 0.10×20]", m.Available().String())
	slot, ok := m.Slot(1, 1)
	require.True(t, ok)
	assert.Equal(t, "Soup", slot.Product.Name)
	assert.Equal(t, "EUR 1.30", slot.Product.Price.String())

	user, err := cfg.UserWallet()
	require.NoError(t, err)
	assert.Equal(t, "EUR [1.00×∞ 0.50×∞ 0.20×∞ 0.10×∞]", user.String())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("VENDING_CONFIG", "")
	t.Setenv("VENDING_LOG_LEVEL", "DEBUG")
	t.Setenv("VENDING_LOG_FILE", "/tmp/vending.log")
	t.Setenv("VENDING_WIDTH", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/vending.log", cfg.LogFile)
	assert.Equal(t, 4, cfg.Width)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
currency: JPY
width: 1
products:
  - name: Tea
    price: "150"
    portions: 3
pool:
  - coin: JPY 100
    quantity: 2
  - coin: JPY 50
    quantity: unbounded
user:
  - coin: JPY 500
    quantity: 1
log_level: warn
`)
	t.Setenv("VENDING_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "JPY", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)

	m, err := cfg.Machine()
	require.NoError(t, err)
	assert.Equal(t, "JPY [100×2 50×∞]", m.Available().String())

	user, err := cfg.UserWallet()
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, m.InsertCoin(ctx, user, coins.Yen500))
	r, err := m.Buy(ctx, user, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "JPY [100×2 50×3]", r.Change.String())
}

func TestLoad_Error(t *testing.T) {
	tests := map[string]string{
		"no products": `
products: []
`,
		"zero width": `
width: 0
`,
		"log level": `
log_level: verbose
`,
		"missing price": `
products:
  - name: Tea
`,
		"missing coin": `
pool:
  - quantity: 3
`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("VENDING_CONFIG", writeConfig(t, content))
			_, err := Load()
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("VENDING_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConfig_Build(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Currency: "EUR",
			Width:    2,
			Products: []ProductConfig{{Name: "Candy", Price: "1.00", Portions: 1}},
			Pool:     []CoinConfig{{Coin: "EUR 1", Quantity: "3"}},
			User:     []CoinConfig{{Coin: "EUR 0.50", Quantity: "∞"}},
		}
	}

	t.Run("success", func(t *testing.T) {
		cfg := valid()
		cfg.Pool = nil
		m, err := cfg.Machine()
		require.NoError(t, err)
		assert.True(t, m.Available().IsEmpty())
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			modify func(*Config)
			want   error
		}{
			"currency":      {func(c *Config) { c.Currency = "EURO" }, coins.ErrUnknownCurrency},
			"price sign":    {func(c *Config) { c.Products[0].Price = "-1" }, coins.ErrSign},
			"pool coin":     {func(c *Config) { c.Pool[0].Coin = "EUR 0.30" }, coins.ErrUnknownCoin},
			"pool currency": {func(c *Config) { c.Pool[0].Coin = "USD 1" }, coins.ErrCurrencyMismatch},
			"pool quantity": {func(c *Config) { c.Pool[0].Quantity = "-3" }, coins.ErrInvalidQuantity},
			"user coin":     {func(c *Config) { c.User[0].Coin = "JPY 5" }, coins.ErrCurrencyMismatch},
			"user currency": {func(c *Config) { c.Currency = "USD"; c.Pool = nil }, coins.ErrCurrencyMismatch},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				cfg := valid()
				tt.modify(cfg)
				_, merr := cfg.Machine()
				_, uerr := cfg.UserWallet()
				err := merr
				if err == nil {
					err = uerr
				}
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("duplicate coin", func(t *testing.T) {
		cfg := valid()
		cfg.Pool = append(cfg.Pool, CoinConfig{Coin: "eur 1.00", Quantity: "1"})
		_, err := cfg.Machine()
		assert.Error(t, err)
	})
}
