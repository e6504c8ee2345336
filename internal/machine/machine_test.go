package machine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/govalues/coins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(amount string) coins.PositiveMoney {
	return coins.MustParsePositiveMoney("EUR", amount)
}

func defaultStacks() []*ProductStack {
	return []*ProductStack{
		NewProductStack(Product{Name: "Candy", Price: eur("1.00")}, 6),
		NewProductStack(Product{Name: "Coffee", Price: eur("1.40")}, 14),
		NewProductStack(Product{Name: "Beer", Price: eur("1.80")}, 11),
		NewProductStack(Product{Name: "Soup", Price: eur("1.30")}, 8),
	}
}

func defaultPool() *coins.Wallet {
	return coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{
		coins.EuroCent10: 20,
		coins.EuroCent20: 10,
		coins.EuroCent50: 15,
		coins.Euro1:      8,
	})
}

func newMachine(t *testing.T, stacks []*ProductStack, pool *coins.Wallet) *Machine {
	t.Helper()
	m, err := New(stacks, 2, pool, coins.NewEmptyWallet(coins.EUR))
	require.NoError(t, err)
	return m
}

func insert(t *testing.T, m *Machine, user *coins.Wallet, list ...coins.Coin) {
	t.Helper()
	for _, c := range list {
		require.NoError(t, m.InsertCoin(context.Background(), user, c))
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		assert.Equal(t, coins.EUR, m.Curr())
		assert.Equal(t, Size{Width: 2, Height: 2}, m.Size())
		assert.True(t, m.Inserted().IsEmpty())
	})

	t.Run("error", func(t *testing.T) {
		usd := NewProductStack(Product{Name: "Tea", Price: coins.MustParsePositiveMoney("USD", "1")}, 1)
		tests := map[string]struct {
			stacks    []*ProductStack
			width     int
			available *coins.Wallet
			inserted  *coins.Wallet
			want      error
		}{
			"no stacks":          {nil, 2, defaultPool(), coins.NewEmptyWallet(coins.EUR), ErrNoProducts},
			"product currency":   {[]*ProductStack{usd}, 2, defaultPool(), coins.NewEmptyWallet(coins.EUR), coins.ErrCurrencyMismatch},
			"inserted currency":  {defaultStacks(), 2, defaultPool(), coins.NewEmptyWallet(coins.USD), coins.ErrCurrencyMismatch},
			"available currency": {defaultStacks(), 2, coins.NewEmptyWallet(coins.JPY), coins.NewEmptyWallet(coins.EUR), coins.ErrCurrencyMismatch},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := New(tt.stacks, tt.width, tt.available, tt.inserted)
				assert.ErrorIs(t, err, tt.want)
			})
		}
		_, err := New(defaultStacks(), 0, defaultPool(), coins.NewEmptyWallet(coins.EUR))
		assert.Error(t, err)
	})
}

func TestMachine_Slots(t *testing.T) {
	stacks := defaultStacks()[:3]
	m := newMachine(t, stacks, defaultPool())
	assert.Equal(t, Size{Width: 2, Height: 2}, m.Size())

	slot, ok := m.Slot(1, 0)
	require.True(t, ok)
	assert.Equal(t, "Coffee", slot.Product.Name)
	assert.Equal(t, uint32(14), slot.Portions)

	slot, ok = m.Slot(0, 1)
	require.True(t, ok)
	assert.Equal(t, "Beer", slot.Product.Name)

	for _, loc := range [][2]int{{1, 1}, {2, 0}, {-1, 0}, {0, -1}, {0, 2}} {
		_, ok := m.Slot(loc[0], loc[1])
		assert.False(t, ok, "Slot(%v, %v)", loc[0], loc[1])
	}

	slots := m.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, Slot{X: 0, Y: 1, Product: stacks[2].Product(), Portions: 11}, slots[2])
}

func TestMachine_InsertCoin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{
			coins.Euro1:      coins.Unbounded,
			coins.EuroCent50: 1,
		})
		insert(t, m, user, coins.Euro1, coins.Euro1, coins.EuroCent50)

		assert.Equal(t, coins.Quantity(2), m.Inserted().Quantity(coins.Euro1))
		assert.Equal(t, coins.Quantity(1), m.Inserted().Quantity(coins.EuroCent50))
		assert.Equal(t, "EUR 2.50", m.Credit().String())
		assert.Equal(t, coins.Unbounded, user.Quantity(coins.Euro1))
		assert.Equal(t, coins.Quantity(0), user.Quantity(coins.EuroCent50))
	})

	t.Run("error", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{
			coins.Euro1: 1,
		})
		assert.ErrorIs(t, m.InsertCoin(ctx, user, coins.EuroCent20), ErrNoCoin)
		assert.ErrorIs(t, m.InsertCoin(ctx, user, coins.USCent25), coins.ErrCurrencyMismatch)
		assert.True(t, m.Inserted().IsEmpty())

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, m.InsertCoin(canceled, user, coins.Euro1), context.Canceled)
		assert.Equal(t, coins.Quantity(1), user.Quantity(coins.Euro1))
	})
}

func TestMachine_Release(t *testing.T) {
	m := newMachine(t, defaultStacks(), defaultPool())
	user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{
		coins.Euro1:      1,
		coins.EuroCent20: 2,
	})
	insert(t, m, user, coins.Euro1, coins.EuroCent20)

	released, err := m.Release(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "EUR [1.00×1 0.20×1]", released.String())
	assert.Equal(t, "EUR [1.00×1 0.20×2]", user.String())
	assert.True(t, m.Inserted().IsEmpty())
	assert.Equal(t, defaultPool().String(), m.Available().String())
}

func TestMachine_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("exact amount", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro1: 1})
		insert(t, m, user, coins.Euro1)

		r, err := m.Buy(ctx, user, 0, 0)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.Equal(t, "Candy", r.Product.Name)
		assert.Equal(t, "EUR 1.00", r.Paid.String())
		assert.True(t, r.Change.IsEmpty())

		slot, _ := m.Slot(0, 0)
		assert.Equal(t, uint32(5), slot.Portions)
		assert.Equal(t, coins.Quantity(9), m.Available().Quantity(coins.Euro1))
		assert.True(t, m.Inserted().IsEmpty())
		assert.True(t, user.IsEmpty())
	})

	t.Run("with change", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro2: 1})
		insert(t, m, user, coins.Euro2)

		r, err := m.Buy(ctx, user, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", r.Product.Name)
		assert.Equal(t, "EUR [0.50×1 0.10×1]", r.Change.String())
		assert.Equal(t, "EUR [0.50×1 0.10×1]", user.String())
		assert.Equal(t, "EUR [2.00×1 1.00×8 0.50×14 0.20×10 0.10×19]", m.Available().String())

		slot, _ := m.Slot(1, 0)
		assert.Equal(t, uint32(13), slot.Portions)
	})

	t.Run("inserted coins used for change", func(t *testing.T) {
		pool := coins.NewEmptyWallet(coins.EUR)
		m := newMachine(t, defaultStacks(), pool)
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{
			coins.EuroCent50: 2,
			coins.EuroCent10: 6,
		})
		insert(t, m, user, coins.EuroCent50, coins.EuroCent50, coins.EuroCent10, coins.EuroCent10, coins.EuroCent10, coins.EuroCent10, coins.EuroCent10)

		r, err := m.Buy(ctx, user, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, "Soup", r.Product.Name)
		assert.Equal(t, "EUR [0.10×2]", r.Change.String())
		assert.Equal(t, "EUR [0.10×3]", user.String())
		assert.Equal(t, "EUR [0.50×2 0.10×3]", m.Available().String())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro1: 1})
		insert(t, m, user, coins.Euro1)

		_, err := m.Buy(ctx, user, 0, 1)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, "EUR [1.00×1]", m.Inserted().String())
		assert.Equal(t, defaultPool().String(), m.Available().String())
		slot, _ := m.Slot(0, 1)
		assert.Equal(t, uint32(11), slot.Portions)
	})

	t.Run("no change", func(t *testing.T) {
		pool := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.EuroCent50: 1})
		m := newMachine(t, defaultStacks(), pool)
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro2: 1})
		insert(t, m, user, coins.Euro2)

		_, err := m.Buy(ctx, user, 1, 0)
		assert.ErrorIs(t, err, ErrNoChange)
		assert.Equal(t, "EUR [2.00×1]", m.Inserted().String())
		assert.Equal(t, "EUR [0.50×1]", m.Available().String())
		assert.True(t, user.IsEmpty())
		slot, _ := m.Slot(1, 0)
		assert.Equal(t, uint32(14), slot.Portions)

		released, err := m.Release(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "EUR [2.00×1]", released.String())
		assert.Equal(t, "EUR [2.00×1]", user.String())
	})

	t.Run("sold out", func(t *testing.T) {
		stacks := []*ProductStack{
			NewProductStack(Product{Name: "Candy", Price: eur("1.00")}, 1),
		}
		m := newMachine(t, stacks, defaultPool())
		user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro1: coins.Unbounded})
		insert(t, m, user, coins.Euro1)
		_, err := m.Buy(ctx, user, 0, 0)
		require.NoError(t, err)
		assert.False(t, m.HasProductsAvailable())

		insert(t, m, user, coins.Euro1)
		_, err = m.Buy(ctx, user, 0, 0)
		assert.ErrorIs(t, err, ErrSoldOut)
		assert.Equal(t, "EUR [1.00×1]", m.Inserted().String())
	})

	t.Run("no slot", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		user := coins.NewEmptyWallet(coins.EUR)
		_, err := m.Buy(ctx, user, 2, 0)
		assert.ErrorIs(t, err, ErrNoSlot)
	})

	t.Run("user currency", func(t *testing.T) {
		m := newMachine(t, defaultStacks(), defaultPool())
		_, err := m.Buy(ctx, coins.NewEmptyWallet(coins.USD), 0, 0)
		assert.ErrorIs(t, err, coins.ErrCurrencyMismatch)
	})
}

func TestMachine_Subscribe(t *testing.T) {
	ctx := context.Background()
	m := newMachine(t, defaultStacks(), defaultPool())
	var events []Event
	m.Subscribe(func(e Event) {
		events = append(events, e)
	})

	user := coins.MustNewWallet(coins.EUR, map[coins.Coin]coins.Quantity{coins.Euro1: 2})
	insert(t, m, user, coins.Euro1)
	_, err := m.Buy(ctx, user, 0, 1)
	require.Error(t, err)
	_ = m.InsertCoin(ctx, user, coins.EuroCent10)
	insert(t, m, user, coins.Euro1)
	_, err = m.Buy(ctx, user, 0, 1)
	require.NoError(t, err)
	_, err = m.Release(ctx, user)
	require.NoError(t, err)

	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EventKind{
		CoinInserted,
		PurchaseFailed,
		InsertFailed,
		CoinInserted,
		ProductBought,
		CoinsReleased,
	}, kinds)
	assert.ErrorIs(t, events[1].Err, ErrInsufficientFunds)
	assert.Equal(t, "Beer", events[1].Product.Name)
	assert.Equal(t, coins.EuroCent10, events[2].Coin)
	assert.Equal(t, "EUR [0.20×1]", events[4].Coins.String())
	assert.True(t, events[5].Coins.IsEmpty())
}

func TestProductStack_Take(t *testing.T) {
	s := NewProductStack(Product{Name: "Soup", Price: eur("1.30")}, 1)
	require.NoError(t, s.Take())
	assert.True(t, s.IsEmpty())
	assert.ErrorIs(t, s.Take(), ErrSoldOut)
	assert.Equal(t, uint32(0), s.Portions())
	assert.Equal(t, "Soup (EUR 1.30) ×0", s.String())
}
