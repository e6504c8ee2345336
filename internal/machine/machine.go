package machine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/coins"
)

var (
	// ErrNoProducts is returned when a machine is created without product stacks.
	ErrNoProducts = errors.New("no product stacks")

	// ErrNoSlot is returned when a location is outside the grid of a machine
	// or does not hold a product stack.
	ErrNoSlot = errors.New("no product at location")

	// ErrSoldOut is returned when a product stack has no portions left.
	ErrSoldOut = errors.New("sold out")

	// ErrNoCoin is returned when a user inserts a coin the user does not hold.
	ErrNoCoin = errors.New("coin not in wallet")

	// ErrInsufficientFunds is returned when the inserted coins do not cover
	// the price of a product.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoChange is returned when the machine cannot give exact change.
	ErrNoChange = errors.New("no exact change")
)

// Size is the number of columns and rows of the product grid.
type Size struct {
	Width, Height int
}

// Slot describes the product stack at a location of the grid.
type Slot struct {
	X, Y     int
	Product  Product
	Portions uint32
}

// Receipt describes a completed purchase.
type Receipt struct {
	ID      uuid.UUID
	Time    time.Time
	Product Product
	Paid    coins.PositiveMoney
	Change  *coins.Wallet
}

// Machine is a vending machine accepting coins of a single currency.
// Stacks are placed into the grid row by row, from left to right.
//
// A Machine is safe for concurrent use. User wallets passed to its methods
// are not protected and must not be shared between goroutines.
type Machine struct {
	mu        sync.Mutex
	curr      coins.Currency
	width     int
	stacks    []*ProductStack
	available *coins.Wallet
	inserted  *coins.Wallet
	listeners []func(Event)
}

// New returns a machine with the given stacks placed into a grid with width
// columns. The machine keeps the wallets and modifies them.
//
// New returns an error if:
//   - stacks is empty;
//   - width is not positive;
//   - the currencies of the products and wallets differ.
func New(stacks []*ProductStack, width int, available, inserted *coins.Wallet) (*Machine, error) {
	if len(stacks) == 0 {
		return nil, fmt.Errorf("creating machine: %w", ErrNoProducts)
	}
	if width < 1 {
		return nil, fmt.Errorf("creating machine: grid width %v is not positive", width)
	}
	curr := available.Curr()
	if inserted.Curr() != curr {
		return nil, fmt.Errorf("creating machine: inserted coins in %v, available coins in %v: %w", inserted.Curr(), curr, coins.ErrCurrencyMismatch)
	}
	for _, s := range stacks {
		if s.Product().Price.Curr() != curr {
			return nil, fmt.Errorf("creating machine: %v in %v machine: %w", s.Product(), curr, coins.ErrCurrencyMismatch)
		}
	}
	return &Machine{
		curr:      curr,
		width:     width,
		stacks:    append([]*ProductStack(nil), stacks...),
		available: available,
		inserted:  inserted,
	}, nil
}

// Curr returns the currency accepted by the machine.
func (m *Machine) Curr() coins.Currency {
	return m.curr
}

// Size returns the dimensions of the product grid.
func (m *Machine) Size() Size {
	return Size{
		Width:  m.width,
		Height: (len(m.stacks) + m.width - 1) / m.width,
	}
}

func (m *Machine) stack(x, y int) (*ProductStack, bool) {
	if x < 0 || x >= m.width || y < 0 {
		return nil, false
	}
	i := y*m.width + x
	if i >= len(m.stacks) {
		return nil, false
	}
	return m.stacks[i], true
}

// Slot returns the product stack at column x and row y.
func (m *Machine) Slot(x, y int) (Slot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stack(x, y)
	if !ok {
		return Slot{}, false
	}
	return Slot{X: x, Y: y, Product: s.Product(), Portions: s.Portions()}, true
}

// Slots returns all product stacks in grid order.
func (m *Machine) Slots() []Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	slots := make([]Slot, len(m.stacks))
	for i, s := range m.stacks {
		slots[i] = Slot{
			X:        i % m.width,
			Y:        i / m.width,
			Product:  s.Product(),
			Portions: s.Portions(),
		}
	}
	return slots
}

// HasProductsAvailable returns true if any stack has portions left.
func (m *Machine) HasProductsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stacks {
		if !s.IsEmpty() {
			return true
		}
	}
	return false
}

// Available returns a copy of the coins the machine can give as change.
func (m *Machine) Available() *coins.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available.Clone()
}

// Inserted returns a copy of the coins inserted by the user.
func (m *Machine) Inserted() *coins.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserted.Clone()
}

// Credit returns the total value of the inserted coins.
func (m *Machine) Credit() coins.PositiveMoney {
	m.mu.Lock()
	defer m.mu.Unlock()
	total, _ := m.inserted.Total()
	return total
}

// Subscribe registers fn to be called after every operation of the machine.
// Listeners are called in registration order, without holding the machine lock.
func (m *Machine) Subscribe(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) notify(e Event) {
	m.mu.Lock()
	listeners := append(([]func(Event))(nil), m.listeners...)
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(e)
	}
}

// InsertCoin moves one coin c from the user wallet into the machine.
// An unbounded supply of c in the user wallet is not decreased.
//
// InsertCoin returns an error if the user does not hold c or if c is
// not in the currency of the machine.
func (m *Machine) InsertCoin(ctx context.Context, user *coins.Wallet, c coins.Coin) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := m.insertCoin(user, c)
	if err != nil {
		m.notify(Event{Kind: InsertFailed, Coin: c, Err: err})
		return err
	}
	m.notify(Event{Kind: CoinInserted, Coin: c})
	return nil
}

func (m *Machine) insertCoin(user *coins.Wallet, c coins.Coin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.Curr() != m.curr {
		return fmt.Errorf("inserting %v into %v machine: %w", c, m.curr, coins.ErrCurrencyMismatch)
	}
	ok, err := user.TransferOneCoin(m.inserted, c)
	if err != nil {
		return fmt.Errorf("inserting %v: %w", c, err)
	}
	if !ok {
		return fmt.Errorf("inserting %v: %w", c, ErrNoCoin)
	}
	return nil
}

// Release moves all inserted coins back to the user wallet and
// returns them as a new wallet.
func (m *Machine) Release(ctx context.Context, user *coins.Wallet) (*coins.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	released, err := m.release(user)
	if err != nil {
		return nil, err
	}
	m.notify(Event{Kind: CoinsReleased, Coins: released})
	return released, nil
}

func (m *Machine) release(user *coins.Wallet) (*coins.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	released := m.inserted.Clone()
	if err := m.inserted.TransferAllCoins(user); err != nil {
		return nil, fmt.Errorf("releasing coins: %w", err)
	}
	return released, nil
}

// Buy sells one portion of the product at column x and row y.
// The inserted coins are added to the available coins first, so they can
// be used for change. The change is moved to the user wallet.
//
// If exact change cannot be given, the inserted coins are moved back,
// the portion is not taken and Buy returns an error wrapping [ErrNoChange].
// If the inserted coins do not cover the price, nothing is moved and
// Buy returns an error wrapping [ErrInsufficientFunds].
func (m *Machine) Buy(ctx context.Context, user *coins.Wallet, x, y int) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	r, err := m.buy(user, x, y)
	if err != nil {
		m.notify(Event{Kind: PurchaseFailed, Product: r.Product, Err: err})
		return Receipt{}, err
	}
	m.notify(Event{Kind: ProductBought, Product: r.Product, Coins: r.Change})
	return r, nil
}

func (m *Machine) buy(user *coins.Wallet, x, y int) (Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stack, ok := m.stack(x, y)
	if !ok {
		return Receipt{}, fmt.Errorf("buying at (%v, %v): %w", x, y, ErrNoSlot)
	}
	product := stack.Product()
	r := Receipt{Product: product}
	if stack.IsEmpty() {
		return r, fmt.Errorf("buying %v: %w", product.Name, ErrSoldOut)
	}
	if user.Curr() != m.curr {
		return r, fmt.Errorf("buying %v: user wallet in %v: %w", product.Name, user.Curr(), coins.ErrCurrencyMismatch)
	}

	paid, _ := m.inserted.Total()
	diff, err := paid.Sub(product.Price.Money())
	if err != nil {
		return r, fmt.Errorf("buying %v: %w", product.Name, err)
	}
	change, err := diff.AssumePositive()
	if err != nil {
		return r, fmt.Errorf("buying %v: inserted %v, price %v: %w", product.Name, paid, product.Price, ErrInsufficientFunds)
	}

	inserted := m.inserted.Clone()
	if err := m.inserted.TransferAllCoins(m.available); err != nil {
		return r, fmt.Errorf("buying %v: %w", product.Name, err)
	}
	given, ok, err := m.available.ChangeBack(user, change)
	if err != nil || !ok {
		m.restore(inserted)
		if err != nil {
			return r, fmt.Errorf("buying %v: %w", product.Name, err)
		}
		return r, fmt.Errorf("buying %v: change %v: %w", product.Name, change, ErrNoChange)
	}
	if err := stack.Take(); err != nil {
		panic(fmt.Sprintf("buying %v: %v", product.Name, err))
	}

	r.ID = uuid.New()
	r.Time = time.Now().UTC()
	r.Paid = paid
	r.Change = given
	return r, nil
}

// restore moves the coins of a failed purchase from the available coins
// back to the inserted coins.
func (m *Machine) restore(inserted *coins.Wallet) {
	for _, c := range inserted.Coins() {
		for q := inserted.Quantity(c); q > 0; q-- {
			ok, err := m.available.TransferOneCoin(m.inserted, c)
			if err != nil || !ok {
				panic(fmt.Sprintf("restoring inserted %v: %v", c, err))
			}
		}
	}
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine: %v, %v stacks", m.curr, len(m.stacks))
}
