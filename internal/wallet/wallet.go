// Package wallet tracks the coin balance on top of settings storage.
package wallet

import (
	"sync"

	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/settings"
)

// Wallet is the coin balance for the device. Balance changes broadcast
// KindBalanceChanged with the new balance.
type Wallet struct {
	mu       sync.Mutex
	settings *settings.DB
	bus      *bus.Bus
	logger   *zap.Logger
}

// New opens the wallet, granting the initial bonus when no balance was ever
// stored.
func New(st *settings.DB, b *bus.Bus, logger *zap.Logger, initialBonus int) *Wallet {
	w := &Wallet{settings: st, bus: b, logger: logger}

	ok, err := st.Has(settings.KeyWalletBalance)
	if err != nil {
		logger.Error("probe wallet balance", zap.Error(err))
		return w
	}
	if !ok {
		w.setBalance(initialBonus)
	}
	return w
}

// Balance returns the current coin balance.
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balanceLocked()
}

// Add credits coins to the balance.
func (w *Wallet) Add(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setBalanceLocked(w.balanceLocked() + n)
}

// Spend debits coins and reports whether the balance covered it. An
// insufficient balance leaves the wallet untouched.
func (w *Wallet) Spend(n int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	balance := w.balanceLocked()
	if balance < n {
		return false
	}
	w.setBalanceLocked(balance - n)
	return true
}

func (w *Wallet) balanceLocked() int {
	balance, err := w.settings.Int(settings.KeyWalletBalance)
	if err != nil {
		w.logger.Error("load wallet balance", zap.Error(err))
	}
	return balance
}

func (w *Wallet) setBalance(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setBalanceLocked(n)
}

func (w *Wallet) setBalanceLocked(n int) {
	if err := w.settings.SetInt(settings.KeyWalletBalance, n); err != nil {
		w.logger.Error("persist wallet balance", zap.Error(err))
	}
	w.bus.Publish(bus.Event{Kind: bus.KindBalanceChanged, Payload: n})
}
