package states

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// StartingBalance is the credit every user opens an account with.
const StartingBalance int64 = 100

// ErrInsufficientFunds is returned by Transfer when the payer cannot cover
// the amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Ledger tracks user balances by user id. The console is the bank and pays
// without limit.
type Ledger struct {
	mut      sync.Mutex
	balances map[string]int64
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]int64)}
}

// Balance returns the balance of id, opening the account if needed.
func (l *Ledger) Balance(id string) int64 {
	l.mut.Lock()
	defer l.mut.Unlock()
	return l.balance(id)
}

func (l *Ledger) balance(id string) int64 {
	b, ok := l.balances[id]
	if !ok {
		b = StartingBalance
		l.balances[id] = b
	}
	return b
}

// Transfer moves amount from payer to payee. An empty payer is the bank.
func (l *Ledger) Transfer(payer, payee string, amount int64) error {
	l.mut.Lock()
	defer l.mut.Unlock()
	if payer != "" {
		if l.balance(payer) < amount {
			return errors.Wrapf(ErrInsufficientFunds, "balance %d, need %d", l.balance(payer), amount)
		}
		l.balances[payer] -= amount
	}
	l.balances[payee] = l.balance(payee) + amount
	return nil
}
