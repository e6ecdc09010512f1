// Package ledger derives balances from transaction entries.
// Nothing here reads or writes storage; callers pass the persisted rows.
package ledger

import (
	"money_tracker/internal/domain"

	"github.com/shopspring/decimal"
)

// Entry is the part of a transaction a balance depends on
type Entry struct {
	Type   domain.TransactionType
	Amount domain.Money
}

// Signed returns the amount with the sign implied by its type.
// Unknown types contribute nothing.
func (e Entry) Signed() decimal.Decimal {
	switch e.Type {
	case domain.TransactionIncome:
		return e.Amount.Decimal
	case domain.TransactionExpense:
		return e.Amount.Neg() // Stored as a magnitude, subtracts here
	default:
		return decimal.Zero
	}
}

// Balance folds entries into income minus expense
func Balance(entries []Entry) domain.Money {
	sum := decimal.Zero // Empty ledger is 0.00
	for _, e := range entries {
		sum = sum.Add(e.Signed()) // Exact, no float drift
	}
	return domain.NewMoney(sum)
}

// EntriesOf projects full transactions onto ledger entries
func EntriesOf(txs []domain.Transaction) []Entry {
	entries := make([]Entry, len(txs))
	for i, t := range txs {
		entries[i] = Entry{Type: t.Type, Amount: t.Amount}
	}
	return entries
}

// Total sums wallet balances into a user's total balance
func Total(balances []domain.Money) domain.Money {
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b.Decimal)
	}
	return domain.NewMoney(sum)
}
