package ledger

import (
	"testing"

	"money_tracker/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s))
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{name: "no transactions", entries: nil, want: "0.00"},
		{name: "single income", entries: []Entry{{domain.TransactionIncome, money("150.00")}}, want: "150.00"},
		{
			name: "income then expense",
			entries: []Entry{
				{domain.TransactionIncome, money("150.00")},
				{domain.TransactionExpense, money("40.00")},
			},
			want: "110.00",
		},
		{name: "expense only goes negative", entries: []Entry{{domain.TransactionExpense, money("12.34")}}, want: "-12.34"},
		{
			name: "no float drift",
			entries: []Entry{
				{domain.TransactionIncome, money("0.10")},
				{domain.TransactionIncome, money("0.20")},
				{domain.TransactionExpense, money("0.30")},
			},
			want: "0.00",
		},
		{name: "unknown type ignored", entries: []Entry{{domain.TransactionType("transfer"), money("99.00")}}, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(tt.entries)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBalanceMatchesIncomeMinusExpense(t *testing.T) {
	var entries []Entry
	income, expense := decimal.Zero, decimal.Zero
	for i := 1; i <= 50; i++ {
		amt := decimal.New(int64(i*137), -2)
		if i%3 == 0 {
			entries = append(entries, Entry{domain.TransactionExpense, domain.NewMoney(amt)})
			expense = expense.Add(amt)
		} else {
			entries = append(entries, Entry{domain.TransactionIncome, domain.NewMoney(amt)})
			income = income.Add(amt)
		}
		assert.True(t, Balance(entries).Equal(income.Sub(expense)), "after %d entries", i)
	}
}

func TestEntriesOf(t *testing.T) {
	txs := []domain.Transaction{
		{ID: 1, Type: domain.TransactionIncome, Amount: money("5.00")},
		{ID: 2, Type: domain.TransactionExpense, Amount: money("2.50")},
	}

	entries := EntriesOf(txs)

	assert.Len(t, entries, 2)
	assert.Equal(t, "2.50", Balance(entries).String())
}

func TestTotal(t *testing.T) {
	assert.Equal(t, "0.00", Total(nil).String())
	assert.Equal(t, "107.66", Total([]domain.Money{money("110.00"), money("-12.34"), money("10")}).String())
}
