package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"money_tracker/internal/config"
	"money_tracker/internal/db"
	"money_tracker/internal/domain"
	"money_tracker/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(&config.Config{DBDriver: db.DriverSQLite, DBName: db.MemoryDSN})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { db.Close(gdb) })
	return gdb
}

func amount(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s))
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	u := &domain.User{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, users.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	exists, err := users.EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = users.EmailExists(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	err = users.Create(ctx, &domain.User{Name: "Other", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = users.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWalletRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	wallets := NewWalletRepository(gdb)

	alice := &domain.User{Name: "Alice", Email: "a@x.com"}
	bob := &domain.User{Name: "Bob", Email: "b@x.com"}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	for _, name := range []string{"Cash", "Bank"} {
		require.NoError(t, wallets.Create(ctx, &domain.Wallet{UserID: alice.ID, Name: name}))
	}
	require.NoError(t, wallets.Create(ctx, &domain.Wallet{UserID: bob.ID, Name: "Savings"}))

	list, err := wallets.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cash", list[0].Name)
	assert.Equal(t, "Bank", list[1].Name)

	found, err := wallets.FindByID(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.UserID)

	_, err = wallets.FindByID(ctx, 12345)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "wallet", nf.Resource)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	wallets := NewWalletRepository(gdb)
	txs := NewTransactionRepository(gdb)

	u := &domain.User{Name: "Alice", Email: "a@x.com"}
	require.NoError(t, users.Create(ctx, u))
	cash := &domain.Wallet{UserID: u.ID, Name: "Cash"}
	bank := &domain.Wallet{UserID: u.ID, Name: "Bank"}
	empty := &domain.Wallet{UserID: u.ID, Name: "Empty"}
	require.NoError(t, wallets.Create(ctx, cash))
	require.NoError(t, wallets.Create(ctx, bank))
	require.NoError(t, wallets.Create(ctx, empty))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	note := "groceries"
	rows := []*domain.Transaction{
		{WalletID: cash.ID, Type: domain.TransactionIncome, Amount: amount("150.00"), CreatedAt: base},
		{WalletID: cash.ID, Type: domain.TransactionExpense, Amount: amount("40.00"), Description: &note, CreatedAt: base.Add(time.Minute)},
		{WalletID: bank.ID, Type: domain.TransactionIncome, Amount: amount("10.25"), CreatedAt: base},
		// Same timestamp as the previous cash row: id must decide the order
		{WalletID: cash.ID, Type: domain.TransactionIncome, Amount: amount("0.50"), CreatedAt: base.Add(time.Minute)},
	}
	for _, row := range rows {
		require.NoError(t, txs.Create(ctx, row))
	}

	list, err := txs.ListByWallet(ctx, cash.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, rows[3].ID, list[0].ID)
	assert.Equal(t, rows[1].ID, list[1].ID)
	assert.Equal(t, rows[0].ID, list[2].ID)
	require.NotNil(t, list[1].Description)
	assert.Equal(t, "groceries", *list[1].Description)
	assert.Equal(t, "40.00", list[1].Amount.String())

	none, err := txs.ListByWallet(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	entries, err := txs.Entries(ctx, cash.ID)
	require.NoError(t, err)
	assert.Equal(t, "110.50", ledger.Balance(entries).String())

	byWallet, err := txs.EntriesByWallets(ctx, []uint{cash.ID, bank.ID, empty.ID})
	require.NoError(t, err)
	assert.Equal(t, "110.50", ledger.Balance(byWallet[cash.ID]).String())
	assert.Equal(t, "10.25", ledger.Balance(byWallet[bank.ID]).String())
	assert.Equal(t, "0.00", ledger.Balance(byWallet[empty.ID]).String())

	nothing, err := txs.EntriesByWallets(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, nothing)
}
