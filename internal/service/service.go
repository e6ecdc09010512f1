// Package service implements the bookkeeping operations: users, their wallets
// and the income/expense entries recorded against those wallets.
//
// Balances are derived from the persisted entries on every call and are never
// stored. Each operation performs one write or one read-plus-aggregate.
package service

import (
	"context"
	"errors"
	"strings"

	"money_tracker/internal/domain"
	"money_tracker/internal/ledger"
	"money_tracker/internal/repository"
	"money_tracker/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxAmount is the first value that no longer fits DECIMAL(15,2)
var maxAmount = decimal.New(1, 13)

// Bounds checked on the raw amount before any decimal arithmetic. Rescaling
// costs grow with the exponent, and "1e-200000000" is valid JSON.
const (
	maxAmountText     = 64  // Characters, so at most 64 significant digits
	minAmountExponent = -80 // Below this even 64 digits stay under 0.005
	maxAmountExponent = 13  // At or above this the value is at least 10^13
)

// Service wires the repositories together
type Service struct {
	users    *repository.UserRepository
	wallets  *repository.WalletRepository
	txs      *repository.TransactionRepository
	validate *validator.Validate
}

// New builds a Service over db
func New(db *gorm.DB) *Service {
	return &Service{
		users:    repository.NewUserRepository(db),
		wallets:  repository.NewWalletRepository(db),
		txs:      repository.NewTransactionRepository(db),
		validate: utils.NewValidator(),
	}
}

// CreateUserInput is the payload of CreateUser
type CreateUserInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`

	DecodeErrors *domain.ValidationError `json:"-" validate:"-"` // Problems found while decoding the request
}

// CreateUser validates and persists a new user
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if verr := s.check(in, in.DecodeErrors); !verr.Empty() {
		return nil, verr
	}
	taken, err := s.users.EmailExists(ctx, in.Email) // Friendly message before the index has to object
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, emailTaken()
	}

	u := &domain.User{Name: in.Name, Email: in.Email}
	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent insert can still win the unique index between the check and here
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, emailTaken()
		}
		return nil, err
	}
	return u, nil
}

// check applies the struct rules to in on top of the decode problems. A field that
// already failed to decode keeps only that message; a body that is not JSON hides
// every rule. The result is never nil.
func (s *Service) check(in any, decoded *domain.ValidationError) *domain.ValidationError {
	out := &domain.ValidationError{}
	if decoded != nil {
		if _, bad := decoded.Fields[domain.BodyField]; bad {
			return decoded
		}
		for field, msgs := range decoded.Fields {
			for _, m := range msgs {
				out.Add(field, m)
			}
		}
	}
	rules := utils.ValidateStruct(s.validate, in)
	if rules == nil {
		return out
	}
	for field, msgs := range rules.Fields {
		if _, done := out.Fields[field]; done {
			continue // Decode message is the more precise one
		}
		for _, m := range msgs {
			out.Add(field, m)
		}
	}
	return out
}

func emailTaken() *domain.ValidationError {
	return domain.NewValidationError("email", "The email has already been taken.")
}

// WalletSummary is one row of a user profile
type WalletSummary struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Balance domain.Money `json:"balance"`
}

// UserProfile is a user with every wallet balance and their sum
type UserProfile struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Wallets      []WalletSummary `json:"wallets"`
	TotalBalance domain.Money    `json:"total_balance"`
}

// GetUserProfile loads a user, its wallets and their derived balances
func (s *Service) GetUserProfile(ctx context.Context, userID uint) (*UserProfile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallets, err := s.wallets.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(wallets))
	for i, w := range wallets {
		ids[i] = w.ID
	}
	entries, err := s.txs.EntriesByWallets(ctx, ids)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Wallets: make([]WalletSummary, len(wallets)),
	}
	balances := make([]domain.Money, len(wallets))
	for i, w := range wallets {
		balances[i] = ledger.Balance(entries[w.ID])
		profile.Wallets[i] = WalletSummary{ID: w.ID, Name: w.Name, Balance: balances[i]}
	}
	profile.TotalBalance = ledger.Total(balances)
	return profile, nil
}

// CreateWalletInput is the payload of CreateWallet
type CreateWalletInput struct {
	Name string `json:"name" validate:"required,max=255"`

	DecodeErrors *domain.ValidationError `json:"-" validate:"-"` // Problems found while decoding the request
}

// CreatedWallet is a fresh wallet; its balance is always zero
type CreatedWallet struct {
	ID      uint         `json:"id"`
	UserID  uint         `json:"user_id"`
	Name    string       `json:"name"`
	Balance domain.Money `json:"balance"`
}

// CreateWallet opens an empty wallet for an existing user
func (s *Service) CreateWallet(ctx context.Context, userID uint, in CreateWalletInput) (*CreatedWallet, error) {
	u, err := s.users.FindByID(ctx, userID) // A missing user wins over any body problem
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if verr := s.check(in, in.DecodeErrors); !verr.Empty() {
		return nil, verr
	}

	w := &domain.Wallet{UserID: u.ID, Name: in.Name}
	if err := s.wallets.Create(ctx, w); err != nil {
		return nil, err
	}
	return &CreatedWallet{ID: w.ID, UserID: w.UserID, Name: w.Name, Balance: domain.ZeroMoney}, nil
}

// WalletDetail is a wallet with its balance and full history, newest first
type WalletDetail struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	UserID       uint                 `json:"user_id"`
	Balance      domain.Money         `json:"balance"`
	Transactions []domain.Transaction `json:"transactions"`
}

// GetWalletDetail loads a wallet and derives its balance from the loaded history
func (s *Service) GetWalletDetail(ctx context.Context, walletID uint) (*WalletDetail, error) {
	w, err := s.wallets.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.ListByWallet(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	return &WalletDetail{
		ID:           w.ID,
		Name:         w.Name,
		UserID:       w.UserID,
		Balance:      ledger.Balance(ledger.EntriesOf(txs)),
		Transactions: txs,
	}, nil
}

// AddTransactionInput is the payload of AddTransaction.
// Amount is the decimal text as received.
type AddTransactionInput struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      string  `json:"amount" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=500"`

	DecodeErrors *domain.ValidationError `json:"-" validate:"-"` // Problems found while decoding the request
}

// TransactionRecord is a stored entry plus the wallet balance right after it
type TransactionRecord struct {
	Transaction   domain.Transaction
	WalletBalance domain.Money
}

// AddTransaction records an income or expense and recomputes the wallet balance
func (s *Service) AddTransaction(ctx context.Context, walletID uint, in AddTransactionInput) (*TransactionRecord, error) {
	w, err := s.wallets.FindByID(ctx, walletID) // A missing wallet wins over any body problem
	if err != nil {
		return nil, err
	}

	in.Type = strings.TrimSpace(in.Type)
	in.Amount = strings.TrimSpace(in.Amount)
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		if trimmed == "" {
			in.Description = nil // Blank notes are stored as NULL
		} else {
			in.Description = &trimmed
		}
	}
	verr := s.check(in, in.DecodeErrors)
	var amount decimal.Decimal
	_, bodyFailed := verr.Fields[domain.BodyField]
	if _, failed := verr.Fields["amount"]; !failed && !bodyFailed {
		amount, err = ParseAmount(in.Amount)
		if err != nil {
			verr.Add("amount", err.Error())
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	t := &domain.Transaction{
		WalletID:    w.ID,
		Type:        domain.TransactionType(in.Type),
		Amount:      domain.NewMoney(amount),
		Description: in.Description,
	}
	if err := s.txs.Create(ctx, t); err != nil {
		return nil, err
	}

	entries, err := s.txs.Entries(ctx, w.ID) // Full re-read, never an incremental update
	if err != nil {
		return nil, err
	}
	return &TransactionRecord{Transaction: *t, WalletBalance: ledger.Balance(entries)}, nil
}

// amountError is a user-facing reason an amount was rejected
type amountError string

func (e amountError) Error() string { return string(e) }

// ParseAmount turns decimal text into a positive amount at storage precision.
// Extra fractional digits are rounded half away from zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) > maxAmountText {
		return decimal.Zero, amountError("The amount must be a number.")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, amountError("The amount must be a number.")
	}
	if !d.IsPositive() {
		return decimal.Zero, amountError("The amount must be greater than 0.")
	}
	// Decide extreme exponents without rescaling
	if d.Exponent() < minAmountExponent {
		return decimal.Zero, amountError("The amount must be at least 0.01.")
	}
	if d.Exponent() >= maxAmountExponent {
		return decimal.Zero, amountError("The amount may not be greater than 9999999999999.99.")
	}
	d = d.Round(domain.MoneyScale) // Half away from zero, as DECIMAL(15,2) stores it
	if !d.IsPositive() {
		return decimal.Zero, amountError("The amount must be at least 0.01.")
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, amountError("The amount may not be greater than 9999999999999.99.")
	}
	return d, nil
}
