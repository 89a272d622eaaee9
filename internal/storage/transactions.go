package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofinances/backend/internal/finance"
	"github.com/rs/zerolog/log"
)

const (
	// keyPrefix is followed by the identity ID
	keyPrefix = "@gofinances:transactions_user:"

	// LegacyKey holds one list for all users. It was written by an earlier
	// version of the registration and is only used with ScopeGlobal.
	LegacyKey = "@gofinances:transactions"
)

// Scope defines which key the transaction list of an identity is stored under.
type Scope string

const (
	ScopeIdentity Scope = "identity" // One list per identity
	ScopeGlobal   Scope = "global"   // Deprecated. One list shared by all identities
)

// ErrMalformedList is returned when the persisted list cannot be decoded.
var ErrMalformedList = errors.New("the stored transaction list is malformed")

// Key returns the storage key for the identity.
func (s Scope) Key(identity string) string {
	if s == ScopeGlobal {
		return LegacyKey
	}
	return keyPrefix + identity
}

// Transactions reads and writes transaction lists in a Store.
type Transactions struct {
	store Store
	scope Scope
}

// NewTransactions returns a repository storing lists in store under the
// keys of scope.
func NewTransactions(store Store, scope Scope) Transactions {
	if scope == "" {
		scope = ScopeIdentity
	}
	return Transactions{store: store, scope: scope}
}

// Load returns the transactions of the identity.
//
// A missing entry, a failed read and malformed JSON all result in an empty
// list. Failures are logged.
func (t Transactions) Load(ctx context.Context, identity string) []finance.Transaction {
	key := t.scope.Key(identity)

	value, err := t.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("reading transactions failed, using empty list")
		}
		return []finance.Transaction{}
	}

	transactions, err := decode(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored transactions are malformed, using empty list")
		return []finance.Transaction{}
	}

	return transactions
}

// Append adds the transaction to the end of the identity's list.
//
// If the stored list is malformed, nothing is written and ErrMalformedList
// is returned.
func (t Transactions) Append(ctx context.Context, identity string, transaction finance.Transaction) error {
	return t.store.Update(ctx, t.scope.Key(identity), func(current string, found bool) (string, error) {
		transactions := []finance.Transaction{}
		if found {
			var err error
			transactions, err = decode(current)
			if err != nil {
				return "", err
			}
		}

		transactions = append(transactions, transaction)

		out, err := json.Marshal(transactions)
		if err != nil {
			return "", fmt.Errorf("encoding transactions: %w", err)
		}
		return string(out), nil
	})
}

// Clear deletes all transactions of the identity.
func (t Transactions) Clear(ctx context.Context, identity string) error {
	return t.store.Delete(ctx, t.scope.Key(identity))
}

func decode(value string) ([]finance.Transaction, error) {
	if value == "" || value == "null" {
		return []finance.Transaction{}, nil
	}

	var transactions []finance.Transaction
	if err := json.Unmarshal([]byte(value), &transactions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedList, err)
	}

	if transactions == nil {
		transactions = []finance.Transaction{}
	}
	return transactions, nil
}
