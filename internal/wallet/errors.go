package wallet

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

var (
	// ErrInvalidMnemonic is returned when a phrase fails BIP-39 validation.
	ErrInvalidMnemonic = derivation.ErrInvalidMnemonic

	// ErrDerivation is returned when an account key cannot be derived.
	ErrDerivation = derivation.ErrDerivation

	// ErrStoreUnavailable is returned when the secret or metadata store fails.
	ErrStoreUnavailable = store.ErrUnavailable

	// ErrWrongPin is returned when a secret cannot be decrypted with the given
	// PIN. A corrupted ciphertext yields the same error.
	ErrWrongPin = errors.New("wrong pin")

	ErrNoWalletExists = errors.New("no wallet exists")

	// ErrOperationInProgress is returned by mutating operations while another
	// one runs and the manager is configured to reject instead of queue.
	ErrOperationInProgress = errors.New("operation in progress")

	// ErrResetPartialFailure is matched by the error of a reset that could not
	// delete every stored entry.
	ErrResetPartialFailure = errors.New("reset partially failed")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrEmptyPin           = errors.New("pin must not be empty")
)

// PartialResetError lists every deletion that failed during a reset.
type PartialResetError struct {
	Errors *multierror.Error
}

func (e *PartialResetError) Error() string {
	return ErrResetPartialFailure.Error() + ": " + e.Errors.Error()
}

func (e *PartialResetError) Is(target error) bool {
	return target == ErrResetPartialFailure
}

func (e *PartialResetError) Unwrap() error {
	return e.Errors.ErrorOrNil()
}
