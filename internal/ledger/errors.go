package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds       = errors.New("insufficient funds for transaction")
	ErrAccountLocked           = errors.New("account is locked")
	ErrInvalidTransaction      = errors.New("invalid transaction")
	ErrAlreadyInDispute        = errors.New("transaction is already in dispute")
	ErrNotInDispute            = errors.New("transaction not in dispute")
	ErrNotForThisAccount       = errors.New("transaction is not for this account")
	ErrTransactionDoesNotExist = errors.New("transaction does not exist")
)

// ErrBalanceOverflow is an ErrInvalidTransaction whose amount would push a balance past the Money range.
var ErrBalanceOverflow = fmt.Errorf("balance would overflow: %w", ErrInvalidTransaction)
