package ledger

import (
	"github.com/hance08/txengine/internal/model"
)

// Account holds one client's balances, its deposit/withdrawal history and
// the ids of the transactions currently under dispute.
//
// Disputes on withdrawals add to held without touching available or total,
// and their chargeback credits available without restoring total, so
// total == available + held does not hold after them.
type Account struct {
	clientID  model.ClientID
	available model.Money
	held      model.Money
	total     model.Money
	locked    bool

	transactions map[model.TxID]model.Transaction
	inDispute    map[model.TxID]struct{}
}

func NewAccount(clientID model.ClientID) *Account {
	return &Account{
		clientID:     clientID,
		transactions: make(map[model.TxID]model.Transaction),
		inDispute:    make(map[model.TxID]struct{}),
	}
}

func (a *Account) ClientID() model.ClientID { return a.clientID }
func (a *Account) Available() model.Money   { return a.available }
func (a *Account) Held() model.Money        { return a.held }
func (a *Account) Total() model.Money       { return a.total }
func (a *Account) Locked() bool             { return a.locked }

func (a *Account) InDispute(id model.TxID) bool {
	_, ok := a.inDispute[id]
	return ok
}

func (a *Account) Snapshot() model.AccountSnapshot {
	return model.AccountSnapshot{
		Client:    a.clientID,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Locked:    a.locked,
	}
}

// ProcessTransaction applies tx to the account. On error the account is left unchanged.
func (a *Account) ProcessTransaction(tx model.Transaction) error {
	if tx.ClientID() != a.clientID {
		return ErrNotForThisAccount
	}

	if a.locked {
		return ErrAccountLocked
	}

	switch t := tx.(type) {
	case model.Deposit:
		if err := a.deposit(t.Amount); err != nil {
			return err
		}
		a.transactions[t.ID] = t
	case model.Withdrawal:
		if err := a.withdraw(t.Amount); err != nil {
			return err
		}
		a.transactions[t.ID] = t
	case model.Dispute:
		return a.dispute(t.Ref)
	case model.Resolve:
		return a.resolve(t.Ref)
	case model.Chargeback:
		return a.chargeback(t.Ref)
	default:
		return ErrInvalidTransaction
	}

	return nil
}

func (a *Account) deposit(amount model.Money) error {
	available, ok := a.available.Add(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	total, ok := a.total.Add(amount)
	if !ok {
		return ErrBalanceOverflow
	}

	a.available = available
	a.total = total
	return nil
}

func (a *Account) withdraw(amount model.Money) error {
	if a.available < amount {
		return ErrInsufficientFunds
	}
	a.available -= amount
	a.total -= amount
	return nil
}

func (a *Account) dispute(id model.TxID) error {
	if a.InDispute(id) {
		return ErrAlreadyInDispute
	}

	tx, ok := a.transactions[id]
	if !ok {
		return ErrTransactionDoesNotExist
	}

	held, ok := a.held.Add(amountOf(tx))
	if !ok {
		return ErrBalanceOverflow
	}

	switch tx.(type) {
	case model.Deposit:
		a.available -= amountOf(tx)
		a.held = held
	case model.Withdrawal:
		a.held = held
	default:
		return ErrInvalidTransaction
	}

	a.inDispute[id] = struct{}{}
	return nil
}

func (a *Account) resolve(id model.TxID) error {
	tx, err := a.disputed(id)
	if err != nil {
		return err
	}

	switch t := tx.(type) {
	case model.Deposit:
		available, ok := a.available.Add(t.Amount)
		if !ok {
			return ErrBalanceOverflow
		}
		a.available = available
		a.held -= t.Amount
	case model.Withdrawal:
		a.held -= t.Amount
	default:
		return ErrInvalidTransaction
	}

	delete(a.inDispute, id)
	return nil
}

func (a *Account) chargeback(id model.TxID) error {
	tx, err := a.disputed(id)
	if err != nil {
		return err
	}

	switch t := tx.(type) {
	case model.Deposit:
		a.held -= t.Amount
		a.total -= t.Amount
	case model.Withdrawal:
		available, ok := a.available.Add(t.Amount)
		if !ok {
			return ErrBalanceOverflow
		}
		a.available = available
		a.held -= t.Amount
	default:
		return ErrInvalidTransaction
	}

	a.locked = true
	delete(a.inDispute, id)
	return nil
}

// disputed returns the stored transaction for id, which must be under dispute.
func (a *Account) disputed(id model.TxID) (model.Transaction, error) {
	if !a.InDispute(id) {
		return nil, ErrNotInDispute
	}

	tx, ok := a.transactions[id]
	if !ok {
		return nil, ErrTransactionDoesNotExist
	}
	return tx, nil
}

// amountOf is the amount of a stored deposit or withdrawal, zero otherwise.
func amountOf(tx model.Transaction) model.Money {
	switch t := tx.(type) {
	case model.Deposit:
		return t.Amount
	case model.Withdrawal:
		return t.Amount
	default:
		return 0
	}
}
