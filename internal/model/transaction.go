package model

import (
	"fmt"
	"strings"

	"github.com/hance08/txengine/internal/constants"
)

type Kind uint8

const (
	KindDeposit Kind = iota + 1
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return constants.KindDeposit
	case KindWithdrawal:
		return constants.KindWithdrawal
	case KindDispute:
		return constants.KindDispute
	case KindResolve:
		return constants.KindResolve
	case KindChargeback:
		return constants.KindChargeback
	default:
		return "unknown"
	}
}

// ParseKind accepts the kind name in any letter case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case constants.KindDeposit:
		return KindDeposit, nil
	case constants.KindWithdrawal:
		return KindWithdrawal, nil
	case constants.KindDispute:
		return KindDispute, nil
	case constants.KindResolve:
		return KindResolve, nil
	case constants.KindChargeback:
		return KindChargeback, nil
	default:
		return 0, fmt.Errorf("invalid transaction type '%s'", s)
	}
}

// Record is one decoded input row. Amount is nil when the row has none.
type Record struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount *Money
}

// Transaction is implemented by Deposit, Withdrawal, Dispute, Resolve and Chargeback.
type Transaction interface {
	ClientID() ClientID
	TxID() TxID
	Kind() Kind
}

type Deposit struct {
	Client ClientID
	ID     TxID
	Amount Money
}

func (d Deposit) ClientID() ClientID { return d.Client }
func (d Deposit) TxID() TxID         { return d.ID }
func (d Deposit) Kind() Kind         { return KindDeposit }

type Withdrawal struct {
	Client ClientID
	ID     TxID
	Amount Money
}

func (w Withdrawal) ClientID() ClientID { return w.Client }
func (w Withdrawal) TxID() TxID         { return w.ID }
func (w Withdrawal) Kind() Kind         { return KindWithdrawal }

// Dispute, Resolve and Chargeback reference an earlier deposit or withdrawal.
type Dispute struct {
	Client ClientID
	Ref    TxID
}

func (d Dispute) ClientID() ClientID { return d.Client }
func (d Dispute) TxID() TxID         { return d.Ref }
func (d Dispute) Kind() Kind         { return KindDispute }

type Resolve struct {
	Client ClientID
	Ref    TxID
}

func (r Resolve) ClientID() ClientID { return r.Client }
func (r Resolve) TxID() TxID         { return r.Ref }
func (r Resolve) Kind() Kind         { return KindResolve }

type Chargeback struct {
	Client ClientID
	Ref    TxID
}

func (c Chargeback) ClientID() ClientID { return c.Client }
func (c Chargeback) TxID() TxID         { return c.Ref }
func (c Chargeback) Kind() Kind         { return KindChargeback }
