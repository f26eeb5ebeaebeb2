package ledger

import (
	"fmt"
	"io"
	"sort"

	"github.com/hance08/txengine/internal/model"
	"github.com/pterm/pterm"
)

// State owns every account and applies the records of one feed in arrival order.
// Run is the only writer; nothing else may mutate accounts while it drains the feed.
type State struct {
	accounts map[model.ClientID]*Account
	feed     <-chan model.Record
	logger   *pterm.Logger
	stats    model.Stats
}

func NewState(feed <-chan model.Record, logger *pterm.Logger) *State {
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}

	return &State{
		accounts: make(map[model.ClientID]*Account),
		feed:     feed,
		logger:   logger,
	}
}

func (s *State) GetOrCreateAccount(clientID model.ClientID) *Account {
	acc, ok := s.accounts[clientID]
	if !ok {
		acc = NewAccount(clientID)
		s.accounts[clientID] = acc
	}
	return acc
}

func (s *State) Accounts() map[model.ClientID]*Account {
	return s.accounts
}

// Snapshot returns every account's balances ordered by client id.
func (s *State) Snapshot() []model.AccountSnapshot {
	snapshots := make([]model.AccountSnapshot, 0, len(s.accounts))
	for _, acc := range s.accounts {
		snapshots = append(snapshots, acc.Snapshot())
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Client < snapshots[j].Client
	})

	return snapshots
}

func (s *State) Stats() model.Stats {
	return s.stats
}

// ProcessOne routes rec to its client's account, creating the account if needed.
func (s *State) ProcessOne(rec model.Record) error {
	s.stats.Processed++

	acc := s.GetOrCreateAccount(rec.Client)

	tx, err := toTransaction(rec)
	if err == nil {
		err = acc.ProcessTransaction(tx)
	}

	if err != nil {
		s.stats.Rejected++
		return err
	}

	s.stats.Applied++
	return nil
}

// Run drains the feed until it is closed. A rejected record is logged and skipped.
func (s *State) Run() {
	for rec := range s.feed {
		if err := s.ProcessOne(rec); err != nil {
			s.logger.Warn("Error processing transaction", s.logger.Args(
				"client", rec.Client,
				"tx", rec.Tx,
				"type", rec.Kind.String(),
				"error", err.Error(),
			))
		}
	}

	s.logger.Debug("Transaction feed drained", s.logger.Args(
		"processed", s.stats.Processed,
		"applied", s.stats.Applied,
		"rejected", s.stats.Rejected,
	))
}

func toTransaction(rec model.Record) (model.Transaction, error) {
	switch rec.Kind {
	case model.KindDeposit, model.KindWithdrawal:
		if rec.Amount == nil {
			return nil, fmt.Errorf("%s %d has no amount: %w", rec.Kind, rec.Tx, ErrInvalidTransaction)
		}
		if *rec.Amount < 0 {
			return nil, fmt.Errorf("%s %d has a negative amount: %w", rec.Kind, rec.Tx, ErrInvalidTransaction)
		}
		if rec.Kind == model.KindDeposit {
			return model.Deposit{Client: rec.Client, ID: rec.Tx, Amount: *rec.Amount}, nil
		}
		return model.Withdrawal{Client: rec.Client, ID: rec.Tx, Amount: *rec.Amount}, nil
	case model.KindDispute:
		return model.Dispute{Client: rec.Client, Ref: rec.Tx}, nil
	case model.KindResolve:
		return model.Resolve{Client: rec.Client, Ref: rec.Tx}, nil
	case model.KindChargeback:
		return model.Chargeback{Client: rec.Client, Ref: rec.Tx}, nil
	default:
		return nil, fmt.Errorf("unknown transaction type %d: %w", rec.Kind, ErrInvalidTransaction)
	}
}
