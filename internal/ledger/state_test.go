package ledger

import (
	"bytes"
	"testing"

	"github.com/hance08/txengine/internal/model"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(m model.Money) *model.Money {
	return &m
}

func newTestLogger(buf *bytes.Buffer) *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(buf).
		WithFormatter(pterm.LogFormatterJSON).
		WithLevel(pterm.LogLevelWarn)
}

func runFeed(t *testing.T, logger *pterm.Logger, records ...model.Record) *State {
	t.Helper()

	feed := make(chan model.Record, len(records))
	for _, rec := range records {
		feed <- rec
	}
	close(feed)

	state := NewState(feed, logger)
	state.Run()
	return state
}

func TestGetOrCreateAccount(t *testing.T) {
	state := NewState(nil, nil)
	assert.Empty(t, state.Accounts())

	first := state.GetOrCreateAccount(1)
	second := state.GetOrCreateAccount(1)

	assert.Same(t, first, second)
	assert.Len(t, state.Accounts(), 1)
}

func TestRunCreatesAccounts(t *testing.T) {
	state := runFeed(t, nil,
		model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1, Amount: amount(1000)},
	)

	accounts := state.Accounts()
	require.Len(t, accounts, 1)
	require.Contains(t, accounts, model.ClientID(1))
	assert.Equal(t, model.Money(1000), accounts[1].Available())
}

func TestRunAppliesInArrivalOrder(t *testing.T) {
	state := runFeed(t, nil,
		model.Record{Kind: model.KindWithdrawal, Client: 1, Tx: 1, Amount: amount(50)},
		model.Record{Kind: model.KindDeposit, Client: 1, Tx: 2, Amount: amount(100)},
		model.Record{Kind: model.KindWithdrawal, Client: 1, Tx: 3, Amount: amount(50)},
	)

	acc := state.Accounts()[1]
	assert.Equal(t, model.Money(50), acc.Available())
	assert.Equal(t, model.Stats{Processed: 3, Applied: 2, Rejected: 1}, state.Stats())
}

func TestRunKeepsGoingAfterErrors(t *testing.T) {
	var buf bytes.Buffer

	state := runFeed(t, newTestLogger(&buf),
		model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1, Amount: amount(100)},
		model.Record{Kind: model.KindWithdrawal, Client: 1, Tx: 2, Amount: amount(500)},
		model.Record{Kind: model.KindDispute, Client: 2, Tx: 1},
		model.Record{Kind: model.KindDeposit, Client: 2, Tx: 3, Amount: amount(70)},
		model.Record{Kind: model.KindDeposit, Client: 1, Tx: 4, Amount: amount(1)},
	)

	accounts := state.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, model.Money(101), accounts[1].Total())
	assert.Equal(t, model.Money(70), accounts[2].Total())

	logged := buf.String()
	assert.Contains(t, logged, "Error processing transaction")
	assert.Contains(t, logged, ErrInsufficientFunds.Error())
	assert.Contains(t, logged, ErrTransactionDoesNotExist.Error())
}

func TestProcessOneInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  model.Record
	}{
		{"deposit without amount", model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1}},
		{"withdrawal without amount", model.Record{Kind: model.KindWithdrawal, Client: 1, Tx: 1}},
		{"negative deposit", model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1, Amount: amount(-5)}},
		{"unknown kind", model.Record{Client: 1, Tx: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(nil, nil)

			err := state.ProcessOne(tt.rec)

			assert.ErrorIs(t, err, ErrInvalidTransaction)
			require.Contains(t, state.Accounts(), model.ClientID(1))
			assert.Equal(t, model.AccountSnapshot{Client: 1}, state.Accounts()[1].Snapshot())
		})
	}
}

func TestProcessOneIgnoresAmountOnDisputes(t *testing.T) {
	state := NewState(nil, nil)
	require.NoError(t, state.ProcessOne(model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1, Amount: amount(40)}))

	require.NoError(t, state.ProcessOne(model.Record{Kind: model.KindDispute, Client: 1, Tx: 1, Amount: amount(999)}))

	assert.Equal(t, model.Money(40), state.Accounts()[1].Held())
}

func TestSnapshotIsOrderedByClient(t *testing.T) {
	state := runFeed(t, nil,
		model.Record{Kind: model.KindDeposit, Client: 9, Tx: 1, Amount: amount(1)},
		model.Record{Kind: model.KindDeposit, Client: 2, Tx: 2, Amount: amount(2)},
		model.Record{Kind: model.KindDeposit, Client: 5, Tx: 3, Amount: amount(3)},
	)

	snapshot := state.Snapshot()

	require.Len(t, snapshot, 3)
	assert.Equal(t, model.ClientID(2), snapshot[0].Client)
	assert.Equal(t, model.ClientID(5), snapshot[1].Client)
	assert.Equal(t, model.ClientID(9), snapshot[2].Client)
}

func TestRunWithConcurrentProducer(t *testing.T) {
	feed := make(chan model.Record, 2)
	state := NewState(feed, nil)

	go func() {
		defer close(feed)
		for i := 1; i <= 50; i++ {
			feed <- model.Record{Kind: model.KindDeposit, Client: 1, Tx: model.TxID(i), Amount: amount(10)}
		}
	}()

	state.Run()

	assert.Equal(t, model.Money(500), state.Accounts()[1].Total())
	assert.Equal(t, 50, state.Stats().Applied)
}

func TestProcessOneRejectsOverflowingDeposit(t *testing.T) {
	huge, err := model.ParseMoney("900000000000000")
	require.NoError(t, err)
	state := NewState(nil, nil)

	require.NoError(t, state.ProcessOne(model.Record{Kind: model.KindDeposit, Client: 1, Tx: 1, Amount: amount(huge)}))
	err = state.ProcessOne(model.Record{Kind: model.KindDeposit, Client: 1, Tx: 2, Amount: amount(huge)})

	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.Equal(t, huge, state.Accounts()[1].Available())
	assert.Equal(t, huge, state.Accounts()[1].Total())
	assert.Equal(t, model.Stats{Processed: 2, Applied: 1, Rejected: 1}, state.Stats())
}

