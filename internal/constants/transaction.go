package constants

const (
	// Transaction kinds as they appear in the input
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
	KindDispute    = "dispute"
	KindResolve    = "resolve"
	KindChargeback = "chargeback"

	// Input columns
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

// SnapshotHeader is the header row of the CSV snapshot.
var SnapshotHeader = []string{"client", "available", "held", "total", "locked"}
