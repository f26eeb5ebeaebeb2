package views

import (
	"fmt"
	"io"

	"github.com/hance08/txengine/internal/model"
	"github.com/hance08/txengine/internal/ui"
	"github.com/pterm/pterm"
)

type SnapshotTableView struct {
	w io.Writer
}

func NewSnapshotTableView(w io.Writer) *SnapshotTableView {
	return &SnapshotTableView{w: w}
}

func (v *SnapshotTableView) Render(accounts []model.AccountSnapshot, stats model.Stats) error {
	headers := []string{"Client", "Available", "Held", "Total", "Locked"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		client := fmt.Sprintf("%d", acc.Client)
		locked := pterm.Green("no")
		if acc.Locked { // charged back
			locked = pterm.Red("yes")
			client = pterm.Red(client)
		}

		// Disputed withdrawals leave total out of step with available + held.
		total := acc.Total.String()
		if acc.Available+acc.Held != acc.Total {
			total = pterm.Yellow(total)
		}

		tableData = append(tableData, []string{
			client,
			acc.Available.String(),
			acc.Held.String(),
			total,
			locked,
		})
	}

	ui.FprintL1Title(v.w, "Account Snapshot")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).WithWriter(v.w).Render(); err != nil {
		return err
	}

	ui.FprintL2Title(v.w, "Summary")
	fmt.Fprintf(v.w, "Accounts: %d  Processed: %d  Applied: %d  Rejected: %d\n",
		len(accounts), stats.Processed, stats.Applied, stats.Rejected)

	return nil
}
