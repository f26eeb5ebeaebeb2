package views

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/model"
)

// RenderSnapshotCSV writes one row per account, money with four decimals.
func RenderSnapshotCSV(w io.Writer, accounts []model.AccountSnapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(constants.SnapshotHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.Client), 10),
			acc.Available.String(),
			acc.Held.String(),
			acc.Total.String(),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write account %d: %w", acc.Client, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
