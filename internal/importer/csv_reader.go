package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/model"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

// CSVReader decodes transaction rows and feeds them to the ledger.
type CSVReader struct {
	fs     afero.Fs
	logger *pterm.Logger
}

func NewCSVReader(fs afero.Fs, logger *pterm.Logger) *CSVReader {
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}
	return &CSVReader{fs: fs, logger: logger}
}

func (r *CSVReader) Open(path string) (afero.File, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can not open input file %s: %w", path, err)
	}
	return f, nil
}

// Stream sends every decodable row of src to feed, in input order, and closes
// feed when done. Rows that can't be decoded are dropped.
func (r *CSVReader) Stream(ctx context.Context, src io.Reader, feed chan<- model.Record) error {
	defer close(feed)

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return err
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.logger.Debug("Dropping malformed row", r.logger.Args("line", parseErr.Line, "error", parseErr.Err.Error()))
				continue
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		rec, err := cols.decode(row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			r.logger.Debug("Dropping malformed row", r.logger.Args("line", line, "error", err.Error()))
			continue
		}

		select {
		case feed <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type columns struct {
	kind, client, tx, amount int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{kind: -1, client: -1, tx: -1, amount: -1}

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case constants.ColumnType:
			cols.kind = i
		case constants.ColumnClient:
			cols.client = i
		case constants.ColumnTx:
			cols.tx = i
		case constants.ColumnAmount:
			cols.amount = i
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{constants.ColumnType, cols.kind},
		{constants.ColumnClient, cols.client},
		{constants.ColumnTx, cols.tx},
	}
	for _, col := range required {
		if col.idx < 0 {
			return cols, fmt.Errorf("column '%s': %w", col.name, ErrMissingColumn)
		}
	}

	return cols, nil
}

func (c columns) decode(row []string) (model.Record, error) {
	var rec model.Record

	kind, err := model.ParseKind(field(row, c.kind))
	if err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}

	client, err := strconv.ParseUint(field(row, c.client), 10, 16)
	if err != nil {
		return rec, fmt.Errorf("%w: invalid client '%s'", ErrInvalidRow, field(row, c.client))
	}

	tx, err := strconv.ParseUint(field(row, c.tx), 10, 32)
	if err != nil {
		return rec, fmt.Errorf("%w: invalid tx '%s'", ErrInvalidRow, field(row, c.tx))
	}

	rec.Kind = kind
	rec.Client = model.ClientID(client)
	rec.Tx = model.TxID(tx)

	if raw := field(row, c.amount); raw != "" {
		amount, err := model.ParseMoney(raw)
		if err != nil {
			return rec, fmt.Errorf("%w: %v", ErrInvalidRow, err)
		}
		rec.Amount = &amount
	}

	return rec, nil
}

// field returns the trimmed value at idx, or "" when the row is too short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
