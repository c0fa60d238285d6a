package returns

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// CSVFilename is the download name presented for exported result tables.
const CSVFilename = "stock_returns.csv"

var csvHeader = []string{"Symbol", "Previous Close", "Target Price", "Return (%)"}

// WriteCSV encodes records as CSV, header row included, preserving record
// order. Numeric cells are written with exactly two decimal places.
func WriteCSV(w io.Writer, records []models.ReturnRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Symbol,
			strconv.FormatFloat(r.PrevClose, 'f', 2, 64),
			strconv.FormatFloat(r.Price, 'f', 2, 64),
			strconv.FormatFloat(r.ReturnPct, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
