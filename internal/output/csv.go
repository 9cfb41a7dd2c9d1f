package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/naegele/internal/domain"
)

// CSVFormatter renders the result as a single-row CSV (one header row, one
// data row).
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(res *domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"lnmp", "edd", "woa", "woa_weeks", "woa_days"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		res.LNMP,
		res.EDD,
		res.WOA,
		strconv.Itoa(res.Age.Weeks),
		strconv.Itoa(res.Age.Days),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
