// Package common provides the normalized CSV layout shared by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/csv-ofx/internal/dateutils"
	"fjacquet/csv-ofx/internal/models"

	"github.com/gocarina/gocsv"
)

// NormalizedRow is one statement in the normalized CSV export.
type NormalizedRow struct {
	Date      string `csv:"Date"`
	Payee     string `csv:"Payee"`
	Category  string `csv:"Category"`
	Amount    string `csv:"Amount"`
	Memo      string `csv:"Memo"`
	Label     string `csv:"Label"`
	Reference string `csv:"Reference"`
	Account   string `csv:"Account"`
}

// ToNormalizedRow flattens a statement. Absent optional values become
// empty cells, dates are ISO and amounts use "." as decimal separator.
func ToNormalizedRow(st models.Statement) NormalizedRow {
	return NormalizedRow{
		Date:      dateutils.ToISODate(st.Date),
		Payee:     st.Payee,
		Category:  st.Category,
		Amount:    st.Amount.StringFixed(2),
		Memo:      st.Memo.OrElse(""),
		Label:     st.Label.OrElse(""),
		Reference: st.Reference,
		Account:   st.Account.OrElse(""),
	}
}

// WriteStatementsToCSV writes statements to out in the normalized layout,
// header included.
func WriteStatementsToCSV(statements []models.Statement, out io.Writer) error {
	if statements == nil {
		return fmt.Errorf("cannot write nil statements to CSV")
	}

	rows := make([]NormalizedRow, 0, len(statements))
	for _, st := range statements {
		rows = append(rows, ToNormalizedRow(st))
	}

	csvWriter := csv.NewWriter(out)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadNormalizedCSV reads rows written by WriteStatementsToCSV.
func ReadNormalizedCSV(r io.Reader) ([]NormalizedRow, error) {
	var rows []NormalizedRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}
