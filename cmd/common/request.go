// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"time"

	"fjacquet/csv-ofx/internal/converter"
	"fjacquet/csv-ofx/internal/dateutils"
	"fjacquet/csv-ofx/internal/models"
)

// RunFlags are the run overrides shared by the conversion commands.
type RunFlags struct {
	Account  string
	FromDate string
	ToDate   string
}

// BuildRequest turns the <model> <input> <output> positionals and the run
// flags into a conversion request. Empty flags leave the configured values
// in place.
func BuildRequest(args []string, flags RunFlags) (converter.Request, error) {
	if len(args) != 3 {
		return converter.Request{}, fmt.Errorf("expected <model> <input> <output>, got %d argument(s)", len(args))
	}

	from, err := parseDateFlag("from-date", flags.FromDate)
	if err != nil {
		return converter.Request{}, err
	}
	to, err := parseDateFlag("to-date", flags.ToDate)
	if err != nil {
		return converter.Request{}, err
	}

	return converter.Request{
		Model:    args[0],
		Input:    args[1],
		Output:   args[2],
		Account:  flags.Account,
		FromDate: from,
		ToDate:   to,
	}, nil
}

func parseDateFlag(name, value string) (models.Optional[time.Time], error) {
	if value == "" {
		return models.None[time.Time](), nil
	}
	t, err := dateutils.ParseISODate(value)
	if err != nil {
		return models.None[time.Time](), fmt.Errorf("invalid --%s: %w", name, err)
	}
	return models.Some(t), nil
}
