package parser

import (
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/resolver"
)

// FromSnapshot creates the CSV parser of a resolved run, with the account and
// date filters of that run.
func FromSnapshot(snap *resolver.Snapshot, logger logging.Logger) (*CSVParser, error) {
	filters := FiltersFor(snap.Account, snap.Run)
	if logger != nil {
		logger = logger.WithField(logging.FieldModel, snap.Model)
	}
	return NewCSVParser(snap.Columns, snap.Settings, filters, logger)
}
