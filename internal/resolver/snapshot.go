package resolver

import (
	"time"

	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/models"
)

// Request carries the selections of one run. Account, FromDate and ToDate
// override run.account, run.fromDate and run.toDate when set.
type Request struct {
	Model    string
	Account  string
	FromDate models.Optional[time.Time]
	ToDate   models.Optional[time.Time]
}

// Snapshot is everything a run needs from configuration, resolved once
// before any input is read. It is never updated afterwards.
type Snapshot struct {
	Model    string
	Columns  models.ColumnMapping
	Settings models.ParseSettings
	Account  models.AccountSettings
	Run      models.RunSettings
}

// Snapshot resolves req against the configuration. Any missing or invalid
// key fails the whole snapshot with a *parsererror.ConfigError.
func (r *Resolver) Snapshot(req Request) (*Snapshot, error) {
	columns, err := r.Columns(req.Model)
	if err != nil {
		return nil, err
	}

	settings, err := r.ParseSettings(req.Model)
	if err != nil {
		return nil, err
	}

	accountID := req.Account
	if accountID == "" {
		if accountID, err = r.DefaultAccount(); err != nil {
			return nil, err
		}
	}

	account, err := r.Account(accountID)
	if err != nil {
		return nil, err
	}

	run := models.RunSettings{Account: accountID, FromDate: req.FromDate, ToDate: req.ToDate}
	if !run.FromDate.IsSet() {
		if run.FromDate, err = r.FromDate(); err != nil {
			return nil, err
		}
	}
	if !run.ToDate.IsSet() {
		if run.ToDate, err = r.ToDate(); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("Resolved configuration snapshot",
		logging.Field{Key: logging.FieldModel, Value: req.Model},
		logging.Field{Key: logging.FieldAccount, Value: accountID},
		logging.Field{Key: logging.FieldDelimiter, Value: string(settings.Delimiter)},
		logging.Field{Key: logging.FieldEncoding, Value: settings.Encoding})

	return &Snapshot{
		Model:    req.Model,
		Columns:  columns,
		Settings: settings,
		Account:  account,
		Run:      run,
	}, nil
}
