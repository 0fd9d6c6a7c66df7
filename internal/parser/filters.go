package parser

import (
	"time"

	"fjacquet/csv-ofx/internal/models"
)

// Filters select which extracted statements are emitted. Each filter is
// optional and all configured filters must pass.
type Filters struct {
	// Account excludes statements whose account is present and different.
	// Statements without an account always pass.
	Account models.Optional[string]
	// FromDate excludes statements dated strictly before it.
	FromDate models.Optional[time.Time]
	// ToDate excludes statements dated strictly after it.
	ToDate models.Optional[time.Time]
}

// FiltersFor builds the filters of a run from its account and run settings.
// Records are matched against accountFilter when configured, otherwise
// against the account identifier itself.
func FiltersFor(account models.AccountSettings, run models.RunSettings) Filters {
	match := account.Filter
	if !match.IsSet() {
		match = models.Some(account.Key)
	}
	return Filters{
		Account:  match,
		FromDate: run.FromDate,
		ToDate:   run.ToDate,
	}
}

// Accept reports whether st passes every configured filter.
func (f Filters) Accept(st models.Statement) bool {
	if want, ok := f.Account.Get(); ok {
		if got, has := st.Account.Get(); has && got != want {
			return false
		}
	}
	if from, ok := f.FromDate.Get(); ok && st.Date.Before(from) {
		return false
	}
	if to, ok := f.ToDate.Get(); ok && st.Date.After(to) {
		return false
	}
	return true
}
