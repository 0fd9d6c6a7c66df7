package parser

import (
	"testing"
	"time"

	"fjacquet/csv-ofx/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFilters_Accept(t *testing.T) {
	jan5 := day(2024, time.January, 5)
	withAccount := models.Statement{Date: jan5, Account: models.Some("0001")}
	withoutAccount := models.Statement{Date: jan5}

	tests := []struct {
		name     string
		filters  Filters
		st       models.Statement
		expected bool
	}{
		{"no filters", Filters{}, withAccount, true},
		{"matching account", Filters{Account: models.Some("0001")}, withAccount, true},
		{"other account", Filters{Account: models.Some("0002")}, withAccount, false},
		{"absent account passes", Filters{Account: models.Some("0002")}, withoutAccount, true},
		{"empty account differs", Filters{Account: models.Some("0002")}, models.Statement{Date: jan5, Account: models.Some("")}, false},
		{"on the floor", Filters{FromDate: models.Some(jan5)}, withAccount, true},
		{"before the floor", Filters{FromDate: models.Some(jan5.AddDate(0, 0, 1))}, withAccount, false},
		{"on the ceiling", Filters{ToDate: models.Some(jan5)}, withAccount, true},
		{"after the ceiling", Filters{ToDate: models.Some(jan5.AddDate(0, 0, -1))}, withAccount, false},
		{"absent account still date filtered", Filters{Account: models.Some("0002"), FromDate: models.Some(jan5.AddDate(0, 0, 1))}, withoutAccount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filters.Accept(tt.st))
		})
	}
}

func TestFiltersFor(t *testing.T) {
	from := day(2024, time.February, 1)
	account := models.AccountSettings{Key: "main", Filter: models.Some("0001")}
	run := models.RunSettings{Account: "main", FromDate: models.Some(from)}

	f := FiltersFor(account, run)
	assert.Equal(t, models.Some("0001"), f.Account)
	assert.Equal(t, models.Some(from), f.FromDate)
	assert.False(t, f.ToDate.IsSet())

	byKey := FiltersFor(models.AccountSettings{Key: "checking", AcctID: "checking"}, models.RunSettings{Account: "checking"})
	assert.Equal(t, models.Some("checking"), byKey.Account)
	assert.False(t, byKey.Accept(models.Statement{Account: models.Some("savings")}))
	assert.True(t, byKey.Accept(models.Statement{Account: models.Some("checking")}))
	assert.True(t, byKey.Accept(models.Statement{}))
}
