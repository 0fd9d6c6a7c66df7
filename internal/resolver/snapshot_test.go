package resolver

import (
	"testing"
	"time"

	"fjacquet/csv-ofx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_UsesConfiguredRun(t *testing.T) {
	r, logger := newTestResolver(t, testConfig)

	snap, err := r.Snapshot(Request{Model: "bank"})
	require.NoError(t, err)

	assert.Equal(t, "bank", snap.Model)
	assert.Equal(t, 4, snap.Columns.Amount)
	assert.Equal(t, ';', snap.Settings.Delimiter)
	assert.Equal(t, "main", snap.Account.Key)
	assert.Equal(t, "main", snap.Run.Account)
	assert.Equal(t, models.Some(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), snap.Run.FromDate)
	assert.False(t, snap.Run.ToDate.IsSet())
	assert.True(t, logger.HasEntry("DEBUG", "Resolved configuration snapshot"))
}

func TestSnapshot_RequestOverrides(t *testing.T) {
	r, _ := newTestResolver(t, testConfig)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	snap, err := r.Snapshot(Request{
		Model:    "card",
		Account:  "savings",
		FromDate: models.Some(from),
		ToDate:   models.Some(to),
	})
	require.NoError(t, err)

	assert.Equal(t, "savings", snap.Account.Key)
	assert.Equal(t, models.Some(from), snap.Run.FromDate)
	assert.Equal(t, models.Some(to), snap.Run.ToDate)
}

func TestSnapshot_Failures(t *testing.T) {
	t.Run("unknown model", func(t *testing.T) {
		r, _ := newTestResolver(t, testConfig)
		_, err := r.Snapshot(Request{Model: "nope"})
		requireConfigError(t, err, "models.nope")
	})

	t.Run("unknown account", func(t *testing.T) {
		r, _ := newTestResolver(t, testConfig)
		_, err := r.Snapshot(Request{Model: "bank", Account: "ghost"})
		requireConfigError(t, err, "accounts.ghost.bankId")
	})

	t.Run("no default account", func(t *testing.T) {
		yaml := "models:\n  m:\n    dateFormat: dd/MM/yyyy\n    columns:\n" +
			"      date: 1\n      payee: 2\n      category: 3\n      amount: 4\n      account: 5\n"
		r, _ := newTestResolver(t, yaml)
		_, err := r.Snapshot(Request{Model: "m"})
		requireConfigError(t, err, "run.account")
	})
}
