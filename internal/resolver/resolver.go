// Package resolver turns a model name and an account identifier into the
// concrete column mapping, parse settings and account identifiers of a run.
package resolver

import (
	"sort"
	"strings"
	"time"

	"fjacquet/csv-ofx/internal/config"
	"fjacquet/csv-ofx/internal/currencyutils"
	"fjacquet/csv-ofx/internal/dateutils"
	"fjacquet/csv-ofx/internal/fileutils"
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/models"
	"fjacquet/csv-ofx/internal/parsererror"
	"fjacquet/csv-ofx/internal/validation"

	"github.com/spf13/cast"
)

// Configuration keys below models.<name>, accounts.<id> and run.
const (
	keyColumns           = "columns"
	keyDelimiter         = "delimiter"
	keyFromLine          = "fromLine"
	keyToLine            = "toLine"
	keyEncoding          = "encoding"
	keyDateFormat        = "dateFormat"
	keyDecimalsSeparator = "decimalsSeparator"

	keyBankID        = "bankId"
	keyCurrency      = "currency"
	keyAcctID        = "acctId"
	keyAccountFilter = "accountFilter"

	keyRunAccount  = "run.account"
	keyRunFromDate = "run.fromDate"
	keyRunToDate   = "run.toDate"
)

// Resolver reads model and account settings from a configuration source.
type Resolver struct {
	src    config.Source
	logger logging.Logger
}

// New creates a Resolver over src.
func New(src config.Source, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Resolver{src: src, logger: logger}
}

func modelKey(model string, parts ...string) string {
	return strings.Join(append([]string{"models", model}, parts...), ".")
}

func accountKey(id, field string) string {
	return "accounts." + id + "." + field
}

// Models lists the configured model names, sorted. Names come back
// lower-cased since configuration keys are case-insensitive.
func (r *Resolver) Models() []string {
	names := make([]string, 0)
	for name := range r.src.GetStringMap("models") {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Resolver) requireModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return &parsererror.ConfigError{Key: "models", Reason: "model name is empty"}
	}
	if !r.src.IsSet(modelKey(model)) {
		return &parsererror.ConfigError{Key: modelKey(model), Reason: "unknown model"}
	}
	return nil
}

// Columns resolves the column mapping of a model. Missing required columns
// are a ConfigError naming the key; missing optional ones are None.
func (r *Resolver) Columns(model string) (models.ColumnMapping, error) {
	var mapping models.ColumnMapping
	if err := r.requireModel(model); err != nil {
		return mapping, err
	}

	required := []struct {
		field string
		dst   *int
	}{
		{"date", &mapping.Date},
		{"payee", &mapping.Payee},
		{"category", &mapping.Category},
		{"amount", &mapping.Amount},
	}
	for _, col := range required {
		idx, err := r.requiredIndex(modelKey(model, keyColumns, col.field))
		if err != nil {
			return models.ColumnMapping{}, err
		}
		*col.dst = idx
	}

	account, err := r.requiredIndex(modelKey(model, keyColumns, "account"))
	if err != nil {
		return models.ColumnMapping{}, err
	}
	mapping.Account = models.Some(account)

	optional := []struct {
		field string
		dst   *models.Optional[int]
	}{
		{"memo", &mapping.Memo},
		{"label", &mapping.Label},
		{"reference", &mapping.Reference},
	}
	for _, col := range optional {
		idx, err := r.optionalIndex(modelKey(model, keyColumns, col.field))
		if err != nil {
			return models.ColumnMapping{}, err
		}
		*col.dst = idx
	}

	return mapping, nil
}

func (r *Resolver) requiredIndex(key string) (int, error) {
	if !r.isPresent(key) {
		return 0, parsererror.Missing(key)
	}
	return r.index(key)
}

func (r *Resolver) optionalIndex(key string) (models.Optional[int], error) {
	if !r.isPresent(key) {
		return models.None[int](), nil
	}
	idx, err := r.index(key)
	if err != nil {
		return models.None[int](), err
	}
	return models.Some(idx), nil
}

func (r *Resolver) index(key string) (int, error) {
	idx, err := cast.ToIntE(r.src.Get(key))
	if err != nil {
		return 0, &parsererror.ConfigError{Key: key, Reason: "column index must be an integer", Err: err}
	}
	if err := validation.ValidateColumnIndex(idx); err != nil {
		return 0, &parsererror.ConfigError{Key: key, Reason: "invalid column index", Err: err}
	}
	return idx, nil
}

// isPresent treats keys set to null or empty text as absent.
func (r *Resolver) isPresent(key string) bool {
	if !r.src.IsSet(key) {
		return false
	}
	v := r.src.Get(key)
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func (r *Resolver) intOr(key string, fallback int) (int, error) {
	if !r.isPresent(key) {
		return fallback, nil
	}
	n, err := cast.ToIntE(r.src.Get(key))
	if err != nil {
		return 0, &parsererror.ConfigError{Key: key, Reason: "must be an integer", Err: err}
	}
	return n, nil
}

func (r *Resolver) stringOr(key, fallback string) string {
	if !r.isPresent(key) {
		return fallback
	}
	return r.src.GetString(key)
}

// ParseSettings resolves how a model's files are read. dateFormat is
// required; the other settings have defaults.
func (r *Resolver) ParseSettings(model string) (models.ParseSettings, error) {
	var settings models.ParseSettings
	if err := r.requireModel(model); err != nil {
		return settings, err
	}

	dateKey := modelKey(model, keyDateFormat)
	if !r.isPresent(dateKey) {
		return settings, parsererror.Missing(dateKey)
	}
	settings.DateFormat = r.src.GetString(dateKey)
	if _, err := dateutils.LayoutFromPattern(settings.DateFormat); err != nil {
		return settings, &parsererror.ConfigError{Key: dateKey, Reason: "invalid date format", Err: err}
	}

	delimKey := modelKey(model, keyDelimiter)
	delim, err := validation.ValidateDelimiter(r.stringOr(delimKey, models.DefaultDelimiter))
	if err != nil {
		return settings, &parsererror.ConfigError{Key: delimKey, Reason: "invalid delimiter", Err: err}
	}
	settings.Delimiter = delim

	fromKey, toKey := modelKey(model, keyFromLine), modelKey(model, keyToLine)
	if settings.FromLine, err = r.intOr(fromKey, models.DefaultFromLine); err != nil {
		return settings, err
	}
	if settings.ToLine, err = r.intOr(toKey, 0); err != nil {
		return settings, err
	}
	if err := validation.ValidateLineWindow(settings.FromLine, settings.ToLine); err != nil {
		return settings, &parsererror.ConfigError{Key: fromKey, Reason: "invalid line window", Err: err}
	}

	encKey := modelKey(model, keyEncoding)
	settings.Encoding = r.stringOr(encKey, models.DefaultEncoding)
	if _, err := fileutils.LookupEncoding(settings.Encoding); err != nil {
		return settings, &parsererror.ConfigError{Key: encKey, Reason: "invalid encoding", Err: err}
	}

	sepKey := modelKey(model, keyDecimalsSeparator)
	settings.DecimalSeparator = r.stringOr(sepKey, models.DefaultDecimalSeparator)
	if err := validation.ValidateDecimalSeparator(settings.DecimalSeparator); err != nil {
		return settings, &parsererror.ConfigError{Key: sepKey, Reason: "invalid decimal separator", Err: err}
	}

	return settings, nil
}

// Account resolves the OFX identifiers of an account. bankId and currency
// are required; acctId falls back to the account identifier itself.
func (r *Resolver) Account(id string) (models.AccountSettings, error) {
	var account models.AccountSettings
	if strings.TrimSpace(id) == "" {
		return account, &parsererror.ConfigError{Key: "accounts", Reason: "account identifier is empty"}
	}

	bankKey := accountKey(id, keyBankID)
	if !r.isPresent(bankKey) {
		return account, parsererror.Missing(bankKey)
	}

	curKey := accountKey(id, keyCurrency)
	if !r.isPresent(curKey) {
		return account, parsererror.Missing(curKey)
	}
	currency, err := currencyutils.ValidateCurrencyCode(r.src.GetString(curKey))
	if err != nil {
		return account, &parsererror.ConfigError{Key: curKey, Reason: "invalid currency", Err: err}
	}

	account = models.AccountSettings{
		Key:      id,
		BankID:   r.src.GetString(bankKey),
		AcctID:   r.stringOr(accountKey(id, keyAcctID), id),
		Currency: currency,
	}

	filterKey := accountKey(id, keyAccountFilter)
	if r.isPresent(filterKey) {
		account.Filter = models.Some(r.src.GetString(filterKey))
	}

	return account, nil
}

// DefaultAccount returns run.account.
func (r *Resolver) DefaultAccount() (string, error) {
	if !r.isPresent(keyRunAccount) {
		return "", parsererror.Missing(keyRunAccount)
	}
	return r.src.GetString(keyRunAccount), nil
}

// FromDate returns the configured run.fromDate floor, if any.
func (r *Resolver) FromDate() (models.Optional[time.Time], error) {
	return r.date(keyRunFromDate)
}

// ToDate returns the configured run.toDate ceiling, if any.
func (r *Resolver) ToDate() (models.Optional[time.Time], error) {
	return r.date(keyRunToDate)
}

func (r *Resolver) date(key string) (models.Optional[time.Time], error) {
	if !r.isPresent(key) {
		return models.None[time.Time](), nil
	}
	if t, ok := r.src.Get(key).(time.Time); ok {
		return models.Some(dateutils.TruncateToDay(t)), nil
	}

	t, err := dateutils.ParseISODate(r.src.GetString(key))
	if err != nil {
		return models.None[time.Time](), &parsererror.ConfigError{Key: key, Reason: "invalid date", Err: err}
	}
	return models.Some(t), nil
}
