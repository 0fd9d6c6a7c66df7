package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"fjacquet/csv-ofx/internal/currencyutils"
	"fjacquet/csv-ofx/internal/dateutils"
	"fjacquet/csv-ofx/internal/fileutils"
	"fjacquet/csv-ofx/internal/hashutils"
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/models"
	"fjacquet/csv-ofx/internal/parsererror"
)

const streamSource = "csv input"

// CSVParser reads bank CSV exports positionally, following a column mapping
// and the parse settings of a model.
type CSVParser struct {
	BaseParser
	mapping  models.ColumnMapping
	settings models.ParseSettings
	filters  Filters
	layout   string
}

var _ Parser = (*CSVParser)(nil)

// NewCSVParser creates a parser for one model. It fails when the model's
// date pattern cannot be translated.
func NewCSVParser(mapping models.ColumnMapping, settings models.ParseSettings, filters Filters, logger logging.Logger) (*CSVParser, error) {
	layout, err := dateutils.LayoutFromPattern(settings.DateFormat)
	if err != nil {
		return nil, &parsererror.ConfigError{Key: "dateFormat", Reason: "invalid date format", Err: err}
	}
	if settings.Delimiter == 0 {
		settings.Delimiter = ','
	}
	if settings.FromLine < 1 {
		settings.FromLine = models.DefaultFromLine
	}
	if settings.Encoding == "" {
		settings.Encoding = models.DefaultEncoding
	}
	if settings.DecimalSeparator == "" {
		settings.DecimalSeparator = models.DefaultDecimalSeparator
	}

	return &CSVParser{
		BaseParser: NewBaseParser(logger),
		mapping:    mapping,
		settings:   settings,
		filters:    filters,
		layout:     layout,
	}, nil
}

// Parse implements Parser.
func (p *CSVParser) Parse(r io.Reader, emit EmitFunc) error {
	decoded, err := fileutils.NewDecodingReader(r, p.settings.Encoding)
	if err != nil {
		return &parsererror.StreamError{Source: streamSource, Err: err}
	}

	reader := csv.NewReader(newLineWindowReader(decoded, p.settings.FromLine, p.settings.ToLine))
	reader.Comma = p.settings.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	lineOffset := p.settings.FromLine - 1
	var emitted, skipped, filtered int

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.Line + lineOffset
			}
			return &parsererror.StreamError{Source: streamSource, Line: line, Err: err}
		}

		startLine, _ := reader.FieldPos(0)
		line := startLine + lineOffset

		st, err := p.extract(record, line)
		if err != nil {
			skipped++
			p.logger.WithError(err).Warn("Failed to convert row to statement, skipping",
				logging.Field{Key: logging.FieldLine, Value: line})
			continue
		}

		if !p.filters.Accept(st) {
			filtered++
			continue
		}

		if err := emit(st); err != nil {
			return err
		}
		emitted++
	}

	p.logger.Info("Parsed CSV statements",
		logging.Field{Key: logging.FieldCount, Value: emitted},
		logging.Field{Key: logging.FieldSkipped, Value: skipped},
		logging.Field{Key: "filtered", Value: filtered})
	return nil
}

// ParseAll implements Parser.
func (p *CSVParser) ParseAll(r io.Reader) ([]models.Statement, error) {
	statements := make([]models.Statement, 0)
	err := p.Parse(r, func(st models.Statement) error {
		statements = append(statements, st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statements, nil
}

// cell returns the text at a one-based column and whether the row has it.
func cell(record []string, column int) (string, bool) {
	if column < 1 || column > len(record) {
		return "", false
	}
	return record[column-1], true
}

func optionalCell(record []string, column models.Optional[int]) models.Optional[string] {
	idx, ok := column.Get()
	if !ok {
		return models.None[string]()
	}
	text, ok := cell(record, idx)
	if !ok {
		return models.None[string]()
	}
	return models.Some(text)
}

func (p *CSVParser) extract(record []string, line int) (models.Statement, error) {
	dateText, _ := cell(record, p.mapping.Date)
	date, err := dateutils.ParseWithLayout(dateText, p.layout)
	if err != nil {
		return models.Statement{}, &parsererror.RowError{
			Line:  line,
			Field: "date",
			Value: dateText,
			Err: &parsererror.InvalidFormatError{
				Value:          dateText,
				ExpectedFormat: p.settings.DateFormat,
				Msg:            "invalid date format",
			},
		}
	}

	amountText, _ := cell(record, p.mapping.Amount)
	amount, err := currencyutils.ParseLocalizedAmount(amountText, p.settings.DecimalSeparator)
	if err != nil {
		return models.Statement{}, &parsererror.RowError{Line: line, Field: "amount", Value: amountText, Err: err}
	}

	payee, _ := cell(record, p.mapping.Payee)
	category, _ := cell(record, p.mapping.Category)

	st := models.Statement{
		Date:     date,
		Payee:    payee,
		Category: category,
		Amount:   amount,
		Memo:     optionalCell(record, p.mapping.Memo),
		Label:    optionalCell(record, p.mapping.Label),
	}

	if idx, ok := p.mapping.Reference.Get(); ok {
		st.Reference, _ = cell(record, idx)
	} else {
		st.Reference, err = hashutils.HashRecord(record)
		if err != nil {
			return models.Statement{}, &parsererror.RowError{Line: line, Field: "reference", Err: err}
		}
	}

	if idx, ok := p.mapping.Account.Get(); ok {
		account, _ := cell(record, idx)
		st.Account = models.Some(account)
	}

	return st, nil
}
