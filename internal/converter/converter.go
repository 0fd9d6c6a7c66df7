// Package converter runs a conversion end to end: resolve the configuration
// snapshot, parse the CSV input, and write the OFX document (or the
// normalized CSV) to the output.
package converter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fjacquet/csv-ofx/internal/currencyutils"
	"fjacquet/csv-ofx/internal/fileutils"
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/models"
	"fjacquet/csv-ofx/internal/ofxgen"
	"fjacquet/csv-ofx/internal/parser"
	"fjacquet/csv-ofx/internal/parsererror"
	"fjacquet/csv-ofx/internal/resolver"
)

// Request is one conversion. Input and Output accept "-" for stdin and
// stdout. Account, FromDate and ToDate override the configured run values.
type Request struct {
	Model    string
	Input    string
	Output   string
	Account  string
	FromDate models.Optional[time.Time]
	ToDate   models.Optional[time.Time]
}

// Converter wires the resolver, the CSV parser and the OFX generator.
type Converter struct {
	resolver   *resolver.Resolver
	logger     logging.Logger
	genOptions []ofxgen.Option
}

// New creates a Converter. Generator options are applied to every OFX
// document it writes.
func New(res *resolver.Resolver, logger logging.Logger, opts ...ofxgen.Option) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Converter{resolver: res, logger: logger, genOptions: opts}
}

// Run converts req.Input to an OFX document at req.Output. When no statement
// survives parsing and filtering it logs a warning, creates no output and
// returns nil.
func (c *Converter) Run(req Request) error {
	snap, statements, err := c.load(req)
	if errors.Is(err, parsererror.ErrNoStatements) {
		c.warnEmpty(req)
		return nil
	}
	if err != nil {
		return err
	}

	gen := ofxgen.New(snap.Account, snap.Run.FromDate, c.genOptions...)
	parts := []func() string{
		gen.Header,
		func() string { return gen.Statements(statements) },
		gen.Trailer,
	}

	if err := c.write(req.Output, func(out io.Writer) error {
		for _, part := range parts {
			if _, err := io.WriteString(out, part()); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	c.logger.Info("Conversion completed successfully",
		logging.Field{Key: logging.FieldOutputFile, Value: req.Output},
		logging.Field{Key: logging.FieldCount, Value: len(statements)},
		logging.Field{Key: logging.FieldBalance, Value: currencyutils.FormatAmount(gen.Balance(), snap.Account.Currency)})
	return nil
}

// Normalize writes the parsed, filtered statements of req.Input as a
// normalized CSV at req.Output. Empty results behave as in Run.
func (c *Converter) Normalize(req Request) error {
	_, statements, err := c.load(req)
	if errors.Is(err, parsererror.ErrNoStatements) {
		c.warnEmpty(req)
		return nil
	}
	if err != nil {
		return err
	}

	base := parser.NewBaseParser(c.logger)
	if err := c.write(req.Output, func(out io.Writer) error {
		return base.WriteToCSV(statements, out)
	}); err != nil {
		return err
	}

	c.logger.Info("Normalization completed successfully",
		logging.Field{Key: logging.FieldOutputFile, Value: req.Output},
		logging.Field{Key: logging.FieldCount, Value: len(statements)})
	return nil
}

func (c *Converter) warnEmpty(req Request) {
	c.logger.Warn("No statements to process, no output written",
		logging.Field{Key: logging.FieldModel, Value: req.Model},
		logging.Field{Key: logging.FieldInputFile, Value: req.Input})
}

// load resolves the snapshot and parses the input. It returns
// parsererror.ErrNoStatements when nothing is left after filtering.
func (c *Converter) load(req Request) (*resolver.Snapshot, []models.Statement, error) {
	snap, err := c.resolver.Snapshot(resolver.Request{
		Model:    req.Model,
		Account:  req.Account,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("Converting statement file",
		logging.Field{Key: logging.FieldModel, Value: snap.Model},
		logging.Field{Key: logging.FieldAccount, Value: snap.Account.Key},
		logging.Field{Key: logging.FieldInputFile, Value: req.Input})

	in, err := fileutils.OpenInput(req.Input)
	if err != nil {
		return nil, nil, &parsererror.StreamError{Source: req.Input, Err: err}
	}
	defer func() {
		if err := in.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close input file")
		}
	}()

	p, err := parser.FromSnapshot(snap, c.logger)
	if err != nil {
		return nil, nil, err
	}

	statements, err := p.ParseAll(in)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", req.Input, err)
	}
	if len(statements) == 0 {
		return snap, nil, parsererror.ErrNoStatements
	}
	return snap, statements, nil
}

// write opens the output, hands it to fill and closes it, reporting the
// first error.
func (c *Converter) write(path string, fill func(io.Writer) error) (err error) {
	out, err := fileutils.CreateOutput(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", path, cerr)
		}
	}()

	if err := fill(out); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}
