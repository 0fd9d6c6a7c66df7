// Package models implements the command that shows how configured models
// are resolved.
package models

import (
	"fmt"

	"fjacquet/csv-ofx/cmd/root"
	"fjacquet/csv-ofx/internal/models"
	"fjacquet/csv-ofx/internal/resolver"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the models command
var Cmd = &cobra.Command{
	Use:   "models [name]",
	Short: "Show the resolved configuration of models",
	Long: `Print the column mapping and parse settings of every configured model,
or of the named one, as YAML. Defaults are filled in and errors are reported
exactly as a conversion would report them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: modelsFunc,
}

// ModelView is the YAML rendering of one resolved model.
type ModelView struct {
	Delimiter         string      `yaml:"delimiter"`
	FromLine          int         `yaml:"fromLine"`
	ToLine            int         `yaml:"toLine,omitempty"`
	Encoding          string      `yaml:"encoding"`
	DateFormat        string      `yaml:"dateFormat"`
	DecimalsSeparator string      `yaml:"decimalsSeparator"`
	Columns           ColumnsView `yaml:"columns"`
}

// ColumnsView is the YAML rendering of a column mapping. Unmapped optional
// columns are omitted.
type ColumnsView struct {
	Date      int  `yaml:"date"`
	Payee     int  `yaml:"payee"`
	Category  int  `yaml:"category"`
	Amount    int  `yaml:"amount"`
	Account   *int `yaml:"account,omitempty"`
	Memo      *int `yaml:"memo,omitempty"`
	Label     *int `yaml:"label,omitempty"`
	Reference *int `yaml:"reference,omitempty"`
}

func modelsFunc(cmd *cobra.Command, args []string) error {
	res := root.AppContainer.GetResolver()

	names := res.Models()
	if len(args) == 1 {
		names = []string{args[0]}
	}

	views, err := Resolve(res, names)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("failed to encode models: %w", err)
	}
	return enc.Close()
}

// Resolve builds the views of the named models. The first model that does
// not resolve fails the whole listing.
func Resolve(res *resolver.Resolver, names []string) (map[string]ModelView, error) {
	views := make(map[string]ModelView, len(names))
	for _, name := range names {
		columns, err := res.Columns(name)
		if err != nil {
			return nil, err
		}
		settings, err := res.ParseSettings(name)
		if err != nil {
			return nil, err
		}
		views[name] = newModelView(columns, settings)
	}
	return views, nil
}

func newModelView(columns models.ColumnMapping, settings models.ParseSettings) ModelView {
	return ModelView{
		Delimiter:         string(settings.Delimiter),
		FromLine:          settings.FromLine,
		ToLine:            settings.ToLine,
		Encoding:          settings.Encoding,
		DateFormat:        settings.DateFormat,
		DecimalsSeparator: settings.DecimalSeparator,
		Columns: ColumnsView{
			Date:      columns.Date,
			Payee:     columns.Payee,
			Category:  columns.Category,
			Amount:    columns.Amount,
			Account:   indexPtr(columns.Account),
			Memo:      indexPtr(columns.Memo),
			Label:     indexPtr(columns.Label),
			Reference: indexPtr(columns.Reference),
		},
	}
}

func indexPtr(o models.Optional[int]) *int {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
