// Package normalize implements the command that exports parsed statements as
// a normalized CSV.
package normalize

import (
	"fjacquet/csv-ofx/cmd/common"
	"fjacquet/csv-ofx/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the normalize command
var Cmd = &cobra.Command{
	Use:   "normalize <model> <input|-> <output|->",
	Short: "Export bank CSV statements in the normalized CSV layout",
	Long: `Parse a bank CSV export with the given model and write the filtered
statements as CSV with the columns Date,Payee,Category,Amount,Memo,Label,Reference,Account.`,
	Args: cobra.ExactArgs(3),
	RunE: normalizeFunc,
}

func init() {
	root.AddRunFlags(Cmd)
}

func normalizeFunc(cmd *cobra.Command, args []string) error {
	req, err := common.BuildRequest(args, root.SharedFlags)
	if err != nil {
		return err
	}
	return root.AppContainer.GetConverter().Normalize(req)
}
