package main

import (
	"os"

	"fjacquet/csv-ofx/cmd/models"
	"fjacquet/csv-ofx/cmd/normalize"
	"fjacquet/csv-ofx/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(models.Cmd)
	root.Cmd.AddCommand(normalize.Cmd)
}

func main() {
	os.Exit(root.Execute())
}
