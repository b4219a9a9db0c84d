package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sailconv/internal/catalog"
	"github.com/hammamikhairi/sailconv/internal/domain"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List categories and units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listUnits(cmd.OutOrStdout(), catalog.Default())
		return nil
	},
}

func listUnits(out io.Writer, cat *catalog.Catalog) {
	for _, m := range cat.Measures() {
		fmt.Fprintf(out, "%s:\n", m.Name)
		for _, u := range m.Units {
			note := ""
			if u.Rule == domain.RulePowerLaw {
				note = " (power law)"
			}
			fmt.Fprintf(out, "  %-5s lcd %q  %d digits%s\n", u.Label, strings.TrimSpace(u.Name), u.InputWidth(), note)
		}
	}
}
