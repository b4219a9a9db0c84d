package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sailconv/internal/catalog"
	"github.com/hammamikhairi/sailconv/internal/convert"
	"github.com/hammamikhairi/sailconv/internal/domain"
)

var convertExact bool

var convertCmd = &cobra.Command{
	Use:   "convert <category> <from> <to> <value>",
	Short: "Convert one value the way the watch would",
	Long: `Convert a whole number between two units of a category, with the same
rounding and range rules as the watch face. Values are limited to the digits
the face lets you enter for the source unit (four, two for Beaufort).`,
	Example: `  sailconv convert speed m/s km/h 36
  sailconv convert dist nm km 12 --exact`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), catalog.Default(), args, convertExact)
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertExact, "exact", false, "also print the unrounded result")
}

func runConvert(out io.Writer, cat *catalog.Catalog, args []string, exact bool) error {
	category, err := cat.FindCategory(args[0])
	if err != nil {
		return err
	}
	from, err := cat.FindUnit(category, args[1])
	if err != nil {
		return err
	}
	to, err := cat.FindUnit(category, args[2])
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%s: %w", args[1], domain.ErrSameUnit)
	}

	src, dst := cat.Unit(category, from), cat.Unit(category, to)
	value, err := parseEntry(args[3], src.InputWidth())
	if err != nil {
		return err
	}

	result, err := convert.Convert(src, dst, value)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d %s = %d %s\n", value, src.Label, result, dst.Label)
	if exact {
		fmt.Fprintf(out, "exact: %.4f %s\n", convert.Raw(src, dst, value), dst.Label)
	}
	return nil
}

// parseEntry reads a value that could be typed on the face: a whole number
// of at most width digits.
func parseEntry(s string, width int) (uint32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a whole number", s)
	}
	if len(strings.TrimLeft(s, "0")) > width {
		return 0, fmt.Errorf("value %s has more than %d digits", s, width)
	}
	return uint32(v), nil
}
