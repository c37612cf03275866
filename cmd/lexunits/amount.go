package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/units"
	"github.com/spf13/cobra"
)

var errOutOfRange = errors.New("amount out of range")

// addDisplayFlags adds the flags that override the configured preferences.
func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("unit", "u", "", "display unit (default from config)")
	cmd.Flags().String("separators", units.SeparatorStandard.String(), `digit grouping: "standard", "never" or "always"`)
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)
	_ = cmd.RegisterFlagCompletionFunc("separators", completeSeparators)
}

func newFormatCmd(cfgFile *string) *cobra.Command {
	var plus, justify, withUnit, html bool

	cmd := &cobra.Command{
		Use:   "format AMOUNT",
		Short: "Format an amount given in base units",
		Long: `Format writes an integer amount of base units (satoshi) in the display unit.

In privacy mode the amount is replaced by a mask of the same shape.`,
		Example: `  lexunits format 150000000
  lexunits format --unit bits --with-unit 150000000
  lexunits format --unit sat --separators always 1234`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, cfgFile, "unit")
			if err != nil {
				return err
			}
			a, err := units.Parse(units.SAT, args[0])
			if err != nil {
				return err
			}

			var out string
			switch {
			case s.privacy:
				if a < 0 {
					return fmt.Errorf("privacy mode: %w: %v is negative", errOutOfRange, int64(a))
				}
				out = units.FormatWithPrivacy(s.unit, a, s.sep, true)
			case html:
				out = units.FormatHTMLWithUnit(s.unit, a, plus, s.sep)
			case withUnit:
				out = units.FormatWithUnit(s.unit, a, plus, s.sep)
			default:
				out = units.Format(s.unit, a, plus, s.sep, justify)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addDisplayFlags(cmd)
	cmd.Flags().BoolVar(&plus, "plus", false, "prefix positive amounts with '+'")
	cmd.Flags().BoolVar(&justify, "justify", false, "pad the integer part so amounts line up")
	cmd.Flags().BoolVar(&withUnit, "with-unit", false, "append the unit name")
	cmd.Flags().BoolVar(&html, "html", false, "write HTML that does not wrap, with the unit name")
	cmd.Flags().Bool("privacy", false, "hide the amount (default from config)")
	cmd.MarkFlagsMutuallyExclusive("justify", "with-unit", "html")

	return cmd
}

func newParseCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse an amount entered in the display unit",
		Long: `Parse converts text in the display unit to an integer amount of base units.
Arguments are joined with spaces, so digit groups need not be quoted.

The amount must be between 0 and 21 000 000 LEX.`,
		Example: `  lexunits parse 1.5
  lexunits parse --unit sat 1 000 000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, cfgFile, "unit")
			if err != nil {
				return err
			}
			a, err := units.Parse(s.unit, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !a.InRange() {
				return fmt.Errorf("%w: %v is not between 0 and %v", errOutOfRange, int64(a), int64(units.MaxMoney))
			}
			fmt.Fprintln(cmd.OutOrStdout(), int64(a))
			return nil
		},
	}
	cmd.Flags().StringP("unit", "u", "", "display unit (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)

	return cmd
}

func newConvertCmd(cfgFile *string) *cobra.Command {
	var to string
	var trim bool

	cmd := &cobra.Command{
		Use:   "convert TEXT... --to UNIT",
		Short: "Express an amount in another unit",
		Long: `Convert parses text in the unit given by --from (default from config) and
writes the same amount in the unit given by --to.

With --trim, trailing zeros after the decimal point are removed.`,
		Example: `  lexunits convert --from LEX --to sat 1.5
  lexunits convert --from sat --to LEX --trim 150000000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, cfgFile, "from")
			if err != nil {
				return err
			}
			target, err := units.ParseUnit(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			a, err := units.Parse(s.unit, strings.Join(args, " "))
			if err != nil {
				return err
			}

			var out string
			if trim {
				out = a.Decimal(target).Trim(0).String() + " " + target.ShortName()
			} else {
				out = units.FormatWithUnit(target, a, false, s.sep)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("from", "", "unit of the text (default from config)")
	cmd.Flags().StringVar(&to, "to", "", "unit of the result")
	cmd.Flags().String("separators", units.SeparatorStandard.String(), `digit grouping: "standard", "never" or "always"`)
	cmd.Flags().BoolVar(&trim, "trim", false, "remove trailing zeros")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.RegisterFlagCompletionFunc("from", completeUnits)
	_ = cmd.RegisterFlagCompletionFunc("to", completeUnits)
	_ = cmd.RegisterFlagCompletionFunc("separators", completeSeparators)

	return cmd
}
