// lexunits formats and parses LEX amounts in the display units of the
// catalog, and keeps the preferred unit in a configuration file.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var version = "dev" // this will be set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra.
		os.Exit(1)
	}
}

// newRootCmd creates the command tree. Tests build a fresh tree per run.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "lexunits",
		Short: "Format and parse LEX amounts in display units.",
		Long: `lexunits converts between amounts in base units (satoshi) and the text
shown to users in LEX, mLEX, bits or sat.

The display unit, digit grouping and privacy mode default to the values in
the configuration file, which can be overridden by LEXUNITS_* environment
variables and by flags.`,
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/lexunits/lexunits.yaml or ./lexunits.yaml)")

	cmd.AddCommand(newUnitsCmd())
	cmd.AddCommand(newFormatCmd(&cfgFile))
	cmd.AddCommand(newParseCmd(&cfgFile))
	cmd.AddCommand(newConvertCmd(&cfgFile))
	cmd.AddCommand(newConfigCmd(&cfgFile))

	return cmd
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the display units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := units.NewTable()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tNAME\tSHORT\tFACTOR\tDESCRIPTION")
			for row := range tab.Len() {
				u, _ := tab.Unit(row)
				name, _ := tab.Name(row)
				tip, _ := tab.Tooltip(row)
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", u.Tag(), name, u.ShortName(), u.Factor(), tip)
			}
			return w.Flush()
		},
	}
}

// unitNames returns the short names of all units, for shell completion.
func unitNames() []string {
	return lo.Map(units.Units(), func(u units.Unit, _ int) string {
		return u.ShortName()
	})
}

func completeUnits(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return unitNames(), cobra.ShellCompDirectiveNoFileComp
}

func completeSeparators(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	styles := []units.SeparatorStyle{units.SeparatorStandard, units.SeparatorNever, units.SeparatorAlways}
	return lo.Map(styles, func(s units.SeparatorStyle, _ int) string {
		return s.String()
	}), cobra.ShellCompDirectiveNoFileComp
}

// settings are the display preferences in effect for one command.
type settings struct {
	unit    units.Unit
	sep     units.SeparatorStyle
	privacy bool
}

// loadSettings reads the configuration and applies the flags of cmd.
// unitFlag names the flag that selects the unit, if the command has one.
func loadSettings(cmd *cobra.Command, cfgFile *string, unitFlag string) (settings, error) {
	c, err := config.LoadConfig(cmd, cfgFile)
	if err != nil {
		return settings{}, err
	}
	u, err := c.Unit()
	if err != nil {
		return settings{}, err
	}
	sep, err := c.SeparatorStyle()
	if err != nil {
		return settings{}, err
	}
	if f := cmd.Flags().Lookup(unitFlag); f != nil && f.Changed {
		u, err = units.ParseUnit(f.Value.String())
		if err != nil {
			return settings{}, fmt.Errorf("--%v: %w", unitFlag, err)
		}
	}
	return settings{unit: u, sep: sep, privacy: c.Privacy}, nil
}
