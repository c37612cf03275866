package main

import (
	"fmt"

	"github.com/govalues/units"
	"github.com/govalues/units/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved preferences",
	}
	cmd.AddCommand(newConfigShowCmd(cfgFile))
	cmd.AddCommand(newConfigSetUnitCmd(cfgFile))
	cmd.AddCommand(newConfigSetSeparatorsCmd(cfgFile))
	cmd.AddCommand(newConfigSetPrivacyCmd(cfgFile))
	return cmd
}

func newConfigShowCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the preferences in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, cfgFile, "")
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "display_unit: %v (tag %d)\n", s.unit, s.unit.Tag())
			fmt.Fprintf(w, "separators: %v\n", s.sep)
			fmt.Fprintf(w, "privacy: %v\n", s.privacy)
			return nil
		},
	}
}

// update saves one key to the --config file or the user configuration
// file, leaving the other keys of that file untouched.
func update(cmd *cobra.Command, cfgFile *string, key string, value any) error {
	path, err := config.SetConfigValue(*cfgFile, key, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %v\n", path)
	return nil
}

func newConfigSetUnitCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "set-unit UNIT",
		Short:     "Save the display unit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: unitNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := units.ParseUnit(args[0])
			if err != nil {
				return err
			}
			return update(cmd, cfgFile, "display_unit", u.Tag())
		},
	}
}

func newConfigSetSeparatorsCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "set-separators STYLE",
		Short:     "Save the digit grouping style",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"standard", "never", "always"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := units.ParseSeparatorStyle(args[0])
			if err != nil {
				return err
			}
			return update(cmd, cfgFile, "separators", sep.String())
		},
	}
}

func newConfigSetPrivacyCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "set-privacy on|off",
		Short:     "Save whether amounts are hidden",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var privacy bool
			switch args[0] {
			case "on":
				privacy = true
			case "off":
				privacy = false
			default:
				return fmt.Errorf("invalid privacy setting %q, want \"on\" or \"off\"", args[0])
			}
			return update(cmd, cfgFile, "privacy", privacy)
		},
	}
}
