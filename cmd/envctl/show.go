package main

import (
	"encoding/json"
	"fmt"

	"github.com/rousage/coffeeshop/internal/environment"
	"github.com/spf13/cobra"
)

var flagShowFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the client environment of this build",
	Example: `  envctl show
  envctl show --format yaml`,
	RunE: runShowCmd,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowFormat, "format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(showCmd)
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	env := environment.Current()

	var out []byte
	var err error
	switch flagShowFormat {
	case "json":
		out, err = json.MarshalIndent(env, "", "  ")
	case "yaml":
		out, err = env.MarshalYAML()
	default:
		return fmt.Errorf("unsupported format %q, use json or yaml", flagShowFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode environment: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
