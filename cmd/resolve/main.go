// Command resolve prints the timestamp API response for a date string
// without starting the server.
package main

import (
	"fmt"
	"io"
	"os"

	"timestamp_api_go/config"
	"timestamp_api_go/services"

	"github.com/spf13/cobra"
)

var (
	debug  bool
	indent bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "resolve [date_string]",
	Short: "Resolve a date string to its Unix timestamp and UTC string",
	Long: `Resolves a date string exactly like GET /api/timestamp/:date_string and
prints the JSON body. With no argument the current time is used.

Environment variables:
  DEBUG - log invalid dates to stderr (same as --debug)`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateString := ""
		if len(args) == 1 {
			dateString = args[0]
		}
		return run(cmd.OutOrStdout(), dateString)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", config.IsTruthy(os.Getenv("DEBUG")), "Log invalid dates to stderr")
	rootCmd.Flags().BoolVar(&indent, "indent", false, "Pretty-print the JSON output")
}

func run(w io.Writer, dateString string) error {
	resolver := services.NewResolver(debug, nil)
	result := resolver.Resolve(dateString)

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = services.MarshalJSONIndent(result, "  ")
	} else {
		data, err = services.MarshalJSON(result)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
