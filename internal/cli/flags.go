package cli

import "github.com/spf13/cobra"

// Global flag names shared by every command
const (
	FlagJSON      = "json"
	FlagQuiet     = "quiet"
	FlagAPIURL    = "api-url"
	FlagEphemeral = "ephemeral"
)

// AddGlobalFlags registers the agent-friendly output flags and the
// connection flags on a root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(FlagJSON, false, "Output in JSON format")
	cmd.PersistentFlags().Bool(FlagQuiet, false, "Minimal output (IDs only)")
	cmd.PersistentFlags().String(FlagAPIURL, "", "Backend base URL (overrides KHEDMA_API_URL and the config file)")
	cmd.PersistentFlags().Bool(FlagEphemeral, false, "Keep the login flag in memory for this run only")
}

// OptionsFromFlags reads the connection flags of cmd
func OptionsFromFlags(cmd *cobra.Command) Options {
	apiURL, _ := cmd.Flags().GetString(FlagAPIURL)
	ephemeral, _ := cmd.Flags().GetBool(FlagEphemeral)
	return Options{APIURL: apiURL, Ephemeral: ephemeral}
}
