package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeforge/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Create a starter config file at $HOME/.resumeforge/config.json
(or at the path given with --config).

Set gemini_api_key in the file, or export GEMINI_API_KEY, to enable AI
enhancement. Everything else works without it.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Printf("Config file created at: %s\n", path)
	fmt.Println("Set gemini_api_key (or export GEMINI_API_KEY) to enable AI enhancement.")

	return err
}
