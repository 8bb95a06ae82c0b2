package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resumeforge/pkg/resume"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sampleOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample resume JSON file to edit",
	Long: `Write a fully populated sample resume JSON file.

Replace its contents with your own details, then feed it to generate:

  resumeforge sample -o my-resume.json
  resumeforge generate -f my-resume.json`,
	RunE: runSample,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "resume.json", "Output file path")
}

func runSample(cmd *cobra.Command, args []string) (err error) {
	// Refuse to clobber an existing file, it may hold edited data
	_, err = os.Stat(sampleOutput)
	if err == nil {
		err = errors.Errorf("file already exists: %s", sampleOutput)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(resume.Sample(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal sample resume")
		return err
	}
	data = append(data, '\n')

	err = os.WriteFile(sampleOutput, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write sample file: %s", sampleOutput)
		return err
	}

	fmt.Printf("Sample resume written to: %s\n", sampleOutput)
	fmt.Printf("Edit it with your details, then run: resumeforge generate -f %s\n", sampleOutput)

	return err
}
