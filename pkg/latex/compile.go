package latex

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteSource writes LaTeX source to a file, creating the output directory
// if needed.
func WriteSource(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write LaTeX file: %s", outputPath)
		return err
	}

	return err
}

// Compile runs pdflatex on a .tex file to produce a typeset PDF next to it.
// This is optional tooling for users with a TeX installation; the built-in
// fixed-layout renderer does not depend on it.
func Compile(texPath string) (pdfPath string, err error) {
	err = checkPdflatexExists()
	if err != nil {
		return pdfPath, err
	}

	_, err = os.Stat(texPath)
	if os.IsNotExist(err) {
		err = errors.Errorf("file not found: %s", texPath)
		return pdfPath, err
	}

	outputDir := filepath.Dir(texPath)

	// Two passes so cross-references and column balancing settle.
	for pass := 0; pass < 2; pass++ {
		//nolint:noctx // Context not available for exec.Command - pdflatex is a long-running subprocess
		cmd := exec.Command(
			"pdflatex",
			"-interaction=nonstopmode",
			"-halt-on-error",
			"-output-directory", outputDir,
			texPath,
		)

		var output []byte
		output, err = cmd.CombinedOutput()
		if err != nil {
			err = errors.Wrapf(err, "pdflatex failed: %s", string(output))
			return pdfPath, err
		}
	}

	base := filepath.Base(texPath)
	pdfPath = filepath.Join(outputDir, base[:len(base)-len(filepath.Ext(base))]+".pdf")

	_, err = os.Stat(pdfPath)
	if os.IsNotExist(err) {
		err = errors.Errorf("expected PDF not found: %s", pdfPath)
		return pdfPath, err
	}

	err = CleanupArtifacts(texPath)
	if err != nil {
		return pdfPath, err
	}

	return pdfPath, err
}

// checkPdflatexExists verifies pdflatex is installed.
func checkPdflatexExists() (err error) {
	_, err = exec.LookPath("pdflatex")
	if err != nil {
		err = errors.New("pdflatex not found in PATH (install TeX Live or MiKTeX to compile LaTeX)")
		return err
	}
	return err
}

// CleanupArtifacts removes the .aux and .log files pdflatex leaves behind.
func CleanupArtifacts(texPath string) (err error) {
	stem := texPath[:len(texPath)-len(filepath.Ext(texPath))]
	for _, ext := range []string{".aux", ".log", ".out"} {
		removeErr := os.Remove(stem + ext)
		if removeErr != nil && !os.IsNotExist(removeErr) {
			err = errors.Wrapf(removeErr, "failed to remove artifact: %s", stem+ext)
			return err
		}
	}
	return err
}
