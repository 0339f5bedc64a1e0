package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docqa/config"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	rootDir string
	noColor bool

	cfg *config.Config
	log *logrus.Entry
}

// NewRootCmd builds the docqa command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "docqa",
		Short: "Answer a question with the most similar document (TF-IDF + cosine similarity)",
		Long: `docqa finds, among a small set of short documents, the one most lexically similar
to a question. Documents and question are lowercased, stripped to the language alphabet and
stemmed; documents are weighted with TF-IDF and ranked by cosine similarity.

Example usage:
  docqa ask -q "¿Dónde juegan el perro y el gato?"   # Ask the sample documents
  docqa ask -f docs.txt -q "..."                     # One document per line
  docqa ask --corpus ./notes -q "..."                # Documents from a directory
  docqa matrix -f docs.txt                           # Show the TF-IDF matrix`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./docqa.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.rootDir, "dir", "d", "", "directory holding docqa.yaml and .env (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newAskCmd(a),
		newMatrixCmd(a),
		newSuggestCmd(a),
		newLanguagesCmd(a),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup() error {
	var err error

	if a.rootDir == "" {
		a.rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	config.LoadDotEnv(filepath.Join(a.rootDir, ".env"))

	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromDir(a.rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := a.cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.noColor {
		color.Disable()
	}

	logger, err := NewLogger(a.cfg.Logging)
	if err != nil {
		return err
	}
	a.log = logger.WithField("component", "docqa")

	return nil
}
