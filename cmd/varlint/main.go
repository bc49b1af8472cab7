package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jenian/varlint/internal/analyzer"
	"github.com/jenian/varlint/internal/config"
	"github.com/jenian/varlint/internal/languages"
	"github.com/jenian/varlint/internal/logger"
	"github.com/jenian/varlint/internal/output"
	"github.com/jenian/varlint/internal/parser"
	"github.com/jenian/varlint/internal/source"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	// errInvalidInvocation marks wrong argument counts and bad flag values
	errInvalidInvocation = errors.New("invalid invocation")
	// errIssuesFound is returned when fail_on_issues is set and the report is not clean
	errIssuesFound = errors.New("unused variables found")
)

var (
	rootCmd = &cobra.Command{
		Use:   "varlint <source_file>",
		Short: "Report variables that are declared but never used",
		Long: "Scans a single C-family source file for variable declarations with a recognized type " +
			"(int, char, long, float, double, bool, string) and reports those never referenced afterwards.\n\n" +
			"A file named like a subcommand (help, version, init-config) is analyzed when given as ./<name> or after --.",
		Args:          exactlyOneSourceFile,
		RunE:          runAnalyze,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Create a " + config.DefaultFileName + " file in the current directory",
		Long:  "Creates a " + config.DefaultFileName + " file with the default configuration in the current directory.",
		Args:  cobra.NoArgs,
		RunE:  runInitConfig,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of varlint",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}

	// Flags
	jsonOutput bool
	mode       string
	configPath string
	debug      bool
	noColor    bool
)

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.Flags().StringVar(&mode, "mode", config.ModeSubstring, "Usage matching mode: substring or token")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file to load (none is read by default)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errInvalidInvocation, err)
	})

	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func exactlyOneSourceFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one source file, received %d", errInvalidInvocation, len(args))
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	stderr := cmd.ErrOrStderr()
	log := logger.New(stderr, debug)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lines, err := source.Load(path)
	if err != nil {
		return err
	}
	log.Logf("loaded %d lines from %s", lines.Len(), path)

	opts := analyzer.Options{
		Path:     path,
		Mode:     analyzer.Mode(cfg.Analysis.Mode),
		Language: languages.Detect(path),
		Config:   cfg,
		Logger:   log,
	}
	if opts.Mode == analyzer.ModeToken {
		opts.Tokens = parser.NewParser(log)
	}

	report := analyzer.Analyze(lines, opts)

	color := useColor(stderr)
	for _, warning := range report.Warnings {
		fmt.Fprint(stderr, output.FormatWarning(warning, color))
	}

	if err := output.Format(cmd.OutOrStdout(), report, cfg.Output.Format); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if cfg.Analysis.FailOnIssues && output.HasIssues(report) {
		return errIssuesFound
	}

	return nil
}

// loadConfig reads --config when given and applies explicitly set flags on top of it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") {
		cfg.Analysis.Mode = mode
	}
	if cmd.Flags().Changed("json") {
		cfg.Output.Format = config.FormatText
		if jsonOutput {
			cfg.Output.Format = config.FormatJSON
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidInvocation, err)
	}
	return cfg, nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in the current directory", path)
	}

	if err := os.WriteFile(path, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s in the current directory\n", path)
	return nil
}

func useColor(w io.Writer) bool {
	return !noColor && output.ColorEnabled(w)
}

// execute runs the command line and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errIssuesFound):
		return 1
	case errors.Is(err, errInvalidInvocation):
		fmt.Fprintln(stderr, "Usage: varlint <source_file>")
	}

	fmt.Fprint(stderr, output.FormatError(err, useColor(stderr)))
	return 1
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
