package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose bool
}

func (o *rootOptions) logger(cmd *cobra.Command) calculation.Logger {
	return calculation.NewStdLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags), o.verbose)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "coastfire",
		Short: "Coast FIRE retirement projection calculator",
		Long: `coastfire computes how much invested savings are needed today to coast to a
retirement target without further contributions, how long it takes to get
there, and how alternative contribution levels compare.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCalculateCmd(opts),
		newValidateCmd(opts),
		newExampleCmd(),
		newServeCmd(opts),
	)
	return root
}

func loadConfiguration(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if path == "" {
		return parser.CreateExampleConfiguration(), nil
	}
	return parser.LoadFromFile(path)
}

func newCalculateCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		format     string
		currency   string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a Coast FIRE calculation and print or save a report",
		Example: `  coastfire calculate --config coastfire.yaml
  coastfire calculate --config coastfire.yaml --format html --output reports
  coastfire calculate --format all --output reports --currency EUR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(configPath)
			if err != nil {
				return err
			}
			if currency != "" {
				cfg.Currency = strings.ToUpper(currency)
				if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
					return err
				}
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(root.logger(cmd))
			results, err := engine.CalculateConfiguration(cfg)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}
			opts := output.FormatOptions{Currency: cfg.Currency}

			if outputDir == "" && output.NormalizeFormatName(format) != "all" {
				data, _, err := output.Render(results, format, opts)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if outputDir == "" {
				outputDir = "."
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			files, err := output.GenerateReport(results, format, opts, outputDir)
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (YAML); the built-in example when empty")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format: "+strings.Join(output.AvailableFormatterNames(), ", ")+", all")
	cmd.Flags().StringVar(&currency, "currency", "", "override the configured display currency: "+strings.Join(domain.SupportedCurrencies(), ", "))
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file without calculating",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				root.logger(cmd).Errorf("%v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d scenario(s), currency %s\n", len(cfg.Scenarios), cfg.Currency)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (YAML)")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "coastfire.yaml", "destination file")
	return cmd
}
