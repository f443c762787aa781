package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terraform-agent/analyzer/analyzer"
	"github.com/terraform-agent/analyzer/internal/logger"
	"github.com/terraform-agent/analyzer/terraform"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var debug bool
	var parallel int

	command := &cobra.Command{
		Use:   "analyzer",
		Short: "analyzer inspects Terraform configurations and reports structure, dependencies and issues",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetDebug()
			}
		},
	}
	command.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	command.PersistentFlags().IntVar(&parallel, "parallel", 0, "Max files to parse in parallel (0 = auto)")

	command.AddCommand(analyzeCmd(&parallel))
	command.AddCommand(validateCmd(&parallel))
	command.AddCommand(parseCmd())
	command.AddCommand(versionCmd())

	return command
}

func analyzeCmd(parallel *int) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <directory>",
		Short: "Analyze all Terraform files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := analyzer.DefaultOptions()
			opts.MaxParallel = *parallel
			a := analyzer.New(opts)
			analysis, err := a.AnalyzeDirectory(args[0])
			if err != nil {
				return err
			}
			return printJSON(analysis)
		},
	}
}

func validateCmd(parallel *int) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate one Terraform file against the rule set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := analyzer.DefaultOptions()
			opts.MaxParallel = *parallel
			a := analyzer.New(opts)
			res, err := a.ValidateConfiguration(args[0])
			if err != nil {
				return err
			}
			if err := printJSON(res); err != nil {
				return err
			}
			if !res.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse one Terraform file into its structured model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := terraform.NewParser()
			model, err := p.ParseFile(args[0])
			if err != nil {
				return err
			}
			return printJSON(model)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the analyzer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
