// Package main provides the CLI entry point for esrsreport.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/esrsreport-go/pkg/esrs"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/config"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/render"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	configPath    string
	saveProcessed bool
	debugLog      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "esrsreport",
		Short: "Generate an ESRS sustainability report from Excel workbooks",
		Long: `esrsreport reads the workbooks in the configured input folder, sorts their
sheets into ESRS categories by sheet name, sums the category metrics and
writes a PDF report.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Settings file path")
	rootCmd.Flags().BoolVar(&saveProcessed, "save-processed", false, "Also write combined category tables to the processed folder")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("\nERROR: %v\n", err)
		fmt.Println("\nPlease check:")
		fmt.Println("  1. All required files are in place")
		fmt.Println("  2. Excel files have correct format")
		fmt.Printf("  3. %s is properly configured\n", configPath)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println("ESRS REPORTING AUTOMATION")
	fmt.Println(rule)
	fmt.Printf("Started at: %s\n\n", time.Now().Format(timeLayout))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	result, err := esrs.Run(cfg, esrs.Options{
		SaveProcessed: saveProcessed,
		Logger:        logger,
	})
	if errors.Is(err, esrs.ErrNoData) {
		fmt.Println("\nWARNING: No data found! Please check:")
		fmt.Printf("  1. Excel files are in the '%s' folder\n", cfg.DataSources.ExcelFolder)
		fmt.Printf("  2. Sheet names contain ESRS module codes (%s)\n", strings.Join(cfg.Modules, ", "))
		return nil
	}
	if err != nil {
		return err
	}

	for _, code := range cfg.Modules {
		set := result.Metrics[code]
		if len(set) == 0 {
			continue
		}
		fmt.Printf("\n%s Metrics:\n", code)
		for _, m := range set {
			fmt.Printf("  - %s: %s\n", m.Name, render.FormatValue(m.Value))
		}
	}

	fmt.Println("\n" + rule)
	fmt.Println("PROCESS COMPLETED SUCCESSFULLY!")
	fmt.Println(rule)
	fmt.Printf("Report saved to: %s\n", result.ReportPath)
	fmt.Printf("Completed at: %s\n", time.Now().Format(timeLayout))
	return nil
}
