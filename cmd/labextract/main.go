package main

import (
	"context"
	"errors"
	"fmt"
	"healthtrack-service/internal/app/services/shared/pdfextractor"
	"healthtrack-service/internal/pkg/labreport"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "labextract",
		Short:        "Extract lab report values from PDF documents",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(typesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file.pdf]",
		Short: "Extract and validate the values of a single report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawType, _ := cmd.Flags().GetString("type")
			dumpText, _ := cmd.Flags().GetBool("text")
			verbose, _ := cmd.Flags().GetBool("verbose")

			reportType, ok := labreport.ParseReportType(rawType)
			if !ok {
				return fmt.Errorf("unknown report type %q, expected one of %s", rawType, joinReportTypes())
			}

			document, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			log := zap.NewNop()
			if verbose {
				log, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync()
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			text, err := pdfextractor.NewPDFExtractor(log).ExtractText(ctx, document)
			if err != nil {
				return err
			}
			if dumpText {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			parser, err := labreport.ParserFor(reportType)
			if err != nil {
				return err
			}

			candidate, err := labreport.Normalize(reportType, parser.Parse(text), time.Now())
			var validationErr *labreport.ValidationError
			if errors.As(err, &validationErr) {
				writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"reportType":    reportType,
					"missingFields": validationErr.Missing,
					"invalidFields": validationErr.Invalid,
					"partial":       validationErr.Partial,
				})
				return validationErr
			}
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"reportType": candidate.ReportType,
				"fields":     candidate.Fields,
				"date":       candidate.Date.Format("2006-01-02"),
			})
		},
	}
	cmd.Flags().StringP("type", "t", string(labreport.BloodPressure), "Report type: "+joinReportTypes())
	cmd.Flags().Bool("text", false, "Print the raw extracted text instead of parsing it")
	cmd.Flags().BoolP("verbose", "v", false, "Enable development logging")
	return cmd
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported report types and their required fields",
		Run: func(cmd *cobra.Command, args []string) {
			for _, reportType := range labreport.AllReportTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", reportType, strings.Join(reportType.RequiredFields(), ", "))
			}
		},
	}
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func joinReportTypes() string {
	names := make([]string, 0, len(labreport.AllReportTypes()))
	for _, reportType := range labreport.AllReportTypes() {
		names = append(names, reportType.String())
	}
	return strings.Join(names, ", ")
}
