package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/calendar"
	"flightcal-service/pkg/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewRootCmd builds the flightcal command tree
func NewRootCmd() *cobra.Command {
	var timezone string

	root := &cobra.Command{
		Use:           "flightcal",
		Short:         "Extract flights from confirmation emails and turn them into calendar entries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA zone flight times are read in (default local)")

	newGenerator := func() (*calendar.Generator, error) {
		loc := time.Local
		if timezone != "" {
			var err error
			if loc, err = time.LoadLocation(timezone); err != nil {
				return nil, fmt.Errorf("unknown timezone %q: %w", timezone, err)
			}
		}
		return calendar.NewGenerator(calendar.WithLocation(loc)), nil
	}

	root.AddCommand(
		newParseCmd(),
		newLinkCmd(newGenerator),
		newICSCmd(newGenerator),
		newSampleCmd(),
	)
	return root
}

func newParseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Extract the flight record from an email (stdin when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := extractFrom(cmd, args)
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), record, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

func newLinkCmd(newGenerator func() (*calendar.Generator, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "link [file]",
		Short: "Print a Google Calendar link for the flight in an email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := extractFrom(cmd, args)
			if err != nil {
				return err
			}
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.ToCalendarLink(record))
			return nil
		},
	}
}

func newICSCmd(newGenerator func() (*calendar.Generator, error)) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ics [file]",
		Short: "Write an iCalendar file for the flight in an email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := extractFrom(cmd, args)
			if err != nil {
				return err
			}
			gen, err := newGenerator()
			if err != nil {
				return err
			}

			ics := gen.ToCalendarFile(record)
			if out == "" || out == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), ics)
				return err
			}
			if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Destination file (default stdout)")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var airline string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a demo confirmation email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if airline == "" {
				fmt.Fprint(cmd.OutOrStdout(), utils.RandomSampleEmail())
				return nil
			}
			sample, ok := utils.SampleByAirline(airline)
			if !ok {
				return fmt.Errorf("no sample for airline %q", airline)
			}
			fmt.Fprint(cmd.OutOrStdout(), sample.Body)
			return nil
		},
	}
	cmd.Flags().StringVar(&airline, "airline", "", "Airline name to pick (default random)")
	return cmd
}

func extractFrom(cmd *cobra.Command, args []string) (entity.ExtractedFlightRecord, error) {
	content, err := readInput(cmd, args)
	if err != nil {
		return entity.ExtractedFlightRecord{}, err
	}
	record, err := utils.Extract(content)
	if err != nil {
		var extractionErr *utils.ExtractionError
		if errors.As(err, &extractionErr) {
			return record, errors.New(extractionErr.Detail())
		}
		return record, err
	}
	return record, nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeRecord(w io.Writer, record entity.ExtractedFlightRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
