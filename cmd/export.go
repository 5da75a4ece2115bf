package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/model"
)

var (
	exportFormat string
	exportWeek   bool
	exportFull   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries of today, this week or everything to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
	exportCmd.Flags().BoolVar(&exportWeek, "week", false, "Export this week")
	exportCmd.Flags().BoolVar(&exportFull, "full", false, "Export everything")
	exportCmd.MarkFlagsMutuallyExclusive("week", "full")
}

// exportRecord is one exported entry. Minutes of a running entry count up
// to the time of export.
type exportRecord struct {
	Date            string     `json:"date"`
	Project         string     `json:"project"`
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end,omitempty"`
	DurationMinutes int64      `json:"duration_minutes"`
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("unknown export format %q: expected csv or json", exportFormat)
	}

	t := now()
	l, err := store.Load()
	if err != nil {
		return err
	}
	w := windowFlag(t, !exportWeek && !exportFull, exportWeek)
	records := toRecords(entriesIn(l.Entries(), w, t), t)

	out := cmd.OutOrStdout()
	if exportFormat == "json" {
		return writeJSON(out, records)
	}
	return writeCSV(out, records)
}

func toRecords(entries []model.Entry, t time.Time) []exportRecord {
	records := make([]exportRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, exportRecord{
			Date:            cal.DayOf(e.Start).Format("2006-01-02"),
			Project:         e.Project,
			Start:           e.Start,
			End:             e.End,
			DurationMinutes: int64(e.Span(t).Duration() / time.Minute),
		})
	}
	return records
}

func writeJSON(w io.Writer, records []exportRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeCSV(w io.Writer, records []exportRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "project", "start", "end", "duration_minutes"}); err != nil {
		return err
	}
	for _, r := range records {
		end := ""
		if r.End != nil {
			end = r.End.Format(time.RFC3339)
		}
		row := []string{r.Date, r.Project, r.Start.Format(time.RFC3339), end, strconv.FormatInt(r.DurationMinutes, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

