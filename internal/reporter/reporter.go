// Package reporter renders a ComparisonReport for humans (grid table or
// one-block summary) or machines (JSON). It only consumes the report; it
// never reaches back into the comparison pipeline.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// Mode selects the output rendering.
type Mode string

const (
	ModeTable   Mode = "table"
	ModeSummary Mode = "summary"
	ModeJSON    Mode = "json"
)

// Reporter renders comparison reports.
type Reporter struct {
	Mode          Mode
	Color         bool
	MaxValueWidth int
	ShowMatches   bool
}

// New creates a Reporter with the table defaults.
func New() *Reporter {
	return &Reporter{
		Mode:          ModeTable,
		MaxValueWidth: 50,
		ShowMatches:   true,
	}
}

var statusLabels = map[models.Status]string{
	models.StatusMatch:        "MATCH",
	models.StatusDifferent:    "DIFFERENT",
	models.StatusMissingLeft:  "MISSING IN LEFT",
	models.StatusMissingRight: "MISSING IN RIGHT",
}

var statusColors = map[models.Status]func(format string, a ...interface{}) string{
	models.StatusMatch:        color.GreenString,
	models.StatusDifferent:    color.YellowString,
	models.StatusMissingLeft:  color.RedString,
	models.StatusMissingRight: color.RedString,
}

// Render writes report to w in the reporter's mode.
func (r *Reporter) Render(w io.Writer, report *models.ComparisonReport) error {
	switch r.Mode {
	case ModeJSON:
		return r.renderJSON(w, report)
	case ModeSummary:
		return r.renderSummary(w, report)
	case ModeTable, "":
		return r.renderTable(w, report)
	default:
		return errors.NewOutputError(fmt.Sprintf("unsupported report mode %q", r.Mode), nil)
	}
}

func (r *Reporter) renderJSON(w io.Writer, report *models.ComparisonReport) error {
	if err := json.MarshalWrite(w, report, jsontext.WithIndent("  ")); err != nil {
		return errors.NewOutputError("failed to encode report as JSON", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	return nil
}

func (r *Reporter) renderSummary(w io.Writer, report *models.ComparisonReport) error {
	if err := r.writeSummaryBlock(w, report); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	return nil
}

func (r *Reporter) renderTable(w io.Writer, report *models.ComparisonReport) error {
	rows := make([][4]string, 0, len(report.Fields))
	statuses := make([]models.Status, 0, len(report.Fields))
	for _, field := range report.Fields {
		if !r.ShowMatches && field.Status == models.StatusMatch {
			continue
		}
		rows = append(rows, [4]string{
			field.Path,
			r.cellValue(field.Left),
			r.cellValue(field.Right),
			statusLabels[field.Status],
		})
		statuses = append(statuses, field.Status)
	}

	header := [4]string{"Field Path", "Left Value", "Right Value", "Status"}
	widths := [4]int{}
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeBorder(&b, widths)
	writeRow(&b, header, widths, nil)
	writeBorder(&b, widths)
	for i, row := range rows {
		var colorize func(format string, a ...interface{}) string
		if r.Color {
			colorize = statusColors[statuses[i]]
		}
		writeRow(&b, row, widths, colorize)
	}
	if len(rows) > 0 {
		writeBorder(&b, widths)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	if err := r.writeSummaryBlock(w, report); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	return r.writeChangedValues(w, report)
}

func (r *Reporter) writeSummaryBlock(w io.Writer, report *models.ComparisonReport) error {
	stats := report.Stats
	_, err := fmt.Fprintf(w, "Summary\n-------\nTotal fields compared: %d\nMatching: %d (%.1f%%)\nDifferent or missing: %d (%.1f%%)\n",
		stats.Total, stats.Matching, stats.MatchPercent, stats.Differing, stats.DifferPercent)
	return err
}

// writeChangedValues lists the fields with differing values and an
// inline word diff between the two sides, in the style of wdiff:
// deletions as [-old-] and insertions as {+new+}, colored when enabled.
func (r *Reporter) writeChangedValues(w io.Writer, report *models.ComparisonReport) error {
	var changed []models.FieldComparison
	for _, field := range report.Fields {
		if field.Status == models.StatusDifferent {
			changed = append(changed, field)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\nChanged values\n--------------\n")
	for _, field := range changed {
		b.WriteString("  ")
		b.WriteString(field.Path)
		b.WriteString(": ")
		b.WriteString(r.inlineDiff(*field.Left, *field.Right))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.NewOutputError("failed to write report", err)
	}
	return nil
}

func (r *Reporter) inlineDiff(left, right string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			if r.Color {
				b.WriteString(color.RedString("[-%s-]", d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if r.Color {
				b.WriteString(color.GreenString("{+%s+}", d.Text))
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	return b.String()
}

func (r *Reporter) cellValue(v *string) string {
	if v == nil {
		return "-"
	}
	return truncate(*v, r.MaxValueWidth)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func writeBorder(b *strings.Builder, widths [4]int) {
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, row [4]string, widths [4]int, colorize func(format string, a ...interface{}) string) {
	for i, cell := range row {
		padded := cell + strings.Repeat(" ", widths[i]-len(cell))
		if colorize != nil && i == 3 {
			padded = colorize("%s", padded)
		}
		b.WriteString("| ")
		b.WriteString(padded)
		b.WriteString(" ")
	}
	b.WriteString("|\n")
}
