package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "webch.dev/pkg/webch/internal/model"
)

// UI is the progress/diagnostics surface of the workflow. Renderer output
// goes to stdout (or a file); everything here goes to stderr so the two never
// interleave when the result is piped.
type UI interface {
	// Infof prints a progress message, only when verbose.
	Infof(format string, args ...any)
	// Warnf prints a diagnostic, regardless of verbosity.
	Warnf(format string, args ...any)
	// DisplaySummary shows per-change-file apply statistics, only when verbose.
	DisplaySummary(stats []m.ApplyStats)
}

// SimpleUI implements UI on a cobra command's error stream.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, verbose bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, verbose: verbose}
}

// Infof prints a progress message when verbose mode is on.
func (s *SimpleUI) Infof(format string, args ...any) {
	if !s.verbose {
		return
	}

	s.cmd.PrintErrf(format+"\n", args...)
}

// Warnf prints a diagnostic message.
func (s *SimpleUI) Warnf(format string, args ...any) {
	s.cmd.PrintErrf(format+"\n", args...)
}

// DisplaySummary renders one table row per applied change file.
func (s *SimpleUI) DisplaySummary(stats []m.ApplyStats) {
	if !s.verbose || len(stats) == 0 {
		return
	}

	s.cmd.PrintErrf("\n%s", renderSummaryTable(stats))
}

func renderSummaryTable(stats []m.ApplyStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Change File", "Sections", "Removed", "Added"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalSections, totalRemoved, totalAdded := 0, 0, 0
	for _, stat := range stats {
		table.Append([]string{
			string(stat.ChangeFile),
			strconv.Itoa(stat.Sections),
			strconv.Itoa(stat.Removed),
			strconv.Itoa(stat.Added),
		})

		totalSections += stat.Sections
		totalRemoved += stat.Removed
		totalAdded += stat.Added
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		strconv.Itoa(totalSections),
		strconv.Itoa(totalRemoved),
		strconv.Itoa(totalAdded),
	})

	table.Render()

	return tableBuffer.String()
}
