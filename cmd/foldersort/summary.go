package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"foldersort/internal/organizer"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

func renderSummary(summary *organizer.Summary, colorize bool) string {
	if summary == nil {
		return ""
	}
	var b strings.Builder

	headers := []string{"Category", "Files", "Size"}
	rows := make([][]string, 0, len(summary.ByCategory)+1)
	for _, stats := range summary.ByCategory {
		rows = append(rows, []string{stats.Name, strconv.Itoa(stats.Files), humanize.Bytes(uint64(stats.Bytes))})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(summary.Moved + summary.Planned), humanize.Bytes(uint64(summary.Bytes))})
	b.WriteString(renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
	b.WriteString("\n")

	verb := "Moved"
	count := summary.Moved
	if summary.DryRun {
		verb = "Would move"
		count = summary.Planned
	}
	failed := fmt.Sprintf("%d failed", summary.Failed)
	if colorize {
		if summary.Failed > 0 {
			failed = ansiRed + failed + ansiReset
		} else {
			failed = ansiGreen + failed + ansiReset
		}
	}
	fmt.Fprintf(&b, "%s %d files, skipped %d, %s in %s (run %s)\n",
		verb, count, summary.Skipped, failed, summary.Elapsed.Round(time.Millisecond), summary.RunID)

	if failures := summary.Failures(); len(failures) > 0 {
		rows := make([][]string, 0, len(failures))
		for _, res := range failures {
			rows = append(rows, []string{res.Name, errorText(res.Err)})
		}
		b.WriteString(renderTable([]string{"File", "Error"}, rows, nil))
		b.WriteString("\n")
	}
	return b.String()
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func shouldColorize(writer io.Writer) bool {
	return isTerminal(writer)
}
