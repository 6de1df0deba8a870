package delivery

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/supchaser/video_analysis/internal/app/models"
)

const (
	ReportFallback = "**Error loading report.**"
	shortIDLength  = 8
)

var (
	headerColor  = color.New(color.FgGreen, color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	mutedColor   = color.New(color.FgHiBlack)
)

// RenderResult writes the match report and the video reference.
func RenderResult(w io.Writer, taskID string, result *models.Result) {
	headerColor.Fprintln(w, "Match Report")
	mutedColor.Fprintf(w, "Analysis completed successfully. ID: %s\n\n", ShortID(taskID))

	report := ReportFallback
	if result != nil && strings.TrimSpace(result.ReportMarkdown) != "" {
		report = result.ReportMarkdown
	}
	fmt.Fprintln(w, strings.TrimRight(report, "\n"))

	if result != nil && result.VideoURL != "" {
		fmt.Fprintf(w, "\nVideo: %s\n", result.VideoURL)
	}
}

// RenderSummary prints one row per analyzed file.
func RenderSummary(w io.Writer, summaries []models.RunSummary) {
	if len(summaries) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Task", "Outcome", "Detail"})
	table.SetAutoWrapText(false)
	for _, s := range summaries {
		table.Append([]string{s.File, ShortID(s.TaskID), outcomeLabel(s.Outcome), s.Detail})
	}
	table.Render()
}

func ShortID(taskID string) string {
	if len(taskID) <= shortIDLength {
		return taskID
	}
	return taskID[:shortIDLength]
}

func outcomeLabel(kind models.EventKind) string {
	switch kind {
	case models.EventCompleted:
		return "completed"
	case models.EventFailed:
		return "failed"
	case models.EventUploadFailed:
		return "upload failed"
	default:
		return "interrupted"
	}
}
