// package formatter provides functions to export problem lists to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"leetdash/internal/models"
)

// ExportToCSV converts a problem list to CSV with columns:
// ID, Title, Difficulty, Likes, AcceptRate, TotalAccepted, Tags, Access, Solved
func ExportToCSV(problems []models.Problem, solved map[string]struct{}) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Difficulty", "Likes", "AcceptRate", "TotalAccepted", "Tags", "Access", "Solved"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, p := range problems {
		record := []string{
			p.FrontendQuestionID,
			p.Title,
			string(p.Difficulty),
			strconv.Itoa(p.Likes),
			p.AcRate,
			strconv.Itoa(p.TotalAccepted),
			strings.Join(p.Tags(), "; "),
			accessLabel(p),
			strconv.FormatBool(isSolved(p, solved)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a problem list to a Markdown table.
func ExportToMarkdown(title string, problems []models.Problem, solved map[string]struct{}) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("%d problems\n\n", len(problems)))
	buf.WriteString("| # | Title | Difficulty | Likes | Accept Rate | Tags | Access |\n")
	buf.WriteString("|---|-------|-----------|-------|-------------|------|--------|\n")

	for _, p := range problems {
		marker := ""
		if isSolved(p, solved) {
			marker = " ✓"
		}
		buf.WriteString(fmt.Sprintf("| %s | [%s](https://leetcode.com/problems/%s/)%s | %s | %d | %s | %s | %s |\n",
			p.FrontendQuestionID,
			p.Title,
			p.TitleSlug,
			marker,
			p.Difficulty,
			p.Likes,
			p.AcRate,
			strings.Join(p.Tags(), ", "),
			accessLabel(p),
		))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a problem list to aligned plain text for terminal output.
func ExportToText(problems []models.Problem, solved map[string]struct{}) []byte {
	var buf bytes.Buffer

	for _, p := range problems {
		marker := " "
		if isSolved(p, solved) {
			marker = "✓"
		}
		buf.WriteString(fmt.Sprintf("%s %-6s %-60s %-6s %6d likes  %s\n",
			marker, p.FrontendQuestionID, truncate(p.Title, 60), p.Difficulty, p.Likes, p.AcRate))
	}

	return buf.Bytes()
}

func accessLabel(p models.Problem) string {
	if p.IsPaidOnly {
		return "Premium"
	}
	return "Free"
}

func isSolved(p models.Problem, solved map[string]struct{}) bool {
	if solved == nil {
		return false
	}
	_, ok := solved[p.QuestionID]
	return ok
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
