package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"leetdash/internal/catalog"
	"leetdash/internal/formatter"
	"leetdash/internal/models"
	"leetdash/internal/shared"
)

// viewFromFlags starts from the session's persisted view and overlays any
// filter or sort flags the invocation set.
func viewFromFlags(view catalog.View, cmd *cli.Command) (catalog.View, error) {
	if cmd.IsSet("difficulty") {
		difficulty := models.DifficultyFilter(cmd.String("difficulty"))
		switch difficulty {
		case models.FilterAll,
			models.DifficultyFilter(models.Easy),
			models.DifficultyFilter(models.Medium),
			models.DifficultyFilter(models.Hard):
			view.Filters.Difficulty = difficulty
		default:
			return view, fmt.Errorf("%w: difficulty %q", shared.ErrInvalidFlag, difficulty)
		}
	}

	if cmd.IsSet("tag") {
		view.Filters.Tags = cmd.StringSlice("tag")
	}
	if cmd.IsSet("search") {
		view.Filters.SearchQuery = cmd.String("search")
	}
	if cmd.IsSet("hide-solved") {
		view.HideSolved = cmd.Bool("hide-solved")
	}

	if cmd.IsSet("sort") {
		sortBy := models.SortOption(cmd.String("sort"))
		if !models.ValidSort(sortBy) {
			return view, fmt.Errorf("%w: sort %q", shared.ErrInvalidFlag, sortBy)
		}
		view.SortBy = sortBy
	}

	return view, nil
}

// ProblemsList prints the filtered and sorted problem list.
func (r *Runner) ProblemsList(ctx context.Context, cmd *cli.Command) error {
	sess, cat, err := r.openSession()
	if err != nil {
		return err
	}

	view, err := viewFromFlags(sess.View(), cmd)
	if err != nil {
		return err
	}

	problems := cat.Visible(view)
	if limit := cmd.Int("limit"); limit > 0 && limit < len(problems) {
		problems = problems[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(problems, true)
	}

	if len(problems) == 0 {
		return r.writePlainln("no problems match the current filters")
	}

	if _, err := r.output.Write(formatter.ExportToText(problems, view.Solved)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return r.writePlainln("%d problems", len(problems))
}

// ProblemsExport writes the filtered and sorted list as CSV, Markdown, or text.
func (r *Runner) ProblemsExport(ctx context.Context, cmd *cli.Command) error {
	sess, cat, err := r.openSession()
	if err != nil {
		return err
	}

	view := sess.View()
	problems := cat.Visible(view)

	var data []byte
	switch format := strings.ToLower(cmd.String("format")); format {
	case "csv":
		data, err = formatter.ExportToCSV(problems, view.Solved)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown("Practice Problems", problems, view.Solved)
	case "text", "txt":
		data = formatter.ExportToText(problems, view.Solved)
	default:
		return fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		if _, err := r.output.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	r.logger.Info("exported problem list", "path", outputPath, "problems", len(problems))
	return r.writePlainln("exported %d problems to %s", len(problems), outputPath)
}

// ProblemsTags lists every topic tag present in the catalog.
func (r *Runner) ProblemsTags(ctx context.Context, cmd *cli.Command) error {
	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	for _, tag := range cat.AvailableTags() {
		if err := r.writePlainln("%s", tag); err != nil {
			return err
		}
	}
	return nil
}
