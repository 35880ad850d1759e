package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
	"leetdash/internal/catalog"
	"leetdash/internal/formatter"
	"leetdash/internal/models"
	"leetdash/internal/shared"
)

// SolvedSync merges the remote recent-accepted window into the solved set.
func (r *Runner) SolvedSync(ctx context.Context, cmd *cli.Command) error {
	sess, _, err := r.openSession()
	if err != nil {
		return err
	}

	result, err := sess.Sync(ctx)
	if err != nil {
		return err
	}

	if !result.Performed {
		return r.writePlainln("already synced for %s (%d solved)", sess.Handle(), sess.SolvedCount())
	}
	return r.writePlainln("fetched %d recent submissions, resolved %d, added %d (%d solved total)",
		result.Fetched, result.Resolved, result.Added, result.Total)
}

// resolveQuestionID resolves a user-supplied problem reference against the
// catalog. Accepts the internal question id, the display id, or the URL slug.
func resolveQuestionID(cat *catalog.Catalog, ref string) (models.Problem, error) {
	for _, p := range cat.Problems() {
		if p.QuestionID == ref || p.FrontendQuestionID == ref || p.TitleSlug == ref {
			return p, nil
		}
	}
	return models.Problem{}, fmt.Errorf("%w: no problem matches %q", shared.ErrInvalidArgument, ref)
}

func (r *Runner) toggleSolved(ctx context.Context, cmd *cli.Command, makeSolved bool) error {
	ref := cmd.StringArg("id")
	if ref == "" {
		return fmt.Errorf("%w: problem id", shared.ErrMissingArgument)
	}

	sess, cat, err := r.openSession()
	if err != nil {
		return err
	}

	problem, err := resolveQuestionID(cat, ref)
	if err != nil {
		return err
	}

	if err := sess.ToggleSolved(problem.QuestionID, makeSolved); err != nil {
		return err
	}

	state := "unsolved"
	if makeSolved {
		state = "solved"
	}
	return r.writePlainln("marked %s. %s as %s", problem.FrontendQuestionID, problem.Title, state)
}

// SolvedMark manually marks a problem as solved.
func (r *Runner) SolvedMark(ctx context.Context, cmd *cli.Command) error {
	return r.toggleSolved(ctx, cmd, true)
}

// SolvedUnmark removes a solved mark.
func (r *Runner) SolvedUnmark(ctx context.Context, cmd *cli.Command) error {
	return r.toggleSolved(ctx, cmd, false)
}

// SolvedList prints the solved problems in catalog order.
func (r *Runner) SolvedList(ctx context.Context, cmd *cli.Command) error {
	sess, cat, err := r.openSession()
	if err != nil {
		return err
	}

	solved := sess.Solved()
	if len(solved) == 0 {
		return r.writePlainln("no solved problems")
	}

	problems := make([]models.Problem, 0, len(solved))
	for _, p := range cat.Problems() {
		if _, ok := solved[p.QuestionID]; ok {
			problems = append(problems, p)
		}
	}

	// Solved ids without a catalog entry can exist when the catalog shrinks
	// between runs; they are persisted but not printable.
	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].FrontendQuestionID < problems[j].FrontendQuestionID
	})

	if _, err := r.output.Write(formatter.ExportToText(problems, solved)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return r.writePlainln("%d solved", len(solved))
}
