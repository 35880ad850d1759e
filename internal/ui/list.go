package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"leetdash/internal/models"
)

var _ list.Item = problemItem{}

// problemItem wraps [models.Problem] to implement [list.Item].
type problemItem struct {
	problem  models.Problem
	solved   bool
	hideTags bool
}

func (i problemItem) FilterValue() string { return i.problem.Title }

func (i problemItem) Title() string {
	marker := "  "
	if i.solved {
		marker = styles.ok.Render("✓ ")
	}
	diff := styles.difficultyStyle(string(i.problem.Difficulty)).Render(string(i.problem.Difficulty))
	title := fmt.Sprintf("%s%s. %s  %s", marker, i.problem.FrontendQuestionID, i.problem.Title, diff)
	if i.problem.IsPaidOnly {
		title += styles.warn.Render("  [premium]")
	}
	return title
}

func (i problemItem) Description() string {
	desc := fmt.Sprintf("%d likes • %s acceptance • %d accepted", i.problem.Likes, i.problem.AcRate, i.problem.TotalAccepted)
	if !i.hideTags {
		if tags := i.problem.Tags(); len(tags) > 0 {
			desc = fmt.Sprintf("%s • %s", desc, strings.Join(tags, ", "))
		}
	}
	return desc
}
