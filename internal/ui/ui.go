package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"leetdash/internal/catalog"
	"leetdash/internal/models"
	"leetdash/internal/services"
	"leetdash/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ProblemListView ViewState = iota
	LoginView
	StatsView
	HeatmapView
	TopicsView
)

// Model represents the TUI application state.
//
// All session mutation goes through the documented session operations; the
// model only derives its list from VisibleProblems and re-derives after every
// mutation, so the rendered order always reflects the pipeline.
type Model struct {
	ctx     context.Context
	view    ViewState
	sess    *session.Session
	catalog *catalog.Catalog
	remote  services.Service

	width  int
	height int

	problemList list.Model
	listReady   bool
	input       textinput.Model
	help        help.Model
	keys        keyMap
	status      string

	profile     *models.UserProfile
	solvedStats *models.SolvedStats
	contest     *models.ContestRanking
	statsErr    error

	calendar *models.CalendarData
	calErr   error

	topics    *models.TopicStats
	topicsErr error
}

type syncDoneMsg struct {
	result *session.SyncResult
	err    error
}

type statsFetchedMsg struct {
	profile *models.UserProfile
	stats   *models.SolvedStats
	contest *models.ContestRanking
	err     error
}

type calendarFetchedMsg struct {
	calendar *models.CalendarData
	err      error
}

type topicsFetchedMsg struct {
	topics *models.TopicStats
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, sess *session.Session, cat *catalog.Catalog, remote services.Service) *Model {
	input := textinput.New()
	input.Placeholder = "LeetCode username"
	input.CharLimit = 64

	return &Model{
		ctx:     ctx,
		view:    ProblemListView,
		sess:    sess,
		catalog: cat,
		remote:  remote,
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init builds the problem list and kicks off a solved-set sync when a handle
// was restored from the preference store.
func (m *Model) Init() tea.Cmd {
	m.rebuildList()
	if m.sess.Handle() != "" {
		return m.syncCmd()
	}
	return nil
}

// rebuildList re-derives the visible problem list from the session state.
func (m *Model) rebuildList() {
	visible := m.sess.VisibleProblems()
	solved := m.sess.Solved()
	hideTags := m.sess.HideTags()

	items := make([]list.Item, len(visible))
	for i, p := range visible {
		_, isSolved := solved[p.QuestionID]
		items[i] = problemItem{problem: p, solved: isSolved, hideTags: hideTags}
	}

	if !m.listReady {
		m.problemList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.problemList.SetShowHelp(false)
		m.listReady = true
		if m.width > 0 {
			m.problemList.SetSize(m.width-4, m.height-8)
		}
	} else {
		m.problemList.SetItems(items)
	}

	m.problemList.Title = m.listTitle(len(visible))
}

func (m *Model) listTitle(visibleCount int) string {
	title := fmt.Sprintf("Problems %d/%d • sort: %s", visibleCount, m.catalog.Len(), m.sess.SortBy())
	filters := m.sess.Filters()
	if filters.Difficulty != models.FilterAll {
		title += fmt.Sprintf(" • %s", filters.Difficulty)
	}
	if handle := m.sess.Handle(); handle != "" {
		title += fmt.Sprintf(" • @%s (%d solved)", handle, m.sess.SolvedCount())
	}
	return title
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.problemList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ProblemListView:
			return m.handleProblemListKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		default:
			return m.handlePanelKeys(msg)
		}

	case syncDoneMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Sync failed: %v", msg.err))
		} else if msg.result != nil && msg.result.Performed {
			m.status = styles.ok.Render(fmt.Sprintf("Synced: %d new, %d total", msg.result.Added, msg.result.Total))
		}
		m.rebuildList()
		return m, nil

	case statsFetchedMsg:
		m.profile = msg.profile
		m.solvedStats = msg.stats
		m.contest = msg.contest
		m.statsErr = msg.err
		return m, nil

	case calendarFetchedMsg:
		m.calendar = msg.calendar
		m.calErr = msg.err
		return m, nil

	case topicsFetchedMsg:
		m.topics = msg.topics
		m.topicsErr = msg.err
		return m, nil
	}

	if m.listReady && m.view == ProblemListView {
		var cmd tea.Cmd
		m.problemList, cmd = m.problemList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleProblemListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list's built-in fuzzy filter consume keys while active.
	if m.problemList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.problemList, cmd = m.problemList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.toggleSelected()

	case "l":
		m.view = LoginView
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "L":
		m.sess.SetHandle("")
		m.profile, m.solvedStats, m.contest = nil, nil, nil
		m.calendar, m.topics = nil, nil
		m.status = "Logged out"
		m.rebuildList()
		return m, nil

	case "y":
		if m.sess.Handle() == "" {
			m.status = styles.warn.Render("Login first to sync solved problems")
			return m, nil
		}
		m.status = "Syncing solved problems..."
		return m, m.syncCmd()

	case "s":
		m.sess.SetSortBy(nextSort(m.sess.SortBy(), m.sess.Handle() != ""))
		m.rebuildList()
		return m, nil

	case "d":
		filters := m.sess.Filters()
		filters.Difficulty = nextDifficulty(filters.Difficulty)
		m.sess.SetFilters(filters)
		m.rebuildList()
		return m, nil

	case "h":
		m.sess.SetHideSolved(!m.sess.HideSolved())
		m.rebuildList()
		return m, nil

	case "t":
		m.sess.SetHideTags(!m.sess.HideTags())
		m.rebuildList()
		return m, nil

	case "p":
		return m.openPanel(StatsView, m.fetchStatsCmd())

	case "c":
		return m.openPanel(HeatmapView, m.fetchCalendarCmd())

	case "T":
		return m.openPanel(TopicsView, m.fetchTopicsCmd())
	}

	var cmd tea.Cmd
	m.problemList, cmd = m.problemList.Update(msg)
	return m, cmd
}

func (m *Model) toggleSelected() (tea.Model, tea.Cmd) {
	selected := m.problemList.SelectedItem()
	item, ok := selected.(problemItem)
	if !ok {
		return m, nil
	}

	makeSolved := !m.sess.IsSolved(item.problem.QuestionID)
	if err := m.sess.ToggleSolved(item.problem.QuestionID, makeSolved); err != nil {
		m.status = styles.warn.Render("Login first to track your solved problems")
		return m, nil
	}

	m.rebuildList()
	return m, nil
}

func (m *Model) openPanel(view ViewState, fetch tea.Cmd) (tea.Model, tea.Cmd) {
	if m.sess.Handle() == "" {
		m.status = styles.warn.Render("Login first to see personal stats")
		return m, nil
	}
	m.view = view
	return m, fetch
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ProblemListView
		return m, nil
	case "enter":
		handle := m.input.Value()
		m.view = ProblemListView
		m.sess.SetHandle(handle)
		m.rebuildList()
		if m.sess.Handle() != "" {
			m.status = "Syncing solved problems..."
			return m, m.syncCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handlePanelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ProblemListView
		return m, nil
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case StatsView:
		return m.renderPanel(m.statsErr, m.profile != nil, func() string {
			return renderStats(m.profile, m.solvedStats, m.contest)
		})
	case HeatmapView:
		return m.renderPanel(m.calErr, m.calendar != nil, func() string {
			return renderHeatmap(m.calendar, time.Now())
		})
	case TopicsView:
		return m.renderPanel(m.topicsErr, m.topics != nil, func() string {
			return renderTopics(m.topics)
		})
	default:
		return m.renderProblemList()
	}
}

func (m *Model) renderProblemList() string {
	if !m.listReady {
		return "Loading problems..."
	}

	status := m.status
	if m.sess.Syncing() {
		status = "Syncing solved problems..."
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n%s\n\n%s", m.problemList.View(), status, helpView)
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Login")
	note := styles.help.Render("Enter your LeetCode username (no password, public data only)")
	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, note, m.input.View(),
		styles.help.Render("enter confirm • esc cancel"))
}

// renderPanel renders a fetched stats panel with its loading and error states.
// The rest of the interface stays interactive when a panel fails; only the
// failing panel shows inline error text.
func (m *Model) renderPanel(err error, ready bool, render func() string) string {
	back := styles.help.Render("esc back • q quit")
	if err != nil {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(fmt.Sprintf("Error: %v", err)), back)
	}
	if !ready {
		return fmt.Sprintf("Loading...\n\n%s", back)
	}
	return fmt.Sprintf("%s\n\n%s", render(), back)
}

func (m *Model) syncCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.sess.Sync(m.ctx)
		return syncDoneMsg{result: result, err: err}
	}
}

func (m *Model) fetchStatsCmd() tea.Cmd {
	handle := m.sess.Handle()
	return func() tea.Msg {
		profile, err := m.remote.PublicProfile(m.ctx, handle)
		if err != nil {
			return statsFetchedMsg{err: err}
		}

		stats, err := m.remote.ProblemsSolved(m.ctx, handle)
		if err != nil {
			return statsFetchedMsg{err: err}
		}

		// Contest data is optional; users without contest history render
		// without the section.
		contest, _, err := m.remote.ContestRanking(m.ctx, handle)
		if err != nil {
			contest = nil
		}

		return statsFetchedMsg{profile: profile, stats: stats, contest: contest}
	}
}

func (m *Model) fetchCalendarCmd() tea.Cmd {
	handle := m.sess.Handle()
	return func() tea.Msg {
		calendar, err := m.remote.ProfileCalendar(m.ctx, handle, 0)
		return calendarFetchedMsg{calendar: calendar, err: err}
	}
}

func (m *Model) fetchTopicsCmd() tea.Cmd {
	handle := m.sess.Handle()
	return func() tea.Msg {
		topics, err := m.remote.SkillStats(m.ctx, handle)
		return topicsFetchedMsg{topics: topics, err: err}
	}
}

// nextSort cycles through the sort options; solved-status sort is skipped
// while anonymous because it would be a no-op ordering.
func nextSort(current models.SortOption, loggedIn bool) models.SortOption {
	order := []models.SortOption{
		models.SortLikes,
		models.SortAcceptanceRate,
		models.SortDifficulty,
		models.SortTotalAccepted,
		models.SortTitle,
		models.SortSolved,
		models.SortAccess,
	}

	idx := 0
	for i, opt := range order {
		if opt == current {
			idx = i
			break
		}
	}

	for {
		idx = (idx + 1) % len(order)
		if order[idx] == models.SortSolved && !loggedIn {
			continue
		}
		return order[idx]
	}
}

// nextDifficulty cycles All → Easy → Medium → Hard → All.
func nextDifficulty(current models.DifficultyFilter) models.DifficultyFilter {
	switch current {
	case models.FilterAll:
		return models.DifficultyFilter(models.Easy)
	case models.DifficultyFilter(models.Easy):
		return models.DifficultyFilter(models.Medium)
	case models.DifficultyFilter(models.Medium):
		return models.DifficultyFilter(models.Hard)
	default:
		return models.FilterAll
	}
}
