// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the practice catalog:
//  1. [ProblemListView] : Browse the filtered/sorted problem list, toggle solved marks
//  2. [LoginView] : Enter a handle to overlay personal progress
//  3. [StatsView] : Profile, solved-by-difficulty counts, contest standing
//  4. [HeatmapView] : 53-week submission calendar grid
//  5. [TopicsView] : Topic mastery across three skill tiers
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Remote fetches run as commands and report back through typed messages; the
// model never mutates session state directly, only through the documented
// session operations, and re-derives its list from the pipeline after every
// mutation.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
