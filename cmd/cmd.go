// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, problemsCommand, solvedCommand, statsCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// problemsCommand handles catalog listing and export operations
func problemsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "problems",
		Aliases: []string{"p"},
		Usage:   "Browse the problem catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the filtered/sorted problem list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "difficulty",
						Aliases: []string{"d"},
						Usage:   "Difficulty filter (All, Easy, Medium, Hard)",
					},
					&cli.StringSliceFlag{
						Name:    "tag",
						Aliases: []string{"t"},
						Usage:   "Topic tag filter (repeatable, OR semantics)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Free-text search (title, id, tags)",
					},
					&cli.StringFlag{
						Name:    "sort",
						Aliases: []string{"s"},
						Usage:   "Sort key (likes, acceptance-rate, difficulty, total-accepted, title, solved, access)",
					},
					&cli.BoolFlag{
						Name:  "hide-solved",
						Usage: "Exclude solved problems",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of problems to print (0 = all)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProblemsList,
			},
			{
				Name:  "export",
				Usage: "Export the filtered/sorted list to CSV or Markdown",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (csv, markdown, text)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.ProblemsExport,
			},
			{
				Name:   "tags",
				Usage:  "List all topic tags in the catalog",
				Action: r.ProblemsTags,
			},
		},
	}
}

// authCommand handles session handle operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the session handle",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Set the session handle (free text, no password)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "handle"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the session handle and solved set",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Print the current handle and solved count",
				Action: r.AuthWhoami,
			},
		},
	}
}

// solvedCommand handles solved-set operations
func solvedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "solved",
		Usage: "Manage the solved-problem set",
		Commands: []*cli.Command{
			{
				Name:   "sync",
				Usage:  "Merge recent accepted submissions into the solved set",
				Action: r.SolvedSync,
			},
			{
				Name:  "mark",
				Usage: "Manually mark a problem as solved",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.SolvedMark,
			},
			{
				Name:  "unmark",
				Usage: "Remove a manual solved mark",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.SolvedUnmark,
			},
			{
				Name:   "list",
				Usage:  "List solved problems",
				Action: r.SolvedList,
			},
		},
	}
}

// statsCommand handles remote progress queries
func statsCommand(r *Runner) *cli.Command {
	userFlag := &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Handle to query (default: session handle)",
	}
	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Output raw JSON",
	}

	return &cli.Command{
		Name:  "stats",
		Usage: "Fetch personal progress from the remote API",
		Commands: []*cli.Command{
			{
				Name:   "profile",
				Usage:  "Public profile and solved-by-difficulty counts",
				Flags:  []cli.Flag{userFlag, jsonFlag},
				Action: r.StatsProfile,
			},
			{
				Name:   "calendar",
				Usage:  "Submission calendar (streak, active days)",
				Flags: []cli.Flag{
					userFlag,
					jsonFlag,
					&cli.IntFlag{Name: "year", Usage: "Calendar year (default: current window)"},
				},
				Action: r.StatsCalendar,
			},
			{
				Name:   "topics",
				Usage:  "Topic mastery across skill tiers",
				Flags:  []cli.Flag{userFlag, jsonFlag},
				Action: r.StatsTopics,
			},
			{
				Name:   "contest",
				Usage:  "Contest rating and ranking history",
				Flags:  []cli.Flag{userFlag, jsonFlag},
				Action: r.StatsContest,
			},
		},
	}
}

// serveCommand runs the GraphQL forwarding proxy
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the same-origin forwarding proxy for the GraphQL API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind host (default from config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Bind port (default from config)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for config and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the preference database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for the interactive dashboard.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui", "dashboard"},
		Usage:   "Launch the interactive dashboard",
		Action:  r.TUI,
	}
}
