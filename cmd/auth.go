package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"leetdash/internal/shared"
)

// AuthLogin sets the session handle and kicks off an initial solved-set sync.
//
// The handle is free text; no credential is checked. A sync failure does not
// fail the login, the session falls back to whatever solved set is persisted.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	handle := cmd.StringArg("handle")
	if handle == "" {
		return fmt.Errorf("%w: handle", shared.ErrMissingArgument)
	}

	sess, _, err := r.openSession()
	if err != nil {
		return err
	}

	sess.SetHandle(handle)
	if sess.Handle() == "" {
		return fmt.Errorf("%w: handle is blank", shared.ErrInvalidArgument)
	}

	result, err := sess.Sync(ctx)
	if err != nil {
		r.logger.Warn("initial sync failed, keeping persisted progress", "err", err)
		return r.writePlainln("logged in as %s (sync failed: %v)", sess.Handle(), err)
	}

	if result.Performed {
		return r.writePlainln("logged in as %s, %d solved (%d added from recent submissions)",
			sess.Handle(), result.Total, result.Added)
	}
	return r.writePlainln("logged in as %s, %d solved", sess.Handle(), sess.SolvedCount())
}

// AuthLogout clears the session handle and the in-memory solved set.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	sess, _, err := r.openSession()
	if err != nil {
		return err
	}

	if sess.Handle() == "" {
		return r.writePlainln("not logged in")
	}

	sess.SetHandle("")
	return r.writePlainln("logged out")
}

// AuthWhoami prints the current handle and solved count.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	sess, _, err := r.openSession()
	if err != nil {
		return err
	}

	if sess.Handle() == "" {
		return r.writePlainln("not logged in")
	}
	return r.writePlainln("%s (%d solved)", sess.Handle(), sess.SolvedCount())
}
