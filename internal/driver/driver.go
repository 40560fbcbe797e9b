// Package driver runs a scripted playback tour against a receiver.
//
// The tour stops playback, resumes it, skips forward, reports the new
// track, then goes back and reports again, pausing between steps so the
// changes are audible.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/musiccast/internal/logging"
	"github.com/muurk/musiccast/internal/yxc"
)

// Player is the subset of *yxc.Device the tour needs
type Player interface {
	Stop(ctx context.Context) (yxc.Response, error)
	Play(ctx context.Context) (yxc.Response, error)
	Next(ctx context.Context) (yxc.Response, error)
	Previous(ctx context.Context) (yxc.Response, error)
	GetPlayInfo(ctx context.Context) (yxc.Response, error)
}

var _ Player = (*yxc.Device)(nil)

// PauseFunc waits between steps
type PauseFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default PauseFunc. It returns early if ctx is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Step is one action of the tour
type Step struct {
	Message string
	Action  func(p Player, ctx context.Context) (yxc.Response, error)
	Settle  time.Duration // wait between the action and the report
	Report  bool          // print track and album after the action
	Pause   time.Duration // wait after the step
}

// DefaultTour is the stop/play/next/previous sequence
func DefaultTour() []Step {
	return []Step{
		{Message: "Pausing...", Action: Player.Stop, Pause: 3 * time.Second},
		{Message: "Resume...", Action: Player.Play, Pause: 2 * time.Second},
		{Message: "Next song", Action: Player.Next, Report: true, Pause: 3 * time.Second},
		{Message: "Never mind, getting back", Action: Player.Previous, Settle: 1 * time.Second, Report: true},
	}
}

// Run prints the model name and executes DefaultTour
func Run(ctx context.Context, p Player, model string, out io.Writer, pause PauseFunc) error {
	return RunSteps(ctx, p, model, DefaultTour(), out, pause)
}

// RunSteps executes steps in order. Transport errors abort the tour; a
// command the receiver rejects (empty response) is reported and the tour
// continues.
func RunSteps(ctx context.Context, p Player, model string, steps []Step, out io.Writer, pause PauseFunc) error {
	if pause == nil {
		pause = Sleep
	}

	fmt.Fprintf(out, "System Info: %s\n", model)

	for i, step := range steps {
		fmt.Fprintln(out, step.Message)

		resp, err := step.Action(p, ctx)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Message, err)
		}
		if resp.IsEmpty() {
			logging.Warn("Receiver rejected tour step", zap.Int("step", i+1), zap.String("message", step.Message))
			fmt.Fprintln(out, "  (receiver returned no data)")
		}

		if err := wait(ctx, pause, step.Settle); err != nil {
			return err
		}
		if step.Report {
			if err := report(ctx, p, out); err != nil {
				return err
			}
		}
		if err := wait(ctx, pause, step.Pause); err != nil {
			return err
		}
	}

	return nil
}

func wait(ctx context.Context, pause PauseFunc, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return pause(ctx, d)
}

func report(ctx context.Context, p Player, out io.Writer) error {
	resp, err := p.GetPlayInfo(ctx)
	if err != nil {
		return fmt.Errorf("get play info: %w", err)
	}
	fmt.Fprintf(out, "Track: %s\n", valueOrNone(resp, "track"))
	fmt.Fprintf(out, "Album: %s\n", valueOrNone(resp, "album"))
	return nil
}

func valueOrNone(r yxc.Response, key string) string {
	if _, ok := r[key]; !ok {
		return "None"
	}
	return fmt.Sprint(r[key])
}
