package action

import (
	"context"
	"fmt"
	"io"

	"github.com/ec2man/ec2man/internal/models"
	"github.com/ec2man/ec2man/pkg/aws"
)

// InstanceAPI covers the two state-changing calls the runner drives.
// *aws.EC2Client satisfies it.
type InstanceAPI interface {
	StartInstance(ctx context.Context, instanceID string, dryRun bool) error
	StopInstance(ctx context.Context, instanceID string, dryRun bool) error
}

// Runner executes a start or stop against one instance, printing the
// outcome instead of returning it. Remote failures are reported on out
// and never propagate.
type Runner struct {
	settings models.Settings
	api      InstanceAPI
	out      io.Writer
}

// NewRunner creates a Runner for the given settings, writing all output to out.
func NewRunner(settings models.Settings, api InstanceAPI, out io.Writer) *Runner {
	return &Runner{
		settings: settings,
		api:      api,
		out:      out,
	}
}

// Start brings the configured instance out of the stopped state.
func (r *Runner) Start(ctx context.Context) {
	r.run(ctx, "start", "starting", r.api.StartInstance)
}

// Stop shuts the configured instance down.
func (r *Runner) Stop(ctx context.Context) {
	r.run(ctx, "stop", "stopping", r.api.StopInstance)
}

// run verifies permissions with a dry-run call, then performs the real call.
// In test mode only the dry run is issued and its outcome reported. Outside
// test mode the dry run's outcome is not reported and the real call is
// issued regardless, so a denied dry run surfaces as the real call's error.
func (r *Runner) run(ctx context.Context, verb string, gerund string, call func(context.Context, string, bool) error) {
	id := r.settings.InstanceID

	// Dry run to verify permissions
	err := call(ctx, id, true)
	if r.settings.Test {
		switch {
		case aws.IsDryRunSuccess(err):
			fmt.Fprintf(r.out, "Test successful, able to %s %s.\n", verb, id)
		case err != nil:
			fmt.Fprintf(r.out, "Test failed, can't %s %s.\n%v\n", verb, id, err)
		}
		return
	}

	if err := call(ctx, id, false); err != nil {
		fmt.Fprintf(r.out, "ERROR: %v\n", err)
		return
	}

	fmt.Fprintf(r.out, "Command successful, %s is %s...\n", id, gerund)
}
