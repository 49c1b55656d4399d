package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/ec2man/ec2man/internal/action"
	"github.com/ec2man/ec2man/internal/models"
	"github.com/ec2man/ec2man/internal/version"
	"github.com/ec2man/ec2man/pkg/aws"
	"github.com/ec2man/ec2man/pkg/formatter"
)

// rootFlags holds the raw flag values before they become Settings.
type rootFlags struct {
	list        bool
	startID     string
	stopID      string
	test        bool
	quiet       bool
	verbose     bool
	showVersion bool
}

// settings assembles the complete Settings value for one invocation.
func (f *rootFlags) settings(instanceID string) models.Settings {
	return models.Settings{
		InstanceID: instanceID,
		Test:       f.test,
		Verbose:    f.verbose,
		Quiet:      f.quiet,
	}
}

// newEC2Client builds the real SDK-backed client. Tests swap it for a
// stub-backed one.
var newEC2Client = aws.NewEC2Client

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ec2man (--list | --start INSTANCE | --stop INSTANCE) [--quiet | --verbose] [--test]",
		Short: "CLI tool to list, start, and stop EC2 instances",
		Long: `ec2man lists, starts, and stops EC2 instances in your AWS account.
Credentials come from the SDK's usual configuration chain (environment,
shared config files, instance metadata); no other setup is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "ec2man version %s\n", version.Get())
				return nil
			}

			return run(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "List all registered EC2 instances in your account")
	cmd.Flags().StringVar(&flags.startID, "start", "", "Start the EC2 instance with id `INSTANCE`")
	cmd.Flags().StringVar(&flags.stopID, "stop", "", "Stop the EC2 instance with id `INSTANCE`")
	cmd.Flags().BoolVar(&flags.test, "test", false, "Check permissions only, without starting or stopping anything")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Print less text")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Print more text")
	cmd.Flags().BoolVarP(&flags.showVersion, "version", "v", false, "Show version information")

	cmd.MarkFlagsMutuallyExclusive("list", "start", "stop")

	return cmd
}

// run dispatches to the selected mode. Everything past flag validation
// prints its own errors and exits zero; only grammar violations return an
// error here.
func run(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case flags.list:
		runList(ctx, out, flags.settings(""))
	case flags.startID != "":
		runStart(ctx, out, flags.settings(flags.startID))
	case flags.stopID != "":
		runStop(ctx, out, flags.settings(flags.stopID))
	default:
		return errors.New("one of --list, --start or --stop must be given")
	}

	return nil
}

// startFetchSpinner shows progress on stderr while the describe call runs,
// keeping stdout for the summaries themselves.
func startFetchSpinner() *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Fetching EC2 instances ..."
	s.Start()
	return s
}

// runList prints a summary block for every instance in the account.
func runList(ctx context.Context, out io.Writer, settings models.Settings) {
	if !settings.Quiet {
		formatter.PrintListHeader(out)
	}

	var s *spinner.Spinner
	if !settings.Quiet {
		s = startFetchSpinner()
	}

	instances, err := fetchInstances(ctx)

	if s != nil {
		s.Stop()
	}

	if err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return
	}

	for _, instance := range instances {
		formatter.PrintInstanceSummary(out, instance, settings.Verbose, settings.Quiet)
	}
}

func fetchInstances(ctx context.Context) ([]models.Instance, error) {
	client, err := newEC2Client(ctx)
	if err != nil {
		return nil, err
	}

	return client.ListInstances(ctx)
}

// runStart starts one instance through the action runner.
func runStart(ctx context.Context, out io.Writer, settings models.Settings) {
	client, err := newEC2Client(ctx)
	if err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return
	}

	action.NewRunner(settings, client, out).Start(ctx)
}

// runStop stops one instance through the action runner.
func runStop(ctx context.Context, out io.Writer, settings models.Settings) {
	client, err := newEC2Client(ctx)
	if err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return
	}

	action.NewRunner(settings, client, out).Stop(ctx)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
