package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rescp17/transferNotify/internal/style"
	"github.com/rescp17/transferNotify/internal/util"
	"github.com/rescp17/transferNotify/pkg/notify"
	"github.com/rescp17/transferNotify/pkg/transfer"
)

type cliApp struct {
	configPath string
	logFile    string
	verbose    bool

	logOut io.WriteCloser
	log    *slog.Logger
}

func (a *cliApp) setupLogging() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logOut = f
		out = f
	}
	a.log = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)
	return nil
}

func (a *cliApp) close() {
	if a.logOut == nil {
		return
	}
	if err := a.logOut.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	a.logOut = nil
}

func (a *cliApp) loadConfig() (notify.Config, error) {
	if a.configPath == "" {
		return notify.DefaultConfig(), nil
	}
	return notify.LoadConfig(a.configPath)
}

// dispatcher installs the process-wide dispatcher for this command. A dry
// run writes notifications to the command output instead of the desktop.
// If a default is already installed the command keeps its own dispatcher.
func (a *cliApp) dispatcher(cmd *cobra.Command, cfg notify.Config, dryRun bool) *notify.Dispatcher {
	var platform notify.Platform
	if dryRun {
		platform = notify.NewLogPlatform(slog.New(slog.NewTextHandler(cmd.OutOrStdout(), nil)))
	} else {
		platform = notify.NewDesktopPlatform(cfg.AppName, cfg.IconPath)
	}
	d := notify.NewDispatcher(platform, notify.WithConfig(cfg), notify.WithLogger(a.log))
	if !notify.SetDefault(d) {
		a.log.Warn("default dispatcher already initialized, using a command-local one")
		return d
	}
	return notify.Default()
}

// awaitDelivery gives asynchronous desktop delivery time to finish before
// the process exits.
func awaitDelivery(cmd *cobra.Command, linger time.Duration) {
	if linger <= 0 {
		return
	}
	select {
	case <-time.After(linger):
	case <-cmd.Context().Done():
	}
}

func newRootCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transfernotify",
		Short:         "Format and deliver file transfer notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLogging()
		},
	}

	cmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to a JSON or YAML notification config")
	cmd.PersistentFlags().StringVar(&app.logFile, "log-file", "debug.log", "File to append logs to (empty for stderr)")
	cmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log debug output")

	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newSendCmd(app))
	cmd.AddCommand(newSimulateCmd(app))
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List notification kinds and their templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rows := [][]string{{"KIND", "TITLE", "TEMPLATE"}}
			for _, kind := range notify.AllEventKinds() {
				rows = append(rows, []string{kind.String(), kind.Title(), kind.BodyTemplate()})
			}

			widths := util.ColumnWidths(rows)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.HeaderStyle.Render(util.FormatRow(widths, "  ", rows[0]...)))
			for _, row := range rows[1:] {
				fmt.Fprintln(out, util.FormatRow(widths, "  ", row...))
			}
		},
	}
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <kind> [params...]",
		Short: "Print the notification a kind and parameters produce",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := notify.ParseEventKind(args[0])
			if err != nil {
				return err
			}
			params := args[1:]
			msg := notify.Format(kind, params...)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.NotificationBox.Render(
				style.TitleStyle.Render(msg.Title)+"\n"+style.BodyStyle.Render(msg.Body)))
			if missing := kind.Placeholders() - len(params); missing > 0 {
				fmt.Fprintln(out, style.HelpStyle.Render(fmt.Sprintf("%d placeholder(s) left unfilled", missing)))
			}
			return nil
		},
	}
}

func newSendCmd(app *cliApp) *cobra.Command {
	var (
		dryRun bool
		linger time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send <kind> [params...]",
		Short: "Deliver a notification through the desktop notification service",
		Long: "Deliver a notification through the desktop notification service.\n" +
			"Every kind takes two parameters: the file name and the peer name.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := notify.ParseEventKind(args[0])
			if err != nil {
				return err
			}
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			dispatcher := app.dispatcher(cmd, cfg, dryRun)
			dispatcher.Initialize()
			dispatcher.Send(kind, args[1:]...)

			if !dryRun {
				awaitDelivery(cmd, linger)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Write the notification to stdout instead of showing it")
	cmd.Flags().DurationVar(&linger, "linger", 2*time.Second, "How long to wait for asynchronous delivery before exiting")
	return cmd
}

func newSimulateCmd(app *cliApp) *cobra.Command {
	var (
		receive bool
		failure string
		dryRun  bool
		linger  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate <file> <peer>",
		Short: "Run a transfer through its lifecycle and notify at each step",
		Long: "Run a transfer through pending, active and then completed (or failed\n" +
			"with --fail), raising the notifications a real transfer would.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			dispatcher := app.dispatcher(cmd, cfg, dryRun)
			dispatcher.Initialize()

			hub := transfer.NewStatusHub(app.log)
			hub.AddStatusListener(transfer.NewNotificationListener(dispatcher))
			tracker := transfer.NewTracker(hub)
			defer hub.Close()

			filePath, peer := args[0], args[1]
			direction := transfer.DirectionSend
			if receive {
				direction = transfer.DirectionReceive
			}

			if _, err := tracker.Add(filePath, peer, direction, 0); err != nil {
				return err
			}
			if err := tracker.Start(filePath); err != nil {
				return err
			}
			// Let the start notification go out before the outcome.
			hub.Wait()

			if failure != "" {
				err = tracker.Fail(filePath, errors.New(failure))
			} else {
				err = tracker.Complete(filePath)
			}
			if err != nil {
				return err
			}
			hub.Close()

			status, err := tracker.Get(filePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.HelpStyle.Render(
				fmt.Sprintf("%s %s %s: %s", direction, status.FileName(), peer, status.State)))

			if !dryRun {
				awaitDelivery(cmd, linger)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&receive, "receive", false, "Simulate an incoming transfer instead of an outgoing one")
	cmd.Flags().StringVar(&failure, "fail", "", "Fail the transfer with this reason instead of completing it")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Write the notifications to stdout instead of showing them")
	cmd.Flags().DurationVar(&linger, "linger", 2*time.Second, "How long to wait for asynchronous delivery before exiting")
	return cmd
}
