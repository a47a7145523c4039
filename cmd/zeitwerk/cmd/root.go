package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/core/i18n"
	mdwlog "github.com/msto63/zeitwerk/foundation/core/log"
	"github.com/msto63/zeitwerk/pkg/chrono"
	"github.com/msto63/zeitwerk/pkg/core/config"
	"github.com/msto63/zeitwerk/pkg/core/logging"
)

// app is the state shared by all commands of one invocation
type app struct {
	cfgFile string
	zoneID  string
	layout  string
	locale  string
	verbose bool

	cfg   *config.Config
	log   *logging.Logger
	clock chrono.Clock
	zone  chrono.ZoneOffset

	// set once a command body runs; errors raised earlier come from cobra
	started bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "zeitwerk",
		Short: "zeitwerk - civil calendar and zone offset engine",
		Long: `zeitwerk converts between instants and wall-clock date and time in
fixed-offset and named zones, and adds exact durations or calendar periods.

Zones:
  Z, +05:30, -03:00:30   fixed offsets
  Europe/Berlin          IANA names
  CET, PST               abbreviations

Configuration is read from --config, $ZEITWERK_CONFIG, ./zeitwerk.toml,
./zeitwerk.yaml or ~/.config/zeitwerk/config.{toml,yaml}.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().StringVarP(&a.zoneID, "zone", "z", "", "default zone, overrides clock.zone")
	root.PersistentFlags().StringVarP(&a.layout, "layout", "l", "", "output layout name or Go layout, overrides format.layout")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "locale for month, weekday and zone names, overrides format.locale")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newAddCmd(a),
		newDiffCmd(a),
		newZoneCmd(a),
		newCalendarCmd(a),
		newVersionCmd(),
	)
	for _, cmd := range root.Commands() {
		a.timed(cmd)
	}
	return root, a
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	root, a := newRoot()
	if err := a.execute(root); err != nil {
		printError(root.ErrOrStderr(), err)
		return exitCode(err)
	}
	return 0
}

// execute runs root and classifies its error. Uncoded errors raised before
// a command body started are argument, flag or command-name mistakes.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err == nil {
		return nil
	}
	if !a.started && mdwerror.GetCode(err) == mdwerror.CodeUnknown {
		err = mdwerror.Wrap(err, "usage").WithCode(mdwerror.CodeUsage)
	}
	if a.log != nil {
		a.log.LogError(err)
	}
	return err
}

// timed logs how long the body of cmd took, at debug level
func (a *app) timed(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a.started = true
		timer := a.log.StartTimer(cmd.Name())
		if err := run(cmd, args); err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.zoneID != "" {
		a.cfg.Clock.Zone = a.zoneID
	}
	if a.layout != "" {
		a.cfg.Format.Layout = a.layout
	}
	if a.locale != "" {
		if err := i18n.ValidateLocale(a.locale); err != nil {
			return err
		}
		a.cfg.Format.Locale = i18n.NormalizeLocale(a.locale)
	}

	logger := logging.FromConfig("zeitwerk", a.cfg, stderr)
	if a.verbose {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}
	a.log = logging.Wrap(logger)
	a.log.Debug("config loaded", "path", a.cfg.Path, "zone", a.cfg.Clock.Zone, "layout", a.cfg.Format.Layout)

	if a.zone, err = a.cfg.Zone(); err != nil {
		return err
	}
	if a.clock, err = a.cfg.Clock(); err != nil {
		return err
	}
	return nil
}

// dateTime resolves a command argument: "now" reads the clock, anything
// else is parsed in the default zone
func (a *app) dateTime(value string) (chrono.DateTime, error) {
	if value == "now" {
		return chrono.Now(a.clock), nil
	}
	dt, err := chrono.ParseDateTime(value, a.zone)
	if err != nil {
		return chrono.DateTime{}, err
	}
	a.log.Debug("parsed date-time", "input", value, "value", dt.String())
	return dt, nil
}

func (a *app) format(dt chrono.DateTime) string {
	return dt.Format(a.cfg.Format.Layout)
}

func exitCode(err error) int {
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}
