// Package commands implements the tr069 command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwmp-go/tr069/pkg/catalog"
	"github.com/cwmp-go/tr069/pkg/inspect"
	"github.com/cwmp-go/tr069/pkg/metrics"
	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/validate"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, validate.ErrValidation):
		return ExitValidation
	default:
		return ExitError
	}
}

// app is the state shared by the commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel string
	logger   *zap.Logger

	registry  *model.Registry
	formatter *inspect.Formatter

	promRegistry *prometheus.Registry
	metrics      *metrics.Metrics
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		out:       stdout,
		errOut:    stderr,
		logger:    zap.NewNop(),
		formatter: inspect.NewFormatter(),
	}

	root := &cobra.Command{
		Use:   "tr069",
		Short: "Browse and validate the TR-069 managed object data models",
		Long: `tr069 works with the CWMP data models of TR-098, TR-104, TR-106,
TR-143, TR-181 and TR-196: list and describe objects, create XML
skeletons, validate instance documents and export the catalog.`,
		Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "warn",
		"Log level (debug, info, warn, error)")

	root.AddCommand(
		newPathsCommand(a),
		newShowCommand(a),
		newNewCommand(a),
		newValidateCommand(a),
		newExportCommand(a),
		newShellCommand(a),
	)
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	logger, err := initLogger(a.logLevel, a.errOut)
	if err != nil {
		return err
	}
	a.logger = logger

	reg, err := catalog.Build()
	if err != nil {
		return err
	}
	a.registry = reg

	a.promRegistry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.promRegistry)

	a.logger.Debug("catalog loaded", zap.Int("objects", reg.Len()))
	return nil
}

func initLogger(level string, w io.Writer) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zap.DebugLevel
	case "info":
		zapLevel = zap.InfoLevel
	case "warn":
		zapLevel = zap.WarnLevel
	case "error":
		zapLevel = zap.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapLevel)
	return zap.New(core), nil
}

func (a *app) validator() *validate.Validator {
	return validate.New(
		validate.WithRegistry(a.registry),
		validate.WithMetrics(a.metrics),
		validate.WithLogger(a.logger),
	)
}

// definition resolves a template or concrete object path. A missing
// trailing dot is added.
func (a *app) definition(arg string) (*model.ObjectDef, *inspect.Path, error) {
	if !strings.HasSuffix(arg, ".") {
		arg += "."
	}
	p, err := inspect.ParsePath(arg)
	if err != nil {
		return nil, nil, err
	}
	def, err := a.registry.Lookup(p.Template())
	if err != nil {
		return nil, nil, err
	}
	return def, p, nil
}
