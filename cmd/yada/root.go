// Root command for the yada CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/internal/paths"
	"github.com/mesh-intelligence/yada/pkg/types"
	"github.com/mesh-intelligence/yada/pkg/yada"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Command annotations read by the root hooks.
const (
	annotationNoStore = "yada/no-store" // the command manages the store itself
	annotationMutates = "yada/mutates"  // the store is saved after the command succeeds
)

// userErrors are the failures caused by input rather than by the system.
var userErrors = []error{
	types.ErrDuplicateID,
	types.ErrFoodNotFound,
	types.ErrCyclicComposition,
	types.ErrInvalidFood,
	types.ErrWrongKind,
	types.ErrInvalidDate,
	types.ErrIndexOutOfRange,
	types.ErrNothingToUndo,
	types.ErrInvalidGender,
	types.ErrInvalidHeight,
	types.ErrInvalidWeight,
	types.ErrInvalidAge,
	types.ErrInvalidActivityLevel,
	types.ErrInvalidMethod,
	types.ErrProfileIncomplete,
	types.ErrDataFileTarget,
	errInvalidNumber,
	errUsage,
}

var (
	errInvalidNumber = errors.New("invalid number")
	errUsage         = errors.New("usage error")
)

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

// app holds the state shared by every command of one process. Inside the
// shell the same app serves many command trees, so the store stays open
// across them.
type app struct {
	configDir string
	dataDir   string
	verbose   bool

	logger      *slog.Logger
	store       *yada.Store
	interactive bool
}

func newApp() *app {
	return &app{}
}

// newRootCmd builds the command tree bound to a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "yada",
		Short:         "Yet another diet assistant",
		Long:          "yada keeps a catalog of basic and composite foods and a daily log of what you eat.",
		Version:       yada.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.initLogger(cmd)
			if cmd.Annotations[annotationNoStore] != "" || a.store != nil {
				return nil
			}
			return a.openStore()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive || a.store == nil {
				return nil
			}
			return a.finish(cmd.Annotations[annotationMutates] != "")
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.yada)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/data)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newFoodCmd(a),
		newLogCmd(a),
		newProfileCmd(a),
		newExportCmd(a),
		newShellCmd(a),
	)
	return root
}

// initLogger installs the stderr diagnostics logger once per process.
func (a *app) initLogger(cmd *cobra.Command) {
	if a.logger != nil {
		return
	}
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// resolveConfig loads config.yaml and resolves the data files.
func (a *app) resolveConfig() (string, types.Config, error) {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return "", types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return "", types.Config{}, err
	}
	dataDir, err := paths.ResolveDataDir(a.dataDir, v.GetString(cfgKeyDataDir), configDir)
	if err != nil {
		return "", types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return configDir, configFromViper(v, dataDir), nil
}

func (a *app) openStore() error {
	_, cfg, err := a.resolveConfig()
	if err != nil {
		return err
	}
	s, err := yada.Open(cfg, yada.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = s
	return nil
}

// finish saves the store when save is set and closes it.
func (a *app) finish(save bool) error {
	var saveErr error
	if save {
		saveErr = a.store.Save()
	}
	return errors.Join(saveErr, a.closeStore())
}

// closeStore closes the store if one is open. Closing persists the catalog.
func (a *app) closeStore() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// execute runs root and then closes any store left open. Cobra skips
// PersistentPostRunE when a command fails, so the catalog is still
// persisted on that path.
func execute(a *app, root *cobra.Command) error {
	err := root.Execute()
	return errors.Join(err, a.closeStore())
}
