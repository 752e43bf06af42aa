// Root command and application context for the shelf CLI.
package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/bookshelf/internal/library"
	"github.com/mesh-intelligence/bookshelf/internal/logging"
	"github.com/mesh-intelligence/bookshelf/internal/output"
	"github.com/mesh-intelligence/bookshelf/internal/paths"
	"github.com/mesh-intelligence/bookshelf/pkg/bookshelf"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
	file      string
	output    string
	logLevel  string
}

// application is the context shared by all subcommands of one invocation.
// The library is opened on first use and closed by execute.
type application struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	out       output.Format
	log       zerolog.Logger
	lib       *library.Library
}

// commands that need no configuration or storage.
var skipSetup = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

func newRootCmd(app *application) *cobra.Command {
	app.log = logging.Nop

	root := &cobra.Command{
		Use:   "shelf",
		Short: "Shelf manages a personal library catalog",
		Long: `Shelf keeps a small catalog of books: add, search, edit, remove
and list them sorted by author or shelf. The catalog is stored in a single
file, read once when a command starts and written once when it ends.`,
		Version:           bookshelf.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/shelf)")
	pf.StringVar(&app.flags.dataDir, "data-dir", "", "data directory (default: current directory)")
	pf.StringVar(&app.flags.format, "format", "", "storage format: lines, jsonl, sqlite (default: lines)")
	pf.StringVar(&app.flags.file, "file", "", "storage file name inside the data directory")
	pf.StringVarP(&app.flags.output, "output", "o", "", "output format: table, json, yaml (default: table on a terminal, json otherwise)")
	pf.StringVar(&app.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(app))
	root.AddCommand(newAddCmd(app))
	root.AddCommand(newListCmd(app))
	root.AddCommand(newSearchCmd(app))
	root.AddCommand(newStatusCmd(app))
	root.AddCommand(newEditCmd(app))
	root.AddCommand(newRemoveCmd(app))

	return root
}

// setup resolves configuration, builds the logger and the storage Config.
func (app *application) setup(cmd *cobra.Command, args []string) error {
	if skipSetup[cmd.Name()] {
		return nil
	}

	if err := loadEnvFile(); err != nil {
		return err
	}

	configDir, err := paths.ResolveConfigDir(app.flags.configDir)
	if err != nil {
		return &systemError{fmt.Errorf("resolve config dir: %w", err)}
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return &systemError{err}
	}
	app.configDir = configDir

	logCfg := logging.DefaultConfig()
	logCfg.Level = pick(app.flags.logLevel, v, cfgKeyLogLevel)
	app.log = logging.New(logCfg, cmd.ErrOrStderr())

	out, err := output.ParseFormat(pick(app.flags.output, v, cfgKeyOutput))
	if err != nil {
		return err
	}
	app.out = output.DetectFormat(string(out))

	dataDir, err := paths.ResolveDataDir(app.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return &systemError{fmt.Errorf("resolve data dir: %w", err)}
	}

	app.cfg = types.Config{
		Format:  pick(app.flags.format, v, cfgKeyFormat),
		DataDir: dataDir,
		File:    pick(app.flags.file, v, cfgKeyFile),
	}
	if err := app.cfg.Validate(); err != nil {
		return fmt.Errorf("format %q: %w", app.cfg.Format, err)
	}

	app.log.Debug().
		Str("config_dir", configDir).
		Str("data_dir", dataDir).
		Str("format", app.cfg.Format).
		Msg("configuration resolved")
	return nil
}

// library opens the catalog on first use.
func (app *application) library() (*library.Library, error) {
	if app.lib != nil {
		return app.lib, nil
	}
	lib, err := library.Open(app.cfg, app.log)
	if err != nil {
		return nil, &systemError{err}
	}
	app.lib = lib
	return lib, nil
}

// close flushes and releases the library if it was opened.
func (app *application) close() error {
	if app.lib == nil {
		return nil
	}
	if err := app.lib.Close(); err != nil {
		return &systemError{err}
	}
	return nil
}

// render writes data in the selected output format.
func (app *application) render(w io.Writer, data any) error {
	return output.NewFormatter(app.out).Format(w, data)
}

// report prints a one-line message in table mode and data otherwise.
func (app *application) report(w io.Writer, data any, format string, a ...any) error {
	if app.out == output.FormatTable {
		_, err := fmt.Fprintf(w, format+"\n", a...)
		return err
	}
	return app.render(w, data)
}

// pick returns flag if set, otherwise the viper value for key.
func pick(flag string, v *viper.Viper, key string) string {
	if flag != "" {
		return flag
	}
	return v.GetString(key)
}
