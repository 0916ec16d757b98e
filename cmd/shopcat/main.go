package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"shopcat"
	nt "shopcat/entity"
	"shopcat/session"
	"shopcat/store"
	"shopcat/store/duck"
	"shopcat/store/sqlite"
	"shopcat/tcellui"
	"shopcat/util"
)

// usage: shopcat [sample | seed name...]
// config is read from $SHOPCAT_CONFIG, or shopcat.yaml, falling back to defaults

const (
	cfgEnv      = "SHOPCAT_CONFIG"
	defaultPath = "shopcat.yaml"
	fileMode    = 0644
)

type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Table  string `yaml:"table"`
}

type LogConfig struct {
	Path   string `yaml:"path"`
	MaxLen int    `yaml:"max_len"`
}

type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Frontend string         `yaml:"frontend"`
	Log      LogConfig      `yaml:"log"`
	Session  session.Config `yaml:",inline"`
}

var defaults = Config{
	Store: StoreConfig{
		Driver: "sqlite",
		Path:   "_tables",
		Table:  "_tables",
	},
	Frontend: "bubbletea",
	Log: LogConfig{
		Path:   "shopcat.log",
		MaxLen: 999,
	},
	Session: session.Config{
		Header: []string{
			"Name",
			"Data Type",
			"Default Value",
			"Minimum Length",
			"Maximum Length",
			"Precision",
		},
		Home:     "Press keys F1 - F4 to select the desired page.\nPress arrow keys to go down and up.\nFor each page follow the instructions!",
		NewTable: "new_table",
	},
}

type catalogStore interface {
	store.Catalog
	Seed(ctx context.Context, names ...string) error
}

func main() {

	path := os.Getenv(cfgEnv)
	if path == "" {
		path = defaultPath
	}

	if len(os.Args) > 1 && os.Args[1] == "sample" {
		written, err := util.SampleConfig(defaults, path, fileMode)
		if err != nil {
			bail(err)
		}
		if !written {
			fmt.Printf("%s already exists\n", path)
		}
		return
	}

	cfg, err := loadConfig(path)
	if err != nil {
		bail(err)
	}

	logFile := util.OpenLog(cfg.Log.Path, fileMode)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile, MaxLen: cfg.Log.MaxLen}
	ctx := lgr.WithFields(context.Background(), "run_id", uuid.NewString())
	lgr.Info(ctx, "starting up", "config", cfg)

	err = run(ctx, cfg, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to run", err)
		util.CloseLog(logFile)
		bail(err)
	}
	lgr.Info(ctx, "shutting down")
}

func run(ctx context.Context, cfg Config, lgr nt.Logger) (err error) {

	cat, err := openStore(cfg.Store, lgr)
	if err != nil {
		return
	}
	defer cat.Close()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		err = cat.Seed(ctx, os.Args[2:]...)
		return
	}

	// catalog failures are fatal, nothing partial reaches the session
	names, err := store.Load(ctx, cat)
	if err != nil {
		return
	}
	lgr.Info(ctx, "loaded catalog", "source", cat.Name(), "count", len(names))

	sess, err := session.New(cfg.Session, names)
	if err != nil {
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		err = errors.New("stdout is not a terminal")
		return
	}

	switch cfg.Frontend {
	case "tcell":
		err = runTcell(ctx, sess, cat.Name(), lgr)
	default:
		model := shopcat.NewModel(ctx, sess, cat.Name(), lgr)
		_, err = tea.NewProgram(model).Run()
		err = errors.Wrapf(err, "failed to run program")
	}
	return
}

func runTcell(ctx context.Context, sess session.Session, source string, lgr nt.Logger) (err error) {

	screen, err := tcell.NewScreen()
	if err != nil {
		err = errors.Wrapf(err, "failed to create screen")
		return
	}

	err = screen.Init()
	if err != nil {
		err = errors.Wrapf(err, "failed to init screen")
		return
	}
	defer screen.Fini()

	_, err = tcellui.New(screen, source, lgr).Run(ctx, sess)
	return
}

func openStore(cfg StoreConfig, lgr nt.Logger) (cat catalogStore, err error) {

	switch cfg.Driver {
	case "duckdb", "duck":
		cat, err = duck.New(cfg.Path, cfg.Table, lgr)
	case "sqlite", "":
		cat, err = sqlite.New(cfg.Path, cfg.Table, lgr)
	default:
		err = errors.Errorf("unknown store driver %q", cfg.Driver)
	}
	return
}

func loadConfig(path string) (cfg Config, err error) {

	cfg = defaults

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = nil
		return
	}

	err = util.LoadConfig(&cfg, path)
	return
}

func bail(err error) {
	fmt.Fprintf(os.Stderr, "shopcat: %v\n", err)
	os.Exit(1)
}
