package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gioui.org/app"
	"github.com/esimov/mui"
	"github.com/esimov/mui/preview"
	"github.com/esimov/mui/sui"
	"github.com/esimov/mui/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬ ┬┬
││││ ││
┴ ┴└─┘┴

Immediate mode widgets on a raw pixel window.
    Version: %s

`

// Supported window backends.
const (
	backendX11 = "x11"
	backendGio = "gio"
)

// Version indicates the current build version.
var Version string

// newFlagSet defines the command line flags. Flags override the values
// read from the configuration file only when they are set explicitly.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.String("config", "", "TOML configuration file")
	fs.Int("width", 0, "Window width")
	fs.Int("height", 0, "Window height")
	fs.Int("x", 0, "Window left position")
	fs.Int("y", 0, "Window top position")
	fs.Bool("fullscreen", false, "Open a fullscreen window")
	fs.String("backend", backendX11, "Window backend: x11 or gio")
	fs.String("display", "", "X display, defaults to $DISPLAY")
	fs.Int("timeout", 0, "Frame timeout in milliseconds")
	fs.String("in", "", "Image shown by the demo, a local file or an URL")
	fs.String("snapshot", "", "Save the last frame to this file on exit")
	fs.Int("maxlen", 0, "Maximum length of the keyboard input")
	fs.Bool("debug", false, "Log backend events")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		fs.PrintDefaults()
	}
	return fs
}

// applyFlags copies the explicitly set flags of fs into cfg.
func applyFlags(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "width":
			cfg.Window.Width = v.(int)
		case "height":
			cfg.Window.Height = v.(int)
		case "x":
			cfg.Window.X = v.(int)
		case "y":
			cfg.Window.Y = v.(int)
		case "fullscreen":
			cfg.Window.Fullscreen = v.(bool)
		case "backend":
			cfg.Window.Backend = v.(string)
		case "display":
			cfg.Window.Display = v.(string)
		case "timeout":
			cfg.Frame.TimeoutMs = v.(int)
		case "in":
			cfg.Demo.Image = v.(string)
		case "snapshot":
			cfg.Demo.Snapshot = v.(string)
		case "maxlen":
			cfg.Demo.MaxInput = v.(int)
		}
	})
}

func main() {
	log.SetFlags(0)
	utils.SetColored(term.IsTerminal(int(os.Stderr.Fd())))

	fs := newFlagSet(os.Args[0])
	fs.Parse(os.Args[1:])

	cfg, err := LoadConfig(fs.Lookup("config").Value.String())
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the configuration: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	applyFlags(&cfg, fs)
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		log.Fatalf(utils.DecorateText("\nInvalid options: %v", utils.ErrorMessage), err)
	}

	level := slog.LevelInfo
	if fs.Lookup("debug").Value.String() == "true" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Gio needs the main goroutine for its own event loop.
	if cfg.Window.Backend == backendGio {
		go func() {
			os.Exit(start(cfg, logger))
		}()
		app.Main()
		return
	}
	os.Exit(start(cfg, logger))
}

// start runs the demo and returns the process exit code.
func start(cfg Config, logger *slog.Logger) int {
	img, err := loadImage(cfg.Demo.Image)
	if err != nil {
		printError("Failed to load the source image: %v", err)
		return 1
	}

	backend, err := openBackend(cfg, logger)
	if err != nil {
		printError("Unable to open the window: %v", err)
		return 1
	}
	screen, err := mui.NewScreen(backend, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		backend.Destroy()
		printError("Unable to create the screen: %v", err)
		return 1
	}
	defer screen.Close()

	if err := screen.Move(cfg.Window.X, cfg.Window.Y); err != nil {
		logger.Debug("move failed", "err", err)
	}

	now := time.Now()
	if err := newDemo(img, cfg.Demo.MaxInput).run(screen, cfg.Timeout()); err != nil {
		printError("The demo stopped unexpectedly: %v", err)
		return 1
	}

	if path := cfg.Demo.Snapshot; path != "" {
		if err := screen.Canvas.Save(path); err != nil {
			printError("Unable to save the snapshot: %v", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "\nThe last frame has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(path), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
	fmt.Fprintf(os.Stderr, "\nSession time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return 0
}

// openBackend creates the window backend named by the configuration.
func openBackend(cfg Config, logger *slog.Logger) (mui.Backend, error) {
	w := cfg.Window
	switch w.Backend {
	case backendGio:
		mode := preview.Windowed
		if w.Fullscreen {
			mode = preview.Fullscreen
		}
		p, err := preview.New(w.Width, w.Height, mode,
			preview.WithTitle("mui"),
			preview.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		mode := sui.Windowed
		if w.Fullscreen {
			mode = sui.Fullscreen
		}
		s, err := sui.Create(w.Width, w.Height, mode,
			sui.WithDisplay(w.Display),
			sui.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func printError(format string, err error) {
	fmt.Fprintf(os.Stderr,
		utils.DecorateText(format, utils.ErrorMessage)+"\n",
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}
