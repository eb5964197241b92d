package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tint/internal/cli"
	"github.com/Makepad-fr/tint/internal/config"
	"github.com/Makepad-fr/tint/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); they override config and env.
	themesDir := flag.String("themes", cfg.Themes.Dir, "themes directory")
	statePath := flag.String("state", cfg.State.Path, "file remembering the selected theme")
	color := flag.String("color", cfg.UI.Color, "color output: auto, always or never")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	cfg.Themes.Dir, cfg.State.Path, cfg.UI.Color = *themesDir, *statePath, *color
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		ThemesDir:    cfg.Themes.Dir,
		StatePath:    cfg.State.Path,
		DefaultTheme: cfg.Themes.Default,
		Color:        cfg.UI.Color,
		LogLevel:     cfg.Log.Level,
		LogFile:      cfg.Log.File,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
