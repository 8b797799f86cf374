// Package main provides the CLI entry point for mediakit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mediakit/pkg/adapters/filesink"
	"github.com/user/mediakit/pkg/adapters/logger"
	"github.com/user/mediakit/pkg/adapters/osfilesystem"
	"github.com/user/mediakit/pkg/adapters/softdriver"
	"github.com/user/mediakit/pkg/adapters/stdimaging"
	"github.com/user/mediakit/pkg/adapters/truetypefonts"
	"github.com/user/mediakit/pkg/adapters/x11driver"
	"github.com/user/mediakit/pkg/config"
	"github.com/user/mediakit/pkg/media"
	"github.com/user/mediakit/pkg/ports"
	"github.com/user/mediakit/pkg/scene"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:  "mediakit",
		Usage: l10n.T("Compose and present media scenes"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: l10n.T("Path to YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			showCommand(),
			glyphsCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sceneFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: l10n.T("Window title"),
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"W"},
			Usage:   l10n.T("Window width (default: 640)"),
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"H"},
			Usage:   l10n.T("Window height (default: 480)"),
		},
		&cli.StringFlag{
			Name:    "image",
			Aliases: []string{"i"},
			Usage:   l10n.T("Image file to show (PNG, JPEG or BMP)"),
		},
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   l10n.T("Caption text"),
		},
		&cli.StringFlag{
			Name:    "font",
			Aliases: []string{"f"},
			Usage:   l10n.T("TrueType font file for the caption"),
		},
		&cli.IntFlag{
			Name:  "font-size",
			Usage: l10n.T("Caption point size (default: 24)"),
		},
		&cli.StringFlag{
			Name:  "background-color",
			Usage: l10n.T("Background color (hex, e.g., #1a1a2e)"),
		},
		&cli.StringFlag{
			Name:  "text-color",
			Usage: l10n.T("Caption color (hex, e.g., #ffffff)"),
		},
		&cli.StringFlag{
			Name:  "accent-color",
			Usage: l10n.T("Accent frame color (hex, e.g., #4ade80)"),
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: l10n.T("Render a scene off-screen and save the frames as PNG"),
		Flags: append(sceneFlags(),
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   l10n.T("Directory for rendered frames (default: ./frames)"),
			},
		),
		Action: runRender,
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: l10n.T("Present a scene in an X11 window"),
		Flags: append(sceneFlags(),
			&cli.IntFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Value:   3000,
				Usage:   l10n.T("How long to keep the window up, in milliseconds"),
			},
		),
		Action: runShow,
	}
}

func glyphsCommand() *cli.Command {
	return &cli.Command{
		Name:      "glyphs",
		Usage:     l10n.T("Print glyph metrics for a font"),
		ArgsUsage: "FONT TEXT",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Value:   24,
				Usage:   l10n.T("Point size (default: 24)"),
			},
		},
		Action: runGlyphs,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("mediakit version %s", version))
			return nil
		},
	}
}

// newLogger builds the logger from the global flags.
func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

// signalContext cancels on SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()
	return ctx, cancel
}

// buildConfig loads the optional config file and applies CLI overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("image") {
		cfg.ImagePath = c.String("image")
	}
	if c.IsSet("text") {
		cfg.Text = c.String("text")
	}
	if c.IsSet("font") {
		cfg.FontPath = c.String("font")
	}
	if c.IsSet("font-size") {
		cfg.FontSize = c.Int("font-size")
	}
	if c.IsSet("background-color") {
		cfg.Theme.BackgroundColor = c.String("background-color")
	}
	if c.IsSet("text-color") {
		cfg.Theme.TextColor = c.String("text-color")
	}
	if c.IsSet("accent-color") {
		cfg.Theme.AccentColor = c.String("accent-color")
	}
	if c.IsSet("output-dir") {
		cfg.FrameDir = c.String("output-dir")
	}
	return cfg, nil
}

// runRender renders the scene through the software driver and saves every
// presented frame as a PNG file.
func runRender(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	if err := fs.MkdirAll(cfg.FrameDir); err != nil {
		return fmt.Errorf("create frame directory: %w", err)
	}
	sink := filesink.New(cfg.FrameDir, fs)

	video := softdriver.New(fs,
		softdriver.WithFrameSink(sink),
		softdriver.WithLogger(log),
	)
	images := stdimaging.New(fs, video, stdimaging.WithLogger(log))
	fonts := truetypefonts.New(fs, video, truetypefonts.WithLogger(log))

	sceneCfg := cfg.ToSceneConfig()
	sceneCfg.Hidden = true
	if _, err := scene.New(video, images, fonts, log).Run(ctx, sceneCfg); err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", cfg.FrameDir))
	return nil
}

// runShow presents the scene in a real window and keeps it up for the
// requested duration.
func runShow(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	video := x11driver.New(fs, x11driver.WithLogger(log))
	images := stdimaging.New(fs, video, stdimaging.WithLogger(log))
	fonts := truetypefonts.New(fs, video, truetypefonts.WithLogger(log))

	handle, err := scene.New(video, images, fonts, log).Start(ctx, cfg.ToSceneConfig())
	if err != nil {
		return err
	}
	defer handle.Close()

	durationMs := c.Int("duration")
	log.Info(l10n.F("Window opened for %d ms", durationMs))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(durationMs) * time.Millisecond):
	}
	log.Info(l10n.T("Window closed"))
	return nil
}

// runGlyphs opens a font and prints per-glyph metrics for the given text.
func runGlyphs(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit(l10n.T("font path and text arguments are required"), 1)
	}
	fontPath := c.Args().Get(0)
	text := c.Args().Get(1)
	log := newLogger(c)

	fs := osfilesystem.New()
	video := softdriver.New(fs)
	fonts := truetypefonts.New(fs, video, truetypefonts.WithLogger(log))

	rt, err := media.Init(video)
	if err != nil {
		return err
	}
	defer rt.Close()

	engine, err := media.InitFonts(video, fonts)
	if err != nil {
		return err
	}
	defer engine.Close()

	font, err := engine.OpenFont(fontPath, c.Int("size"))
	if err != nil {
		return err
	}
	defer font.Close()

	fmt.Println(l10n.F("Font %s at %dpt, line height %d", fontPath, c.Int("size"), font.Height()))
	fmt.Println("glyph   minX  maxX  minY  maxY  advance")
	for _, ch := range text {
		gm, err := font.GlyphMetrics(ch)
		if err != nil {
			fmt.Printf("%-7q %s\n", ch, err)
			continue
		}
		fmt.Printf("%-7q %5d %5d %5d %5d %8d\n", ch, gm.MinX, gm.MaxX, gm.MinY, gm.MaxY, gm.Advance)
	}
	return nil
}
