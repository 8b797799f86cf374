// Package scene coordinates the media subsystems to compose and present a
// demo scene: a colored canvas with an optional picture, caption text and
// an accent frame.
package scene

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/mediakit/pkg/media"
	"github.com/user/mediakit/pkg/ports"
)

// Config contains all configuration for a scene run.
type Config struct {
	// Window
	Title  string
	Width  int
	Height int
	Hidden bool

	// Content
	ImagePath string
	Text      string
	FontPath  string
	FontSize  int

	// Style
	BackgroundColor ports.Color
	TextColor       ports.Color
	AccentColor     ports.Color
	Margin          int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Title:  "mediakit",
		Width:  640,
		Height: 480,

		FontSize: 24,

		BackgroundColor: ports.Color{R: 26, G: 26, B: 46, A: 255},
		TextColor:       ports.Color{R: 255, G: 255, B: 255, A: 255},
		AccentColor:     ports.Color{R: 74, G: 222, B: 128, A: 255},
		Margin:          20,
	}
}

// Renderer composes a scene through the media wrappers.
type Renderer struct {
	video  ports.VideoDriver
	images ports.ImageDriver
	fonts  ports.FontDriver
	logger ports.Logger
}

// New creates a new scene Renderer. The image and font drivers are
// optional; content that needs a missing driver is skipped.
func New(video ports.VideoDriver, images ports.ImageDriver, fonts ports.FontDriver, logger ports.Logger) *Renderer {
	return &Renderer{
		video:  video,
		images: images,
		fonts:  fonts,
		logger: logger,
	}
}

// RunResult contains the results of a scene run.
type RunResult struct {
	Width  int
	Height int
}

// Run initializes the subsystems, renders one frame of the scene and
// presents it. The runtime stays alive until Close is called on the
// returned handle, so callers can keep an on-screen window up.
func (s *Renderer) Run(ctx context.Context, config Config) (RunResult, error) {
	handle, err := s.Start(ctx, config)
	if err != nil {
		return RunResult{}, err
	}
	defer handle.Close()
	return handle.Result, nil
}

// Handle keeps a presented scene alive. Close releases everything in
// reverse acquisition order.
type Handle struct {
	Result RunResult

	closers []func()
}

// Close tears the scene down. Safe to call more than once.
func (h *Handle) Close() {
	for i := len(h.closers) - 1; i >= 0; i-- {
		h.closers[i]()
	}
	h.closers = nil
}

// Start renders and presents the scene, leaving the window up.
func (s *Renderer) Start(ctx context.Context, config Config) (*Handle, error) {
	s.logger.Info(l10n.F("Rendering scene %s...", config.Title))

	h := &Handle{}
	ok := false
	defer func() {
		if !ok {
			h.Close()
		}
	}()

	rt, err := media.Init(s.video)
	if err != nil {
		s.logger.Error(l10n.F("Failed to render scene: %s", err))
		return nil, fmt.Errorf("video init: %w", err)
	}
	h.closers = append(h.closers, rt.Close)

	flags := ports.WindowShown
	if config.Hidden {
		flags = ports.WindowHidden
	}
	win, err := rt.CreateWindow(config.Title, config.Width, config.Height, flags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	h.closers = append(h.closers, win.Close)

	rend, err := win.CreateRenderer(-1, ports.RendererSoftware)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	h.closers = append(h.closers, rend.Close)

	if err := s.paintBackground(rend, config); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if config.ImagePath != "" {
		if err := s.drawPicture(rend, config, h); err != nil {
			return nil, err
		}
	}

	if config.Text != "" {
		if err := s.drawCaption(rend, config, h); err != nil {
			return nil, err
		}
	}

	if err := s.drawFrame(rend, config); err != nil {
		return nil, err
	}

	rend.Present()
	s.logger.Info(l10n.F("Scene rendered: %dx%d", config.Width, config.Height))

	ok = true
	h.Result = RunResult{Width: config.Width, Height: config.Height}
	return h, nil
}

func (s *Renderer) paintBackground(rend *media.Renderer, config Config) error {
	if err := rend.SetDrawColor(config.BackgroundColor); err != nil {
		return fmt.Errorf("set background color: %w", err)
	}
	if err := rend.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// drawPicture loads the configured image and copies it into the content
// area, preserving its aspect ratio.
func (s *Renderer) drawPicture(rend *media.Renderer, config Config, h *Handle) error {
	if s.images == nil {
		return fmt.Errorf("no image driver for %s", config.ImagePath)
	}
	imaging, err := media.InitImaging(s.video, s.images, ports.ImageInitPNG|ports.ImageInitJPEG|ports.ImageInitBMP)
	if err != nil {
		return fmt.Errorf("imaging init: %w", err)
	}
	h.closers = append(h.closers, imaging.Close)

	surf, err := imaging.Load(config.ImagePath)
	if err != nil {
		s.logger.Error(l10n.F("Failed to load image %s: %s", config.ImagePath, err))
		return fmt.Errorf("load image: %w", err)
	}
	defer surf.Close()

	tex, err := rend.CreateTextureFromSurface(surf)
	if err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	defer tex.Close()

	info, err := tex.Query()
	if err != nil {
		return fmt.Errorf("query image texture: %w", err)
	}
	dst := fitRect(info.W, info.H, contentArea(config))
	if err := rend.DrawTexture(tex, nil, &dst); err != nil {
		return fmt.Errorf("draw image: %w", err)
	}
	return nil
}

// drawCaption renders the configured text and copies it near the bottom
// of the window.
func (s *Renderer) drawCaption(rend *media.Renderer, config Config, h *Handle) error {
	if s.fonts == nil || config.FontPath == "" {
		return fmt.Errorf("no font for caption %q", config.Text)
	}
	engine, err := media.InitFonts(s.video, s.fonts)
	if err != nil {
		return fmt.Errorf("font init: %w", err)
	}
	h.closers = append(h.closers, engine.Close)

	font, err := engine.OpenFont(config.FontPath, config.FontSize)
	if err != nil {
		s.logger.Error(l10n.F("Failed to open font %s: %s", config.FontPath, err))
		return fmt.Errorf("open font: %w", err)
	}
	h.closers = append(h.closers, font.Close)

	surf, err := font.RenderText(config.Text, config.TextColor)
	if err != nil {
		return fmt.Errorf("render caption: %w", err)
	}
	defer surf.Close()

	tex, err := rend.CreateTextureFromSurface(surf)
	if err != nil {
		return fmt.Errorf("upload caption: %w", err)
	}
	defer tex.Close()

	info, err := tex.Query()
	if err != nil {
		return fmt.Errorf("query caption texture: %w", err)
	}
	dst := ports.Rect{
		X: (config.Width - info.W) / 2,
		Y: config.Height - config.Margin - info.H,
		W: info.W,
		H: info.H,
	}
	if err := rend.DrawTexture(tex, nil, &dst); err != nil {
		return fmt.Errorf("draw caption: %w", err)
	}
	return nil
}

// drawFrame strokes the accent border just inside the window edge.
func (s *Renderer) drawFrame(rend *media.Renderer, config Config) error {
	if err := rend.SetDrawColor(config.AccentColor); err != nil {
		return fmt.Errorf("set accent color: %w", err)
	}
	border := ports.Rect{
		X: config.Margin / 2,
		Y: config.Margin / 2,
		W: config.Width - config.Margin,
		H: config.Height - config.Margin,
	}
	if err := rend.DrawRect(border); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// contentArea is the region pictures may occupy: everything above the
// caption band.
func contentArea(config Config) ports.Rect {
	captionBand := 0
	if config.Text != "" {
		captionBand = config.FontSize + 2*config.Margin
	}
	return ports.Rect{
		X: config.Margin,
		Y: config.Margin,
		W: config.Width - 2*config.Margin,
		H: config.Height - 2*config.Margin - captionBand,
	}
}

// fitRect scales w x h to fit inside area, centered, without distortion.
func fitRect(w, h int, area ports.Rect) ports.Rect {
	if w <= 0 || h <= 0 || area.W <= 0 || area.H <= 0 {
		return area
	}
	scaleW := float64(area.W) / float64(w)
	scaleH := float64(area.H) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	if scale > 1 {
		scale = 1
	}
	fw := int(float64(w) * scale)
	fh := int(float64(h) * scale)
	return ports.Rect{
		X: area.X + (area.W-fw)/2,
		Y: area.Y + (area.H-fh)/2,
		W: fw,
		H: fh,
	}
}
