package ports

// GlyphMetrics is the bounding box and advance of a single glyph, in pixels
// relative to the glyph origin on the baseline.
type GlyphMetrics struct {
	MinX, MaxX int
	MinY, MaxY int
	Advance    int
}

// FontDriver is the font-extension subsystem boundary: loading typefaces,
// querying glyph metrics and rasterizing glyphs and text into surfaces in
// the video driver's handle space.
type FontDriver interface {
	// Init brings the subsystem up. Negative means failure.
	Init() int

	// Quit shuts the subsystem down. It has no failure signal and must
	// only be called after a successful Init.
	Quit()

	// OpenFont loads a TrueType font file at a fixed point size. Zero
	// handle means failure.
	OpenFont(path string, ptsize int) FontHandle

	// CloseFont releases a font. Terminal, no failure signal.
	CloseFont(f FontHandle)

	// Height returns the maximum pixel height of the font.
	Height(f FontHandle) int

	// GlyphMetrics reports the metrics of one glyph. Negative second
	// result means failure (for example a code point the font lacks).
	GlyphMetrics(f FontHandle, ch rune) (GlyphMetrics, int)

	// RenderGlyphSolid rasterizes a single glyph in a solid color onto a
	// new surface. Zero handle means failure.
	RenderGlyphSolid(f FontHandle, ch rune, fg Color) SurfaceHandle

	// RenderTextSolid rasterizes a string in a solid color onto a new
	// surface. Zero handle means failure.
	RenderTextSolid(f FontHandle, text string, fg Color) SurfaceHandle

	// LastError returns the diagnostic text of the most recent failure.
	LastError() string
}
