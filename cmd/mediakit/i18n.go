// Package main provides localization for the mediakit CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Compose and present media scenes": "メディアシーンを合成して表示",

		// Global flags
		"Path to YAML configuration file":      "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Scene flags
		"Window title":                            "ウィンドウタイトル",
		"Window width (default: 640)":             "ウィンドウの幅（デフォルト: 640）",
		"Window height (default: 480)":            "ウィンドウの高さ（デフォルト: 480）",
		"Image file to show (PNG, JPEG or BMP)":   "表示する画像ファイル（PNG, JPEG, BMP）",
		"Caption text":                            "キャプションテキスト",
		"TrueType font file for the caption":      "キャプション用のTrueTypeフォントファイル",
		"Caption point size (default: 24)":        "キャプションのポイントサイズ（デフォルト: 24）",
		"Background color (hex, e.g., #1a1a2e)":   "背景色（16進数、例: #1a1a2e）",
		"Caption color (hex, e.g., #ffffff)":      "キャプションの色（16進数、例: #ffffff）",
		"Accent frame color (hex, e.g., #4ade80)": "アクセント枠の色（16進数、例: #4ade80）",

		// Render command
		"Render a scene off-screen and save the frames as PNG": "シーンをオフスクリーンで描画してPNGフレームを保存",
		"Directory for rendered frames (default: ./frames)":    "描画フレームの保存先（デフォルト: ./frames）",

		// Show command
		"Present a scene in an X11 window":                "シーンをX11ウィンドウに表示",
		"How long to keep the window up, in milliseconds": "ウィンドウの表示時間（ミリ秒）",

		// Glyphs command
		"Print glyph metrics for a font":  "フォントのグリフメトリクスを表示",
		"Point size (default: 24)":        "ポイントサイズ（デフォルト: 24）",
		"Font %s at %dpt, line height %d": "フォント %s（%dpt）、行の高さ %d",

		// Version command
		"Show version information": "バージョン情報を表示",
		"mediakit version %s":      "mediakit バージョン %s",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Error messages
		"font path and text arguments are required": "フォントパスとテキスト引数が必要です",
	})
}
