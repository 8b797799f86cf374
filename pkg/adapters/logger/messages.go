package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Scene level messages (info)
		"Rendering scene %s...":   "シーン %s をレンダリング中...",
		"Scene rendered: %dx%d":   "シーン描画完了: %dx%d",
		"Output saved to %s":      "出力を %s に保存しました",
		"Window opened for %d ms": "ウィンドウを %d ms 表示します",
		"Window closed":           "ウィンドウを閉じました",

		// Driver traces (debug)
		"Video subsystem initialized": "ビデオサブシステムを初期化しました",
		"Video subsystem shut down":   "ビデオサブシステムを終了しました",
		"Image subsystem initialized": "画像サブシステムを初期化しました",
		"Image subsystem shut down":   "画像サブシステムを終了しました",
		"Font subsystem initialized":  "フォントサブシステムを初期化しました",
		"Font subsystem shut down":    "フォントサブシステムを終了しました",
		"Connected to X server":       "Xサーバーに接続しました",
		"Disconnected from X server":  "Xサーバーから切断しました",

		// Warnings
		"Frame sink rejected frame %s: %s": "フレームシンクがフレーム %s を拒否しました: %s",

		// Errors
		"Failed to open font %s: %s":  "フォント %s を開けませんでした: %s",
		"Failed to load image %s: %s": "画像 %s を読み込めませんでした: %s",
		"Failed to render scene: %s":  "シーンのレンダリングに失敗しました: %s",
	})
}
