// Package main provides localization for the linepipe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Process lines from stdin through a chain of transform stages.": "標準入力の行を変換ステージのチェーンで処理します。",

		// Subcommands
		"Process stdin through a chain of stages to stdout.": "標準入力をステージのチェーンで処理して標準出力へ出力",
		"List the registered stages.":                        "登録済みステージの一覧を表示",
		"Show version information.":                          "バージョン情報を表示",
		"linepipe version %s":                                "linepipe バージョン %s",

		// Run messages
		"Stage %d: %s": "ステージ %d: %s",
		"Run %s: assembling %d stages with buffer capacity %d": "実行 %s: %d ステージをバッファ容量 %d で構成",
		"Run %s: %d lines in, %d lines out in %s":              "実行 %s: 入力 %d 行、出力 %d 行、所要 %s",
		"Failed to assemble pipeline: %s":                      "パイプラインの構成に失敗しました: %s",
		"Pipeline failed: %s":                                  "パイプラインの実行に失敗しました: %s",
		"%d lines dropped by failing transforms":               "変換の失敗により %d 行を破棄しました",
		"Interrupted, draining pipeline...":                    "中断されました。パイプラインを排出しています...",

		// Summary
		"Run %s":        "実行 %s",
		"Stages: %s":    "ステージ: %s",
		"Lines in: %d":  "入力行数: %d",
		"Lines out: %d": "出力行数: %d",
		"Dropped: %d":   "破棄行数: %d",
		"  %s: %d":      "  %s: %d",
		"Elapsed: %s":   "所要時間: %s",
	})
}
