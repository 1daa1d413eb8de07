// Package icon renders status symbols in the configured variant.
package icon

import (
	"github.com/anisan-cli/anitaku/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Episode
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(×﹏×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・)ノ",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(°ロ°)",
		squares: "🟪",
	},
	Episode: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "▶",
		kaomoji: "(⌐■_■)",
		squares: "🟨",
	},
}

// Get renders i in the configured variant; unknown variants render empty.
func Get(i Icon) string {
	return icons[i].Get()
}
