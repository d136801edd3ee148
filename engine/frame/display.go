package frame

import (
	"strings"

	"github.com/npillmayer/flowbox/engine/dom/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode.
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS outer display = none
	BlockMode   DisplayMode = 0x0002 // CSS block context
	InlineMode  DisplayMode = 0x0004 // CSS inline context
)

var allDisplayModes = []DisplayMode{DisplayNone, BlockMode, InlineMode}

// DisplayModeOf classifies the `display` property of a property map.
// `block` and `none` are recognized, every other value (including an unset
// display property) is treated as `inline`.
func DisplayModeOf(pm *style.PropertyMap) DisplayMode {
	switch pm.Get("display").Keyword() {
	case "block":
		return BlockMode
	case "none":
		return DisplayNone
	}
	return InlineMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

func (disp DisplayMode) String() string {
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			switch m {
			case DisplayNone:
				names = append(names, "none")
			case BlockMode:
				names = append(names, "block")
			case InlineMode:
				names = append(names, "inline")
			}
		}
	}
	if len(names) == 0 {
		return "NoMode"
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(DisplayNone) {
		return "∅"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	}
	return "?"
}
