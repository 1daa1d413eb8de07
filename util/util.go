// Package util collects small domain-agnostic helpers.
package util

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/anisan-cli/anitaku/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify returns "1 entry" or "N entries".
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalWidth returns the stdout width, or fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReGroups maps the named capture groups of the first match. No match yields an empty map.
func ReGroups(pattern *regexp.Regexp, str string) map[string]string {
	groups := make(map[string]string)
	match := pattern.FindStringSubmatch(str)
	if match == nil {
		return groups
	}

	for i, name := range pattern.SubexpNames() {
		if i > 0 && i < len(match) && name != "" {
			groups[name] = match[i]
		}
	}
	return groups
}

// PrintErasable prints a transient stderr line and returns the func that clears it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and discards its error.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest argument, the zero value when there are none.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the smallest argument, the zero value when there are none.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}

// Delete removes a file or a whole directory through the filesystem backend.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s the way browsers' encodeURIComponent does:
// spaces become %20 and !'()* are left as is.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
