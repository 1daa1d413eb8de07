// Package render writes scraped records to the terminal as JSON, YAML or text.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Format selects how records are written.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// ErrUnknownFormat is returned for a format outside Formats.
var ErrUnknownFormat = errors.New("unknown output format")

func Formats() []Format {
	return []Format{JSON, YAML, Text}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Formats(), format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return format, nil
}

// Options control a single render.
type Options struct {
	Out    io.Writer
	Format Format
	// Pretty indents JSON.
	Pretty bool
	// ByTitle keys listing and search entries by title in JSON and YAML output.
	ByTitle bool
	// Width wraps text output. Zero means the terminal width.
	Width int
	// Window is the number of pages shown around the current one in text output.
	Window int
}

// FromConfig reads options from the output.* and pagination.* configuration.
func FromConfig(out io.Writer) (Options, error) {
	format, err := ParseFormat(viper.GetString(key.OutputFormat))
	if err != nil {
		return Options{}, err
	}

	return Options{
		Out:     out,
		Format:  format,
		Pretty:  viper.GetBool(key.OutputPretty),
		ByTitle: viper.GetBool(key.OutputByTitle),
		Window:  viper.GetInt(key.PaginationWindow),
	}, nil
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return util.TerminalWidth(80)
}
