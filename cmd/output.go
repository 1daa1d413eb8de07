package cmd

import (
	"io"
	"os"

	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/render"
	"github.com/spf13/cobra"
)

// addOutputFlag registers --output on a command that renders records.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
}

// renderOptions resolves the configured render options for cmd.
// The returned closer must be called once rendering is done.
func renderOptions(cmd *cobra.Command) (render.Options, func() error, error) {
	var (
		out    io.Writer = cmd.OutOrStdout()
		closer           = func() error { return nil }
	)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		file, err := filesystem.API().OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return render.Options{}, nil, err
		}
		out, closer = file, file.Close
	}

	opts, err := render.FromConfig(out)
	if err != nil {
		_ = closer()
		return render.Options{}, nil, err
	}
	return opts, closer, nil
}

// emit renders through fn and closes the output.
func emit(cmd *cobra.Command, fn func(render.Options) error) {
	opts, closeOut, err := renderOptions(cmd)
	handleErr(err)

	err = fn(opts)
	if closeErr := closeOut(); err == nil {
		err = closeErr
	}
	handleErr(err)
}
