package render

import "encoding/json"

func writeJSON(opts Options, v any) error {
	encoder := json.NewEncoder(opts.out())
	encoder.SetEscapeHTML(false)
	if opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
