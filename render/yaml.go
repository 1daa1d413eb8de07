package render

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// writeYAML reuses the JSON field names and order by reading the JSON
// encoding back as a YAML node tree.
func writeYAML(opts Options, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)

	encoder := yaml.NewEncoder(opts.out())
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return err
	}
	return encoder.Close()
}

// blockStyle drops the flow and quoting styles JSON input parses with.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
