package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is a RepoInfo plus the optional token estimate carried by the
// structured formats.
type document struct {
	RepoInfo      `yaml:",inline"`
	TokenEstimate *int `json:"token_estimate,omitempty" yaml:"token_estimate,omitempty"`
}

func buildDocument(info RepoInfo, opts RenderOptions) document {
	doc := document{RepoInfo: info}
	if opts.ShowTokens {
		var contents strings.Builder
		for _, f := range info.Files {
			contents.WriteString(f.Content)
		}
		n := NewEstimator().Count(contents.String())
		doc.TokenEstimate = &n
	}
	return doc
}

func renderJSON(info RepoInfo, opts RenderOptions) (string, error) {
	data, err := json.MarshalIndent(buildDocument(info, opts), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON document: %w", err)
	}
	return string(data), nil
}

func renderYAML(info RepoInfo, opts RenderOptions) (string, error) {
	data, err := yaml.Marshal(buildDocument(info, opts))
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML document: %w", err)
	}
	return string(data), nil
}
