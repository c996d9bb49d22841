package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Facts serves lines from a local JSON file holding an array of strings.
// The Cubs trivia and verse segments read different files through the
// same type.
type Facts struct {
	path string
}

// NewFacts builds a file-backed fact provider.
func NewFacts(path string) *Facts {
	return &Facts{path: path}
}

func (f *Facts) Fetch(ctx context.Context) ([]string, error) {
	_ = ctx
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read facts file: %w", err)
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("parse facts file %s: %w", f.path, err)
	}
	return lines, nil
}

// Static serves a fixed set of lines, used for the custom message segment.
func Static(lines ...string) Provider {
	return ProviderFunc(func(ctx context.Context) ([]string, error) {
		return lines, nil
	})
}
