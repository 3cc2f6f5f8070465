package k6summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitrise-io/go-utils/fileutil"
)

// Summary is the end-of-test summary k6 writes either from handleSummary() or
// with the --summary-export flag.
type Summary struct {
	RootGroup Group   `json:"root_group"`
	Metrics   Metrics `json:"metrics"`
}

// Group ...
type Group struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	ID     string `json:"id"`
	Groups Groups `json:"groups"`
	Checks Checks `json:"checks"`
}

// Check ...
type Check struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	ID     string `json:"id"`
	Passes int    `json:"passes"`
	Fails  int    `json:"fails"`
}

// Label is the text an issue key is looked up in: the check path, or its name
// for summaries which do not record paths.
func (c Check) Label() string {
	if c.Path != "" {
		return c.Path
	}
	return c.Name
}

// Groups holds child groups in the order k6 reported them.
// handleSummary() writes them as an array, --summary-export as an object keyed by name.
type Groups []Group

// UnmarshalJSON ...
func (g *Groups) UnmarshalJSON(data []byte) error {
	groups, err := decodeListOrObject[Group](data)
	if err != nil {
		return fmt.Errorf("groups: %w", err)
	}
	*g = groups
	return nil
}

// Checks holds the checks of a group, in the same two layouts as Groups.
type Checks []Check

// UnmarshalJSON ...
func (c *Checks) UnmarshalJSON(data []byte) error {
	checks, err := decodeListOrObject[Check](data)
	if err != nil {
		return fmt.Errorf("checks: %w", err)
	}
	*c = checks
	return nil
}

// Flatten returns every descendant of g in depth-first pre-order:
// a group comes before its own children. g itself is not included.
func (g Group) Flatten() []Group {
	var groups []Group
	for _, child := range g.Groups {
		groups = append(groups, child)
		groups = append(groups, child.Flatten()...)
	}
	return groups
}

// IterationDurationMin returns 0 if the metric is missing.
func (s Summary) IterationDurationMin() float64 {
	return s.Metrics.IterationDuration.Min.Float64()
}

// IterationDurationMax returns 0 if the metric is missing.
func (s Summary) IterationDurationMax() float64 {
	return s.Metrics.IterationDuration.Max.Float64()
}

// Parse ...
func Parse(r io.Reader) (Summary, error) {
	var summary Summary
	if err := json.NewDecoder(r).Decode(&summary); err != nil {
		return Summary{}, fmt.Errorf("failed to decode k6 summary: %w", err)
	}
	return summary, nil
}

// Load reads the summary file at pth.
func Load(pth string) (Summary, error) {
	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read k6 summary (%s): %w", pth, err)
	}
	return Parse(bytes.NewReader(content))
}

func decodeListOrObject[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		return decodeOrderedObject[T](data)
	default:
		return nil, fmt.Errorf("expected array or object, got: %s", string(data))
	}
}

// decodeOrderedObject keeps the member order of the JSON object, a plain map would lose it.
func decodeOrderedObject[T any](data []byte) ([]T, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	var items []T
	for decoder.More() {
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		var item T
		if err := decoder.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
