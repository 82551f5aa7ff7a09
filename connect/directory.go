package connect

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

//go:embed institutions.json
var institutionsJSON []byte

// Directory is the built-in catalogue of institutions the simulator
// knows about. It stands in for the remote registries a real account
// aggregator would query.
type Directory struct {
	root any
}

// NewDirectory parses the embedded institutions catalogue.
func NewDirectory() (*Directory, error) {
	var root any
	if err := json.Unmarshal(institutionsJSON, &root); err != nil {
		return nil, fmt.Errorf("parsing institutions catalogue: %w", err)
	}
	return &Directory{root: root}, nil
}

// get evaluates a jsonpath expression against the catalogue.
// Because jsonpath is never clear about whether it returns a list of
// one answer or a single answer, keep the first one if any.
func (d *Directory) get(path string) (any, error) {
	jval, err := jsonpath.Get(path, d.root)
	if err != nil {
		return nil, fmt.Errorf("querying catalogue %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

// Banks returns the names of the known banks, sorted.
func (d *Directory) Banks() ([]string, error) {
	jval, err := d.get("$.banks")
	if err != nil {
		return nil, err
	}
	jmap, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("catalogue banks section is not an object")
	}
	names := make([]string, 0, len(jmap))
	for name := range jmap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Platform holds the brokerage platform metadata the simulator
// enforces when linking.
type Platform struct {
	Name         string
	Kind         string
	MinKeyLength int
}

// Platform looks a brokerage platform up by name (case-insensitive).
func (d *Directory) Platform(name string) (Platform, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	jval, err := d.get(fmt.Sprintf("$.platforms.%s", key))
	if err != nil {
		return Platform{}, fmt.Errorf("unknown platform %q", name)
	}
	jmap, ok := jval.(map[string]any)
	if !ok {
		return Platform{}, fmt.Errorf("unknown platform %q", name)
	}
	p := Platform{Name: key}
	if kind, ok := jmap["kind"].(string); ok {
		p.Kind = kind
	}
	if min, ok := jmap["min_key_length"].(float64); ok {
		p.MinKeyLength = int(min)
	}
	return p, nil
}
