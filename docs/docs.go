// Package docs embeds the user manual topics shipped with the binary.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topics lists the available topic names, sorted.
func Topics() []string {
	files, _ := fs.Glob(topics, "*.md")
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ".md"))
	}
	sort.Strings(names)
	return names
}

// GetTopics returns the concatenated markdown for the requested topics.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := topics.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("unknown topic %q, want one of: %s", name, strings.Join(Topics(), ", "))
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
