package harvest

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultSeeds are used when no seed files match the glob. They are need
// phrasings, not product names.
var defaultSeeds = []string{
	"how to fix", "struggling with", "tips for", "how to create",
}

// LoadSeeds reads seed words from markdown files matched by a doublestar
// glob. List items (`- ` / `* `) and bare lines count; `#` lines are
// headings or comments and are skipped. When nothing matches, the built-in
// defaults are returned.
func LoadSeeds(glob string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("invalid seeds glob %q: %w", glob, err)
	}
	if len(paths) == 0 {
		return defaultSeeds, nil
	}

	seen := make(map[string]bool)
	var seeds []string
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading seed file %s: %w", path, err)
		}
		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			line = strings.TrimPrefix(line, "- ")
			line = strings.TrimPrefix(line, "* ")
			line = strings.TrimSpace(strings.ToLower(line))
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			seeds = append(seeds, line)
		}
	}

	if len(seeds) == 0 {
		return defaultSeeds, nil
	}
	return seeds, nil
}
