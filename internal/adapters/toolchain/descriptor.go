package toolchain

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// parseDescriptor extracts the directories a shell environment descriptor
// prepends to PATH. References to PATH itself are dropped and remaining
// variables are expanded with lookup. A descriptor without any PATH
// assignment contributes its sibling bin directory.
func parseDescriptor(data []byte, dir string, lookup func(string) string) []string {
	var dirs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "export ")
		value, ok := strings.CutPrefix(line, "PATH=")
		if !ok {
			continue
		}

		value = strings.Trim(strings.TrimSuffix(value, ";"), `"'`)
		for _, entry := range filepath.SplitList(value) {
			if entry == "" || entry == "$PATH" || entry == "${PATH}" {
				continue
			}
			expanded := os.Expand(entry, lookup)
			if expanded == "" || seen[expanded] {
				continue
			}
			seen[expanded] = true
			dirs = append(dirs, expanded)
		}
	}

	if len(dirs) == 0 {
		return []string{filepath.Join(dir, "bin")}
	}
	return dirs
}
