package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ResolveEnvironment merges environment layers. The inherited system
// environment comes first, toolEnv entries override it except for PATH which
// is prepended, and cmdEnv overrides both. The result is sorted by key.
func ResolveEnvironment(sysEnv, toolEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	applyToolEnv(envMap, toolEnv)

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

func applyToolEnv(envMap map[string]string, toolEnv []string) {
	for _, entry := range toolEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}
}

// LookPath searches for an executable in the directories named by the PATH
// entry of env.
func LookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := IsExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

// IsExecutable returns nil if file is a regular file with an execute bit set.
func IsExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
