package utils

import (
	"regexp"
	"strings"
)

var (
	atomOperators = regexp.MustCompile(`^(!!|!|>=|<=|>|<|=|~)`)
	atomVersion   = regexp.MustCompile(`-[0-9]+(\.[0-9]+)*[a-z]?((_alpha|_beta|_pre|_rc|_p)[0-9]*)*(-r[0-9]+)?\*?$`)
)

// ParseWorldEntries splits a world file into package keys: "category/name"
// or a bare "name". Comments, blank lines and duplicates are dropped.
func ParseWorldEntries(data string) []string {
	entries := make([]string, 0)
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r", ""), "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, field := range strings.Fields(line) {
			if key := PackageKeyFromAtom(field); key != "" {
				entries = append(entries, key)
			}
		}
	}
	return UniqueList(entries)
}

// PackageKeyFromAtom reduces ">=cat/name-1.2-r1:slot[use]::repo" to "cat/name".
func PackageKeyFromAtom(atom string) string {
	if idx := strings.Index(atom, "::"); idx >= 0 {
		atom = atom[:idx]
	}
	if idx := strings.Index(atom, "["); idx >= 0 {
		atom = atom[:idx]
	}
	if idx := strings.Index(atom, ":"); idx >= 0 {
		atom = atom[:idx]
	}
	if op := atomOperators.FindString(atom); op != "" {
		atom = atom[len(op):]
		atom = atomVersion.ReplaceAllString(atom, "")
	}
	atom = strings.Trim(atom, "/")
	if strings.Count(atom, "/") > 1 {
		return ""
	}
	return atom
}

// SplitPackageKey returns category and name; category is empty for a bare name.
func SplitPackageKey(key string) (string, string) {
	if idx := strings.Index(key, "/"); idx >= 0 {
		return key[:idx], key[idx+1:]
	}
	return "", key
}
