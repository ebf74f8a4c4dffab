package locator

import (
	"bufio"
	"io/fs"
	"strings"
)

// DefaultManifestPrefix is the conventional directory for service manifests.
// A manifest for interface X lives at <prefix>/X, one provider name per
// line, with # starting a trailing comment.
const DefaultManifestPrefix = "META-INF/services"

// parseManifest reads a single manifest resource and returns the provider
// names it declares, in file order. Directories contribute nothing, and any
// read error makes the resource contribute nothing; a missing or unreadable
// manifest never aborts discovery.
func parseManifest(fsys fs.FS, path string) []string {
	names := []string{}
	if fsys == nil {
		return names
	}
	if strings.HasSuffix(path, "/") {
		return names
	}
	info, err := fs.Stat(fsys, path)
	if err != nil || info.IsDir() {
		return names
	}
	file, err := fsys.Open(path)
	if err != nil {
		return names
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if comment := strings.IndexByte(line, '#'); comment != -1 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	// scanner errors are treated the same as open errors: the lines read so
	// far stand, the rest of the resource contributes nothing
	return names
}

// manifestNames accumulates provider names for iface across every manifest
// root of a source, deduplicated, first-seen order.
func manifestNames(prefix, iface string, src Source, seen map[string]bool, out *[]string) {
	path := prefix + "/" + iface
	for _, fsys := range src.Resources {
		for _, name := range parseManifest(fsys, path) {
			if seen[name] {
				continue
			}
			seen[name] = true
			*out = append(*out, name)
		}
	}
}

// firstManifestName returns the first provider name declared by the first
// non-empty manifest found in the source's roots.
func firstManifestName(prefix, iface string, src Source) (string, bool) {
	path := prefix + "/" + iface
	for _, fsys := range src.Resources {
		if names := parseManifest(fsys, path); len(names) > 0 {
			return names[0], true
		}
	}
	return "", false
}
