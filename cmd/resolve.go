package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/NoLifeDev/NoLifeNx/nx"
)

// archiveAndPath splits a dump/decode-all-style "[archive] [path]"
// argument list. A single argument is the archive, with the path left
// empty (the root); only when no argument is given at all does it fall
// back to the configured default archive. get parses its own
// "[archive] <path>" arguments and does not use this helper.
func archiveAndPath(args []string) (archivePath, nodePath string, err error) {
	switch len(args) {
	case 0:
		def, ok := defaultArchivePath()
		if !ok {
			return "", "", fmt.Errorf("no archive given and no default archive configured")
		}
		return def, "", nil
	case 1:
		return args[0], "", nil
	default:
		return args[0], args[1], nil
	}
}

// outputPath returns explicitOut if set, otherwise a path under the
// configured output directory derived from the node's own path.
func outputPath(nodePath, explicitOut, ext string) string {
	if explicitOut != "" {
		return explicitOut
	}
	name := filepath.Base(strings.Trim(nodePath, "/"))
	if name == "" || name == "." {
		name = "root"
	}
	return filepath.Join(effectiveOutputDir(), name+ext)
}

// resolvePath walks path (slash-separated node names, "" or "/" for the
// root itself) from archive's root down to the named node. Returns the
// null Node if any segment is missing, mirroring the total-accessor
// convention the nx package uses throughout.
func resolvePath(archive *nx.Archive, path string) nx.Node {
	node := archive.Root()
	path = strings.Trim(path, "/")
	if path == "" {
		return node
	}
	for _, segment := range strings.Split(path, "/") {
		node = node.Child(segment)
		if !node.IsValid() {
			return node
		}
	}
	return node
}
