// Package prefabs holds the YAML prefab and tuning files and the tengo
// enemy scripts. Files are embedded, and a copy under DiskRoot takes
// precedence so edits show up without a rebuild.
package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// DiskRoot is the directory checked before the embedded files.
var DiskRoot = "prefabs"

const scriptDir = "scripts"

// Load returns a prefab file such as "player.yaml".
func Load(name string) ([]byte, error) {
	return read(assetPath(name, ""))
}

// LoadScript returns a tengo script. "patrol.tengo", "scripts/patrol.tengo"
// and "prefabs/scripts/patrol.tengo" name the same file.
func LoadScript(name string) ([]byte, error) {
	return read(assetPath(name, scriptDir))
}

func read(rel string) ([]byte, error) {
	if DiskRoot != "" {
		if data, err := os.ReadFile(filepath.Join(DiskRoot, filepath.FromSlash(rel))); err == nil {
			return data, nil
		}
	}
	return files.ReadFile(rel)
}

// assetPath maps a user supplied name to a slash path relative to the
// prefab root, inside dir when set.
func assetPath(name, dir string) string {
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "prefabs/")
	if dir == "" {
		return s
	}
	return path.Join(dir, strings.TrimPrefix(s, dir+"/"))
}
