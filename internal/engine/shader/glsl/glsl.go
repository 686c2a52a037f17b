// Package glsl holds the GLSL programs used by the exercises and loads them
// either from the embedded copies or from a directory on disk.
package glsl

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.vert *.frag
var embedded embed.FS

// Program names.
const (
	Phong    = "phong"
	Gouraud  = "gouraud"
	Flat     = "flat"
	Textured = "textured"
)

// Stage file extensions.
const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
)

// ErrNotFound is returned for program names with no source.
var ErrNotFound = errors.New("shader source not found")

// Source is the vertex and fragment text of one program.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Library resolves program sources. Files in Dir take precedence over the
// embedded copies, so edited shaders are picked up on reload.
type Library struct {
	Dir string
}

// Load returns the source of the named program.
func (l Library) Load(name string) (Source, error) {
	vert, err := l.read(name + VertexExt)
	if err != nil {
		return Source{}, err
	}
	frag, err := l.read(name + FragmentExt)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: name, Vertex: vert, Fragment: frag}, nil
}

func (l Library) read(file string) (string, error) {
	if l.Dir != "" {
		data, err := os.ReadFile(filepath.Join(l.Dir, file))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
	}
	data, err := embedded.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, ErrNotFound)
	}
	return string(data), nil
}

// Names lists the embedded programs.
func Names() []string {
	entries, _ := embedded.ReadDir(".")
	set := make(map[string]bool)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), VertexExt) {
			set[strings.TrimSuffix(e.Name(), VertexExt)] = true
		}
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ProgramFor maps a changed shader file to the program it belongs to.
func ProgramFor(path string) (string, bool) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	if ext != VertexExt && ext != FragmentExt {
		return "", false
	}
	return strings.TrimSuffix(base, filepath.Ext(base)), true
}
