package shader

import (
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/internal/logger"
)

// Set owns the programs an exercise uses and reloads them when their
// source files change.
type Set struct {
	lib      glsl.Library
	programs map[string]*Program
}

// NewSet compiles every named program. Already compiled programs are
// deleted if a later one fails.
func NewSet(lib glsl.Library, names ...string) (*Set, error) {
	s := &Set{lib: lib, programs: make(map[string]*Program, len(names))}
	for _, name := range names {
		p, err := Load(lib, name)
		if err != nil {
			s.Delete()
			return nil, err
		}
		s.programs[name] = p
	}
	return s, nil
}

// Get returns the named program, or nil.
func (s *Set) Get(name string) *Program {
	return s.programs[name]
}

// Program returns the named program, compiling it on first use.
func (s *Set) Program(name string) (*Program, error) {
	if p, ok := s.programs[name]; ok {
		return p, nil
	}
	p, err := Load(s.lib, name)
	if err != nil {
		return nil, err
	}
	s.programs[name] = p
	return p, nil
}

// Reload recompiles the programs whose files are listed in paths.
// Failures are logged and the old program is kept.
func (s *Set) Reload(paths []string) {
	done := make(map[string]bool)
	for _, path := range paths {
		name, ok := glsl.ProgramFor(path)
		if !ok || done[name] {
			continue
		}
		done[name] = true
		p := s.programs[name]
		if p == nil {
			continue
		}
		if err := p.Reload(s.lib); err != nil {
			logger.Error("shader reload failed, keeping previous program",
				zap.String("name", name),
				zap.Error(err),
			)
		}
	}
}

// Delete releases every program.
func (s *Set) Delete() {
	for _, p := range s.programs {
		p.Delete()
	}
}
