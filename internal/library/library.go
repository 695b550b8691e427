// Package library implements add-or-replace-within-file semantics for
// the shared KiCad symbol library: the only long-lived mutable artifact
// in the conversion pipeline. Footprint and 3D-model files are written
// whole, one file per component, and need no such mutator.
package library

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
)

// symbolWriteLock serializes every exists-check and write against any
// symbol library file. A single process-wide mutex is the simplest
// correct design given the file is multi-component and target tools
// expect a human-editable, non-transactional text format (spec.md §9).
var symbolWriteLock sync.Mutex

const (
	v6Header = "(kicad_symbol_lib\n  (version 20211014)\n  (generator nlbn)"
	v5Header = "EESchema-LIBRARY Version 2.4\n#encoding utf-8"
)

// Manager bootstraps the per-part output directories and owns
// add-or-update access to one output tree's library files.
type Manager struct {
	outputDir string
}

// New builds a Manager rooted at outputDir.
func New(outputDir string) *Manager {
	return &Manager{outputDir: outputDir}
}

// CreateDirectories ensures <out>/, <out>/nlbn.pretty/, and
// <out>/nlbn.3dshapes/ exist.
func (m *Manager) CreateDirectories() error {
	for _, dir := range []string{m.outputDir, m.PrettyDir(), m.ShapesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperror.Emit(dir, err)
		}
	}
	return nil
}

// PrettyDir is the footprint module directory.
func (m *Manager) PrettyDir() string { return filepath.Join(m.outputDir, "nlbn.pretty") }

// ShapesDir is the 3D-model directory.
func (m *Manager) ShapesDir() string { return filepath.Join(m.outputDir, "nlbn.3dshapes") }

// SymbolLibPath returns the symbol library path for the requested KiCad
// version.
func (m *Manager) SymbolLibPath(v5 bool) string {
	if v5 {
		return filepath.Join(m.outputDir, "nlbn.lib")
	}
	return filepath.Join(m.outputDir, "nlbn.kicad_sym")
}

// FootprintPath returns the `.kicad_mod` path for a named component.
func (m *Manager) FootprintPath(name string) string {
	return filepath.Join(m.PrettyDir(), name+".kicad_mod")
}

// AltiumSymbolPath returns the standalone `.SchLib` path for a named
// component; Altium's symbol format needs no shared-library mutator.
func (m *Manager) AltiumSymbolPath(name string) string {
	return filepath.Join(m.outputDir, name+".SchLib")
}

// AltiumFootprintPath returns the standalone `.PcbLib` path for a named
// component.
func (m *Manager) AltiumFootprintPath(name string) string {
	return filepath.Join(m.outputDir, name+".PcbLib")
}

// WRLPath returns the VRML model path for a named component.
func (m *Manager) WRLPath(name string) string {
	return filepath.Join(m.ShapesDir(), name+".wrl")
}

// STEPPath returns the STEP model path for a named component.
func (m *Manager) STEPPath(name string) string {
	return filepath.Join(m.ShapesDir(), name+".step")
}

// WriteFile writes data as the complete contents of path, used for
// single-file artifacts (footprints, 3D models, Altium libraries) that
// need no add-or-replace semantics.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperror.Emit(path, err)
	}
	return nil
}

func v6Pattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)[ \t]*\(symbol\s+"` + regexp.QuoteMeta(name) + `"\s+.*?\n  \)\n`)
}

func v6ExistsPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\(symbol\s+"` + regexp.QuoteMeta(name) + `"`)
}

func v5Pattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)DEF\s+` + regexp.QuoteMeta(name) + `\s+.*?ENDDEF\n`)
}

func v5ExistsPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`DEF\s+` + regexp.QuoteMeta(name) + `\s+`)
}

// AddOrUpdateSymbol realizes spec.md §4.9's add_or_update contract for
// one named component block within a shared, multi-component symbol
// library file. The entire decide-and-write sequence runs under
// symbolWriteLock so concurrent callers touching the same library never
// race between the exists-check and the write.
func AddOrUpdateSymbol(libPath, componentName, componentBlock string, overwrite bool) (written bool, err error) {
	symbolWriteLock.Lock()
	defer symbolWriteLock.Unlock()

	isV6 := strings.Contains(componentBlock, "(symbol")

	content, existed, err := readIfExists(libPath)
	if err != nil {
		return false, err
	}
	if !existed {
		return true, writeLibFile(libPath, newLibContent(isV6, componentBlock))
	}

	exists := componentExistsIn(content, componentName, isV6)
	switch {
	case exists && overwrite:
		updated, ok := replaceBlock(content, componentName, componentBlock, isV6)
		if !ok {
			return false, apperror.LibraryConflict(componentName)
		}
		return true, writeLibFile(libPath, updated)
	case exists:
		return false, nil
	default:
		return true, writeLibFile(libPath, appendBlock(content, componentBlock, isV6))
	}
}

// ComponentExists reports whether componentName already has a block in
// libPath, without taking the write lock. Callers that need an
// exists-then-decide sequence to be atomic must use AddOrUpdateSymbol
// instead.
func ComponentExists(libPath, componentName string) (bool, error) {
	content, existed, err := readIfExists(libPath)
	if err != nil {
		return false, err
	}
	if !existed {
		return false, nil
	}
	return v6ExistsPattern(componentName).MatchString(content) ||
		v5ExistsPattern(componentName).MatchString(content), nil
}

func componentExistsIn(content, name string, isV6 bool) bool {
	if isV6 {
		return v6ExistsPattern(name).MatchString(content)
	}
	return v5ExistsPattern(name).MatchString(content)
}

func replaceBlock(content, name, newBlock string, isV6 bool) (string, bool) {
	pattern := v5Pattern(name)
	if isV6 {
		pattern = v6Pattern(name)
	}
	if !pattern.MatchString(content) {
		return "", false
	}
	return pattern.ReplaceAllLiteralString(content, newBlock), true
}

func appendBlock(content, block string, isV6 bool) string {
	trimmed := strings.TrimRight(content, " \t\r\n")
	if isV6 {
		trimmed = strings.TrimRight(trimmed, ")")
	}
	var b strings.Builder
	b.WriteString(trimmed)
	b.WriteString("\n")
	b.WriteString(block)
	if isV6 {
		b.WriteString("\n)")
	}
	b.WriteString("\n")
	return b.String()
}

func newLibContent(isV6 bool, block string) string {
	header := v5Header
	if isV6 {
		header = v6Header
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(block)
	if isV6 {
		b.WriteString("\n)")
	}
	b.WriteString("\n")
	return b.String()
}

func readIfExists(path string) (content string, existed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, apperror.Emit(path, err)
	}
	return string(data), true, nil
}

func writeLibFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return apperror.Emit(path, err)
	}
	return nil
}
