package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v6Block(name string) string {
	return fmt.Sprintf("  (symbol \"%s\"\n    (in_bom yes)\n  )\n", name)
}

func TestAddOrUpdateSymbolCreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	written, err := AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), false)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(libPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "(kicad_symbol_lib")
	assert.Contains(t, content, `(symbol "R_0402"`)
	assert.True(t, content[len(content)-2] == ')')
}

func TestAddOrUpdateSymbolSkipsWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	_, err := AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), false)
	require.NoError(t, err)
	before, err := os.ReadFile(libPath)
	require.NoError(t, err)

	written, err := AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402")+"\n", false)
	require.NoError(t, err)
	assert.False(t, written)

	after, err := os.ReadFile(libPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddOrUpdateSymbolOverwriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	_, err := AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), true)
	require.NoError(t, err)
	once, err := os.ReadFile(libPath)
	require.NoError(t, err)

	_, err = AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), true)
	require.NoError(t, err)
	twice, err := os.ReadFile(libPath)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestAddOrUpdateSymbolAddsSecondComponent(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	_, err := AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), false)
	require.NoError(t, err)
	_, err = AddOrUpdateSymbol(libPath, "C_0603", v6Block("C_0603"), false)
	require.NoError(t, err)

	data, err := os.ReadFile(libPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `(symbol "R_0402"`)
	assert.Contains(t, content, `(symbol "C_0603"`)
	assert.Equal(t, 1, countOuterCloseParens(content))
}

func TestConcurrentAddOrUpdateProducesAllComponents(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("PART_%d", i)
			_, err := AddOrUpdateSymbol(libPath, name, v6Block(name), false)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(libPath)
	require.NoError(t, err)
	content := string(data)
	for i := 0; i < n; i++ {
		assert.Contains(t, content, fmt.Sprintf(`(symbol "PART_%d"`, i))
	}
	assert.Equal(t, 1, countOuterCloseParens(content))
}

// countOuterCloseParens counts how many times the wrapper's closing
// paren appears at the very end of the file: exactly one.
func countOuterCloseParens(content string) int {
	trimmed := content
	for len(trimmed) > 0 && (trimmed[len(trimmed)-1] == '\n') {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == ')' {
		return 1
	}
	return 0
}

func TestAddOrUpdateSymbolV5Lifecycle(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.lib")

	block := "DEF R_0402 R 0 40 Y Y 1 F N\nENDDEF\n"
	written, err := AddOrUpdateSymbol(libPath, "R_0402", block, false)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(libPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EESchema-LIBRARY Version 2.4")
	assert.Contains(t, string(data), "DEF R_0402 R")
}

func TestComponentExists(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "nlbn.kicad_sym")

	exists, err := ComponentExists(libPath, "R_0402")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = AddOrUpdateSymbol(libPath, "R_0402", v6Block("R_0402"), false)
	require.NoError(t, err)

	exists, err = ComponentExists(libPath, "R_0402")
	require.NoError(t, err)
	assert.True(t, exists)
}
