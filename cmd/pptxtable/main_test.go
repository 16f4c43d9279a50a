package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

func TestParseCells(t *testing.T) {
	cells, err := parseCells([]string{"0,0=Region", "2,1=a=b", "1,3="})
	require.NoError(t, err)
	assert.Equal(t, []cellText{
		{row: 0, col: 0, text: "Region"},
		{row: 2, col: 1, text: "a=b"},
		{row: 1, col: 3, text: ""},
	}, cells)

	for _, bad := range []string{"0,0", "x,1=a", "1=a"} {
		_, err := parseCells([]string{bad})
		assert.ErrorIs(t, err, errUsage, bad)
	}
}

func TestTableOptions(t *testing.T) {
	flagLeft, flagTop, flagWidth, flagHeight = "1in", "", "2cm", ""
	t.Cleanup(func() { flagLeft, flagWidth = "", "" })

	opts, err := tableOptions("layout")
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	opts, err = tableOptions("Shape")
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	opts, err = tableOptions("inherited")
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	_, err = tableOptions("master")
	assert.ErrorIs(t, err, errUsage)

	flagWidth = "wide"
	_, err = tableOptions("layout")
	assert.ErrorIs(t, err, errUsage)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("slide 1: %w", gopresentation.ErrNotATablePlaceholder)))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("idx 3: %w", gopresentation.ErrPlaceholderNotFound)))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("insert table: %w", gopresentation.ErrNoGeometry)))
	assert.Equal(t, exitUserError, exitCode(errUsage))
	assert.Equal(t, exitSysError, exitCode(os.ErrPermission))
}

func TestFormatGeometry(t *testing.T) {
	info := placeholderInfo{X: 914400, Y: 457200, CX: 1828800, CY: 228600}
	assert.Equal(t, "x=914400 y=457200 cx=1828800 cy=228600", formatGeometry(info, gopresentation.EMU))
	assert.Equal(t, "x=1in y=0.5in cx=2in cy=0.25in", formatGeometry(info, gopresentation.Inch))
	assert.Equal(t, "x=72pt y=36pt cx=144pt cy=18pt", formatGeometry(info, gopresentation.Point))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultRows, v.GetInt(cfgKeyRows))
	assert.Equal(t, defaultCols, v.GetInt(cfgKeyCols))
	assert.Equal(t, geometryLayout, v.GetString(cfgKeyGeometry))
	assert.Equal(t, defaultUnits, v.GetString(cfgKeyUnits))
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pptxtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 5\ncols: 3\ngeometry: shape\n"), 0o644))
	t.Setenv("PPTXTABLE_COLS", "7")

	v, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, v.GetInt(cfgKeyRows))
	assert.Equal(t, 7, v.GetInt(cfgKeyCols))
	assert.Equal(t, geometryShape, v.GetString(cfgKeyGeometry))

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "pptxtable "+gopresentation.Version+"\n", out.String())
}
