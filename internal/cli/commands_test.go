package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkDir creates an isolated working directory populated with the
// given files, chdirs into it and points the XDG lookups away from the
// real home directory.
func setupWorkDir(t *testing.T, files ...string) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, ".state"))
	t.Setenv("HOME", tmp)
	xdg.Reload()

	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte(name), 0644))
	}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
		xdg.Reload()
	})
	return tmp
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func assertFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			got = append(got, entry.Name())
		}
	}
	assert.ElementsMatch(t, names, got)
}

func TestRegexRename(t *testing.T) {
	dir := setupWorkDir(t, "img_001.jpg", "img_999.jpg", "other.txt")

	out, err := runCommand(t, "-E", `^img_([0-9]+)\.jpg$`, "image-#1.jpg")
	require.NoError(t, err)

	assert.Contains(t, out, "img_001.jpg -> image-001.jpg")
	assert.Contains(t, out, "img_999.jpg -> image-999.jpg")
	assertFiles(t, dir, "image-001.jpg", "image-999.jpg", "other.txt")
}

func TestWildcardRename(t *testing.T) {
	dir := setupWorkDir(t, "Screenshot from 2025-05-10 22-52-47.png")

	_, err := runCommand(t,
		"Screenshot from * ??-??-??.png",
		"Screenshot_#1_(#2#3:#4#5:#6#7).png")
	require.NoError(t, err)

	assertFiles(t, dir, "Screenshot_2025-05-10_(22:52:47).png")
}

func TestCollisionLeavesFilesUntouched(t *testing.T) {
	dir := setupWorkDir(t, "a.txt", "b.txt")

	_, err := runCommand(t, "*.txt", "same.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCollision))
	assert.Equal(t, errors.ExitCollision, errors.ExitCode(err))

	assertFiles(t, dir, "a.txt", "b.txt")
}

func TestOverwriteLeavesFilesUntouched(t *testing.T) {
	dir := setupWorkDir(t, "x.txt", "y.txt")

	_, err := runCommand(t, "x.txt", "y.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOverwrite))
	assert.Equal(t, errors.ExitOverwrite, errors.ExitCode(err))

	assertFiles(t, dir, "x.txt", "y.txt")
}

func TestDryRunTouchesNothing(t *testing.T) {
	dir := setupWorkDir(t, "a.jpeg")

	out, err := runCommand(t, "--dry-run", "*.jpeg", "#1.jpg")
	require.NoError(t, err)

	assert.Contains(t, out, "a.jpeg -> a.jpg")
	assertFiles(t, dir, "a.jpeg")
}

func TestIdempotentAfterRename(t *testing.T) {
	dir := setupWorkDir(t, "a.jpeg", "b.jpeg")

	_, err := runCommand(t, "*.jpeg", "#1.jpg")
	require.NoError(t, err)
	assertFiles(t, dir, "a.jpg", "b.jpg")

	// A second run finds nothing left to do
	out, err := runCommand(t, "*.jpeg", "#1.jpg")
	require.NoError(t, err)
	assert.Contains(t, out, "No files matched.")
}

func TestDirectoriesAreExcluded(t *testing.T) {
	dir := setupWorkDir(t, "a.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	out, err := runCommand(t, "*.txt", "#1.renamed")
	require.NoError(t, err)

	assert.NotContains(t, out, "sub.txt")
	assertFiles(t, dir, "a.renamed")

	info, err := os.Stat(filepath.Join(dir, "sub.txt"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "directories are never renamed")
}

func TestWrongArgumentCount(t *testing.T) {
	setupWorkDir(t, "a.txt")

	_, err := runCommand(t, "onlyone")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
}

func TestInvalidRegexPattern(t *testing.T) {
	setupWorkDir(t, "a.txt")

	_, err := runCommand(t, "-E", "([0-9", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPattern))
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
}

func TestVersionFlag(t *testing.T) {
	setupWorkDir(t)

	out, err := runCommand(t, "-V")
	require.NoError(t, err)
	assert.Contains(t, out, "ren dev")
}

func TestConfigDryRunDefault(t *testing.T) {
	dir := setupWorkDir(t, "a.jpeg")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ren.toml"), []byte("dry_run = true\n"), 0644))

	_, err := runCommand(t, "*.jpeg", "#1.jpg")
	require.NoError(t, err)

	// Config made dry-run the default, so nothing moved
	assert.FileExists(t, filepath.Join(dir, "a.jpeg"))
}

func TestEnvOverridesForDryRun(t *testing.T) {
	dir := setupWorkDir(t, "a.jpeg")
	t.Setenv("REN_DRY_RUN", "true")

	_, err := runCommand(t, "*.jpeg", "#1.jpg")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "a.jpeg"))
}
