//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// startWithCatalog starts the app for user with a catalog file holding GitHub and Linear
func startWithCatalog(t *testing.T, tf *TUITestFramework, user string) {
	t.Helper()
	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalog := filepath.Join(workspace, "apps.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`- category: Dev
  apps:
    - name: GitHub
      url: https://github.com
    - name: Linear
      url: https://linear.app
`), 0644))

	configPath, err := tf.WriteConfig(user, "\n[catalog]\nfile = \""+catalog+"\"\n")
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp("--config", configPath), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("cmdboard"), "Should show cmdboard title")
}

func TestPaletteOpensWithSuggestions(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "ada")

	tf.TogglePalette()
	require.True(t, tf.SeePlain("Suggestions"), "Palette should show the suggestions group")
	require.True(t, tf.SeePlain("GitHub"), "Fetched suggestions should appear")
	require.True(t, tf.SeePlain("Create new story"), "Commands should appear")
	require.True(t, tf.SeePlain("Open Application"), "Footer should offer to open the selection")
}

func TestPaletteFilterAndOpen(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "ada")

	tf.TogglePalette()
	require.True(t, tf.SeePlain("GitHub"), "Fetched suggestions should appear")

	tf.Type("git")
	time.Sleep(100 * time.Millisecond)
	tf.Enter()

	require.True(t, tf.WaitForOpened("https://github.com", 3*time.Second), "Browser should receive the GitHub URL")
	require.True(t, tf.SeePlain("Opened GitHub"), "Status should confirm the open")
}

func TestPaletteNoResults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "ada")

	tf.TogglePalette()
	require.True(t, tf.SeePlain("Suggestions"), "Palette should open")

	tf.Type("figam")
	require.True(t, tf.SeePlain("No results found."), "Empty view should say so")
	require.True(t, tf.SeePlain(`Did you mean "Figma"?`), "Empty view should suggest the closest name")
}

func TestPalettePullRequestPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "ada")

	tf.TogglePalette()
	require.True(t, tf.SeePlain("Suggestions"), "Palette should open")

	tf.Type("new pr")
	time.Sleep(100 * time.Millisecond)
	tf.Enter()
	require.True(t, tf.SeePlain("Home › pull-request"), "Breadcrumb should show the sub-page")
	require.True(t, tf.SeePlain("checkly/checkly-webapp"), "Repositories should be listed")

	mark := tf.Mark()
	tf.Backspace()
	require.True(t, tf.SeePlainAfter(mark, "Suggestions"), "Backspace on an empty query should return to the root page")

	tf.Escape()
	time.Sleep(200 * time.Millisecond)
	mark = tf.Mark()
	tf.TogglePalette()
	require.True(t, tf.SeePlainAfter(mark, "Suggestions"), "Palette should reopen on the root page")
}

func TestHotkeyDisabledWithoutUser(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "")

	require.True(t, tf.SeePlain("not signed in"), "Dashboard should explain the locked palette")
	tf.TogglePalette()
	time.Sleep(300 * time.Millisecond)
	require.NotContains(t, tf.SnapshotPlain(), "Suggestions", "Hotkey should be ignored without a user")
}

func TestDashboardDigitOpensLink(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "")

	tf.SendKeys("2")
	require.True(t, tf.WaitForOpened("https://youtube.com", 3*time.Second), "Browser should receive the YouTube URL")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf, "ada")

	tf.SendKeys(KeyHelp)
	require.True(t, tf.SeePlain("cmdboard Help"), "Help pager should open")

	mark := tf.Mark()
	tf.Quit()
	require.True(t, tf.SeePlainAfter(mark, "Links"), "Should return to the dashboard after closing the pager")
}
