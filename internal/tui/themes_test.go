package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func snapshotThemeState() ([]Theme, int) {
	themeMu.RLock()
	defer themeMu.RUnlock()

	copyThemes := make([]Theme, len(themes))
	copy(copyThemes, themes)
	return copyThemes, activeThemeIdx
}

func restoreThemeState(saved []Theme, savedIdx int) {
	themeMu.Lock()
	defer themeMu.Unlock()

	themes = make([]Theme, len(saved))
	copy(themes, saved)
	if savedIdx < 0 || savedIdx >= len(themes) {
		savedIdx = defaultThemeIndex(themes)
	}
	activeThemeIdx = savedIdx
	applyTheme(themes[activeThemeIdx])
}

func writeThemeFile(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file %s: %v", path, err)
	}
}

func externalThemeJSON(name, accent string) string {
	return `{
  "name": "` + name + `",
  "base": "#111111",
  "surface0": "#232323",
  "surface1": "#303030",
  "text": "#E8E8E8",
  "subtext": "#BDBDBD",
  "dim": "#7F7F7F",
  "accent": "` + accent + `",
  "blue": "#CFCFCF",
  "sapphire": "#BBBBBB",
  "green": "#ABABAB",
  "yellow": "#9A9A9A",
  "red": "#878787",
  "lavender": "#C4C4C4",
  "series": ["#010101", " #020202 ", "#030303", "#040404"]
}`
}

func TestDefaultThemeIsClassic(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	builtin := builtinThemes()
	if got := builtin[defaultThemeIndex(builtin)].Name; got != "Classic" {
		t.Fatalf("default theme = %q, want Classic", got)
	}
	if !SetThemeByName("Classic") {
		t.Fatal("SetThemeByName(Classic) returned false")
	}
	want := []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0"}
	got := seriesPalette()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("palette = %v, want %v", got, want)
	}
}

func TestBuiltinThemesAreValid(t *testing.T) {
	for _, th := range builtinThemes() {
		if err := normalizeTheme(th).validate(); err != nil {
			t.Errorf("builtin theme %q invalid: %v", th.Name, err)
		}
	}
}

func TestLoadThemesFromConfigDir(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	cfgDir := t.TempDir()
	writeThemeFile(t, filepath.Join(cfgDir, "themes"), "custom-gray.json", externalThemeJSON("Custom Gray", "#FAFAFA"))

	if err := LoadThemes(cfgDir); err != nil {
		t.Fatalf("LoadThemes error: %v", err)
	}
	if !SetThemeByName("custom gray") {
		t.Fatalf("SetThemeByName(custom gray) returned false")
	}
	active := ActiveTheme()
	if active.Name != "Custom Gray" {
		t.Fatalf("active theme = %q, want Custom Gray", active.Name)
	}
	if active.Accent != lipgloss.Color("#FAFAFA") {
		t.Fatalf("accent = %q, want #FAFAFA", active.Accent)
	}
	if active.Icon != "🎨" {
		t.Fatalf("icon = %q, want default", active.Icon)
	}
	if len(active.Series) != 4 || active.Series[1] != lipgloss.Color("#020202") {
		t.Fatalf("series = %v", active.Series)
	}
}

func TestLoadThemesCanOverrideBuiltinByName(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	cfgDir := t.TempDir()
	writeThemeFile(t, filepath.Join(cfgDir, "themes"), "nord.json", externalThemeJSON("Nord", "#FFFFFF"))

	if err := LoadThemes(cfgDir); err != nil {
		t.Fatalf("LoadThemes error: %v", err)
	}
	if !SetThemeByName("Nord") {
		t.Fatalf("SetThemeByName(Nord) returned false")
	}
	if got := ActiveTheme().Accent; got != lipgloss.Color("#FFFFFF") {
		t.Fatalf("accent = %q, want #FFFFFF", got)
	}
	if n := len(AvailableThemes()); n != len(builtinThemes()) {
		t.Fatalf("theme count = %d, want %d", n, len(builtinThemes()))
	}
}

func TestLoadThemesFromEnvPath(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	extraDir := t.TempDir()
	writeThemeFile(t, extraDir, "env-theme.json", externalThemeJSON("Env Gray", "#F0F0F0"))
	t.Setenv(themeDirEnvVar, extraDir)

	if err := LoadThemes(t.TempDir()); err != nil {
		t.Fatalf("LoadThemes error: %v", err)
	}
	if !SetThemeByName("Env Gray") {
		t.Fatalf("SetThemeByName(Env Gray) returned false")
	}
}

func TestLoadThemesReportsInvalidThemeFiles(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	cfgDir := t.TempDir()
	writeThemeFile(t, filepath.Join(cfgDir, "themes"), "broken.json", `{"name":"Broken"}`)

	err := LoadThemes(cfgDir)
	if err == nil {
		t.Fatal("expected error for invalid theme file")
	}
	if !strings.Contains(err.Error(), "missing required color fields") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SetThemeByName("Gruvbox") {
		t.Fatal("expected built-in themes to remain available")
	}
}

func TestCycleThemeWraps(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	start := ActiveTheme().Name
	seen := map[string]bool{}
	for range AvailableThemes() {
		seen[CycleTheme()] = true
	}
	if ActiveTheme().Name != start {
		t.Fatalf("cycling through every theme should return to %q, got %q", start, ActiveTheme().Name)
	}
	if len(seen) != len(AvailableThemes()) {
		t.Fatalf("visited %d themes, want %d", len(seen), len(AvailableThemes()))
	}
	if !strings.Contains(ThemeName(), start) {
		t.Fatalf("ThemeName() = %q", ThemeName())
	}
}
