// Package config tests configuration loading.
package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

// isolate points HOME and the OS config dir at an empty temp dir and moves
// into a fresh working directory, so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{
		"TASKLIST_SEED_TASKS", "TASKLIST_LINE_UNITS", "TASKLIST_ALT_SCREEN",
		"TASKLIST_MOUSE", "TASKLIST_LOG_DIR", "TASKLIST_LOG_LEVEL",
		"TASKLIST_LOG_FORMAT", "TASKLIST_LOG_TIMESTAMPS", "TASKLIST_LOG_CALLER",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	work := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return work
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.LineUnits != DefaultLineUnits {
		t.Errorf("LineUnits: got %g, want %g", cfg.LineUnits, DefaultLineUnits)
	}
	if cfg.LogDir != DefaultLogDir {
		t.Errorf("LogDir: got %q, want %q", cfg.LogDir, DefaultLogDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
	if !cfg.AltScreen || !cfg.Mouse {
		t.Errorf("AltScreen/Mouse: got %v/%v, want true/true", cfg.AltScreen, cfg.Mouse)
	}
	want := []string{"Pay Bills", "Buy Grocery", "Shopping"}
	if got := cfg.Seeds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Seeds: got %v, want %v", got, want)
	}
}

func TestSeedsCopy(t *testing.T) {
	cfg := &Config{SeedTasks: []string{"a"}}
	seeds := cfg.Seeds()
	seeds[0] = "b"
	if cfg.SeedTasks[0] != "a" {
		t.Errorf("Seeds returned the backing slice")
	}

	empty := &Config{SeedTasks: []string{}}
	if got := empty.Seeds(); len(got) != 0 {
		t.Errorf("Seeds with explicit empty list: got %v, want empty", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TASKLIST_SEED_TASKS", "Walk Dog, Feed Cat")
	t.Setenv("TASKLIST_LINE_UNITS", "50")
	t.Setenv("TASKLIST_ALT_SCREEN", "false")
	t.Setenv("TASKLIST_LOG_LEVEL", "debug")
	t.Setenv("TASKLIST_LOG_CALLER", "yes")

	cfg := &Config{}
	setDefaults(cfg)
	sources := map[string]ConfigSource{}
	loadFromEnv(cfg, sources)

	if want := []string{"Walk Dog", "Feed Cat"}; !reflect.DeepEqual(cfg.SeedTasks, want) {
		t.Errorf("SeedTasks: got %v, want %v", cfg.SeedTasks, want)
	}
	if cfg.LineUnits != 50 {
		t.Errorf("LineUnits: got %g, want 50", cfg.LineUnits)
	}
	if cfg.AltScreen {
		t.Errorf("AltScreen: got true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if !cfg.LogCaller {
		t.Errorf("LogCaller: got false, want true")
	}
	for _, field := range []string{"seed_tasks", "line_units", "alt_screen", "log_level", "log_caller"} {
		if sources[field] != SourceEnv {
			t.Errorf("source of %s: got %q, want %q", field, sources[field], SourceEnv)
		}
	}
	if _, ok := sources["mouse"]; ok {
		t.Errorf("mouse should not be tracked when its env var is unset")
	}
}

func TestLoadFromEnvIgnoresBadNumber(t *testing.T) {
	isolate(t)
	t.Setenv("TASKLIST_LINE_UNITS", "wide")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg, nil)

	if cfg.LineUnits != DefaultLineUnits {
		t.Errorf("LineUnits: got %g, want %g", cfg.LineUnits, DefaultLineUnits)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "tasklist.toml")
	writeFile(t, configFile, `seed_tasks = ["Laundry", ""]
line_units = 50
log_format = "json"
`)

	cfg := &Config{}
	setDefaults(cfg)
	sources := map[string]ConfigSource{}
	if err := loadConfigFile(cfg, configFile, sources, SourceProjFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if want := []string{"Laundry", ""}; !reflect.DeepEqual(cfg.SeedTasks, want) {
		t.Errorf("SeedTasks: got %#v, want %#v", cfg.SeedTasks, want)
	}
	if cfg.LineUnits != 50 {
		t.Errorf("LineUnits: got %g, want 50", cfg.LineUnits)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel should keep its default, got %q", cfg.LogLevel)
	}
	if sources["line_units"] != SourceProjFile {
		t.Errorf("source of line_units: got %q, want %q", sources["line_units"], SourceProjFile)
	}
	if _, ok := sources["log_level"]; ok {
		t.Errorf("log_level is not in the file and should not be tracked")
	}
}

func TestLoadConfigFileSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantPath string
		wantMsg  string
	}{
		{
			name:    "unknown key",
			content: "colour = \"red\"\n",
			wantMsg: "colour",
		},
		{
			name:     "wrong type",
			content:  "mouse = \"yes\"\n",
			wantPath: "mouse",
		},
		{
			name:     "non-positive line units",
			content:  "line_units = 0\n",
			wantPath: "line_units",
		},
		{
			name:     "bad seed element",
			content:  "seed_tasks = [\"ok\", 3]\n",
			wantPath: "seed_tasks[1]",
		},
		{
			name:     "bad log level",
			content:  "log_level = \"loud\"\n",
			wantPath: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasklist.toml")
			writeFile(t, path, tt.content)

			cfg := &Config{}
			setDefaults(cfg)
			err := loadConfigFile(cfg, path, nil, SourceProjFile)
			if err == nil {
				t.Fatal("expected schema error, got nil")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if ve.Path != tt.wantPath {
				t.Errorf("Path: got %q, want %q (%v)", ve.Path, tt.wantPath, err)
			}
			if tt.wantMsg != "" && !strings.Contains(ve.Message, tt.wantMsg) {
				t.Errorf("Message: got %q, want it to mention %q", ve.Message, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfigFileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.toml")
	writeFile(t, path, "line_units = = 3\n")

	cfg := &Config{}
	err := loadConfigFile(cfg, path, nil, SourceProjFile)
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	work := isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join(home, ".tasklist", "tasklist.toml"), `line_units = 10
log_level = "warn"
log_format = "logfmt"
`)
	writeFile(t, filepath.Join(work, "tasklist.toml"), `line_units = 20
log_level = "error"
`)
	t.Setenv("TASKLIST_LOG_LEVEL", "debug")

	cws, err := LoadWithSources(newFlagSet(), []string{"-line-units", "50"})
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config

	if cfg.LogFormat != "logfmt" {
		t.Errorf("LogFormat: got %q, want logfmt from user file", cfg.LogFormat)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug from env", cfg.LogLevel)
	}
	if cfg.LineUnits != 50 {
		t.Errorf("LineUnits: got %g, want 50 from flag", cfg.LineUnits)
	}

	wantSources := map[string]ConfigSource{
		"log_format": SourceUserFile,
		"log_level":  SourceEnv,
		"line_units": SourceFlag,
		"mouse":      SourceDefault,
	}
	for field, want := range wantSources {
		if got := cws.Source(field); got != want {
			t.Errorf("Source(%s): got %q, want %q", field, got, want)
		}
	}
	if len(cws.Files) != 2 {
		t.Errorf("Files: got %v, want user and project files", cws.Files)
	}
}

func TestLoadFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlagSet(), []string{
		"-seed", "One,Two",
		"-mouse=false",
		"-log-dir", "logs",
		"print",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"One", "Two"}; !reflect.DeepEqual(cfg.SeedTasks, want) {
		t.Errorf("SeedTasks: got %v, want %v", cfg.SeedTasks, want)
	}
	if cfg.Mouse {
		t.Errorf("Mouse: got true, want false")
	}
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir: got %q, want logs", cfg.LogDir)
	}
	if cfg.ProjectRoot == "" {
		t.Errorf("ProjectRoot was not computed")
	}
}

func TestLoadUnsetSeedFlagKeepsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeedTasks != nil {
		t.Errorf("SeedTasks: got %v, want nil so the built-in seeds apply", cfg.SeedTasks)
	}
}

func TestLoadRejectsBadLineUnits(t *testing.T) {
	isolate(t)

	_, err := Load(newFlagSet(), []string{"-line-units", "-1"})
	if err == nil {
		t.Fatal("expected error for negative line units")
	}
	if !strings.Contains(err.Error(), "line_units") {
		t.Errorf("error should mention line_units, got %v", err)
	}
}

func TestLoadReportsBadProjectFile(t *testing.T) {
	work := isolate(t)
	writeFile(t, filepath.Join(work, ".tasklist.toml"), "mouse = 1\n")

	_, err := Load(newFlagSet(), nil)
	if err == nil {
		t.Fatal("expected error for invalid project config")
	}
	if !strings.Contains(err.Error(), "loading project config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExampleConfigValidates(t *testing.T) {
	if err := validateConfigData([]byte(ExampleConfig())); err != nil {
		t.Fatalf("example config does not match the schema: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~"); got != home {
		t.Errorf("expandPath(~): got %q, want %q", got, home)
	}
	if got, want := expandPath("~/logs"), filepath.Join(home, "logs"); got != want {
		t.Errorf("expandPath(~/logs): got %q, want %q", got, want)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(\"\"): got %q, want empty", got)
	}

	t.Setenv("TASKLIST_TEST_DIR", "/tmp/tl")
	if got := expandPath("$TASKLIST_TEST_DIR/x"); got != "/tmp/tl/x" {
		t.Errorf("expandPath($TASKLIST_TEST_DIR/x): got %q", got)
	}
	if runtime.GOOS == "windows" {
		if got := expandPath("%TASKLIST_TEST_DIR%"); got != "/tmp/tl" {
			t.Errorf("expandPath(%%TASKLIST_TEST_DIR%%): got %q", got)
		}
	}
}

func TestConfigValue(t *testing.T) {
	cfg := &Config{
		SeedTasks: []string{"a", "b"},
		LineUnits: 12.5,
		Mouse:     true,
		LogLevel:  "debug",
	}

	tests := []struct {
		field string
		want  string
	}{
		{field: "seed_tasks", want: `["a" "b"]`},
		{field: "line_units", want: "12.5"},
		{field: "mouse", want: "true"},
		{field: "alt_screen", want: "false"},
		{field: "log_level", want: "debug"},
	}
	for _, tt := range tests {
		got, ok := cfg.Value(tt.field)
		if !ok {
			t.Errorf("Value(%q) not found", tt.field)
			continue
		}
		if got != tt.want {
			t.Errorf("Value(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}

	for _, field := range Fields() {
		if _, ok := cfg.Value(field); !ok {
			t.Errorf("Value(%q) not found", field)
		}
	}
	if _, ok := cfg.Value("colour"); ok {
		t.Error("Value(\"colour\") should not be found")
	}
}
