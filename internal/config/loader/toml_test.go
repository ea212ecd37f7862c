package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestTOMLLoader_LoadFrom(t *testing.T) {
	fsys := fstest.MapFS{
		"home/user/.config/quill/config.toml": {Data: []byte(`
[log]
level = "debug"

[ui]
banner = "hello"

[keymap.command]
x = "editor.quit"
`)},
	}

	l := NewTOMLLoaderWithFS(fsys, "/home/user/.config/quill/config.toml")
	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, ok := getByPath(config, "ui.banner"); !ok || val != "hello" {
		t.Errorf("ui.banner = %v, want 'hello'", val)
	}
	if val, ok := getByPath(config, "keymap.command.x"); !ok || val != "editor.quit" {
		t.Errorf("keymap.command.x = %v, want 'editor.quit'", val)
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	l := NewTOMLLoaderWithFS(fstest.MapFS{}, "missing.toml")
	config, err := l.Load()
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if config != nil {
		t.Errorf("expected nil config, got %v", config)
	}

	config, err = l.LoadFrom("")
	if err != nil || config != nil {
		t.Errorf("expected nil, nil for empty path, got %v, %v", config, err)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	l := NewTOMLLoader("")
	_, err := l.LoadFromReader(strings.NewReader("[log\nlevel = "))
	if err == nil {
		t.Fatal("expected parse error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != "<reader>" {
		t.Errorf("expected path <reader>, got %q", perr.Path)
	}
	if !strings.Contains(perr.Error(), "parse error in <reader>") {
		t.Errorf("unexpected message %q", perr.Error())
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"log": map[string]any{"level": "info", "file": "a.log"},
		"ui":  map[string]any{"banner": "x"},
	}
	src := map[string]any{
		"log": map[string]any{"level": "debug"},
		"ui":  "flat",
	}

	got := DeepMerge(dst, src)

	if val, _ := getByPath(got, "log.level"); val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, _ := getByPath(got, "log.file"); val != "a.log" {
		t.Errorf("log.file = %v, want 'a.log'", val)
	}
	if got["ui"] != "flat" {
		t.Errorf("ui = %v, want 'flat'", got["ui"])
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("expected non-nil map from DeepMerge(nil, nil)")
	}
}
