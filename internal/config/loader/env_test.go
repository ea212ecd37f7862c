package loader

import (
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	loader := NewEnvLoaderWithEnviron(EnvPrefix, []string{
		"QUILL_LOG_LEVEL=debug",
		"QUILL_BANNER=welcome",
		"QUILL_FAREWELL=",
		"QUILL_KEYMAP_INSERT_CTRL+D=cursor.page_down",
		"HOME=/home/user",
	})
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, ok := getByPath(config, "ui.banner"); !ok || val != "welcome" {
		t.Errorf("ui.banner = %v, want 'welcome'", val)
	}
	if val, ok := getByPath(config, "ui.farewell"); !ok || val != "" {
		t.Errorf("ui.farewell = %v, want empty string", val)
	}
	if val, ok := getByPath(config, "keymap.insert.ctrl+d"); !ok || val != "cursor.page_down" {
		t.Errorf("keymap.insert.ctrl+d = %v, want 'cursor.page_down'", val)
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variable should be ignored")
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader(EnvPrefix)

	tests := []struct {
		env      string
		expected string
	}{
		{"QUILL_UI_BANNER", "ui.banner"},
		{"QUILL_LOG_FILE", "log.file"},
		{"QUILL_SIMPLE", "simple"},
		{"QUILL_KEYMAP_COMMAND_PAGE_UP", "keymap.command.page_up"},
		{"QUILL_KEYMAP_COMMAND", ""},
		{"QUILL_", ""},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := NewEnvLoaderWithEnviron(EnvPrefix, []string{"QUILL_QUIT_MESSAGE=bye"})
	loader.AddMapping("QUILL_QUIT_MESSAGE", "ui.farewell")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := getByPath(config, "ui.farewell"); !ok || val != "bye" {
		t.Errorf("ui.farewell = %v, want 'bye'", val)
	}
}
