package internal

import (
	"log/slog"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	pkgconfig "github.com/starford/mannaz/pkg/config"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestStoreConfig_EmptyPath(t *testing.T) {
	cfg := StoreConfig{Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty store path should fail validation")
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Store.Path != "./db/contacts.json" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestLogLevel_YAMLDecode(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"INFO", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		var lvl LogLevel
		if err := yaml.Unmarshal([]byte(tc.in), &lvl); err != nil {
			t.Errorf("unmarshal %q: %v", tc.in, err)
			continue
		}
		if lvl.Level != tc.want {
			t.Errorf("level for %q = %v, want %v", tc.in, lvl.Level, tc.want)
		}
	}
}

func TestLogLevel_YAMLDecodeInvalid(t *testing.T) {
	var lvl LogLevel
	if err := yaml.Unmarshal([]byte("loud"), &lvl); err == nil {
		t.Error("expected error for unknown level name")
	}
}

// The shipped default config must parse and validate, or a no-flags
// startup dies before the server ever comes up.
func TestShippedConfigFile(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load("../config/config.yaml", cfg); err != nil {
		t.Fatalf("shipped config failed to load: %v", err)
	}
	if cfg.App.LogLevel.Level != slog.LevelInfo {
		t.Errorf("log level = %v, want INFO", cfg.App.LogLevel.Level)
	}
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.App.HTTP.Port)
	}
	if cfg.Store.Path != "./db/contacts.json" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}
}
