package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"debug", true, true, true},
		{"DEBUG", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"info+4", false, false, true},
		{"verbose", false, true, true},
		{"", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", new(bytes.Buffer))
			ctx := context.Background()

			for lvl, want := range map[slog.Level]bool{
				slog.LevelDebug: tt.wantDebug,
				slog.LevelInfo:  tt.wantInfo,
				slog.LevelWarn:  tt.wantWarn,
			} {
				if got := logger.Enabled(ctx, lvl); got != want {
					t.Errorf("Enabled(%s) = %v, want %v", lvl, got, want)
				}
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"board started"`},
		{"text", `msg="board started"`},
		{"xml", `"msg":"board started"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("board started")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Info("x")
	logging.New("info", "json", &info).Info("x")

	if !strings.Contains(debug.String(), `"source"`) {
		t.Errorf("debug output lacks source: %s", debug.String())
	}
	if strings.Contains(info.String(), `"source"`) {
		t.Errorf("info output has source: %s", info.String())
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("empty context did not yield slog.Default()")
	}

	first := logging.New("info", "json", new(bytes.Buffer))
	second := logging.New("debug", "json", new(bytes.Buffer))
	ctx := logging.WithLogger(logging.WithLogger(context.Background(), first), second)

	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the innermost logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	type login struct {
		Username string
		Password string
	}
	type session struct {
		Token  string
		UserID string
	}

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
		keep   string
	}{
		{"authorization key", slog.String("authorization", "Bearer tok-1"), "tok-1", ""},
		{"password key", slog.String("password", "hunter2"), "hunter2", ""},
		{"secret prefix", slog.String("secret_backend", "s3cr3t"), "s3cr3t", ""},
		{"bearer inside value", slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9", ""},
		{"login action", slog.Any("action", login{Username: "alice", Password: "hunter2"}), "hunter2", "alice"},
		{"auth state", slog.Any("auth", session{Token: "tok-abc123", UserID: "u1"}), "tok-abc123", "u1"},
		{"plain fields", slog.String("path", "/api/v1/views/projects"), "", "/api/v1/views/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).LogAttrs(context.Background(), slog.LevelInfo, "event", tt.attr)

			out := buf.String()
			if tt.secret != "" && strings.Contains(out, tt.secret) {
				t.Errorf("output leaks %q: %s", tt.secret, out)
			}
			if tt.secret != "" && !strings.Contains(out, logging.RedactedValue()) {
				t.Errorf("output lacks redaction marker: %s", out)
			}
			if tt.keep != "" && !strings.Contains(out, tt.keep) {
				t.Errorf("output lost %q: %s", tt.keep, out)
			}
		})
	}
}

func TestSensitiveHeader(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"Authorization": true,
		"cookie":        true,
		"X-Api-Key":     true,
		"Accept":        false,
		"X-Request-Id":  false,
	} {
		if got := logging.SensitiveHeader(name); got != want {
			t.Errorf("SensitiveHeader(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestForComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.ForComponent(logging.New("info", "json", &buf), "project.effects").Info("loaded")

	if !strings.Contains(buf.String(), `"component":"project.effects"`) {
		t.Errorf("output lacks component: %s", buf.String())
	}
	if logging.ForComponent(nil, "x") == nil {
		t.Error("ForComponent(nil) returned nil")
	}
}
