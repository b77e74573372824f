package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level, ReplaceAttr: NewReplaceAttr()}))
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry), buf.String())

	return entry
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer

	logger := jsonLogger(&buf, slog.LevelInfo)

	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, defaultLogger, FromContext(nil))
	assert.Same(t, defaultLogger, FromContext(context.Background()))
	assert.Same(t, logger, FromContext(WithContext(context.Background(), logger)))
}

func TestFromContextOr(t *testing.T) {
	var buf bytes.Buffer

	stored := jsonLogger(&buf, slog.LevelInfo)
	fallback := jsonLogger(&buf, slog.LevelWarn)

	assert.Same(t, stored, FromContextOr(WithContext(context.Background(), stored), fallback))
	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Same(t, defaultLogger, FromContextOr(context.Background(), nil))
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), jsonLogger(&buf, slog.LevelInfo))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithCorrelationID(ctx, "corr-1")
	ctx = WithTraceID(ctx, "4bf92f3577b34da6a3ce929d0e0e4736")

	FromContext(ctx).InfoContext(ctx, "chat answered")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "corr-1", entry["correlation_id"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
}

func TestSetDefault(t *testing.T) {
	previous := defaultLogger
	previousSlog := slog.Default()

	t.Cleanup(func() {
		defaultLogger = previous
		slog.SetDefault(previousSlog)
	})

	var buf bytes.Buffer

	logger := jsonLogger(&buf, slog.LevelInfo)
	SetDefault(logger)

	assert.Same(t, logger, FromContext(context.Background()))
	assert.Same(t, logger, slog.Default())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want log.Level
	}{
		{LevelTrace, log.DebugLevel},
		{slog.LevelDebug, log.DebugLevel},
		{slog.LevelInfo, log.InfoLevel},
		{slog.LevelWarn, log.WarnLevel},
		{slog.LevelError, log.ErrorLevel},
		{slog.LevelError + 4, log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, slogToCharmLevel(tt.in))
		})
	}
}

func TestTrace(t *testing.T) {
	t.Run("written at trace level", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
		Trace(context.Background(), logger, "document scored", slog.String("doc", "kb-1"), slog.Int("score", 4))

		entry := lastEntry(t, &buf)
		assert.Equal(t, "DEBUG-4", entry["level"])
		assert.Equal(t, "kb-1", entry["doc"])
	})

	t.Run("dropped at debug level", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewWithWriter(&Config{Level: "debug", Format: "json"}, &buf)
		Trace(context.Background(), logger, "document scored")

		assert.Empty(t, buf.String())
	})
}

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "advisor-dashboard", entry["service_name"])
				assert.Equal(t, "1.2.0", entry["service_version"])
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "service_name=advisor-dashboard")
				assert.Contains(t, out, `msg="store seeded"`)
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "store seeded")
				assert.Contains(t, out, "advisor-dashboard")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{Level: "info", Format: tt.format, Service: "advisor-dashboard", Version: "1.2.0"}, &buf)
			logger.Info("store seeded", slog.Int("clients", 5))

			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_FileCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "pretty",
		File:   FileConfig{Enabled: true, Path: path, MaxSizeMB: 1},
	}, &buf)

	logger.Info("alert feed built", slog.Int("alerts", 3))

	assert.Contains(t, buf.String(), "alert feed built")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "alert feed built", entry["msg"])
	assert.InDelta(t, 3, entry["alerts"], 0)
}

func TestRedaction(t *testing.T) {
	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer abc123"), "abc123"},
		{"token", slog.String("token", "advisor-token-1"), "advisor-token-1"},
		{"bearer value under any key", slog.String("header_value", "Bearer zzz999"), "zzz999"},
		{"basic value", slog.String("creds", "Basic dXNlcjpwYXNz"), "dXNlcjpwYXNz"},
		{"jwt value", slog.String("session_blob", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhZHZpc29yIn0.c2ln"), "c2ln"},
		{"client email key", slog.String("email", "rajesh@example.com"), "rajesh@example.com"},
		{"email value under any key", slog.String("recipient", "ananya@example.in"), "ananya@example.in"},
		{"client phone", slog.String("phone", "+91 98200 12345"), "98200"},
		{"secret prefix", slog.String("secret_seed", "s33d"), "s33d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			jsonLogger(&buf, slog.LevelInfo).Info("request is not authenticated", tt.attr)

			out := buf.String()
			assert.NotContains(t, out, tt.secret)
			assert.Contains(t, out, tt.attr.Key)
		})
	}
}

func TestRedaction_LeavesBookDataAlone(t *testing.T) {
	var buf bytes.Buffer

	jsonLogger(&buf, slog.LevelInfo).Info("client updated",
		slog.String("client_id", "client-2"),
		slog.String("risk_profile", "moderate"),
		slog.Float64("total_portfolio", 2_500_000),
	)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "client-2", entry["client_id"])
	assert.Equal(t, "moderate", entry["risk_profile"])
}

func TestRedaction_SecretTaggedFields(t *testing.T) {
	type contact struct {
		ID    string
		Email string `masq:"secret"`
		Phone string `masq:"secret"`
	}

	var buf bytes.Buffer

	jsonLogger(&buf, slog.LevelInfo).Info("client created", slog.Any("client", contact{
		ID:    "client-9",
		Email: "vikram@example.com",
		Phone: "+91 99000 11111",
	}))

	out := buf.String()
	assert.Contains(t, out, "client-9")
	assert.NotContains(t, out, "vikram@example.com")
	assert.NotContains(t, out, "99000")
}

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
	attrs   []slog.Attr
	group   string
	err     error
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool { return level >= h.level }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	h.records = append(h.records, r)
	return h.err
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordingHandler{level: h.level, attrs: append(h.attrs, attrs...), group: h.group, err: h.err}
}

func (h *recordingHandler) WithGroup(name string) slog.Handler {
	return &recordingHandler{level: h.level, attrs: h.attrs, group: name, err: h.err}
}

func TestMultiHandler_RoutesByLevel(t *testing.T) {
	terminal := &recordingHandler{level: slog.LevelDebug}
	file := &recordingHandler{level: slog.LevelWarn}

	h := NewMultiHandler(terminal, file)
	logger := slog.New(h)

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), LevelTrace))

	logger.Debug("retrieval started")
	logger.Warn("request is not authenticated")

	assert.Len(t, terminal.records, 2)
	require.Len(t, file.records, 1)
	assert.Equal(t, "request is not authenticated", file.records[0].Message)
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	errA := errors.New("disk full")
	errB := errors.New("pipe closed")

	h := NewMultiHandler(
		&recordingHandler{err: errA},
		&recordingHandler{},
		&recordingHandler{err: errB},
	)

	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelInfo, "x", 0))
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	a := &recordingHandler{}
	b := &recordingHandler{}

	withAttrs, ok := NewMultiHandler(a, b).WithAttrs([]slog.Attr{slog.String("component", "dora.Service")}).(*MultiHandler)
	require.True(t, ok)

	for _, inner := range withAttrs.handlers {
		rh, ok := inner.(*recordingHandler)
		require.True(t, ok)
		assert.Equal(t, "component", rh.attrs[0].Key)
	}

	withGroup, ok := withAttrs.WithGroup("retrieval").(*MultiHandler)
	require.True(t, ok)

	for _, inner := range withGroup.handlers {
		rh, ok := inner.(*recordingHandler)
		require.True(t, ok)
		assert.Equal(t, "retrieval", rh.group)
		assert.Len(t, rh.attrs, 1)
	}

	assert.Empty(t, a.attrs, "original handlers are not modified")
}
