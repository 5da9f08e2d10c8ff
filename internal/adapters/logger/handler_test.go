package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "watching graph.yaml", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "asset cache write failed", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "load failed", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "tick", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t, slog.LevelInfo)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugWhenEnabled(t *testing.T) {
	handler, buf := newTestHandler(t, slog.LevelDebug)
	slog.New(handler).Debug("tick")

	assert.Equal(t, "~ tick\n", buf.String())
}

func TestPrettyHandler_Attributes(t *testing.T) {
	tests := []struct {
		name string
		log  func(*slog.Logger)
		want string
	}{
		{
			name: "record attrs",
			log:  func(l *slog.Logger) { l.Info("loaded", "key", "live_0", "meshes", 2) },
			want: "loaded key=live_0 meshes=2\n",
		},
		{
			name: "handler attrs come first",
			log:  func(l *slog.Logger) { l.With("viewer", "5").Info("loaded", "key", "live_0") },
			want: "loaded viewer=5 key=live_0\n",
		},
		{
			name: "group qualifies later attrs only",
			log:  func(l *slog.Logger) { l.With("viewer", "5").WithGroup("asset").Info("loaded", "size", 10) },
			want: "loaded viewer=5 asset.size=10\n",
		},
		{
			name: "nested groups",
			log:  func(l *slog.Logger) { l.WithGroup("a").WithGroup("b").Info("m", "k", "v") },
			want: "m a.b.k=v\n",
		},
		{
			name: "group values are flattened",
			log:  func(l *slog.Logger) { l.Info("m", slog.Group("size", "w", 1, "h", 2)) },
			want: "m size.w=1 size.h=2\n",
		},
		{
			name: "empty group name is ignored",
			log:  func(l *slog.Logger) { l.WithGroup("").Info("m", "k", "v") },
			want: "m k=v\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t, slog.LevelInfo)
			tt.log(slog.New(handler))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newTestHandler(t, slog.LevelWarn)

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	assert.NotNil(t, logger.NewPrettyHandler(nil, nil))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	handler := logger.NewPrettyHandler(failingWriter{}, nil)

	var r slog.Record
	r.Level = slog.LevelInfo
	r.Message = "m"
	require.Error(t, handler.Handle(t.Context(), r))
}
