package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogText_LevelsWriteExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogText(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		require.Contains(t, out, want)
	}
}

func TestSlogText_LevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogText(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogText(&buf, "info").With("request_id", "123", "user", "alice")
	log.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"msg=hello", "request_id=123", "user=alice", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer

	l, err := New("", "info", &buf)
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, l)

	l, err = New("zap", "info", &buf)
	require.NoError(t, err)
	require.IsType(t, &ZapLogger{}, l)

	_, err = New("logrus", "info", &buf)
	require.ErrorContains(t, err, "unknown log backend")
}

func TestNop_DiscardsOutput(t *testing.T) {
	Nop().Error(context.TODO(), "nothing to see")
}
