package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Debug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Out: &buf, Debug: true})
	l.Debug("span.normalized", "span", "1s500ms")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "msg=span.normalized")
	require.Contains(t, out, "span=1s500ms")
}

func TestNew_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Out: &buf})
	l.Error("dropped")
	require.Empty(t, buf.String(), "without debug nothing should be written")

	New(Config{Debug: true}).Info("no writer, no panic")
}
