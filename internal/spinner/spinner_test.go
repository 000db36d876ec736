package spinner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStart_DrawsAndClears(t *testing.T) {
	var out syncBuffer
	stop := Start(&out, "loading table")

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "loading table")
	}, 2*time.Second, 10*time.Millisecond)

	stop()
	stop()

	got := out.String()
	assert.True(t, strings.HasSuffix(got, "\r"+strings.Repeat(" ", len("loading table")+2)+"\r"))
}

func TestRun_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	called := false
	err := Run(context.Background(), &out, "loading", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, out.String())
}

func TestRun_ReturnsError(t *testing.T) {
	want := errors.New("download failed")
	err := Run(context.Background(), &bytes.Buffer{}, "loading", func(ctx context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
