package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	valid := []string{"01HXAMPLE.pdf", "report-2024.pdf", "a"}
	for _, k := range valid {
		assert.NoError(t, ValidateKey(k), k)
	}

	invalid := []string{"", ".", "..", "../etc/passwd", "a/b.pdf", `a\b.pdf`, ".hidden.pdf", "x\x00.pdf"}
	for _, k := range invalid {
		assert.ErrorIs(t, ValidateKey(k), ErrInvalidKey, k)
	}
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := WithContext(ctx, strings.NewReader("hello world"))

	buf := make([]byte, 5)
	n, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	cancel()
	_, err = io.ReadAll(r)
	assert.ErrorIs(t, err, context.Canceled)
}
