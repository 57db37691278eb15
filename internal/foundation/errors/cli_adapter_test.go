package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("bad flag").Build(), expected: 2},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "filesystem error", err: FileSystemError("read failed").Build(), expected: 11},
		{name: "site error", err: SiteError("bad pattern").Build(), expected: 11},
		{name: "internal error", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	internal := InternalError("boom").Build()
	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(internal))
	assert.Equal(t, "Error: [internal:fatal] boom", verbose.FormatError(internal))

	fsErr := FileSystemError("read failed").Build()
	assert.Equal(t, "Error: [filesystem:error] read failed", quiet.FormatError(fsErr))
	assert.Equal(t, "Error: plain", quiet.FormatError(errors.New("plain")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(true, logger).WithOutput(&out)

	code := adapter.Handle(FileSystemError("write index").
		WithContext("op", "write_index").
		WithCause(errors.New("permission denied")).
		Build())

	assert.Equal(t, 11, code)
	assert.Contains(t, out.String(), "write index")
	assert.Contains(t, logs.String(), "category=filesystem")
	assert.Contains(t, logs.String(), "op=write_index")
	assert.Contains(t, logs.String(), "permission denied")
	assert.Equal(t, 0, adapter.Handle(nil))
}
