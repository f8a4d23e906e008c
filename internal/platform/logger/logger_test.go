package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Decode(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{input: "debug", expected: LevelDebug},
		{input: "INFO", expected: LevelInfo},
		{input: "Warn", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var level Level
			err := level.Decode(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestFormat_Decode(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "json", expected: FormatJSON},
		{input: "TEXT", expected: FormatText},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var format Format
			err := format.Decode(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	log := &namedLogger{name: "request"}

	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContext_Fallback(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "no_logger", ctx: context.Background()},
		{name: "wrong_type", ctx: context.WithValue(context.Background(), loggerKey{}, "not a logger")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := FromContext(tt.ctx)

			require.NotNil(t, log)
			assert.IsType(t, nopLogger{}, log)
			log.Warn("dropped", Int("violations", 3))
		})
	}
}

type namedLogger struct {
	nopLogger
	name string
}

func TestFromContextOr(t *testing.T) {
	fallback := &namedLogger{name: "fallback"}
	stored := &namedLogger{name: "stored"}

	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Same(t, stored, FromContextOr(WithLogger(context.Background(), stored), fallback))
}

func TestNopLogger_With(t *testing.T) {
	log := NewNop()

	chained := log.With(String("object", "item")).With(Bool("binding_failure", true))

	assert.Equal(t, log, chained)
}

func TestFieldConstructors(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Field{Key: "object", Value: "item"}, String("object", "item"))
	assert.Equal(t, Field{Key: "violations", Value: 2}, Int("violations", 2))
	assert.Equal(t, Field{Key: "sealed", Value: true}, Bool("sealed", true))
	assert.Equal(t, Field{Key: "codes", Value: []string{"a", "b"}}, Any("codes", []string{"a", "b"}))
	assert.Equal(t, Field{Key: "error", Value: err}, Error(err))
}
