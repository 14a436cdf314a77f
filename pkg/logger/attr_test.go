package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtcrack/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("run", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "run", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRunAttrs(t *testing.T) {
	assert.Equal(t, "run_id", logger.RunID("abc").Key)
	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))

	assert.Equal(t, int64(8), logger.Workers(8).Value.Int64())
	assert.Equal(t, int64(1000), logger.Attempts(1000).Value.Int64())
	assert.Equal(t, int64(3), logger.Candidates(3).Value.Int64())
	assert.Equal(t, 2*time.Second, logger.Duration(2*time.Second).Value.Duration())
	assert.Equal(t, "s3", logger.Source("s3").Value.String())
	assert.Equal(t, "found", logger.State("found").Value.String())
	assert.Equal(t, "match", logger.Event("match").Value.String())
	assert.Equal(t, "dispatcher", logger.Component("dispatcher").Value.String())
}

func TestRate(t *testing.T) {
	attr := logger.Rate(500, 2*time.Second)
	assert.Equal(t, "rate", attr.Key)
	assert.InDelta(t, 250.0, attr.Value.Float64(), 0.001)

	assert.True(t, logger.Rate(10, 0).Equal(slog.Attr{}))
}
