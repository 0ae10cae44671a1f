package store

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mdftrainer/internal/score"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := Open(ctx, Options{Backend: BackendFile, Dir: dir}, quietLogger())
	require.NoError(t, err)
	defer st.Close()

	t.Run("missing file is an empty score", func(t *testing.T) {
		got, err := st.LoadScore(ctx)
		require.NoError(t, err)
		assert.Equal(t, score.RunningScore{}, got)
	})

	t.Run("save then load", func(t *testing.T) {
		want := score.RunningScore{
			PotOdds: score.Tally{Correct: 4, Total: 6},
			MDF:     score.Tally{Correct: 1, Total: 2},
		}
		require.NoError(t, st.SaveScore(ctx, want))

		got, err := st.LoadScore(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// a fresh store reads the same record
		got, err = NewFileStore(filepath.Join(dir, ScoreFileName)).LoadScore(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("record layout", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, ScoreFileName))
		require.NoError(t, err)
		var record map[string]int
		require.NoError(t, json.Unmarshal(data, &record))
		assert.Equal(t, map[string]int{
			score.FieldPotOddsCorrect: 4,
			score.FieldPotOddsTotal:   6,
			score.FieldMDFCorrect:     1,
			score.FieldMDFTotal:       2,
		}, record)
	})
}

func TestFileStoreCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), ScoreFileName)
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := NewFileStore(path).LoadScore(context.Background())
	assert.Error(t, err)
}

func TestFileStoreRejectsNegativeCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), ScoreFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"mdf_total": -3}`), 0o644))

	_, err := NewFileStore(path).LoadScore(context.Background())
	assert.ErrorContains(t, err, "negative count")
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "sqlite"}, quietLogger())
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestOpenRedisBadURL(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: BackendRedis, RedisURL: "http://nope"}, quietLogger())
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestScoreKey(t *testing.T) {
	assert.Equal(t, "mdftrainer:score", scoreKey(""))
	assert.Equal(t, "alice:score", scoreKey("alice"))
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	prefix := "mdftrainer-test-" + t.Name()

	st, err := NewRedisStore(ctx, url, prefix)
	require.NoError(t, err)
	defer st.Close()
	defer st.client.Del(ctx, st.key)

	want := score.RunningScore{
		PotOdds: score.Tally{Correct: 2, Total: 5},
		MDF:     score.Tally{Correct: 7, Total: 7},
	}
	require.NoError(t, st.SaveScore(ctx, want))

	got, err := st.LoadScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
