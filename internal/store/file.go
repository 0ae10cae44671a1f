package store

import (
	"context"
	"fmt"

	"github.com/lox/mdftrainer/internal/fileutil"
	"github.com/lox/mdftrainer/internal/score"
)

// ScoreFileName is the score record inside the state directory.
const ScoreFileName = "score.json"

// FileStore keeps the score as a flat JSON object of Fields.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the location of the score file.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) LoadScore(ctx context.Context) (score.RunningScore, error) {
	var counts map[string]int
	if _, err := fileutil.ReadJSON(f.path, &counts); err != nil {
		return score.RunningScore{}, err
	}
	s, err := score.FromCounts(counts)
	if err != nil {
		return score.RunningScore{}, fmt.Errorf("invalid score file %s: %w", f.path, err)
	}
	return s, nil
}

func (f *FileStore) SaveScore(ctx context.Context, s score.RunningScore) error {
	return fileutil.WriteJSONAtomic(f.path, s.Fields(), 0o644)
}

func (f *FileStore) Close() error {
	return nil
}
