package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"SignalSentinel/internal/model"
)

// DocumentVersion identifies the snapshot schema.
const DocumentVersion = "1.0"

// Entry is one instrument's slot in the snapshot: either a full analysis
// tree or an error shape. Callers branch on the presence of Error.
type Entry struct {
	*model.Analysis
	Error   model.ErrorKind `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// FromError builds the error-shaped entry for a failed computation.
func FromError(err error) Entry {
	if ae, ok := model.AsAnalysisError(err); ok {
		return Entry{Error: ae.Kind, Message: ae.Message}
	}
	return Entry{Error: "internal", Message: err.Error()}
}

// Metadata describes the snapshot document.
type Metadata struct {
	Version     string    `json:"version"`
	LastUpdate  time.Time `json:"lastUpdate"`
	Description string    `json:"description"`
}

// Document is the full signals snapshot written after each batch run.
type Document struct {
	Metadata Metadata         `json:"metadata"`
	Signals  map[string]Entry `json:"signals"`
}

// NewDocument creates an empty snapshot document with current metadata.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Version:     DocumentVersion,
			LastUpdate:  time.Now(),
			Description: "Technical signals for stocks and sectors",
		},
		Signals: map[string]Entry{},
	}
}

// Store persists the latest signals document as JSON on disk.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store writing to path, creating parent directories as
// needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Save writes the document atomically: a temp file in the same directory is
// renamed over the target so readers never observe a partial snapshot.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the last saved document. Returns an empty document if no
// snapshot exists yet.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Signals == nil {
		doc.Signals = map[string]Entry{}
	}
	return &doc, nil
}
