package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"local-llm-chat/logger"
	"local-llm-chat/models"
)

const (
	filePrefix = "conversation_"
	fileExt    = ".json"
	timeLayout = "20060102_150405"

	// maxCollisionSuffix caps how many same-second saves we disambiguate
	// before giving up.
	maxCollisionSuffix = 1000
)

// ErrNotFound is returned by Get for an unknown or malformed conversation id.
var ErrNotFound = errors.New("conversation not found")

// StorageError wraps a filesystem failure from the conversation store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("conversation storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConversationSummary is the listing view of one saved transcript.
type ConversationSummary struct {
	ID           string
	CreatedAt    time.Time
	MessageCount int
}

// ConversationRepository persists transcripts as one JSON document per
// conversation under a flat directory. File names are derived from the save
// time at second granularity; same-second saves get a numeric suffix instead
// of overwriting each other. Writes are atomic from the caller's view: the
// document lands complete or the call fails and cleans up after itself.
type ConversationRepository struct {
	dir string
	now func() time.Time
}

// NewConversationRepository creates a repository rooted at dir. An empty dir
// selects ~/.local_llm_chat/conversations, the location earlier versions of
// this tool wrote to. The directory is created lazily on first use.
func NewConversationRepository(dir string) *ConversationRepository {
	if dir == "" {
		dir = defaultDir()
	}
	return &ConversationRepository{dir: dir, now: time.Now}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local_llm_chat", "conversations")
	}
	return filepath.Join(home, ".local_llm_chat", "conversations")
}

// Dir returns the storage root.
func (r *ConversationRepository) Dir() string {
	return r.dir
}

func (r *ConversationRepository) ensureDir() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	return nil
}

// Save writes messages as a new immutable transcript and returns it with its
// assigned id.
func (r *ConversationRepository) Save(ctx context.Context, messages []models.ChatMessage) (*models.SavedConversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureDir(); err != nil {
		return nil, err
	}

	createdAt := r.now()
	name, path, err := r.reserveName(createdAt)
	if err != nil {
		return nil, err
	}

	saved := &models.SavedConversation{
		ID:        name,
		CreatedAt: createdAt,
		Messages:  messages,
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		_ = os.Remove(path)
		return nil, &StorageError{Op: "encode", Err: err}
	}

	// Write the full document to a temp file in the same directory, then
	// rename over the reservation so the final name only ever holds a
	// complete document.
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return nil, &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return nil, &StorageError{Op: "write", Err: err}
	}

	logger.InfoWithFields("saved conversation", logger.Fields{
		"filename":      name,
		"message_count": len(messages),
	})
	return saved, nil
}

// reserveName claims a unique file name for createdAt via O_EXCL creation.
// The second save within one clock second gets "_2", the third "_3", and so
// on, so concurrent saves never target the same path.
func (r *ConversationRepository) reserveName(createdAt time.Time) (name, path string, err error) {
	stem := filePrefix + createdAt.Format(timeLayout)
	for n := 1; n <= maxCollisionSuffix; n++ {
		name = stem + fileExt
		if n > 1 {
			name = fmt.Sprintf("%s_%d%s", stem, n, fileExt)
		}
		path = filepath.Join(r.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return "", "", &StorageError{Op: "create", Err: err}
		}
		_ = f.Close()
		return name, path, nil
	}
	return "", "", &StorageError{Op: "create", Err: fmt.Errorf("could not find a free name for %s", stem)}
}

// List enumerates saved transcripts, most recent first. Files that cannot be
// read or parsed are logged and skipped rather than failing the whole
// listing.
func (r *ConversationRepository) List(ctx context.Context) ([]ConversationSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureDir(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		names = append(names, name)
	}
	// Names embed the save timestamp, so reverse lexical order is
	// most-recent-first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	summaries := make([]ConversationSummary, 0, len(names))
	for _, name := range names {
		saved, err := r.read(name)
		if err != nil {
			logger.ErrorWithFields("skipping unreadable conversation", logger.Fields{
				"filename": name,
				"error":    err.Error(),
			})
			continue
		}
		summaries = append(summaries, ConversationSummary{
			ID:           saved.ID,
			CreatedAt:    saved.CreatedAt,
			MessageCount: len(saved.Messages),
		})
	}
	return summaries, nil
}

// Get loads one transcript by id (its file name).
func (r *ConversationRepository) Get(ctx context.Context, id string) (*models.SavedConversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}
	saved, err := r.read(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "read", Err: err}
	}
	return saved, nil
}

func (r *ConversationRepository) read(name string) (*models.SavedConversation, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return nil, err
	}
	var saved models.SavedConversation
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	saved.ID = name
	return &saved, nil
}

// validID accepts exactly the names this repository generates, which also
// keeps path traversal out of Get.
func validID(id string) bool {
	return strings.HasPrefix(id, filePrefix) &&
		strings.HasSuffix(id, fileExt) &&
		!strings.ContainsAny(id, "/\\") &&
		id == filepath.Base(id)
}
