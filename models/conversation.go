package models

import "time"

// SavedConversation is one persisted transcript. The JSON layout matches the
// documents written by earlier versions of this tool, so existing transcripts
// stay readable: {"timestamp": ..., "messages": [...]}.
//
// ID is the on-disk file name (e.g. "conversation_20260823_101502.json") and
// is carried by the file system rather than the document itself.
type SavedConversation struct {
	ID        string        `json:"-"`
	CreatedAt time.Time     `json:"timestamp"`
	Messages  []ChatMessage `json:"messages"`
}
