// Package json reads chatview store snapshots and encodes selector output.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/chatview"
)

// Snapshot is the store state read from a snapshot file. It holds the
// messages of every conversation; ChatState selects one.
type Snapshot struct {
	ActiveID      string
	ChatLoadingID string
	Messages      []chatview.Message
	Sessions      []chatview.Session
}

// ChatState returns the chat store state with activeID as the active
// conversation. Only that conversation's messages are included.
func (s Snapshot) ChatState(activeID string) chatview.ChatState {
	var msgs []chatview.Message
	for _, m := range s.Messages {
		if m.SessionID == activeID {
			msgs = append(msgs, m)
		}
	}
	return chatview.ChatState{
		ActiveID:      activeID,
		Messages:      msgs,
		ChatLoadingID: s.ChatLoadingID,
	}
}

// SessionState returns the session store state with activeID as the active
// session.
func (s Snapshot) SessionState(activeID string) chatview.SessionState {
	return chatview.SessionState{ActiveID: activeID, Sessions: s.Sessions}
}

// envelope is the v1 wire format of a store snapshot.
type envelope struct {
	Version       int          `json:"version"`
	ActiveID      string       `json:"activeId"`
	ChatLoadingID string       `json:"chatLoadingId,omitempty"`
	Messages      []messageDTO `json:"messages"`
	Sessions      []sessionDTO `json:"sessions"`
}

// UnmarshalSnapshot decodes and validates a v1 snapshot. Messages without a
// session id belong to the inbox.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return Snapshot{}, fmt.Errorf("snapshot version %d: %w", env.Version, chatview.ErrUnsupportedVersion)
	}

	snap := Snapshot{
		ActiveID:      env.ActiveID,
		ChatLoadingID: env.ChatLoadingID,
		Messages:      make([]chatview.Message, len(env.Messages)),
		Sessions:      make([]chatview.Session, len(env.Sessions)),
	}
	for i, dto := range env.Messages {
		snap.Messages[i] = dto.toMessage()
	}
	for i, dto := range env.Sessions {
		snap.Sessions[i] = dto.toSession()
	}

	if err := chatview.ValidateChatState(chatview.ChatState{Messages: snap.Messages}); err != nil {
		return Snapshot{}, err
	}
	if err := chatview.ValidateSessionState(snap.SessionState(snap.ActiveID)); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Load reads a snapshot file.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalSnapshot(data)
}

// millis converts Unix milliseconds to UTC time. Zero stays the zero time.
func millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// toMillis is the inverse of millis.
func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
