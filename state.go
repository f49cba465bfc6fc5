package chatview

// ChatState is the slice of the chat store read by the chat selectors.
type ChatState struct {
	ActiveID      string // empty when no conversation is active
	Messages      []Message
	ChatLoadingID string // id of the message currently being generated
}

// SessionState is the slice of the session store read by the session selectors.
type SessionState struct {
	ActiveID string
	Sessions []Session
}
