package chatview

import "time"

// Message is a chat message record as produced by the chat pipeline.
// Selectors treat it as read-only.
type Message struct {
	ID        string
	SessionID string
	Role      Role
	Content   string
	ParentID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Meta      MetaData
	Plugin    *PluginRequest

	// Per-record extras. The chat view moves them into ChatMessage.Extra.
	FromModel string
	Translate *Translate
	TTS       *TTS
}

// PluginType tags how a plugin call is rendered.
type PluginType string

const (
	PluginTypeDefault    PluginType = "default"
	PluginTypeStandalone PluginType = "standalone"
	PluginTypeMarkdown   PluginType = "markdown"
)

// PluginRequest describes a plugin invocation carried by a function message.
type PluginRequest struct {
	Identifier string
	APIName    string
	Type       PluginType
	Arguments  string // raw JSON arguments
}

// Translate holds a translation of the message content.
type Translate struct {
	From    string
	To      string
	Content string
}

// TTS holds speech-synthesis state of the message content.
type TTS struct {
	ContentMD5 string
	File       string
	Voice      string
}

// MessageExtra is the normalized extras bundle of a display message.
type MessageExtra struct {
	FromModel string
	Translate *Translate
	TTS       *TTS
}

// ChatMessage is a display-ready message. The embedded Message keeps every
// field of the raw record. Meta holds the resolved display metadata.
type ChatMessage struct {
	Message
	Extra MessageExtra
}

// FunctionMessageProps is the view of a plugin call used by function message
// renderers.
type FunctionMessageProps struct {
	Arguments string
	Command   *PluginRequest
	Content   string
	ID        string // plugin identifier
	Loading   bool
	Type      PluginType
}
