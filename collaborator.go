package chatview

// UserSettings exposes the user's display preferences.
type UserSettings interface {
	// UserAvatar returns the configured avatar, or "" when unset.
	UserAvatar() string
}

// Settings is a static UserSettings.
type Settings struct {
	Avatar string
}

// UserAvatar returns s.Avatar.
func (s Settings) UserAvatar() string { return s.Avatar }

// AgentStore exposes the active agent's metadata and configuration.
type AgentStore interface {
	CurrentAgentMeta() MetaData
	CurrentAgentConfig() AgentConfig
}

// Slicer bounds a message list according to an agent's history policy.
type Slicer interface {
	Slice(messages []ChatMessage, config AgentConfig) []ChatMessage
}

// SliceFunc adapts a function to the Slicer interface.
type SliceFunc func(messages []ChatMessage, config AgentConfig) []ChatMessage

// Slice calls f.
func (f SliceFunc) Slice(messages []ChatMessage, config AgentConfig) []ChatMessage {
	return f(messages, config)
}

// Unbounded is a Slicer that keeps every message.
var Unbounded Slicer = SliceFunc(func(messages []ChatMessage, _ AgentConfig) []ChatMessage {
	return messages
})

// Localization namespaces.
const (
	NamespaceChat   = "chat"
	NamespaceCommon = "common"
)

// Translator resolves localization keys. Params are interpolated into the
// translated text.
type Translator interface {
	Translate(key string, params map[string]string, ns string) string
}

// Interface compliance checks.
var (
	_ UserSettings = Settings{}
	_ Slicer       = SliceFunc(nil)
)
