package chatview

import (
	"strings"
	"time"
)

// GuideMessageID is the identifier of the synthesized guide message.
const GuideMessageID = "default"

// ChatSelectors computes display views of the active conversation.
type ChatSelectors struct {
	resolver   *MetaResolver
	agents     AgentStore
	translator Translator
	slicer     Slicer
	guideTime  time.Time
}

// ChatOption configures a ChatSelectors.
type ChatOption func(*ChatSelectors)

// WithSlicer sets the Slicer used by CurrentChatsWithHistoryConfig.
// The default is Unbounded.
func WithSlicer(s Slicer) ChatOption {
	return func(c *ChatSelectors) {
		c.slicer = s
	}
}

// WithGuideTime sets the timestamp stamped on guide messages. The default is
// the time NewChatSelectors was called.
func WithGuideTime(t time.Time) ChatOption {
	return func(c *ChatSelectors) {
		c.guideTime = t
	}
}

// NewChatSelectors creates ChatSelectors over the given collaborators. The
// guide timestamp is fixed here and reused for the lifetime of the value.
func NewChatSelectors(settings UserSettings, agents AgentStore, translator Translator, opts ...ChatOption) *ChatSelectors {
	c := &ChatSelectors{
		resolver:   NewMetaResolver(settings, agents),
		agents:     agents,
		translator: translator,
		slicer:     Unbounded,
		guideTime:  time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GuideTime returns the timestamp stamped on guide messages.
func (c *ChatSelectors) GuideTime() time.Time {
	return c.guideTime
}

// CurrentChats returns the messages of the active conversation with resolved
// metadata and normalized extras. It returns an empty slice when no
// conversation is active.
func (c *ChatSelectors) CurrentChats(s ChatState) []ChatMessage {
	if s.ActiveID == "" {
		return []ChatMessage{}
	}
	chats := make([]ChatMessage, len(s.Messages))
	for i, m := range s.Messages {
		m.Meta = c.resolver.Resolve(m)
		chats[i] = ChatMessage{
			Message: m,
			Extra: MessageExtra{
				FromModel: m.FromModel,
				Translate: m.Translate,
				TTS:       m.TTS,
			},
		}
	}
	return chats
}

// CurrentChatsWithGuideMessage returns CurrentChats, or a single guide
// message when the conversation has no messages yet.
func (c *ChatSelectors) CurrentChatsWithGuideMessage(s ChatState) []ChatMessage {
	chats := c.CurrentChats(s)
	if len(chats) > 0 {
		return chats
	}

	meta := c.agents.CurrentAgentMeta()
	name := meta.Title
	if name == "" {
		name = c.translator.Translate("defaultAgent", nil, NamespaceCommon)
	}

	var content string
	switch {
	case s.ActiveID == InboxSessionID:
		content = c.translator.Translate("inbox.defaultMessage", nil, NamespaceChat)
	case meta.Description != "":
		content = c.translator.Translate("agentDefaultMessageWithSystemRole", map[string]string{
			"name":       name,
			"systemRole": meta.Description,
		}, NamespaceChat)
	default:
		content = c.translator.Translate("agentDefaultMessage", map[string]string{
			"id":   s.ActiveID,
			"name": name,
		}, NamespaceChat)
	}

	if meta.IsZero() {
		meta = MetaData{Avatar: DefaultInboxAvatar}
	}

	return []ChatMessage{{
		Message: Message{
			ID:        GuideMessageID,
			Role:      RoleAssistant,
			Content:   content,
			CreatedAt: c.guideTime,
			UpdatedAt: c.guideTime,
			Meta:      meta,
		},
	}}
}

// CurrentChatsWithHistoryConfig returns CurrentChats bounded by the active
// agent's history window.
func (c *ChatSelectors) CurrentChatsWithHistoryConfig(s ChatState) []ChatMessage {
	return c.slicer.Slice(c.CurrentChats(s), c.agents.CurrentAgentConfig())
}

// ChatsMessageString concatenates the content of the history-windowed chats.
func (c *ChatSelectors) ChatsMessageString(s ChatState) string {
	var b strings.Builder
	for _, m := range c.CurrentChatsWithHistoryConfig(s) {
		b.WriteString(m.Content)
	}
	return b.String()
}

// GetFunctionMessageProps returns the plugin call view of msg. Loading is set
// while msg is the message being generated.
func GetFunctionMessageProps(s ChatState, msg Message) FunctionMessageProps {
	props := FunctionMessageProps{
		Command: msg.Plugin,
		Content: msg.Content,
		Loading: s.ChatLoadingID != "" && msg.ID == s.ChatLoadingID,
	}
	if msg.Plugin != nil {
		props.Arguments = msg.Plugin.Arguments
		props.ID = msg.Plugin.Identifier
		props.Type = msg.Plugin.Type
	}
	return props
}

// MessageByID returns the first raw message with the given id.
func MessageByID(s ChatState, id string) (Message, bool) {
	for _, m := range s.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}
