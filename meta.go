package chatview

// Default avatars used when no explicit avatar is configured.
const (
	DefaultAvatar      = "🤖"
	DefaultUserAvatar  = "😀"
	DefaultInboxAvatar = "🤯"
)

// Placeholder metadata shown for function (plugin) messages. The title is a
// literal, not a localization key.
const (
	PluginAvatar = "🧩"
	PluginTitle  = "plugin-unknown"
)

// MetaData is display metadata attached to a message or a session.
type MetaData struct {
	Avatar          string
	BackgroundColor string
	Title           string
	Description     string
	Tags            []string
}

// IsZero reports whether no metadata field is set.
func (m MetaData) IsZero() bool {
	return m.Avatar == "" &&
		m.BackgroundColor == "" &&
		m.Title == "" &&
		m.Description == "" &&
		len(m.Tags) == 0
}

// merge returns m with every non-empty field of o applied on top.
func (m MetaData) merge(o MetaData) MetaData {
	if o.Avatar != "" {
		m.Avatar = o.Avatar
	}
	if o.BackgroundColor != "" {
		m.BackgroundColor = o.BackgroundColor
	}
	if o.Title != "" {
		m.Title = o.Title
	}
	if o.Description != "" {
		m.Description = o.Description
	}
	if len(o.Tags) > 0 {
		m.Tags = o.Tags
	}
	return m
}
