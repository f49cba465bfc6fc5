package chatview

// MetaResolver chooses the display metadata of a message by its role.
type MetaResolver struct {
	settings UserSettings
	agents   AgentStore
}

// NewMetaResolver creates a MetaResolver reading user and agent state from
// the given collaborators.
func NewMetaResolver(settings UserSettings, agents AgentStore) *MetaResolver {
	return &MetaResolver{settings: settings, agents: agents}
}

// Resolve returns the metadata to display next to msg.
func (r *MetaResolver) Resolve(msg Message) MetaData {
	switch msg.Role {
	case RoleUser:
		avatar := r.settings.UserAvatar()
		if avatar == "" {
			avatar = DefaultUserAvatar
		}
		return MetaData{Avatar: avatar}
	case RoleSystem:
		return msg.Meta
	case RoleAssistant:
		return r.agents.CurrentAgentMeta()
	case RoleFunction:
		return MetaData{Avatar: PluginAvatar, Title: PluginTitle}
	default:
		// Unreachable for validated state, see ValidateMessage.
		return MetaData{}
	}
}
