package chatview

// SessionAgents is an AgentStore backed by session store state. The active
// session provides the agent, with defaults filling any unset field.
type SessionAgents struct {
	state      SessionState
	translator Translator
}

// NewSessionAgents creates a SessionAgents over s.
func NewSessionAgents(s SessionState, translator Translator) *SessionAgents {
	return &SessionAgents{state: s, translator: translator}
}

// CurrentAgentMeta returns the active session's metadata merged over the
// default agent (or inbox) metadata.
func (a *SessionAgents) CurrentAgentMeta() MetaData {
	var defaults MetaData
	if IsInboxSession(a.state) {
		defaults = MetaData{
			Avatar:      DefaultInboxAvatar,
			Title:       a.translator.Translate("inbox.title", nil, NamespaceChat),
			Description: a.translator.Translate("inbox.desc", nil, NamespaceChat),
		}
	} else {
		defaults = MetaData{
			Avatar:      DefaultAvatar,
			Title:       a.translator.Translate("defaultSession", nil, NamespaceChat),
			Description: a.CurrentAgentConfig().SystemRole,
		}
	}
	sess, ok := CurrentSession(a.state)
	if !ok {
		return defaults
	}
	return defaults.merge(sess.Meta)
}

// CurrentAgentConfig returns the active session's configuration merged over
// DefaultAgentConfig.
func (a *SessionAgents) CurrentAgentConfig() AgentConfig {
	cfg := DefaultAgentConfig()
	sess, ok := CurrentSession(a.state)
	if !ok {
		return cfg
	}
	return cfg.merge(sess.Config)
}

var _ AgentStore = (*SessionAgents)(nil)
