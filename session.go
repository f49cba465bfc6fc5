package chatview

import (
	"maps"
	"time"
)

// InboxSessionID is the reserved identifier of the default inbox session.
const InboxSessionID = "inbox"

// SessionType tags the kind of a session.
type SessionType string

const (
	SessionTypeAgent SessionType = "agent"
	SessionTypeGroup SessionType = "group"
)

// Session represents a conversation with an agent.
type Session struct {
	ID        string
	Type      SessionType
	Config    AgentConfig
	Meta      MetaData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgentConfig is the model configuration of a session's agent.
type AgentConfig struct {
	Model      string
	Params     map[string]float64 // e.g. temperature, top_p
	SystemRole string
	Plugins    []string

	// History window policy, interpreted by the Slicer.
	EnableHistoryCount bool
	HistoryCount       int
}

// DefaultAgentConfig returns the configuration used when a session sets none.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Model: "gpt-3.5-turbo",
		Params: map[string]float64{
			"frequency_penalty": 0,
			"presence_penalty":  0,
			"temperature":       0.6,
			"top_p":             1,
		},
		HistoryCount: 1,
	}
}

// DefaultSession returns the session used when a lookup finds nothing.
// Each call returns a fresh value, so callers may modify it.
func DefaultSession() Session {
	return Session{
		Type:   SessionTypeAgent,
		Config: DefaultAgentConfig(),
	}
}

// merge returns c with the non-zero fields of o applied on top. Params are
// merged key by key. A session that enables the history limit owns its
// count, so an explicit zero there replaces the default.
func (c AgentConfig) merge(o AgentConfig) AgentConfig {
	params := maps.Clone(c.Params)
	if params == nil {
		params = make(map[string]float64, len(o.Params))
	}
	maps.Copy(params, o.Params)
	c.Params = params
	if o.Model != "" {
		c.Model = o.Model
	}
	if o.SystemRole != "" {
		c.SystemRole = o.SystemRole
	}
	if len(o.Plugins) > 0 {
		c.Plugins = o.Plugins
	}
	if o.EnableHistoryCount {
		c.EnableHistoryCount = true
		c.HistoryCount = o.HistoryCount
	} else if o.HistoryCount != 0 {
		c.HistoryCount = o.HistoryCount
	}
	return c
}
