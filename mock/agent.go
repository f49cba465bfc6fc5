// Package mock provides test doubles for chatview interfaces using function fields.
package mock

import "github.com/fwojciec/chatview"

// Interface compliance checks.
var (
	_ chatview.AgentStore   = (*AgentStore)(nil)
	_ chatview.UserSettings = (*UserSettings)(nil)
)

// AgentStore is a test double for chatview.AgentStore.
// Set the function fields for the methods you need.
type AgentStore struct {
	CurrentAgentMetaFn   func() chatview.MetaData
	CurrentAgentConfigFn func() chatview.AgentConfig
}

// CurrentAgentMeta delegates to CurrentAgentMetaFn.
func (a *AgentStore) CurrentAgentMeta() chatview.MetaData {
	return a.CurrentAgentMetaFn()
}

// CurrentAgentConfig delegates to CurrentAgentConfigFn.
func (a *AgentStore) CurrentAgentConfig() chatview.AgentConfig {
	return a.CurrentAgentConfigFn()
}

// UserSettings is a test double for chatview.UserSettings.
// Set UserAvatarFn before calling UserAvatar.
type UserSettings struct {
	UserAvatarFn func() string
}

// UserAvatar delegates to UserAvatarFn.
func (u *UserSettings) UserAvatar() string {
	return u.UserAvatarFn()
}
