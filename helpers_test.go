package chatview_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/mock"
)

// keyTranslator renders "ns:key" followed by sorted params, so tests can
// assert which key was chosen and with which values.
func keyTranslator() *mock.Translator {
	return &mock.Translator{
		TranslateFn: func(key string, params map[string]string, ns string) string {
			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := []string{ns + ":" + key}
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%s", k, params[k]))
			}
			return strings.Join(parts, " ")
		},
	}
}

func staticAgents(meta chatview.MetaData, config chatview.AgentConfig) *mock.AgentStore {
	return &mock.AgentStore{
		CurrentAgentMetaFn:   func() chatview.MetaData { return meta },
		CurrentAgentConfigFn: func() chatview.AgentConfig { return config },
	}
}

func agentSessions() []chatview.Session {
	return []chatview.Session{
		{
			ID:   "1",
			Type: chatview.SessionTypeAgent,
			Config: chatview.AgentConfig{
				Model:      "gpt-3.5-turbo",
				Params:     map[string]float64{},
				SystemRole: "system-role",
			},
		},
		{
			ID:   "2",
			Type: chatview.SessionTypeAgent,
			Config: chatview.AgentConfig{
				Model:      "gpt-3.5-turbo",
				Params:     map[string]float64{},
				SystemRole: "system-role",
			},
		},
	}
}
