package chatview_test

import (
	"testing"

	"github.com/fwojciec/chatview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		msg     chatview.Message
		wantErr string
	}{
		{name: "valid user", msg: chatview.Message{ID: "1", Role: chatview.RoleUser}},
		{
			name: "valid function",
			msg:  chatview.Message{ID: "1", Role: chatview.RoleFunction, Plugin: &chatview.PluginRequest{Identifier: "p"}},
		},
		{name: "empty id", msg: chatview.Message{Role: chatview.RoleUser}, wantErr: "id"},
		{name: "unknown role", msg: chatview.Message{ID: "1", Role: "tool"}, wantErr: "unknown role"},
		{name: "function without plugin", msg: chatview.Message{ID: "1", Role: chatview.RoleFunction}, wantErr: "plugin"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := chatview.ValidateMessage(tt.msg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, chatview.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateChatState(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, chatview.ValidateChatState(chatview.ChatState{Messages: testMessages()}))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		t.Parallel()
		s := chatview.ChatState{Messages: []chatview.Message{
			{ID: "1", Role: chatview.RoleUser},
			{ID: "1", Role: chatview.RoleAssistant},
		}}
		err := chatview.ValidateChatState(s)
		assert.ErrorIs(t, err, chatview.ErrValidation)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("invalid message", func(t *testing.T) {
		t.Parallel()
		s := chatview.ChatState{Messages: []chatview.Message{{ID: "1", Role: "bot"}}}
		assert.ErrorIs(t, chatview.ValidateChatState(s), chatview.ErrValidation)
	})
}

func TestValidateSessionState(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, chatview.ValidateSessionState(chatview.SessionState{Sessions: agentSessions()}))
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		s := chatview.SessionState{Sessions: []chatview.Session{{Type: chatview.SessionTypeAgent}}}
		assert.ErrorIs(t, chatview.ValidateSessionState(s), chatview.ErrValidation)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		s := chatview.SessionState{Sessions: []chatview.Session{{ID: "1", Type: "robot"}}}
		err := chatview.ValidateSessionState(s)
		assert.ErrorIs(t, err, chatview.ErrValidation)
		assert.Contains(t, err.Error(), "robot")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		t.Parallel()
		sessions := append(agentSessions(), agentSessions()[0])
		err := chatview.ValidateSessionState(chatview.SessionState{Sessions: sessions})
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})
}
