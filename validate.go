package chatview

import "fmt"

// ValidateMessage checks that a message has an id and a known role.
func ValidateMessage(msg Message) error {
	if msg.ID == "" {
		return fmt.Errorf("message id must not be empty: %w", ErrValidation)
	}
	if !msg.Role.Valid() {
		return fmt.Errorf("message %s: unknown role %q: %w", msg.ID, msg.Role, ErrValidation)
	}
	if msg.Role == RoleFunction && msg.Plugin == nil {
		return fmt.Errorf("message %s: function message without plugin: %w", msg.ID, ErrValidation)
	}
	return nil
}

// ValidateChatState checks every message and that message ids are unique.
func ValidateChatState(s ChatState) error {
	seen := make(map[string]struct{}, len(s.Messages))
	for i, m := range s.Messages {
		if err := ValidateMessage(m); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("duplicate message id %q: %w", m.ID, ErrValidation)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// ValidateSessionState checks that session ids are non-empty and unique and
// that session types are known.
func ValidateSessionState(s SessionState) error {
	seen := make(map[string]struct{}, len(s.Sessions))
	for i, sess := range s.Sessions {
		if sess.ID == "" {
			return fmt.Errorf("session %d: id must not be empty: %w", i, ErrValidation)
		}
		switch sess.Type {
		case SessionTypeAgent, SessionTypeGroup:
		default:
			return fmt.Errorf("session %s: unknown type %q: %w", sess.ID, sess.Type, ErrValidation)
		}
		if _, ok := seen[sess.ID]; ok {
			return fmt.Errorf("duplicate session id %q: %w", sess.ID, ErrValidation)
		}
		seen[sess.ID] = struct{}{}
	}
	return nil
}
