package chatview

// CurrentSession returns the active session. It reports false when no
// session is active or the active id matches no session.
func CurrentSession(s SessionState) (Session, bool) {
	if s.ActiveID == "" {
		return Session{}, false
	}
	return findSession(s.Sessions, s.ActiveID)
}

// CurrentSessionSafe returns the active session, or DefaultSession when there
// is none.
func CurrentSessionSafe(s SessionState) Session {
	if sess, ok := CurrentSession(s); ok {
		return sess
	}
	return DefaultSession()
}

// SessionByID returns the session with the given id, or DefaultSession when
// there is none.
func SessionByID(s SessionState, id string) Session {
	if sess, ok := findSession(s.Sessions, id); ok {
		return sess
	}
	return DefaultSession()
}

// SessionMetaByID returns the metadata of the session with the given id, or
// empty metadata when there is none.
func SessionMetaByID(s SessionState, id string) MetaData {
	if sess, ok := findSession(s.Sessions, id); ok {
		return sess.Meta
	}
	return MetaData{}
}

// IsInboxSession reports whether the inbox is the active session.
func IsInboxSession(s SessionState) bool {
	return s.ActiveID == InboxSessionID
}

// findSession returns the first session with the given id.
func findSession(sessions []Session, id string) (Session, bool) {
	for _, sess := range sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return Session{}, false
}
