package models

// Session is the authenticated token+user pair held by the client.
//
// Invariant: Token and User are either both set or both absent. The only
// writers are the session service operations (restore, login, register,
// logout); nothing else may mutate a session.
type Session struct {
	Token string
	User  *User
}

// Active reports whether the session holds valid credentials.
func (s Session) Active() bool {
	return s.Token != "" && s.User != nil
}

// Empty reports whether the session holds nothing at all. A session that is
// neither Active nor Empty violates the both-or-neither invariant.
func (s Session) Empty() bool {
	return s.Token == "" && s.User == nil
}
