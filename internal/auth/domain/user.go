package domain

// User mirrors the API's user record. ID and CreatedAt are absent on
// registration responses, so both are optional. CreatedAt stays a string
// because the API's date format is part of the wire contract and the client
// only ever displays it.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Session is the authenticated identity held by the client: the bearer token
// plus the user it belongs to. A zero Session means "not signed in".
type Session struct {
	Token string
	User  *User
}

// Valid reports whether the session carries both a token and a user. The
// client never inspects token expiry itself; it trusts the server's 401.
func (s Session) Valid() bool {
	return s.Token != "" && s.User != nil
}
