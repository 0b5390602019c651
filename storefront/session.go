package storefront

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// The one hardcoded admin credential pair. This gate only decides what the
// client renders; the catalog service never checks the role.
const (
	adminUsername = "admin"
	adminPassword = "123"
)

// Session is the client-held identity. It is not verified by the server.
type Session struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Login never fails: the admin pair yields the admin session, anything
// else yields a user session under the submitted name.
func Login(username, password string) Session {
	if username == adminUsername && password == adminPassword {
		return Session{Name: "Administrator", Role: RoleAdmin}
	}
	return Session{Name: username, Role: RoleUser}
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
