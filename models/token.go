package models

import "github.com/golang-jwt/jwt/v5"

// Session roles embedded in issued tokens.
const (
	RoleAdmin = "admin"
	RoleTeam  = "equipe"
)

// Credentials is the login request body. The password is compared in
// plaintext against the configured shared secrets; this mirrors the original
// deployment and is a documented weakness, not an accident.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity describes an authenticated operator, either the static admin or a
// team roster member. Name and Title are only set for team members.
type Identity struct {
	Username string
	Role     string
	Name     string
	Title    string
}

// SessionClaims is the JWT claim set carried by every session token: the
// standard registered claims plus the operator's role and, for team members,
// display name and cargo.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Name  string `json:"nome,omitempty"`
	Title string `json:"cargo,omitempty"`
}

// Token wraps a JWT session token with convenience accessors for the
// authentication flow.
//
// It embeds [jwt.Token] for low-level operations and [SessionClaims] for
// claim access, so a *Token can be passed directly to jwt.ParseWithClaims.
//
// SignedString holds the compact serialized form ready to be transmitted in
// the Authorization header. Username is a cached copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`
	SessionClaims

	SignedString string `json:"-"`
	Username     string `json:"-"`
}

// Identity rebuilds the operator identity embedded in the token's claims.
func (t *Token) Identity() Identity {
	return Identity{
		Username: t.Username,
		Role:     t.Role,
		Name:     t.Name,
		Title:    t.Title,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
