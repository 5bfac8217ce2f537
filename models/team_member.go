package models

import "time"

// TeamMember is a named operator of the panel. Username is unique; members
// are created and removed whole, there is no update operation.
type TeamMember struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"nome"`
	Role     string    `json:"cargo"`
	AddedAt  time.Time `json:"adicionado_em"`
}

// DefaultMemberRole is assigned when a member is added without a cargo.
const DefaultMemberRole = "Membro"
