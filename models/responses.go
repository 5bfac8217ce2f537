package models

import "time"

// ErrorResponse is the uniform error body: every failure surfaces as a
// structured message, never a bare status line.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success body for mutations that return no
// resource representation.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued session token. Logout is client-side
// token deletion; there is no revocation list.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Role    string `json:"role"`
}

// ItemsAddedResponse reports how many items a bulk append accepted.
type ItemsAddedResponse struct {
	Message string `json:"message"`
	Added   int    `json:"adicionados"`
}

// MemberAddedResponse returns the freshly created roster member.
type MemberAddedResponse struct {
	Message string     `json:"message"`
	Member  TeamMember `json:"membro"`
}

// BackupCreatedResponse describes a freshly taken snapshot without echoing
// its payload back.
type BackupCreatedResponse struct {
	Message   string    `json:"message"`
	ID        int64     `json:"id"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
