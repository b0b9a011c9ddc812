package users

import "time"

// Role define los dos lados del marketplace.
// @Enum owner, walker
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

func ValidRole(r Role) bool {
	return r == RoleOwner || r == RoleWalker
}

// User es una cuenta registrada. Email y Role son inmutables post-registro;
// el update de perfil solo toca Name/Phone/Address.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role

	Phone   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
