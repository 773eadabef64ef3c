package user

import (
	"time"

	"careerassign/internal/common"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleInstitute Role = "institute"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleCandidate, RoleInstitute, RoleCompany, RoleAdmin:
		return Role(value), true
	}
	return "", false
}

type User struct {
	ID           common.UUID `json:"id"`
	Email        string      `json:"email"`
	PasswordHash []byte      `json:"-"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
