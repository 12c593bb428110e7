// Package user defines the static user directory: agents, admins, and the
// customers referenced by tickets and events. Users carry immutable identity;
// other entities either embed a User or reference one by ID.
package user

import "fmt"

// Role classifies a directory entry.
type Role string

const (
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Role   Role   `json:"role" yaml:"role"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user ID is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	return nil
}

// IsStaff reports whether the user acts on the agent side of conversations.
func (u User) IsStaff() bool {
	return u.Role == RoleAgent || u.Role == RoleAdmin
}

// FindByID looks up a user in a directory slice. The second return value is
// false when the ID is absent; callers treat missing lookups as "absent",
// never as an error.
func FindByID(directory []User, id string) (User, bool) {
	for _, u := range directory {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
