package types

import (
	"fmt"
	"strings"
)

// Role is a musical role; it decides when an instrument plays.
type Role int

const (
	// RoleMelody instruments are primary modules and play first.
	RoleMelody Role = iota
	// RoleHarmony instruments support the melody.
	RoleHarmony
	// RoleRhythm instruments handle timing and control.
	RoleRhythm
	// RoleBass instruments provide the foundation and play last.
	RoleBass
)

// Roles lists every role in performance order.
var Roles = []Role{RoleMelody, RoleHarmony, RoleRhythm, RoleBass}

var roleNames = map[Role]string{
	RoleMelody:  "melody",
	RoleHarmony: "harmony",
	RoleRhythm:  "rhythm",
	RoleBass:    "bass",
}

var roleCues = map[Role]string{
	RoleMelody:  "plays melody",
	RoleHarmony: "adds harmony",
	RoleRhythm:  "keeps rhythm",
	RoleBass:    "provides foundation",
}

// String returns role name
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// IsValid returns true for one of the four known roles
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// Cue returns the score line written when the named instrument plays.
func (r Role) Cue(name string) string {
	return fmt.Sprintf("[%s %s]", name, roleCues[r])
}

// MarshalText encodes role as its name; unknown roles render as role(N)
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes role name
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// ParseRole converts a role name (case-insensitive) into a Role
func ParseRole(name string) (Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for role, candidate := range roleNames {
		if candidate == name {
			return role, nil
		}
	}
	return RoleMelody, NewInvalidRoleError(name)
}
