package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// NodeRole is the part a node plays in producing scene content.
type NodeRole uint8

const (
	// RoleSource nodes may name a mesh asset of their own and otherwise pass content through.
	RoleSource NodeRole = iota
	// RoleTransform nodes apply a translation, rotation and scale to everything flowing through.
	RoleTransform
	// RoleMaterial nodes override the material of everything flowing through.
	RoleMaterial
	// RoleAssembler nodes fan in many mesh references through numbered slots.
	RoleAssembler
)

var roleNames = map[NodeRole]string{
	RoleSource:    "source",
	RoleTransform: "transform",
	RoleMaterial:  "material",
	RoleAssembler: "assembler",
}

// String returns the configuration name of the role.
func (r NodeRole) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// ParseRole parses a role name as written in configuration.
func ParseRole(s string) (NodeRole, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return RoleSource, zerr.With(ErrUnknownRole, "role", s)
}

// RoleTable maps node classes to roles.
type RoleTable struct {
	byClass map[string]NodeRole
}

// DefaultRoles returns the class mapping of the stock mesh toolkit nodes.
func DefaultRoles() map[string]NodeRole {
	return map[string]NodeRole{
		"SceneAssembler":        RoleAssembler,
		"MeshTransform":         RoleTransform,
		"MeshMaterialInspector": RoleMaterial,
	}
}

// NewRoleTable builds a role table from a class mapping.
func NewRoleTable(byClass map[string]NodeRole) *RoleTable {
	t := &RoleTable{byClass: make(map[string]NodeRole, len(byClass))}
	for class, role := range byClass {
		t.byClass[class] = role
	}
	return t
}

// Resolve returns the role for a node class. Unknown classes are sources.
func (t *RoleTable) Resolve(class string) NodeRole {
	if t == nil {
		return RoleSource
	}
	if role, ok := t.byClass[class]; ok {
		return role
	}
	return RoleSource
}
