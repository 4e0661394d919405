package session

// Role is the closed set of mock account types.
type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// DisplayName returns the fixed mock display name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleClient:
		return "Sarra Client"
	case RoleSeller:
		return "Vendeur Pro"
	case RoleAdmin:
		return "Admin Principal"
	}
	return ""
}

// Identity is the role plus display name of the acting user. No credential
// backs it; the name is derived from the role at login time.
type Identity struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// Capabilities is the derived permission set for a role, replacing scattered
// role checks in the consumers.
type Capabilities struct {
	CanBuy        bool `json:"can_buy"`
	CanSell       bool `json:"can_sell"`
	CanAdminister bool `json:"can_administer"`
}

// CapabilitiesFor maps a role to its capability set. Sellers and admins do
// not buy; only admins administer.
func CapabilitiesFor(role Role) Capabilities {
	switch role {
	case RoleClient:
		return Capabilities{CanBuy: true}
	case RoleSeller:
		return Capabilities{CanSell: true}
	case RoleAdmin:
		return Capabilities{CanSell: true, CanAdminister: true}
	}
	return Capabilities{}
}
