package types

// ServiceMode determines which service the binary runs as.
type ServiceMode string

const (
	RiderService ServiceMode = "rider"
	AdminService ServiceMode = "admin"
)

func (m ServiceMode) String() string {
	return string(m)
}

// UserRole is a role of an operator account.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

func (r UserRole) String() string {
	return string(r)
}
