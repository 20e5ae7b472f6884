package domain

// RoleName enumerates clinic operator roles. Access checks compare these
// exactly; there is no hierarchy between them.
type RoleName string

const (
	RoleAdministrator RoleName = "Administrador"
	RoleCoordinator   RoleName = "Coordinador"
	RoleTherapist     RoleName = "Terapeuta"
	RoleGuardian      RoleName = "Tutor"
)

// Role is an administrator-managed role record.
type Role struct {
	ID          int64
	Name        RoleName
	Description string
}
