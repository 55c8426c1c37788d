package user

type Role string

const (
	RoleManager  Role = "manager"
	RoleDirector Role = "director"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleManager),
	string(RoleDirector),
	string(RoleHR),
	string(RoleEmployee),
}

// CanEditAttendance reports whether the role may create or edit manual
// attendance entries. Directors and HR get read-only dashboards.
func CanEditAttendance(r Role) bool {
	return r == RoleManager
}
