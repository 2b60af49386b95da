package entity

type Role string

const (
	RoleLearner    Role = "learner"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Rank orders roles for at-least-this-level checks:
// learner < instructor < admin. Unknown roles rank below everything.
func (r Role) Rank() int {
	switch r {
	case RoleLearner:
		return 0
	case RoleInstructor:
		return 1
	case RoleAdmin:
		return 2
	default:
		return -1
	}
}

func (r Role) Valid() bool {
	return r.Rank() >= 0
}

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
	IsActive     bool   `db:"is_active"`
}
