package domain

// Role type to distinguish between staff account roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Usuario represents a staff account (trainer or admin) on the backend.
type Usuario struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// UsuarioCreate is the payload for creating or patching a staff account.
// Password is only sent when set (creation, or an explicit reset).
type UsuarioCreate struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}
