package constant

const (
	DefaultUserRoleID = 1

	RoleUser  = "user"
	RoleAdmin = "admin"

	TokenTypeBearer = "Bearer"
)
