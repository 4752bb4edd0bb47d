package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       uint64
	Name     string
	Email    string
	Login    string
	Password string
	Role     Role
}
