package user

import "time"

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleDirector    Role = "DIRECTOR"
	RoleDirectivo   Role = "DIRECTIVO"
	RoleSecretaria  Role = "SECRETARIA"
	RoleFuncionario Role = "FUNCIONARIO"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleDirector),
	string(RoleDirectivo),
	string(RoleSecretaria),
	string(RoleFuncionario),
}

type User struct {
	ID           string
	RUT          string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
