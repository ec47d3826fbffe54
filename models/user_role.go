package models

type UserRole string

const (
	UserRoleSubmitter UserRole = "USER"
	UserRoleAdmin     UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleSubmitter: "Campaign owner",
	UserRoleAdmin:     "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

const SystemUser = "system"
