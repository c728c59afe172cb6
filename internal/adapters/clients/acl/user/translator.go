package user

import (
	"slices"

	"github.com/jsamuelsen11/taskboard/internal/domain/user"
)

// ToDomainUser converts a backend UserDTO to a domain User.
func ToDomainUser(dto UserDTO) user.User {
	return user.User{
		ID:         dto.ID,
		Email:      dto.Email,
		Name:       dto.Name,
		Avatar:     dto.Avatar,
		ProjectIDs: nonNil(dto.ProjectIDs),
	}
}

// ToDomainUsers converts a slice of backend UserDTOs.
func ToDomainUsers(dtos []UserDTO) []user.User {
	users := make([]user.User, len(dtos))
	for i := range dtos {
		users[i] = ToDomainUser(dtos[i])
	}
	return users
}

// ToUserDTO converts a domain User into the backend write schema.
func ToUserDTO(u user.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Avatar:     u.Avatar,
		ProjectIDs: nonNil(u.ProjectIDs),
	}
}

// ToDomainAuth converts a backend session to a domain Auth.
func ToDomainAuth(dto AuthDTO) user.Auth {
	return user.Auth{Token: dto.Token, User: ToDomainUser(dto.User)}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}
