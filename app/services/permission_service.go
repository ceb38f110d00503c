package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/repositories"
	"gorm.io/datatypes"
)

type PermissionService struct {
	roleRepo repositories.RoleRepositoryImpl
}

func NewPermissionService(roleRepo repositories.RoleRepositoryImpl) *PermissionService {
	return &PermissionService{roleRepo: roleRepo}
}

// ErrUnknownRole is returned when a requested role name has no roles row.
var ErrUnknownRole = errors.New("unknown role name")

// SyncUserPermissions replaces the user's role list with roleNames and
// the permission list with the deduped union of those roles' permissions.
// Every requested name must exist; the caller is responsible for
// persisting the user.
func (s *PermissionService) SyncUserPermissions(ctx context.Context, user *models.User, roleNames []string) error {
	roles, err := s.roleRepo.FindByNames(ctx, roleNames)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(roles))
	for _, role := range roles {
		known[role.Name] = true
	}
	for _, name := range roleNames {
		if !known[name] {
			return fmt.Errorf("%w: %s", ErrUnknownRole, name)
		}
	}

	seen := make(map[string]bool)
	permissions := make([]string, 0)
	for _, role := range roles {
		for _, permission := range role.Permissions {
			if seen[permission] {
				continue
			}
			seen[permission] = true
			permissions = append(permissions, permission)
		}
	}

	user.Roles = datatypes.NewJSONSlice(roleNames)
	user.Permissions = datatypes.NewJSONSlice(permissions)
	return nil
}
