package services

import (
	"context"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSyncUserPermissionsDedupesUnion(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	roles := []models.Role{
		{
			Name:        "editor",
			DisplayName: "Editor",
			Permissions: datatypes.NewJSONSlice([]string{"catalogue.view", "catalogue.edit"}),
		},
		{
			Name:        "reviewer",
			DisplayName: "Reviewer",
			Permissions: datatypes.NewJSONSlice([]string{"catalogue.view", "catalogue.approve"}),
		},
	}
	for i := range roles {
		require.NoError(t, db.Create(&roles[i]).Error)
	}

	svc := NewPermissionService(repositories.NewRoleRepository(db))
	user := &models.User{}

	require.NoError(t, svc.SyncUserPermissions(ctx, user, []string{"editor", "reviewer"}))

	assert.Equal(t, []string{"editor", "reviewer"}, []string(user.Roles))
	assert.ElementsMatch(t, []string{"catalogue.view", "catalogue.edit", "catalogue.approve"}, []string(user.Permissions))
	assert.Len(t, user.Permissions, 3)
}

func TestSyncUserPermissionsRejectsUnknownRole(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	role := models.Role{
		Name:        "viewer",
		DisplayName: "Viewer",
		Permissions: datatypes.NewJSONSlice([]string{"catalogue.view"}),
	}
	require.NoError(t, db.Create(&role).Error)

	svc := NewPermissionService(repositories.NewRoleRepository(db))

	user := &models.User{}
	err := svc.SyncUserPermissions(ctx, user, []string{"ghost-role"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Empty(t, []string(user.Roles))
	assert.Empty(t, []string(user.Permissions))

	// A mix of real and made-up names must fail the same way.
	err = svc.SyncUserPermissions(ctx, user, []string{"viewer", "ghost-role"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Empty(t, []string(user.Roles))
}

func TestSyncUserPermissionsReplacesPrevious(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	role := models.Role{
		Name:        "viewer",
		DisplayName: "Viewer",
		Permissions: datatypes.NewJSONSlice([]string{"catalogue.view"}),
	}
	require.NoError(t, db.Create(&role).Error)

	svc := NewPermissionService(repositories.NewRoleRepository(db))
	user := &models.User{
		Roles:       datatypes.NewJSONSlice([]string{"editor"}),
		Permissions: datatypes.NewJSONSlice([]string{"catalogue.edit"}),
	}

	require.NoError(t, svc.SyncUserPermissions(ctx, user, []string{"viewer"}))

	assert.Equal(t, []string{"viewer"}, []string(user.Roles))
	assert.Equal(t, []string{"catalogue.view"}, []string(user.Permissions))
}
