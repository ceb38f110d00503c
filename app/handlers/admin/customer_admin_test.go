package admin

import (
	"net/http"
	"testing"

	"github.com/nehalv/ecom-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func customerPayload(roles []string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":            "Jane",
		"last_name":             "Doe",
		"email":                 "jane@example.com",
		"mobile":                "5551234567",
		"password":              "secret-pass",
		"password_confirmation": "secret-pass",
		"roles":                 roles,
		"status":                models.StatusActive,
	}
}

func seedCustomerRole(t *testing.T, env *testEnv) {
	t.Helper()
	role := models.Role{
		Name:        models.RoleCustomer,
		DisplayName: "Customer",
		Permissions: datatypes.NewJSONSlice([]string{"account.view"}),
	}
	require.NoError(t, env.db.Create(&role).Error)
}

func TestStoreCustomerCreatesUserAndNumber(t *testing.T) {
	env := newTestEnv(t)
	seedCustomerRole(t, env)

	rec := env.postJSON(t, "/admin/customers", customerPayload([]string{models.RoleCustomer}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var customer models.Customer
	require.NoError(t, env.db.Preload("User").First(&customer).Error)
	assert.Equal(t, "CUST0001", customer.CustomerID)
	require.NotNil(t, customer.User)
	assert.Equal(t, "jane@example.com", customer.User.Email)
	assert.Equal(t, []string{models.RoleCustomer}, []string(customer.User.Roles))
}

func TestStoreCustomerRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	seedCustomerRole(t, env)

	rec := env.postJSON(t, "/admin/customers", customerPayload([]string{"ghost-role"}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errors, "roles")

	// Nothing was persisted.
	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
