package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/models/migrations"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/services"
	"github.com/nehalv/ecom-admin/app/utils/renderer"
	"github.com/nehalv/ecom-admin/app/utils/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	handler *AdminHandler
	router  *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))

	roleRepo := repositories.NewRoleRepository(db)
	handler := NewAdminHandler(
		renderer.New(),
		helpers.NewValidator(),
		repositories.NewAttributeRepository(db),
		repositories.NewAttributeValueRepository(db),
		repositories.NewCollectionRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewProductPriceRepository(db),
		repositories.NewCustomerRepository(db),
		repositories.NewUserRepository(db),
		roleRepo,
		services.NewAttributeValueReconciler(db),
		services.NewPermissionService(roleRepo),
		storage.NewPublicStore(t.TempDir(), "/storage"),
	)

	router := mux.NewRouter()
	router.HandleFunc("/admin/attributes", handler.StoreAttribute).Methods("POST")
	router.HandleFunc("/admin/attributes/change-status", handler.ChangeAttributeStatus).Methods("POST")
	router.HandleFunc("/admin/attributes/{id:[0-9]+}", handler.ShowAttribute).Methods("GET")
	router.HandleFunc("/admin/collections", handler.StoreCollection).Methods("POST")
	router.HandleFunc("/admin/collections/{id:[0-9]+}", handler.ShowCollection).Methods("GET")
	router.HandleFunc("/admin/customers", handler.StoreCustomer).Methods("POST")

	return &testEnv{db: db, handler: handler, router: router}
}

func (e *testEnv) postJSON(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedTestAttribute(t *testing.T, db *gorm.DB, name string) *models.Attribute {
	t.Helper()
	attribute := &models.Attribute{
		Name:   name,
		Label:  name,
		Slug:   name,
		Status: models.StatusInactive,
		Index:  1,
	}
	require.NoError(t, db.Create(attribute).Error)
	return attribute
}
