package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/middlewares"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/services"
	"github.com/nehalv/ecom-admin/app/utils/storage"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render         *render.Render
	validator      *validator.Validate
	attributeRepo  repositories.AttributeRepositoryImpl
	valueRepo      repositories.AttributeValueRepositoryImpl
	collectionRepo repositories.CollectionRepositoryImpl
	categoryRepo   repositories.CategoryRepositoryImpl
	productRepo    repositories.ProductRepositoryImpl
	priceRepo      repositories.ProductPriceRepositoryImpl
	customerRepo   repositories.CustomerRepositoryImpl
	userRepo       repositories.UserRepositoryImpl
	roleRepo       repositories.RoleRepositoryImpl
	reconciler     *services.AttributeValueReconciler
	permissionSvc  *services.PermissionService
	photoStore     *storage.PublicStore
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	attributeRepo repositories.AttributeRepositoryImpl,
	valueRepo repositories.AttributeValueRepositoryImpl,
	collectionRepo repositories.CollectionRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	priceRepo repositories.ProductPriceRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	roleRepo repositories.RoleRepositoryImpl,
	reconciler *services.AttributeValueReconciler,
	permissionSvc *services.PermissionService,
	photoStore *storage.PublicStore,
) *AdminHandler {
	return &AdminHandler{
		render:         render,
		validator:      validator,
		attributeRepo:  attributeRepo,
		valueRepo:      valueRepo,
		collectionRepo: collectionRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		priceRepo:      priceRepo,
		customerRepo:   customerRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		reconciler:     reconciler,
		permissionSvc:  permissionSvc,
		photoStore:     photoStore,
	}
}

// UserRef is the creator/updater identity attached to show payloads.
type UserRef struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *AdminHandler) success(w http.ResponseWriter, status int, payload interface{}) {
	h.render.JSON(w, status, payload)
}

func (h *AdminHandler) validationFailed(w http.ResponseWriter, errors map[string]string) {
	h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"status": "error",
		"errors": errors,
	})
}

func (h *AdminHandler) notFound(w http.ResponseWriter, message string) {
	h.render.JSON(w, http.StatusNotFound, map[string]string{
		"status":  "error",
		"message": message,
	})
}

func (h *AdminHandler) serverError(w http.ResponseWriter, message string) {
	h.render.JSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": message,
	})
}

func (h *AdminHandler) badRequest(w http.ResponseWriter, message string) {
	h.render.JSON(w, http.StatusBadRequest, map[string]string{
		"status":  "error",
		"message": message,
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// structErrors runs tag validation and returns a mutable field-keyed error
// map handlers extend with uniqueness/referential checks.
func (h *AdminHandler) structErrors(form interface{}) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return helpers.FormatValidationErrors(validationErrors)
		}
		return map[string]string{"form": err.Error()}
	}
	return map[string]string{}
}

// sessionUserID is the audit stamp for created_by/updated_by columns.
func sessionUserID(r *http.Request) *uint64 {
	user := middlewares.SessionUser(r)
	if user == nil {
		return nil
	}
	id := user.ID
	return &id
}

func (h *AdminHandler) userRef(r *http.Request, id *uint64) *UserRef {
	if id == nil {
		return nil
	}
	user, err := h.userRepo.FindByID(r.Context(), *id)
	if err != nil || user == nil {
		return nil
	}
	return &UserRef{ID: user.ID, FirstName: user.FirstName, LastName: user.LastName}
}
