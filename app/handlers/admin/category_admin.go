package admin

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/repositories"
	"gorm.io/datatypes"
)

const maxPhotoUploadBytes = 10 << 20

type CategoryForm struct {
	Name                     string   `json:"name" validate:"required,max=255"`
	CollectionID             uint64   `json:"collection_id" validate:"required"`
	Index                    int      `json:"index" validate:"required"`
	HeaderIndex              *int     `json:"header_index" validate:"-"`
	SubHeaderIndex           *int     `json:"sub_header_index" validate:"-"`
	ProductAvailableValueIDs []uint64 `json:"product_available_value_ids" validate:"-"`
}

type CategoryStatusForm struct {
	CategoryID uint64 `json:"category_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// parseCategoryForm reads the multipart create/edit submission. The photo
// part is handled separately by the caller.
func parseCategoryForm(r *http.Request) (*CategoryForm, map[string]string) {
	errors := map[string]string{}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil && err != http.ErrNotMultipart {
		if err := r.ParseForm(); err != nil {
			errors["form"] = "Could not parse form submission."
			return nil, errors
		}
	}

	form := &CategoryForm{Name: r.PostFormValue("name")}

	if raw := r.PostFormValue("collection_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			errors["collection_id"] = "Collection must be an integer id."
		} else {
			form.CollectionID = id
		}
	}

	if raw := r.PostFormValue("index"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			errors["index"] = "Index must be an integer."
		} else {
			form.Index = index
		}
	}

	for field, target := range map[string]**int{
		"header_index":     &form.HeaderIndex,
		"sub_header_index": &form.SubHeaderIndex,
	} {
		if raw := r.PostFormValue(field); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				errors[field] = strings.ReplaceAll(field, "_", " ") + " must be an integer."
				continue
			}
			*target = &value
		}
	}

	if raw := r.PostFormValue("product_available_value_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				errors["product_available_value_ids"] = "Value ids must be integers."
				break
			}
			form.ProductAvailableValueIDs = append(form.ProductAvailableValueIDs, id)
		}
	}

	return form, errors
}

func (h *AdminHandler) validateCategoryForm(r *http.Request, form *CategoryForm, excludeID uint64, errors map[string]string) error {
	for field, message := range h.structErrors(form) {
		if _, taken := errors[field]; !taken {
			errors[field] = message
		}
	}

	nameTaken, err := h.categoryRepo.ExistsByName(r.Context(), form.Name, excludeID)
	if err != nil {
		return err
	}
	if nameTaken {
		errors["name"] = "Category name already exists."
	}

	if form.CollectionID != 0 {
		exists, err := h.collectionRepo.ExistsByID(r.Context(), form.CollectionID)
		if err != nil {
			return err
		}
		if !exists {
			errors["collection_id"] = "Selected collection does not exist."
		}
	}

	if len(form.ProductAvailableValueIDs) > 0 {
		found, err := h.valueRepo.FindByIDsOrdered(r.Context(), form.ProductAvailableValueIDs)
		if err != nil {
			return err
		}
		if len(found) != len(form.ProductAvailableValueIDs) {
			errors["product_available_value_ids"] = "Selected attribute value does not exist."
		}
	}

	return nil
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	filter := repositories.CategoryListFilter{}
	if status := r.URL.Query().Get("status"); models.IsValidStatus(status) {
		filter.Status = status
	}
	if raw := r.URL.Query().Get("collection_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CollectionID = id
		}
	}

	categories, err := h.categoryRepo.GetAll(r.Context(), filter)
	if err != nil {
		log.Printf("ListCategories: failed to fetch categories: %v", err)
		h.serverError(w, "Failed to fetch categories.")
		return
	}

	collections, err := h.collectionRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ListCategories: failed to fetch collections: %v", err)
		h.serverError(w, "Failed to fetch collections.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"categories":  categories,
		"collections": collections,
		"filters": map[string]interface{}{
			"status":        filter.Status,
			"collection_id": filter.CollectionID,
		},
	})
}

func (h *AdminHandler) CreateCategoryPage(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("CreateCategoryPage: failed to fetch collections: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	nextIndex, err := h.categoryRepo.NextIndex(r.Context())
	if err != nil {
		log.Printf("CreateCategoryPage: failed to compute next index: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"collections": collections,
		"next_index":  nextIndex,
	})
}

func (h *AdminHandler) StoreCategory(w http.ResponseWriter, r *http.Request) {
	form, errors := parseCategoryForm(r)
	if form == nil {
		h.validationFailed(w, errors)
		return
	}

	if err := h.validateCategoryForm(r, form, 0, errors); err != nil {
		log.Printf("StoreCategory: validation lookup failed: %v", err)
		h.serverError(w, "Failed to create category.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	category := &models.Category{
		Name:                     form.Name,
		CollectionID:             form.CollectionID,
		ProductAvailableValueIDs: datatypes.NewJSONSlice(form.ProductAvailableValueIDs),
		HeaderIndex:              form.HeaderIndex,
		SubHeaderIndex:           form.SubHeaderIndex,
		Slug:                     helpers.GenerateSlug(form.Name),
		Status:                   models.StatusActive,
		Index:                    form.Index,
		CreatedBy:                sessionUserID(r),
	}

	// The file is written before the row commit references its path.
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		relPath, saveErr := h.photoStore.SavePhoto(file, header.Filename)
		if saveErr != nil {
			log.Printf("StoreCategory: failed to store photo: %v", saveErr)
			h.serverError(w, "Failed to store category photo.")
			return
		}
		category.Photo = relPath
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("StoreCategory: failed to create category: %v", err)
		if category.Photo != "" {
			if cleanupErr := h.photoStore.Delete(category.Photo); cleanupErr != nil {
				log.Printf("StoreCategory: failed to clean up photo %s: %v", category.Photo, cleanupErr)
			}
		}
		h.serverError(w, "Failed to create category.")
		return
	}

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"message":  "Category created successfully.",
		"category": category,
	})
}

func (h *AdminHandler) ShowCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid category id.")
		return
	}

	category, err := h.categoryRepo.GetByIDWithCollection(r.Context(), id)
	if err != nil {
		log.Printf("ShowCategory: error fetching category %d: %v", id, err)
		h.serverError(w, "Failed to fetch category.")
		return
	}
	if category == nil {
		h.notFound(w, "Category not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"category":   category,
		"photo_url":  h.photoStore.URL(category.Photo),
		"created_by": h.userRef(r, category.CreatedBy),
		"updated_by": h.userRef(r, category.UpdatedBy),
	})
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid category id.")
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("EditCategoryPage: error fetching category %d: %v", id, err)
		h.serverError(w, "Failed to fetch category.")
		return
	}
	if category == nil {
		h.notFound(w, "Category not found.")
		return
	}

	collections, err := h.collectionRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("EditCategoryPage: failed to fetch collections: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"category":    category,
		"collections": collections,
		"photo_url":   h.photoStore.URL(category.Photo),
	})
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid category id.")
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateCategory: error fetching category %d: %v", id, err)
		h.serverError(w, "Failed to update category.")
		return
	}
	if category == nil {
		h.notFound(w, "Category not found.")
		return
	}

	form, errors := parseCategoryForm(r)
	if form == nil {
		h.validationFailed(w, errors)
		return
	}

	if err := h.validateCategoryForm(r, form, category.ID, errors); err != nil {
		log.Printf("UpdateCategory: validation lookup failed: %v", err)
		h.serverError(w, "Failed to update category.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	oldPhoto := category.Photo

	category.Name = form.Name
	category.CollectionID = form.CollectionID
	category.ProductAvailableValueIDs = datatypes.NewJSONSlice(form.ProductAvailableValueIDs)
	category.HeaderIndex = form.HeaderIndex
	category.SubHeaderIndex = form.SubHeaderIndex
	category.Slug = helpers.GenerateSlug(form.Name)
	category.Index = form.Index
	category.UpdatedBy = sessionUserID(r)

	replacedPhoto := false
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		relPath, saveErr := h.photoStore.SavePhoto(file, header.Filename)
		if saveErr != nil {
			log.Printf("UpdateCategory: failed to store photo: %v", saveErr)
			h.serverError(w, "Failed to store category photo.")
			return
		}
		category.Photo = relPath
		replacedPhoto = true
	}

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("UpdateCategory: failed to update category %d: %v", category.ID, err)
		if replacedPhoto {
			if cleanupErr := h.photoStore.Delete(category.Photo); cleanupErr != nil {
				log.Printf("UpdateCategory: failed to clean up photo %s: %v", category.Photo, cleanupErr)
			}
		}
		h.serverError(w, "Failed to update category.")
		return
	}

	// Old file goes away only after the row durably points at the new one.
	if replacedPhoto && oldPhoto != "" {
		if err := h.photoStore.Delete(oldPhoto); err != nil {
			log.Printf("UpdateCategory: failed to delete old photo %s: %v", oldPhoto, err)
		}
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category updated successfully.",
		"category": category,
	})
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid category id.")
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteCategory: error fetching category %d: %v", id, err)
		h.serverError(w, "Failed to delete category.")
		return
	}
	if category == nil {
		h.notFound(w, "Category not found.")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteCategory: failed to delete category %d: %v", id, err)
		h.serverError(w, "Failed to delete category.")
		return
	}

	// Best-effort cleanup; a failed file delete is logged, not fatal.
	if category.Photo != "" {
		if err := h.photoStore.Delete(category.Photo); err != nil {
			log.Printf("DeleteCategory: failed to delete photo %s: %v", category.Photo, err)
		}
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Category deleted successfully.",
	})
}

func (h *AdminHandler) ChangeCategoryStatus(w http.ResponseWriter, r *http.Request) {
	var form CategoryStatusForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	category, err := h.categoryRepo.ChangeStatus(r.Context(), form.CategoryID, form.Status)
	if err != nil {
		log.Printf("ChangeCategoryStatus: failed for category %d: %v", form.CategoryID, err)
		h.serverError(w, "Failed to update category status.")
		return
	}
	if category == nil {
		h.notFound(w, "Category not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category status updated successfully.",
		"category": category,
	})
}
