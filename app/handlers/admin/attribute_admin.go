package admin

import (
	"log"
	"net/http"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/services"
)

type AttributeForm struct {
	Name    string                         `json:"name" validate:"required,max=100"`
	Label   string                         `json:"label" validate:"required,max=100"`
	IsColor bool                           `json:"is_color"`
	Values  []services.AttributeValueInput `json:"values" validate:"omitempty,dive"`
}

type AttributeUpdateForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Label   string `json:"label" validate:"required,max=100"`
	IsColor bool   `json:"is_color"`
	services.ReconcileInput
}

type AttributeStatusForm struct {
	AttributeID uint64 `json:"attribute_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

func (h *AdminHandler) ListAttributes(w http.ResponseWriter, r *http.Request) {
	attributes, err := h.attributeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListAttributes: failed to fetch attributes: %v", err)
		h.serverError(w, "Failed to fetch attributes.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"attributes": attributes,
	})
}

func (h *AdminHandler) CreateAttributePage(w http.ResponseWriter, r *http.Request) {
	nextIndex, err := h.attributeRepo.NextIndex(r.Context())
	if err != nil {
		log.Printf("CreateAttributePage: failed to compute next index: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"next_index": nextIndex,
	})
}

func (h *AdminHandler) StoreAttribute(w http.ResponseWriter, r *http.Request) {
	var form AttributeForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)

	nameTaken, err := h.attributeRepo.ExistsByName(r.Context(), form.Name, 0)
	if err != nil {
		log.Printf("StoreAttribute: uniqueness check failed: %v", err)
		h.serverError(w, "Failed to create attribute.")
		return
	}
	if nameTaken {
		errors["name"] = "This attribute name already exists"
	}

	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	attribute := &models.Attribute{
		Name:      form.Name,
		Label:     form.Label,
		IsColor:   form.IsColor,
		Slug:      helpers.GenerateSlug(form.Name),
		Status:    models.StatusInactive,
		CreatedBy: sessionUserID(r),
	}

	if err := h.attributeRepo.Create(r.Context(), attribute); err != nil {
		log.Printf("StoreAttribute: failed to create attribute: %v", err)
		h.serverError(w, "Failed to create attribute.")
		return
	}

	if err := h.reconciler.CreateValues(r.Context(), attribute, form.Values); err != nil {
		log.Printf("StoreAttribute: failed to create attribute values for %d: %v", attribute.ID, err)
		h.serverError(w, "Attribute created but values could not be saved.")
		return
	}

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":    "success",
		"message":   "Attribute created successfully.",
		"attribute": attribute,
	})
}

func (h *AdminHandler) ShowAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid attribute id.")
		return
	}

	attribute, err := h.attributeRepo.GetByIDWithValues(r.Context(), id)
	if err != nil {
		log.Printf("ShowAttribute: error fetching attribute %d: %v", id, err)
		h.serverError(w, "Failed to fetch attribute.")
		return
	}
	if attribute == nil {
		h.notFound(w, "Attribute not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"attribute":  attribute,
		"created_by": h.userRef(r, attribute.CreatedBy),
		"updated_by": h.userRef(r, attribute.UpdatedBy),
	})
}

func (h *AdminHandler) EditAttributePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid attribute id.")
		return
	}

	attribute, err := h.attributeRepo.GetByIDWithValues(r.Context(), id)
	if err != nil {
		log.Printf("EditAttributePage: error fetching attribute %d: %v", id, err)
		h.serverError(w, "Failed to fetch attribute.")
		return
	}
	if attribute == nil {
		h.notFound(w, "Attribute not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"attribute": attribute,
	})
}

func (h *AdminHandler) UpdateAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid attribute id.")
		return
	}

	attribute, err := h.attributeRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateAttribute: error fetching attribute %d: %v", id, err)
		h.serverError(w, "Failed to update attribute.")
		return
	}
	if attribute == nil {
		h.notFound(w, "Attribute not found.")
		return
	}

	var form AttributeUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)
	for key, name := range form.ValueNames {
		if name == "" {
			errors["value_name."+key] = "Value name is required"
		} else if len(name) > 100 {
			errors["value_name."+key] = "Value name must not exceed 100 characters"
		}
	}
	for key, color := range form.Colors {
		if color != "" && !helpers.IsHexColor(color) {
			errors["color."+key] = "Color must be a valid hex color code (e.g., #FF5733)"
		}
	}

	// Uniqueness excludes the row being updated.
	nameTaken, err := h.attributeRepo.ExistsByName(r.Context(), form.Name, attribute.ID)
	if err != nil {
		log.Printf("UpdateAttribute: uniqueness check failed: %v", err)
		h.serverError(w, "Failed to update attribute.")
		return
	}
	if nameTaken {
		errors["name"] = "This attribute name already exists"
	}

	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	attribute.Name = form.Name
	attribute.Label = form.Label
	attribute.IsColor = form.IsColor
	attribute.Slug = helpers.GenerateSlug(form.Name)
	attribute.UpdatedBy = sessionUserID(r)

	if err := h.attributeRepo.Update(r.Context(), attribute); err != nil {
		log.Printf("UpdateAttribute: failed to update attribute %d: %v", attribute.ID, err)
		h.serverError(w, "Failed to update attribute.")
		return
	}

	if err := h.reconciler.Reconcile(r.Context(), attribute, form.ReconcileInput); err != nil {
		log.Printf("UpdateAttribute: reconciliation failed for attribute %d: %v", attribute.ID, err)
		h.serverError(w, "Failed to update attribute values.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"message":   "Attribute updated successfully.",
		"attribute": attribute,
	})
}

func (h *AdminHandler) DeleteAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid attribute id.")
		return
	}

	attribute, err := h.attributeRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteAttribute: error fetching attribute %d: %v", id, err)
		h.serverError(w, "Failed to delete attribute.")
		return
	}
	if attribute == nil {
		h.notFound(w, "Attribute not found.")
		return
	}

	if err := h.attributeRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteAttribute: failed to delete attribute %d: %v", id, err)
		h.serverError(w, "Failed to delete attribute.")
		return
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Attribute deleted successfully.",
	})
}

func (h *AdminHandler) ChangeAttributeStatus(w http.ResponseWriter, r *http.Request) {
	var form AttributeStatusForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	attribute, err := h.attributeRepo.ChangeStatus(r.Context(), form.AttributeID, form.Status)
	if err != nil {
		log.Printf("ChangeAttributeStatus: failed for attribute %d: %v", form.AttributeID, err)
		h.serverError(w, "Failed to update attribute status.")
		return
	}
	if attribute == nil {
		h.notFound(w, "Attribute not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"message":   "Attribute status updated successfully.",
		"attribute": attribute,
	})
}
