package admin

import (
	"log"
	"net/http"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"gorm.io/datatypes"
)

type CollectionForm struct {
	Name         string   `json:"name" validate:"required,max=255"`
	AttributeIDs []uint64 `json:"attribute_ids" validate:"required,min=1"`
	Index        int      `json:"index" validate:"required"`
}

type CollectionStatusForm struct {
	CollectionID uint64 `json:"collection_id" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// checkAttributeIDs verifies every referenced attribute row exists; a
// dangling id at write time is a validation failure, unlike read-time
// resolution which silently drops it.
func (h *AdminHandler) checkAttributeIDs(r *http.Request, ids []uint64, errors map[string]string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := h.attributeRepo.FindByIDsOrdered(r.Context(), ids)
	if err != nil {
		return err
	}

	known := make(map[uint64]bool, len(found))
	for _, attribute := range found {
		known[attribute.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			errors["attribute_ids"] = "Selected attribute does not exist."
			return nil
		}
	}
	return nil
}

func (h *AdminHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListCollections: failed to fetch collections: %v", err)
		h.serverError(w, "Failed to fetch collections.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"collections": collections,
	})
}

func (h *AdminHandler) CreateCollectionPage(w http.ResponseWriter, r *http.Request) {
	attributes, err := h.attributeRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("CreateCollectionPage: failed to fetch attributes: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	nextIndex, err := h.collectionRepo.NextIndex(r.Context())
	if err != nil {
		log.Printf("CreateCollectionPage: failed to compute next index: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"attributes": attributes,
		"next_index": nextIndex,
	})
}

func (h *AdminHandler) StoreCollection(w http.ResponseWriter, r *http.Request) {
	var form CollectionForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)

	nameTaken, err := h.collectionRepo.ExistsByName(r.Context(), form.Name, 0)
	if err != nil {
		log.Printf("StoreCollection: uniqueness check failed: %v", err)
		h.serverError(w, "Failed to create collection.")
		return
	}
	if nameTaken {
		errors["name"] = "Collection name already exists."
	}

	if err := h.checkAttributeIDs(r, form.AttributeIDs, errors); err != nil {
		log.Printf("StoreCollection: referential check failed: %v", err)
		h.serverError(w, "Failed to create collection.")
		return
	}

	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	collection := &models.Collection{
		Name:         form.Name,
		AttributeIDs: datatypes.NewJSONSlice(form.AttributeIDs),
		Slug:         helpers.GenerateSlug(form.Name),
		Status:       models.StatusActive,
		Index:        form.Index,
		CreatedBy:    sessionUserID(r),
	}

	if err := h.collectionRepo.Create(r.Context(), collection); err != nil {
		log.Printf("StoreCollection: failed to create collection: %v", err)
		h.serverError(w, "Failed to create collection.")
		return
	}

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":     "success",
		"message":    "Collection created successfully.",
		"collection": collection,
	})
}

func (h *AdminHandler) ShowCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid collection id.")
		return
	}

	collection, err := h.collectionRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ShowCollection: error fetching collection %d: %v", id, err)
		h.serverError(w, "Failed to fetch collection.")
		return
	}
	if collection == nil {
		h.notFound(w, "Collection not found.")
		return
	}

	// Resolved attributes come back in attribute_ids order, not storage order.
	attributes, err := h.attributeRepo.FindByIDsOrdered(r.Context(), collection.AttributeIDs)
	if err != nil {
		log.Printf("ShowCollection: failed to resolve attributes for %d: %v", id, err)
		h.serverError(w, "Failed to fetch collection.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"collection": collection,
		"attributes": attributes,
		"created_by": h.userRef(r, collection.CreatedBy),
		"updated_by": h.userRef(r, collection.UpdatedBy),
	})
}

func (h *AdminHandler) EditCollectionPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid collection id.")
		return
	}

	collection, err := h.collectionRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("EditCollectionPage: error fetching collection %d: %v", id, err)
		h.serverError(w, "Failed to fetch collection.")
		return
	}
	if collection == nil {
		h.notFound(w, "Collection not found.")
		return
	}

	attributes, err := h.attributeRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("EditCollectionPage: failed to fetch attributes: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"collection": collection,
		"attributes": attributes,
	})
}

func (h *AdminHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid collection id.")
		return
	}

	collection, err := h.collectionRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateCollection: error fetching collection %d: %v", id, err)
		h.serverError(w, "Failed to update collection.")
		return
	}
	if collection == nil {
		h.notFound(w, "Collection not found.")
		return
	}

	var form CollectionForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)

	nameTaken, err := h.collectionRepo.ExistsByName(r.Context(), form.Name, collection.ID)
	if err != nil {
		log.Printf("UpdateCollection: uniqueness check failed: %v", err)
		h.serverError(w, "Failed to update collection.")
		return
	}
	if nameTaken {
		errors["name"] = "Collection name already exists."
	}

	if err := h.checkAttributeIDs(r, form.AttributeIDs, errors); err != nil {
		log.Printf("UpdateCollection: referential check failed: %v", err)
		h.serverError(w, "Failed to update collection.")
		return
	}

	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	collection.Name = form.Name
	collection.AttributeIDs = datatypes.NewJSONSlice(form.AttributeIDs)
	collection.Slug = helpers.GenerateSlug(form.Name)
	collection.Index = form.Index
	collection.UpdatedBy = sessionUserID(r)

	if err := h.collectionRepo.Update(r.Context(), collection); err != nil {
		log.Printf("UpdateCollection: failed to update collection %d: %v", collection.ID, err)
		h.serverError(w, "Failed to update collection.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"message":    "Collection updated successfully.",
		"collection": collection,
	})
}

func (h *AdminHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid collection id.")
		return
	}

	collection, err := h.collectionRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteCollection: error fetching collection %d: %v", id, err)
		h.serverError(w, "Failed to delete collection.")
		return
	}
	if collection == nil {
		h.notFound(w, "Collection not found.")
		return
	}

	if err := h.collectionRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteCollection: failed to delete collection %d: %v", id, err)
		h.serverError(w, "Failed to delete collection.")
		return
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Collection deleted successfully.",
	})
}

func (h *AdminHandler) ChangeCollectionStatus(w http.ResponseWriter, r *http.Request) {
	var form CollectionStatusForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	collection, err := h.collectionRepo.ChangeStatus(r.Context(), form.CollectionID, form.Status)
	if err != nil {
		log.Printf("ChangeCollectionStatus: failed for collection %d: %v", form.CollectionID, err)
		h.serverError(w, "Failed to update collection status.")
		return
	}
	if collection == nil {
		h.notFound(w, "Collection not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"message":    "Collection status updated successfully.",
		"collection": collection,
	})
}
