package admin

import (
	"log"
	"net/http"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/utils/format"
	"gorm.io/datatypes"
)

type ProductForm struct {
	Name             string   `json:"name" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"required"`
	CategoryIDs      []uint64 `json:"category_ids" validate:"required,min=1"`
	Sku              string   `json:"sku" validate:"required"`
	Hsn              string   `json:"hsn"`
	Index            int      `json:"index" validate:"required"`
	ShortDescription string   `json:"short_description" validate:"required"`
	Description      string   `json:"description" validate:"required"`
}

type ProductStatusForm struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type ProductSaleForm struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Sale      string `json:"sale" validate:"required,oneof=ACTIVE INACTIVE"`
}

// productPricePayload decorates a price row with display strings.
type productPricePayload struct {
	models.ProductPrice
	MrpPriceFormatted     string `json:"mrp_price_formatted"`
	SellingPriceFormatted string `json:"selling_price_formatted"`
}

func pricePayloads(prices []models.ProductPrice) []productPricePayload {
	payloads := make([]productPricePayload, 0, len(prices))
	for _, price := range prices {
		payloads = append(payloads, productPricePayload{
			ProductPrice:          price,
			MrpPriceFormatted:     format.Price(price.MrpPrice),
			SellingPriceFormatted: format.Price(price.SellingPrice),
		})
	}
	return payloads
}

func (h *AdminHandler) checkCategoryIDs(r *http.Request, ids []uint64, errors map[string]string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := h.categoryRepo.FindByIDsOrdered(r.Context(), ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		errors["category_ids"] = "Selected category does not exist."
	}
	return nil
}

func (h *AdminHandler) validateProductForm(r *http.Request, form *ProductForm, excludeID uint64) (map[string]string, error) {
	errors := h.structErrors(form)

	slugTaken, err := h.productRepo.ExistsBySlug(r.Context(), helpers.GenerateSlug(form.Slug), excludeID)
	if err != nil {
		return nil, err
	}
	if slugTaken {
		errors["slug"] = "Product slug already exists."
	}

	skuTaken, err := h.productRepo.ExistsBySku(r.Context(), form.Sku, excludeID)
	if err != nil {
		return nil, err
	}
	if skuTaken {
		errors["sku"] = "SKU already exists."
	}

	if err := h.checkCategoryIDs(r, form.CategoryIDs, errors); err != nil {
		return nil, err
	}

	return errors, nil
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ProductListFilter{}
	if status := r.URL.Query().Get("status"); models.IsValidStatus(status) {
		filter.Status = status
	}
	if sale := r.URL.Query().Get("sale"); models.IsValidStatus(sale) {
		filter.Sale = sale
	}

	products, err := h.productRepo.GetAll(r.Context(), filter)
	if err != nil {
		log.Printf("ListProducts: failed to fetch products: %v", err)
		h.serverError(w, "Failed to fetch products.")
		return
	}

	categories, err := h.categoryRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ListProducts: failed to fetch categories: %v", err)
		h.serverError(w, "Failed to fetch categories.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"categories": categories,
		"filters": map[string]string{
			"status": filter.Status,
			"sale":   filter.Sale,
		},
	})
}

func (h *AdminHandler) CreateProductPage(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetActiveOrderedByName(r.Context())
	if err != nil {
		log.Printf("CreateProductPage: failed to fetch categories: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	nextIndex, err := h.productRepo.NextIndex(r.Context())
	if err != nil {
		log.Printf("CreateProductPage: failed to compute next index: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"next_index": nextIndex,
	})
}

func (h *AdminHandler) StoreProduct(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors, err := h.validateProductForm(r, &form, 0)
	if err != nil {
		log.Printf("StoreProduct: validation lookup failed: %v", err)
		h.serverError(w, "Failed to create product.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	product := &models.Product{
		Name:             form.Name,
		Slug:             helpers.GenerateSlug(form.Slug),
		CategoryIDs:      datatypes.NewJSONSlice(form.CategoryIDs),
		Sku:              form.Sku,
		Hsn:              form.Hsn,
		Index:            form.Index,
		ShortDescription: form.ShortDescription,
		Description:      form.Description,
		Status:           models.StatusActive,
		Sale:             models.StatusInactive,
		CreatedBy:        sessionUserID(r),
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("StoreProduct: failed to create product: %v", err)
		h.serverError(w, "Failed to create product.")
		return
	}

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Product created successfully.",
		"product": product,
	})
}

func (h *AdminHandler) ShowProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByIDWithPrices(r.Context(), id)
	if err != nil {
		log.Printf("ShowProduct: error fetching product %d: %v", id, err)
		h.serverError(w, "Failed to fetch product.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	categories, err := h.categoryRepo.FindByIDsOrdered(r.Context(), product.CategoryIDs)
	if err != nil {
		log.Printf("ShowProduct: failed to resolve categories for %d: %v", id, err)
		h.serverError(w, "Failed to fetch product.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"product":    product,
		"categories": categories,
		"prices":     pricePayloads(product.Prices),
		"created_by": h.userRef(r, product.CreatedBy),
		"updated_by": h.userRef(r, product.UpdatedBy),
	})
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("EditProductPage: error fetching product %d: %v", id, err)
		h.serverError(w, "Failed to fetch product.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	categories, err := h.categoryRepo.GetActiveOrderedByName(r.Context())
	if err != nil {
		log.Printf("EditProductPage: failed to fetch categories: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"product":    product,
		"categories": categories,
	})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateProduct: error fetching product %d: %v", id, err)
		h.serverError(w, "Failed to update product.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	var form ProductForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors, err := h.validateProductForm(r, &form, product.ID)
	if err != nil {
		log.Printf("UpdateProduct: validation lookup failed: %v", err)
		h.serverError(w, "Failed to update product.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	product.Name = form.Name
	product.Slug = helpers.GenerateSlug(form.Slug)
	product.CategoryIDs = datatypes.NewJSONSlice(form.CategoryIDs)
	product.Sku = form.Sku
	product.Hsn = form.Hsn
	product.Index = form.Index
	product.ShortDescription = form.ShortDescription
	product.Description = form.Description
	product.UpdatedBy = sessionUserID(r)

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("UpdateProduct: failed to update product %d: %v", product.ID, err)
		h.serverError(w, "Failed to update product.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Product updated successfully.",
		"product": product,
	})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteProduct: error fetching product %d: %v", id, err)
		h.serverError(w, "Failed to delete product.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteProduct: failed to delete product %d: %v", id, err)
		h.serverError(w, "Failed to delete product.")
		return
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Product deleted successfully.",
	})
}

func (h *AdminHandler) ChangeProductStatus(w http.ResponseWriter, r *http.Request) {
	var form ProductStatusForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	product, err := h.productRepo.ChangeStatus(r.Context(), form.ProductID, form.Status)
	if err != nil {
		log.Printf("ChangeProductStatus: failed for product %d: %v", form.ProductID, err)
		h.serverError(w, "Failed to update product status.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Product status updated successfully.",
		"product": product,
	})
}

func (h *AdminHandler) ChangeProductSale(w http.ResponseWriter, r *http.Request) {
	var form ProductSaleForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	product, err := h.productRepo.ChangeSale(r.Context(), form.ProductID, form.Sale)
	if err != nil {
		log.Printf("ChangeProductSale: failed for product %d: %v", form.ProductID, err)
		h.serverError(w, "Failed to update product sale status.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Product sale status updated successfully.",
		"product": product,
	})
}
