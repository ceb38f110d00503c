package admin

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductPriceForm struct {
	AttributeValueIDs  []uint64        `json:"attributevalue_ids" validate:"required,min=1"`
	Stock              int             `json:"stock" validate:"min=0"`
	MrpPrice           decimal.Decimal `json:"mrp_price" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Default            string          `json:"default" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func pricePathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["priceID"]
	return strconv.ParseUint(raw, 10, 64)
}

func (h *AdminHandler) checkAttributeValueIDs(r *http.Request, ids []uint64, errors map[string]string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := h.valueRepo.FindByIDsOrdered(r.Context(), ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		errors["attributevalue_ids"] = "Selected attribute value does not exist."
	}
	return nil
}

// loadOwnedPrice fetches a price and enforces that it belongs to the product
// named in the URL.
func (h *AdminHandler) loadOwnedPrice(r *http.Request, productID uint64) (*models.ProductPrice, error) {
	priceID, err := pricePathID(r)
	if err != nil {
		return nil, err
	}

	price, err := h.priceRepo.GetByID(r.Context(), priceID)
	if err != nil {
		return nil, err
	}
	if price == nil || price.ProductID != productID {
		return nil, nil
	}
	return price, nil
}

func applyPriceForm(price *models.ProductPrice, product *models.Product, form *ProductPriceForm) {
	discounted := calc.DiscountedPrice(form.MrpPrice, form.DiscountPercentage)

	price.AttributeValueIDs = datatypes.NewJSONSlice(form.AttributeValueIDs)
	price.Stock = form.Stock
	price.MrpPrice = form.MrpPrice
	price.SellingPrice = discounted
	price.DiscountPercentage = form.DiscountPercentage
	price.DiscountedPrice = discounted
	if form.Default != "" {
		price.Default = form.Default
	}

	parts := make([]string, 0, len(form.AttributeValueIDs)+1)
	parts = append(parts, product.Name)
	for _, id := range form.AttributeValueIDs {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	price.Slug = helpers.GenerateSlug(strings.Join(parts, " "))
}

func (h *AdminHandler) ListProductPrices(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("ListProductPrices: error fetching product %d: %v", productID, err)
		h.serverError(w, "Failed to fetch prices.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	prices, err := h.priceRepo.GetByProductID(r.Context(), productID)
	if err != nil {
		log.Printf("ListProductPrices: error fetching prices for %d: %v", productID, err)
		h.serverError(w, "Failed to fetch prices.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"product": product,
		"prices":  pricePayloads(prices),
	})
}

func (h *AdminHandler) StoreProductPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("StoreProductPrice: error fetching product %d: %v", productID, err)
		h.serverError(w, "Failed to create price.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	var form ProductPriceForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)
	if err := h.checkAttributeValueIDs(r, form.AttributeValueIDs, errors); err != nil {
		log.Printf("StoreProductPrice: value lookup failed: %v", err)
		h.serverError(w, "Failed to create price.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	price := &models.ProductPrice{
		ProductID: productID,
		Status:    models.StatusInactive,
		Default:   models.StatusInactive,
	}
	applyPriceForm(price, product, &form)

	if err := h.priceRepo.Create(r.Context(), price); err != nil {
		log.Printf("StoreProductPrice: failed to create price for product %d: %v", productID, err)
		h.serverError(w, "Failed to create price.")
		return
	}

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Price created successfully.",
		"price":   price,
	})
}

func (h *AdminHandler) UpdateProductPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("UpdateProductPrice: error fetching product %d: %v", productID, err)
		h.serverError(w, "Failed to update price.")
		return
	}
	if product == nil {
		h.notFound(w, "Product not found.")
		return
	}

	price, err := h.loadOwnedPrice(r, productID)
	if err != nil {
		log.Printf("UpdateProductPrice: error fetching price: %v", err)
		h.serverError(w, "Failed to update price.")
		return
	}
	if price == nil {
		h.notFound(w, "Price not found.")
		return
	}

	var form ProductPriceForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)
	if err := h.checkAttributeValueIDs(r, form.AttributeValueIDs, errors); err != nil {
		log.Printf("UpdateProductPrice: value lookup failed: %v", err)
		h.serverError(w, "Failed to update price.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	applyPriceForm(price, product, &form)

	if err := h.priceRepo.Update(r.Context(), price); err != nil {
		log.Printf("UpdateProductPrice: failed to update price %d: %v", price.ID, err)
		h.serverError(w, "Failed to update price.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Price updated successfully.",
		"price":   price,
	})
}

func (h *AdminHandler) DeleteProductPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid product id.")
		return
	}

	price, err := h.loadOwnedPrice(r, productID)
	if err != nil {
		log.Printf("DeleteProductPrice: error fetching price: %v", err)
		h.serverError(w, "Failed to delete price.")
		return
	}
	if price == nil {
		h.notFound(w, "Price not found.")
		return
	}

	if err := h.priceRepo.Delete(r.Context(), price.ID); err != nil {
		log.Printf("DeleteProductPrice: failed to delete price %d: %v", price.ID, err)
		h.serverError(w, "Failed to delete price.")
		return
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Price deleted successfully.",
	})
}
