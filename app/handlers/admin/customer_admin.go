package admin

import (
	"log"
	"net/http"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
)

type CustomerForm struct {
	FirstName            string   `json:"first_name" validate:"required,max=50"`
	LastName             string   `json:"last_name" validate:"required,max=50"`
	Email                string   `json:"email" validate:"required,email"`
	PersonalEmail        string   `json:"personal_email" validate:"omitempty,email"`
	Mobile               string   `json:"mobile" validate:"required,len=10,numeric"`
	Password             string   `json:"password" validate:"required,min=8"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"required,eqfield=Password"`
	Roles                []string `json:"roles" validate:"required,min=1"`
	Type                 string   `json:"type"`
	Status               string   `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// CustomerUpdateForm relaxes the password rules: blank means keep the
// current password.
type CustomerUpdateForm struct {
	FirstName            string   `json:"first_name" validate:"required,max=50"`
	LastName             string   `json:"last_name" validate:"required,max=50"`
	Email                string   `json:"email" validate:"required,email"`
	PersonalEmail        string   `json:"personal_email" validate:"omitempty,email"`
	Mobile               string   `json:"mobile" validate:"required,len=10,numeric"`
	Password             string   `json:"password" validate:"omitempty,min=6"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"eqfield=Password"`
	Roles                []string `json:"roles" validate:"required,min=1"`
	Type                 string   `json:"type"`
	Status               string   `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type CustomerStatusForm struct {
	CustomerID uint64 `json:"customer_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// checkRoleNames verifies every requested role has a roles row; a made-up
// name is a validation failure, not a silent drop.
func (h *AdminHandler) checkRoleNames(r *http.Request, names []string, errors map[string]string) error {
	if len(names) == 0 {
		return nil
	}

	roles, err := h.roleRepo.FindByNames(r.Context(), names)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(roles))
	for _, role := range roles {
		known[role.Name] = true
	}
	for _, name := range names {
		if !known[name] {
			errors["roles"] = "Selected role does not exist."
			return nil
		}
	}
	return nil
}

func (h *AdminHandler) checkCustomerUniqueness(r *http.Request, email, mobile, personalEmail string, excludeUserID, excludeCustomerID uint64, errors map[string]string) error {
	emailTaken, err := h.userRepo.ExistsByEmail(r.Context(), email, excludeUserID)
	if err != nil {
		return err
	}
	if emailTaken {
		errors["email"] = "Email already exists."
	}

	mobileTaken, err := h.userRepo.ExistsByMobile(r.Context(), mobile, excludeUserID)
	if err != nil {
		return err
	}
	if mobileTaken {
		errors["mobile"] = "Mobile number already exists."
	}

	if personalEmail != "" {
		taken, err := h.customerRepo.ExistsByPersonalEmail(r.Context(), personalEmail, excludeCustomerID)
		if err != nil {
			return err
		}
		if taken {
			errors["personal_email"] = "Personal email already exists."
		}
	}

	return nil
}

func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if !models.IsValidStatus(status) {
		status = ""
	}

	customers, err := h.customerRepo.GetAll(r.Context(), status)
	if err != nil {
		log.Printf("ListCustomers: failed to fetch customers: %v", err)
		h.serverError(w, "Failed to fetch customers.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"filters": map[string]string{
			"status": status,
		},
	})
}

func (h *AdminHandler) CreateCustomerPage(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleRepo.GetAssignable(r.Context())
	if err != nil {
		log.Printf("CreateCustomerPage: failed to fetch roles: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	customerNumber, err := h.customerRepo.NextCustomerNumber(r.Context())
	if err != nil {
		log.Printf("CreateCustomerPage: failed to compute customer number: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"roles":       roles,
		"customer_id": customerNumber,
		"mode":        "create",
	})
}

func (h *AdminHandler) StoreCustomer(w http.ResponseWriter, r *http.Request) {
	var form CustomerForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)
	if err := h.checkCustomerUniqueness(r, form.Email, form.Mobile, form.PersonalEmail, 0, 0, errors); err != nil {
		log.Printf("StoreCustomer: uniqueness lookup failed: %v", err)
		h.serverError(w, "Failed to create customer.")
		return
	}
	if err := h.checkRoleNames(r, form.Roles, errors); err != nil {
		log.Printf("StoreCustomer: role lookup failed: %v", err)
		h.serverError(w, "Failed to create customer.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		h.serverError(w, "Failed to create customer.")
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Mobile:    form.Mobile,
		Password:  hashed,
		Status:    form.Status,
		CreatedBy: sessionUserID(r),
	}

	if err := h.permissionSvc.SyncUserPermissions(r.Context(), user, form.Roles); err != nil {
		log.Printf("StoreCustomer: failed to sync permissions: %v", err)
		h.serverError(w, "Failed to create customer.")
		return
	}

	customerType := form.Type
	if customerType == "" {
		customerType = "customer"
	}

	customer := &models.Customer{
		Type:      customerType,
		CreatedBy: sessionUserID(r),
	}
	if form.PersonalEmail != "" {
		customer.PersonalEmail = &form.PersonalEmail
	}

	if err := h.customerRepo.CreateWithUser(r.Context(), user, customer); err != nil {
		log.Printf("StoreCustomer: failed to create customer: %v", err)
		h.serverError(w, "Failed to create customer.")
		return
	}
	customer.User = user

	h.success(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"message":  "Customer created successfully.",
		"customer": customer,
	})
}

func (h *AdminHandler) ShowCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid customer id.")
		return
	}

	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ShowCustomer: error fetching customer %d: %v", id, err)
		h.serverError(w, "Failed to fetch customer.")
		return
	}
	if customer == nil {
		h.notFound(w, "Customer not found.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"customer":   customer,
		"created_by": h.userRef(r, customer.CreatedBy),
		"updated_by": h.userRef(r, customer.UpdatedBy),
	})
}

func (h *AdminHandler) EditCustomerPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid customer id.")
		return
	}

	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("EditCustomerPage: error fetching customer %d: %v", id, err)
		h.serverError(w, "Failed to fetch customer.")
		return
	}
	if customer == nil {
		h.notFound(w, "Customer not found.")
		return
	}

	roles, err := h.roleRepo.GetAssignable(r.Context())
	if err != nil {
		log.Printf("EditCustomerPage: failed to fetch roles: %v", err)
		h.serverError(w, "Failed to load form data.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
		"roles":    roles,
		"mode":     "edit",
	})
}

func (h *AdminHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid customer id.")
		return
	}

	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateCustomer: error fetching customer %d: %v", id, err)
		h.serverError(w, "Failed to update customer.")
		return
	}
	if customer == nil || customer.User == nil {
		h.notFound(w, "Customer not found.")
		return
	}

	var form CustomerUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	errors := h.structErrors(&form)
	if err := h.checkCustomerUniqueness(r, form.Email, form.Mobile, form.PersonalEmail, customer.UserID, customer.ID, errors); err != nil {
		log.Printf("UpdateCustomer: uniqueness lookup failed: %v", err)
		h.serverError(w, "Failed to update customer.")
		return
	}
	if err := h.checkRoleNames(r, form.Roles, errors); err != nil {
		log.Printf("UpdateCustomer: role lookup failed: %v", err)
		h.serverError(w, "Failed to update customer.")
		return
	}
	if len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	user := customer.User
	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email
	user.Mobile = form.Mobile
	user.Status = form.Status
	user.UpdatedBy = sessionUserID(r)

	if form.Password != "" {
		hashed := helpers.HashPassword(form.Password)
		if hashed == "" {
			h.serverError(w, "Failed to update customer.")
			return
		}
		user.Password = hashed
	}

	if err := h.permissionSvc.SyncUserPermissions(r.Context(), user, form.Roles); err != nil {
		log.Printf("UpdateCustomer: failed to sync permissions: %v", err)
		h.serverError(w, "Failed to update customer.")
		return
	}

	if form.PersonalEmail != "" {
		customer.PersonalEmail = &form.PersonalEmail
	} else {
		customer.PersonalEmail = nil
	}
	if form.Type != "" {
		customer.Type = form.Type
	}
	customer.UpdatedBy = sessionUserID(r)

	if err := h.customerRepo.UpdateWithUser(r.Context(), user, customer); err != nil {
		log.Printf("UpdateCustomer: failed to update customer %d: %v", customer.ID, err)
		h.serverError(w, "Failed to update customer.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Customer updated successfully.",
		"customer": customer,
	})
}

func (h *AdminHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "Invalid customer id.")
		return
	}

	customer, err := h.customerRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteCustomer: error fetching customer %d: %v", id, err)
		h.serverError(w, "Failed to delete customer.")
		return
	}
	if customer == nil {
		h.notFound(w, "Customer not found.")
		return
	}

	if err := h.customerRepo.DeleteWithUser(r.Context(), customer); err != nil {
		log.Printf("DeleteCustomer: failed to delete customer %d: %v", id, err)
		h.serverError(w, "Failed to delete customer.")
		return
	}

	h.success(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Customer deleted successfully.",
	})
}

// ChangeCustomerStatus flips the status on the owning user row.
func (h *AdminHandler) ChangeCustomerStatus(w http.ResponseWriter, r *http.Request) {
	var form CustomerStatusForm
	if err := decodeJSON(r, &form); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if errors := h.structErrors(&form); len(errors) > 0 {
		h.validationFailed(w, errors)
		return
	}

	customer, err := h.customerRepo.GetByID(r.Context(), form.CustomerID)
	if err != nil {
		log.Printf("ChangeCustomerStatus: error fetching customer %d: %v", form.CustomerID, err)
		h.serverError(w, "Failed to update customer status.")
		return
	}
	if customer == nil || customer.User == nil {
		h.notFound(w, "Customer not found.")
		return
	}

	customer.User.Status = form.Status
	if err := h.userRepo.Update(r.Context(), customer.User); err != nil {
		log.Printf("ChangeCustomerStatus: failed for customer %d: %v", form.CustomerID, err)
		h.serverError(w, "Failed to update customer status.")
		return
	}

	h.success(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Customer status updated successfully.",
		"customer": customer,
	})
}
