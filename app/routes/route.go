package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/nehalv/ecom-admin/app/configs"
	"github.com/nehalv/ecom-admin/app/handlers"
	"github.com/nehalv/ecom-admin/app/handlers/admin"
	"github.com/nehalv/ecom-admin/app/middlewares"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/utils/sessions"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	adminHandler *admin.AdminHandler,
	sessionStore sessions.SessionStore,
	userRepo repositories.UserRepositoryImpl,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(sessionStore, userRepo))

	adminRouter.HandleFunc("/attributes", adminHandler.ListAttributes).Methods("GET")
	adminRouter.HandleFunc("/attributes/create", adminHandler.CreateAttributePage).Methods("GET")
	adminRouter.HandleFunc("/attributes", adminHandler.StoreAttribute).Methods("POST")
	adminRouter.HandleFunc("/attributes/change-status", adminHandler.ChangeAttributeStatus).Methods("POST")
	adminRouter.HandleFunc("/attributes/{id:[0-9]+}", adminHandler.ShowAttribute).Methods("GET")
	adminRouter.HandleFunc("/attributes/{id:[0-9]+}/edit", adminHandler.EditAttributePage).Methods("GET")
	adminRouter.HandleFunc("/attributes/{id:[0-9]+}", adminHandler.UpdateAttribute).Methods("PUT")
	adminRouter.HandleFunc("/attributes/{id:[0-9]+}", adminHandler.DeleteAttribute).Methods("DELETE")

	adminRouter.HandleFunc("/collections", adminHandler.ListCollections).Methods("GET")
	adminRouter.HandleFunc("/collections/create", adminHandler.CreateCollectionPage).Methods("GET")
	adminRouter.HandleFunc("/collections", adminHandler.StoreCollection).Methods("POST")
	adminRouter.HandleFunc("/collections/change-status", adminHandler.ChangeCollectionStatus).Methods("POST")
	adminRouter.HandleFunc("/collections/{id:[0-9]+}", adminHandler.ShowCollection).Methods("GET")
	adminRouter.HandleFunc("/collections/{id:[0-9]+}/edit", adminHandler.EditCollectionPage).Methods("GET")
	adminRouter.HandleFunc("/collections/{id:[0-9]+}", adminHandler.UpdateCollection).Methods("PUT")
	adminRouter.HandleFunc("/collections/{id:[0-9]+}", adminHandler.DeleteCollection).Methods("DELETE")

	adminRouter.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	adminRouter.HandleFunc("/categories/create", adminHandler.CreateCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.StoreCategory).Methods("POST")
	adminRouter.HandleFunc("/categories/change-status", adminHandler.ChangeCategoryStatus).Methods("POST")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", adminHandler.ShowCategory).Methods("GET")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}/edit", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", adminHandler.UpdateCategory).Methods("PUT", "POST")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", adminHandler.DeleteCategory).Methods("DELETE")

	adminRouter.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	adminRouter.HandleFunc("/products/create", adminHandler.CreateProductPage).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.StoreProduct).Methods("POST")
	adminRouter.HandleFunc("/products/change-status", adminHandler.ChangeProductStatus).Methods("POST")
	adminRouter.HandleFunc("/products/change-sale", adminHandler.ChangeProductSale).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.ShowProduct).Methods("GET")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/edit", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.UpdateProduct).Methods("PUT")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/products/{id:[0-9]+}/prices", adminHandler.ListProductPrices).Methods("GET")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/prices", adminHandler.StoreProductPrice).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/prices/{priceID:[0-9]+}", adminHandler.UpdateProductPrice).Methods("PUT")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/prices/{priceID:[0-9]+}", adminHandler.DeleteProductPrice).Methods("DELETE")

	adminRouter.HandleFunc("/customers", adminHandler.ListCustomers).Methods("GET")
	adminRouter.HandleFunc("/customers/create", adminHandler.CreateCustomerPage).Methods("GET")
	adminRouter.HandleFunc("/customers", adminHandler.StoreCustomer).Methods("POST")
	adminRouter.HandleFunc("/customers/change-status", adminHandler.ChangeCustomerStatus).Methods("POST")
	adminRouter.HandleFunc("/customers/{id:[0-9]+}", adminHandler.ShowCustomer).Methods("GET")
	adminRouter.HandleFunc("/customers/{id:[0-9]+}/edit", adminHandler.EditCustomerPage).Methods("GET")
	adminRouter.HandleFunc("/customers/{id:[0-9]+}", adminHandler.UpdateCustomer).Methods("PUT")
	adminRouter.HandleFunc("/customers/{id:[0-9]+}", adminHandler.DeleteCustomer).Methods("DELETE")

	if configs.LoadENV.APP_ENV == "production" {
		csrfMiddleware := csrf.Protect(
			[]byte(configs.LoadENV.AppAuthKey),
			csrf.Secure(true),
			csrf.Path("/"),
		)
		return csrfMiddleware(router)
	}

	return router
}
