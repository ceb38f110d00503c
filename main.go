package main

import (
	"log"
	"net/http"
	"os"

	"github.com/nehalv/ecom-admin/app/cmd"
	"github.com/nehalv/ecom-admin/app/configs"
	"github.com/nehalv/ecom-admin/app/handlers"
	"github.com/nehalv/ecom-admin/app/handlers/admin"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/routes"
	"github.com/nehalv/ecom-admin/app/services"
	"github.com/nehalv/ecom-admin/app/utils/renderer"
	"github.com/nehalv/ecom-admin/app/utils/sessions"
	"github.com/nehalv/ecom-admin/app/utils/storage"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	attributeRepo := repositories.NewAttributeRepository(db)
	valueRepo := repositories.NewAttributeValueRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	priceRepo := repositories.NewProductPriceRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)

	reconciler := services.NewAttributeValueReconciler(db)
	permissionSvc := services.NewPermissionService(roleRepo)
	photoStore := storage.NewPublicStore(env.StoragePath, env.StorageBaseURL)

	renderJSON := renderer.New()
	validate := helpers.NewValidator()

	authHandler := handlers.NewAuthHandler(renderJSON, validate, userRepo, sessionStore)
	adminHandler := admin.NewAdminHandler(
		renderJSON,
		validate,
		attributeRepo,
		valueRepo,
		collectionRepo,
		categoryRepo,
		productRepo,
		priceRepo,
		customerRepo,
		userRepo,
		roleRepo,
		reconciler,
		permissionSvc,
		photoStore,
	)

	router := routes.NewRouter(authHandler, adminHandler, sessionStore, userRepo)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
