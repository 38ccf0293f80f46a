package routes

import (
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/handlers"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/services"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/utils/renderer"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	render := renderer.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	valueRepo := repositories.NewProductValueRepository(db)

	catalogSvc := services.NewCatalogService()
	searchSvc := services.NewSearchService(categoryRepo, productRepo, catalogSvc)
	facetSvc := services.NewFacetService(categoryRepo, valueRepo)

	catalogHandler := handlers.NewCatalogHandler(searchSvc, facetSvc, render)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, render)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/catalog/search", catalogHandler.Search).Methods("POST")
	api.HandleFunc("/catalog/facets", catalogHandler.Facets).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.Categories).Methods("GET")

	return router
}
