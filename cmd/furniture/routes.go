package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"furniture-golang/http-server/calculations"
	delcatalog "furniture-golang/http-server/catalog/delete"
	getcatalog "furniture-golang/http-server/catalog/get"
	savecatalog "furniture-golang/http-server/catalog/save"
	upcatalog "furniture-golang/http-server/catalog/update"
	generate_excel "furniture-golang/http-server/generate-report/generate-excel"
	delproduction "furniture-golang/http-server/production/delete"
	saveproduction "furniture-golang/http-server/production/save"
	delproducts "furniture-golang/http-server/products/delete"
	getproducts "furniture-golang/http-server/products/get"
	saveproducts "furniture-golang/http-server/products/save"
	upproducts "furniture-golang/http-server/products/update"
	delworkshops "furniture-golang/http-server/workshops/delete"
	getworkshops "furniture-golang/http-server/workshops/get"
	saveworkshops "furniture-golang/http-server/workshops/save"
	upworkshops "furniture-golang/http-server/workshops/update"
	"furniture-golang/internal/config"
	"furniture-golang/internal/middleware/auth"
	"furniture-golang/internal/service/calculation"
	generate_excel2 "furniture-golang/internal/service/generate-excel"
	"furniture-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, calcService *calculation.CalcService, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// Продукция
	router.Get("/api/products", getproducts.GetProducts(log, storage, calcService))
	router.Get("/api/products/{id}", getproducts.GetProduct(log, storage, calcService))
	router.Post("/api/products", saveproducts.SaveProduct(log, storage))
	router.Put("/api/products/{id}", upproducts.UpdateProduct(log, storage))
	router.Delete("/api/products/{id}", delproducts.DeleteProduct(log, storage))

	// Цеха
	router.Get("/api/workshops", getworkshops.GetWorkshops(log, storage))
	router.Get("/api/workshops/{id}", getworkshops.GetWorkshop(log, storage))
	router.Get("/api/workshops/{id}/products", getworkshops.GetWorkshopProducts(log, storage))
	router.Post("/api/workshops", saveworkshops.SaveWorkshop(log, storage))
	router.Put("/api/workshops/{id}", upworkshops.UpdateWorkshop(log, storage))
	router.Delete("/api/workshops/{id}", delworkshops.DeleteWorkshop(log, storage))

	// Привязка продукции к цехам
	router.Post("/api/production", saveproduction.LinkProductWorkshop(log, storage))
	router.Delete("/api/production/{productID}/{workshopID}", delproduction.UnlinkProductWorkshop(log, storage))

	// Расчёты
	router.Post("/api/calculations/raw-material", calculations.CalculateRawMaterial(log, calcService))
	router.Get("/api/products/{id}/production-details", calculations.GetProductionDetails(log, storage, calcService))

	// Справочники доступны на чтение всем
	router.Get("/api/product-types", getcatalog.GetProductTypes(log, storage))
	router.Get("/api/product-types/{id}", getcatalog.GetProductType(log, storage))
	router.Get("/api/material-types", getcatalog.GetMaterialTypes(log, storage))
	router.Get("/api/material-types/{id}", getcatalog.GetMaterialType(log, storage))

	// Генерация excel
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	// Правка справочников — только под админом
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/product-types", savecatalog.SaveProductTypeAdmin(log, storage))
	adminRouter.Put("/product-types/{id}", upcatalog.UpdateProductTypeAdmin(log, storage))
	adminRouter.Delete("/product-types/{id}", delcatalog.DeleteProductTypeAdmin(log, storage))
	adminRouter.Post("/material-types", savecatalog.SaveMaterialTypeAdmin(log, storage))
	adminRouter.Put("/material-types/{id}", upcatalog.UpdateMaterialTypeAdmin(log, storage))
	adminRouter.Delete("/material-types/{id}", delcatalog.DeleteMaterialTypeAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
