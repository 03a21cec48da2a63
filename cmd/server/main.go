// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/minicrm/backend/internal/config"
	"github.com/minicrm/backend/internal/db"
	"github.com/minicrm/backend/internal/handler"
	"github.com/minicrm/backend/internal/repository"
	"github.com/minicrm/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.InitSchema(database); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	log.Println("✅ Connected to database")

	customerRepo := &repository.CustomerRepository{DB: database}
	orderRepo := &repository.OrderRepository{DB: database}
	segmentRepo := &repository.SegmentRepository{DB: database}
	campaignRepo := &repository.CampaignRepository{DB: database}
	logRepo := &repository.CampaignLogRepository{DB: database}
	statsRepo := &repository.StatsRepository{DB: database}

	segmentService := &service.SegmentService{
		SegmentRepo:  segmentRepo,
		CustomerRepo: customerRepo,
	}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		SegmentRepo:  segmentRepo,
		CustomerRepo: customerRepo,
		LogRepo:      logRepo,
		Delivery:     service.NewRandomSimulator(),
	}

	customerHandler := &handler.CustomerHandler{Repo: customerRepo}
	orderHandler := &handler.OrderHandler{Repo: orderRepo, CustomerRepo: customerRepo}
	segmentHandler := &handler.SegmentHandler{Repo: segmentRepo, Service: segmentService}
	campaignHandler := &handler.CampaignHandler{Service: campaignService}
	statsHandler := &handler.StatsHandler{Repo: statsRepo}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("🚀 Mini CRM API Running"))
	})

	// Customer routes
	r.Post("/customers", customerHandler.CreateCustomer)
	r.Get("/customers", customerHandler.ListCustomers)
	r.Post("/customers/import", customerHandler.ImportCustomers)
	r.Get("/customers/export", customerHandler.ExportCustomers)
	r.Get("/customers/{id}", customerHandler.GetCustomer)
	r.Put("/customers/{id}", customerHandler.UpdateCustomer)
	r.Delete("/customers/{id}", customerHandler.DeleteCustomer)

	// Order routes
	r.Post("/orders", orderHandler.CreateOrder)
	r.Get("/orders", orderHandler.ListOrders)
	r.Get("/orders/{id}", orderHandler.GetOrder)
	r.Put("/orders/{id}", orderHandler.UpdateOrder)
	r.Delete("/orders/{id}", orderHandler.DeleteOrder)

	// Segment routes
	r.Post("/segments", segmentHandler.CreateSegment)
	r.Get("/segments", segmentHandler.ListSegments)
	r.Get("/segments/{id}", segmentHandler.GetSegment)
	r.Put("/segments/{id}", segmentHandler.UpdateSegment)
	r.Delete("/segments/{id}", segmentHandler.DeleteSegment)
	r.Get("/segments/{id}/audience", segmentHandler.PreviewAudience)

	// Campaign routes
	r.Post("/campaigns", campaignHandler.CreateCampaign)
	r.Get("/campaigns", campaignHandler.ListCampaigns)
	r.Get("/campaigns/{id}", campaignHandler.GetCampaign)
	r.Delete("/campaigns/{id}", campaignHandler.DeleteCampaign)
	r.Post("/campaigns/{id}/send", campaignHandler.SendCampaign)
	r.Get("/campaigns/{id}/logs", campaignHandler.ListLogs)

	// Dashboard
	r.Get("/stats", statsHandler.Overview)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
