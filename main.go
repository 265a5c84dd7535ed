package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shawon-burger/config"
	"shawon-burger/database"
	"shawon-burger/helpers"
	"shawon-burger/mailer"
	"shawon-burger/middleware"
	"shawon-burger/notify"
	"shawon-burger/payment"
	"shawon-burger/routes"
	"shawon-burger/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	seed := flag.Bool("seed", false, "insert sample menu items and a combo deal when the menu is empty")
	flag.Parse()

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.DBinstance(ctx, cfg.MongoURI, database.DefaultRetries)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting from MongoDB:", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	setupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(setupCtx, db); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	emailService, err := mailer.New(cfg.MailProvider, cfg.EmailSender, cfg.PostmarkAPIToken, cfg.SendgridAPIKey)
	if err != nil {
		log.Fatalf("Error configuring mailer: %v", err)
	}

	var gateway payment.Gateway = payment.DisabledGateway{}
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	} else {
		log.Println("STRIPE_SECRET_KEY not set, card payments disabled")
	}

	users := database.NewUserStore(db)
	menu := database.NewMenuStore(db)
	combos := database.NewComboStore(db)
	orders := database.NewOrderStore(db)
	reviews := database.NewReviewStore(db)

	hub := notify.NewHub(cfg.AllowedOrigins)
	tokens := helpers.NewTokenMaker(cfg.SecretKey, cfg.TokenTTL)

	authService := services.NewAuthService(users, emailService, tokens)
	catalogService := services.NewCatalogService(menu, combos)
	notificationService := services.NewNotificationService(database.NewNotificationStore(db), hub)
	orderService := services.NewOrderService(services.OrderServiceConfig{
		Orders:   orders,
		Menu:     menu,
		Combos:   combos,
		Users:    users,
		Gateway:  gateway,
		Mail:     emailService,
		Events:   notificationService,
		Currency: cfg.PaymentCurrency,
	})

	if err := authService.SeedAdmin(setupCtx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Error seeding admin: %v", err)
	}
	if *seed {
		if err := catalogService.SeedSampleCatalog(setupCtx); err != nil {
			log.Fatalf("Error seeding sample catalog: %v", err)
		}
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router, routes.Deps{
		Auth:          authService,
		Users:         services.NewUserService(users),
		Catalog:       catalogService,
		Orders:        orderService,
		Reviews:       services.NewReviewService(reviews, orders),
		Dashboard:     services.NewDashboardService(database.NewDashboardStore(db), cfg.Timezone),
		Notifications: notificationService,
		Hub:           hub,
		Tokens:        tokens,
		DB:            database.Pinger{Client: client},
		Timezone:      cfg.Timezone,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
