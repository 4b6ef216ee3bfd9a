package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/contanova1845944-collab/ConfeitariaGebolos/cart"
	salesControllers "github.com/contanova1845944-collab/ConfeitariaGebolos/controllers/sales"
	"github.com/contanova1845944-collab/ConfeitariaGebolos/models"
	"github.com/contanova1845944-collab/ConfeitariaGebolos/routes"
)

func main() {
	log.Println("Starting Confeitaria Gê Bolos API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.SiteSettings{},
		&models.ProductSales{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// In-memory cart sessions
	carts := cart.NewStore(cart.DefaultSessionTTL)

	// Gin setup
	r := gin.Default()

	// CORS settings (the storefront runs on a separate origin)
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Token"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, carts)

	// Rebuild the sales rollup from accepted orders every night at 3 AM
	go salesControllers.ReconcileAtFixedTime(db, 3, 0)

	// Drop abandoned cart sessions once an hour
	go purgeCartsLoop(carts, time.Hour)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// purgeCartsLoop evicts expired cart sessions on a fixed interval
func purgeCartsLoop(store *cart.Store, every time.Duration) {
	for {
		time.Sleep(every)
		if n := store.PurgeExpired(); n > 0 {
			log.Printf("Purged %d expired cart sessions", n)
		}
	}
}
