package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	_ "invoice_studio/docs" // This will be auto-generated
	"invoice_studio/internal/adapter/http/handlers"
	repository2 "invoice_studio/internal/adapter/persistence/repository"
	"invoice_studio/internal/infrastructure/database"
	"invoice_studio/internal/infrastructure/imaging"
	"invoice_studio/internal/infrastructure/objectstore"
	"invoice_studio/internal/pdf"
	"invoice_studio/internal/usecase"
	"invoice_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	assetsDir := getenvDefault("ASSETS_DIR", "./assets")

	ddb := database.ConnectDynamoDB()
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	resolver := imaging.NewHTTPImageResolver(assetsDir)

	var store interfaces.IObjectStore
	s3Store, err := objectstore.NewS3ObjectStore(mustAWSConfig())
	if err != nil {
		log.Printf("Object store not configured: %v", err)
	} else {
		store = s3Store
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, store)
	draftUseCase := usecase.NewDraftUseCase(catalogRepo, resolver)
	invoiceUseCase := usecase.NewInvoiceUseCase(draftUseCase, pdf.NewAssembler(resolver))

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// The form page and its shipped assets (banners, default pictures).
	router.LoadHTMLGlob(filepath.Join(getenvDefault("WEB_DIR", "./web"), "templates/*"))
	router.Static("/images", filepath.Join(assetsDir, "images"))
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoicingRoutes(v1, draftHandler, catalogHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func mustAWSConfig() aws.Config {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
