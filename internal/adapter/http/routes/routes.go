package routes

import (
	"log"
	_ "novo_seguros/docs" // This will be auto-generated
	"novo_seguros/internal/adapter/http/handlers"
	repository2 "novo_seguros/internal/adapter/persistence/repository"
	"novo_seguros/internal/infrastructure/clipboard"
	"novo_seguros/internal/infrastructure/database"
	"novo_seguros/internal/infrastructure/fixture"
	"novo_seguros/internal/infrastructure/payments"
	"novo_seguros/internal/infrastructure/receipts"
	"novo_seguros/internal/usecase"
	"novo_seguros/internal/usecase/interfaces"
	"os"
	"strconv"

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
	vehicleRepo, slipRepo := buildRepositories()

	sessionUseCase := usecase.NewDashboardSessionUseCase(vehicleRepo, slipRepo)
	downloadUseCase := usecase.NewReceiptDownloadUseCase(receipts.NewHTTPReceiptFetcher())

	var pixGateway interfaces.IPixGateway
	mpGateway, err := payments.NewMercadoPagoPixGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago PIX gateway not configured, using local code generation: %v", err)
	} else {
		pixGateway = mpGateway
	}
	pixUseCase := usecase.NewPixUseCase(slipRepo, pixGateway, clipboard.NewSystemClipboard())

	dashboardHandler := handlers.NewDashboardHandler(sessionUseCase)
	receiptHandler := handlers.NewReceiptHandler(downloadUseCase)
	pixHandler := handlers.NewPixHandler(pixUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, dashboardHandler, receiptHandler, pixHandler)
}

// buildRepositories picks the data source: the static fixture (default) or
// DynamoDB when DATA_SOURCE=dynamodb.
func buildRepositories() (interfaces.IVehicleRepository, interfaces.IPaymentSlipRepository) {
	if os.Getenv("DATA_SOURCE") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		log.Printf("[routes] data source: dynamodb")
		return repository2.NewVehicleDynamoRepository(ddb), repository2.NewPaymentSlipDynamoRepository(ddb)
	}
	log.Printf("[routes] data source: fixture")
	return repository2.NewMemoryVehicleRepository(fixture.Vehicles()),
		repository2.NewMemoryPaymentSlipRepository(fixture.PaymentSlips())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
