package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "tallerhub/docs" // generated by swag init
	"tallerhub/internal/adapter/http/handlers"
	"tallerhub/internal/adapter/persistence/repository"
	"tallerhub/internal/infrastructure/auth"
	"tallerhub/internal/infrastructure/config"
	"tallerhub/internal/infrastructure/database"
	"tallerhub/internal/infrastructure/events"
	"tallerhub/internal/infrastructure/payments"
	"tallerhub/internal/usecase"
	"tallerhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

var router = gin.Default()

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Workshop   *handlers.WorkshopHandler
	Vehicle    *handlers.VehicleHandler
	Assessment *handlers.AssessmentHandler
	Quotation  *handlers.QuotationHandler
	WorkOrder  *handlers.WorkOrderHandler
	Invoice    *handlers.InvoiceHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authUseCase, h := getHandlers(cfg)
	Register(router, authUseCase, h)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getHandlers(cfg config.Config) (usecase.IAuthUseCase, Handlers) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	assessmentRepo := repository.NewAssessmentDynamoRepository(ddb)
	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	workshopRepo := repository.NewCachedWorkshopRepository(repository.NewWorkshopDynamoRepository(ddb), cfg.WorkshopCacheTTL)

	publisher := newEventPublisher(ctx, cfg)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, config.PaymentGatewayMockEnabled())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	userUseCase := usecase.NewUserUseCase(userRepo, workshopRepo, hasher)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokens)
	workshopUseCase := usecase.NewWorkshopUseCase(workshopRepo, userRepo, userUseCase)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, userRepo)
	assessmentUseCase := usecase.NewAssessmentUseCase(assessmentRepo, vehicleRepo, userRepo, workshopRepo, workOrderRepo, quotationRepo, publisher)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, assessmentRepo, publisher, cfg.InvoiceTaxRate)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, assessmentRepo, userRepo, publisher)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, workOrderRepo, paymentGateway, publisher, cfg.InvoiceTaxRate)

	return authUseCase, Handlers{
		Auth:       handlers.NewAuthHandler(authUseCase),
		User:       handlers.NewUserHandler(userUseCase),
		Workshop:   handlers.NewWorkshopHandler(workshopUseCase),
		Vehicle:    handlers.NewVehicleHandler(vehicleUseCase),
		Assessment: handlers.NewAssessmentHandler(assessmentUseCase),
		Quotation:  handlers.NewQuotationHandler(quotationUseCase, assessmentUseCase),
		WorkOrder:  handlers.NewWorkOrderHandler(workOrderUseCase, assessmentUseCase),
		Invoice:    handlers.NewInvoiceHandler(invoiceUseCase, workOrderUseCase),
	}
}

// newEventPublisher falls back to the log publisher when Redis is not set or
// does not answer.
func newEventPublisher(ctx context.Context, cfg config.Config) interfaces.IEventPublisher {
	if cfg.RedisAddr == "" {
		return events.LogPublisher{}
	}
	client, err := events.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Printf("Redis not available, events will only be logged: %v", err)
		return events.LogPublisher{}
	}
	return events.NewRedisPublisher(client, cfg.EventsChannel)
}

// Register mounts the public routes, the /v1 API and the companion /api
// endpoints on r.
func Register(r *gin.Engine, authUseCase usecase.IAuthUseCase, h Handlers) {
	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)

	private := v1.Group("", requireAuth(authUseCase))
	addUserRoutes(private, h.User)
	addWorkshopRoutes(private, h.Workshop)
	addVehicleRoutes(private, h.Vehicle)
	addAssessmentRoutes(private, h.Assessment, h.Quotation)
	addWorkOrderRoutes(private, h.WorkOrder)
	addBillingRoutes(private, h.Quotation, h.Invoice)

	addCompanionRoutes(r.Group("/api", requireAuth(authUseCase)), h.Workshop)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
