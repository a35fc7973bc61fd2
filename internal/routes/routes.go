package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	// --- РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)

	// --- СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, cacheRepo, logger)
	teamService := services.NewTeamService(teamRepo, txManager, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, cacheRepo, txManager, cfg.Cache.StatsTTL, logger)

	// --- КОНТРОЛЛЕРЫ ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, requestService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	reportCtrl := controllers.NewReportController(requestService, logger)

	api.GET("/health", controllers.HealthCheck)

	runEquipmentRouter(api, equipmentCtrl)
	runTeamRouter(api, teamCtrl)
	runRequestRouter(api, requestCtrl, reportCtrl)

	logger.Info("InitRouter: Маршруты созданы")
}
