package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/vamsipakalapati4107/finlit4/config"
	"github.com/vamsipakalapati4107/finlit4/internal/application/usecase"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/ai"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"
	"github.com/vamsipakalapati4107/finlit4/internal/middleware"
	handlers "github.com/vamsipakalapati4107/finlit4/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// 1. Загрузка конфига
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer lg.Sync()

	// 2. Подключение к БД
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		lg.Fatal("failed to connect to db", "error", err)
	}

	// 3. Миграции и стартовый контент
	lg.Info("running migrations")
	if err := repository.Migrate(db); err != nil {
		lg.Fatal("failed to migrate db", "error", err)
	}
	if err := repository.Seed(db); err != nil {
		lg.Fatal("failed to seed db", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		lg.Fatal("failed to connect to redis", "error", err)
	}

	// 4. Инициализация слоев
	profileRepo := repository.NewProfileRepository(db, rdb)
	expenseRepo := repository.NewExpenseRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	courseRepo := repository.NewCourseRepository(db, rdb)

	generator := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)

	progressService := usecase.NewProgressService(profileRepo, lg)
	achievementService := usecase.NewAchievementService(achievementRepo, profileRepo, expenseRepo, quizRepo)
	analyticsService := usecase.NewAnalyticsService(expenseRepo, budgetRepo)
	expenseService := usecase.NewExpenseService(expenseRepo, progressService, achievementService, lg)
	budgetService := usecase.NewBudgetService(budgetRepo, analyticsService)
	goalService := usecase.NewGoalService(goalRepo, progressService, lg)
	quizService := usecase.NewQuizService(quizRepo, progressService, achievementService, lg)
	courseService := usecase.NewCourseService(courseRepo, profileRepo, progressService, achievementService, generator, lg)
	shopService := usecase.NewShopService(profileRepo, lg)
	profileService := usecase.NewProfileService(profileRepo, lg)

	limiter := middleware.NewRateLimiter(rdb)

	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	}

	// 5. HTTP сервер
	r := handlers.NewRouter(
		handlers.NewProfileHandler(profileService, progressService, achievementService),
		handlers.NewExpenseHandler(expenseService, analyticsService),
		handlers.NewBudgetHandler(budgetService),
		handlers.NewGoalHandler(goalService),
		handlers.NewCourseHandler(courseService),
		handlers.NewQuizHandler(quizService),
		handlers.NewShopHandler(shopService),
		limiter,
		cfg.JWTSecret,
		origins,
	)

	lg.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", "error", err)
	}
}
