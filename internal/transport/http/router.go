package handlers

import (
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	profileHandler *ProfileHandler,
	expenseHandler *ExpenseHandler,
	budgetHandler *BudgetHandler,
	goalHandler *GoalHandler,
	courseHandler *CourseHandler,
	quizHandler *QuizHandler,
	shopHandler *ShopHandler,
	limiter *middleware.RateLimiter,
	jwtSecret string,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	r.GET("/healthz", HealthCheck)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtSecret))
	{
		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.POST("/daily-login", profileHandler.DailyLogin)
		}
		api.GET("/leaderboard", profileHandler.Leaderboard)
		api.GET("/achievements", profileHandler.ListAchievements)

		expenses := api.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}
		api.GET("/analytics/summary", expenseHandler.Summary)

		budgets := api.Group("/budgets")
		{
			budgets.POST("", budgetHandler.Set)
			budgets.GET("", budgetHandler.List)
		}

		goals := api.Group("/goals")
		{
			goals.POST("", goalHandler.Create)
			goals.GET("", goalHandler.List)
			goals.POST("/:id/add", goalHandler.Add)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			// Эти два маршрута могут дергать генерацию, держим их под лимитом
			courses.GET("/:id", limiter.Limit("course_gen", 10, 1*time.Minute), courseHandler.GetOne)
			courses.GET("/:id/lessons/:lessonId", limiter.Limit("lesson_gen", 10, 1*time.Minute), courseHandler.GetLesson)
			courses.POST("/:id/lessons/:lessonId/complete", courseHandler.CompleteLesson)
		}

		quiz := api.Group("/quiz")
		{
			quiz.GET("/questions", quizHandler.Questions)
			quiz.POST("/attempts", quizHandler.SubmitAttempt)
			quiz.GET("/attempts", quizHandler.History)
		}

		shop := api.Group("/shop")
		{
			shop.GET("/avatars", shopHandler.ListAvatars)
			shop.POST("/avatars/:id/purchase", shopHandler.PurchaseAvatar)
		}
	}

	return r
}
