package main

import (
	"log"
	"net/http"

	"github.com/samharre/trivia-api/internal/config"
	"github.com/samharre/trivia-api/internal/database"
	"github.com/samharre/trivia-api/internal/handlers"
	"github.com/samharre/trivia-api/internal/services"

	_ "github.com/samharre/trivia-api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     Question bank for the trivia app: categories, question CRUD, search and quiz rounds.
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedCategories(db)

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(categoryService, questionService)
	quizHandler := handlers.NewQuizHandler(questionService)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Routing misses respond with the same JSON envelope as handler failures.
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/categories", categoryHandler.GetCategories)
	r.GET("/categories/:id/questions", categoryHandler.GetCategoryQuestions)
	r.GET("/questions", questionHandler.GetQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.PlayQuiz)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
