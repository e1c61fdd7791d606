package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/config"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/handlers"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/middleware"
)

// newRouter wires middleware and routes around the expense handler.
func newRouter(cfg *config.Config, expenseHandler *handlers.ExpenseHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	if !cfg.AuthDisabled {
		v1.Use(middleware.AuthMiddleware())
	}

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/reasons", expenseHandler.GetReasons)
	expenses.GET("/summary", expenseHandler.GetSummary)
	expenses.GET("/export", expenseHandler.ExportExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	return router
}
