package router

import (
	"time"

	"autogasto/api"
	"autogasto/config"
	_ "autogasto/docs"
	"autogasto/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter registra middlewares y rutas
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(middleware.RateLimit(300, time.Minute))

	// Gastos
	expenseHandler := api.NewExpenseHandler()
	expenses := r.Group("/expenses")
	{
		expenses.GET("", expenseHandler.List)
		expenses.POST("", expenseHandler.Create)
		expenses.GET("/:id", expenseHandler.Get)
		expenses.PUT("/:id", expenseHandler.Update)
		expenses.DELETE("/:id", expenseHandler.Delete)
		expenses.GET("/category/:category", expenseHandler.ByCategory)
		expenses.GET("/monthly/:year/:month", expenseHandler.Monthly)
	}

	// Combustible
	fuelHandler := api.NewFuelRecordHandler()
	fuelRecords := r.Group("/fuel-records")
	{
		fuelRecords.GET("", fuelHandler.List)
		fuelRecords.POST("", fuelHandler.Create)
		fuelRecords.GET("/efficiency", fuelHandler.Efficiency)
		fuelRecords.GET("/monthly/:year/:month", fuelHandler.Monthly)
		fuelRecords.GET("/:id", fuelHandler.Get)
		fuelRecords.PUT("/:id", fuelHandler.Update)
		fuelRecords.DELETE("/:id", fuelHandler.Delete)
	}

	// Recordatorios
	reminderHandler := api.NewReminderHandler()
	reminders := r.Group("/reminders")
	{
		reminders.GET("", reminderHandler.List)
		reminders.POST("", reminderHandler.Create)
		reminders.GET("/pending", reminderHandler.Pending)
		reminders.GET("/upcoming/:days", reminderHandler.Upcoming)
		reminders.GET("/:id", reminderHandler.Get)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
		reminders.PUT("/:id/complete", reminderHandler.Complete)
	}

	// Dashboard y reportes
	dashboardHandler := api.NewDashboardHandler()
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", dashboardHandler.Index)
		dashboard.GET("/monthly-report/:year/:month", dashboardHandler.MonthlyReport)
		dashboard.GET("/yearly-report/:year", dashboardHandler.YearlyReport)
	}

	// Exportación
	exportHandler := api.NewExportHandler()
	export := r.Group("/export")
	{
		export.GET("/expenses/csv", exportHandler.ExportCSV)
		export.GET("/expenses/excel", exportHandler.ExportExcel)
	}

	// Documentación
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Chequeo de salud
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware middleware CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
