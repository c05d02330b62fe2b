package main

import (
	"github.com/gin-gonic/gin"

	"lancerdesk.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	portfolioHandler *handlers.PortfolioHandler
	clientHandler    *handlers.ClientHandler
	invoiceHandler   *handlers.InvoiceHandler
	taskHandler      *handlers.TaskHandler
	goalHandler      *handlers.GoalHandler
	eventHandler     *handlers.EventHandler
	authMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Public portfolio view (shared profile pages)
		v1.GET("/portfolios/:id", d.portfolioHandler.GetPortfolio)

		// Portfolio routes (protected)
		portfolios := v1.Group("/portfolios")
		portfolios.Use(d.authMiddleware)
		{
			portfolios.GET("", d.portfolioHandler.ListPortfolios)
			portfolios.PUT("", d.portfolioHandler.SavePortfolio)
			portfolios.DELETE("/:id", d.portfolioHandler.DeletePortfolio)
		}

		// Client routes (protected)
		clients := v1.Group("/clients")
		clients.Use(d.authMiddleware)
		{
			clients.POST("", d.clientHandler.CreateClient)
			clients.GET("", d.clientHandler.ListClients)
			clients.GET("/:id", d.clientHandler.GetClient)
			clients.PUT("/:id", d.clientHandler.UpdateClient)
			clients.DELETE("/:id", d.clientHandler.DeleteClient)
		}

		// Invoice routes (protected)
		invoices := v1.Group("/invoices")
		invoices.Use(d.authMiddleware)
		{
			invoices.POST("", d.invoiceHandler.CreateInvoice)
			invoices.GET("", d.invoiceHandler.ListInvoices)
			invoices.GET("/:id", d.invoiceHandler.GetInvoice)
			invoices.PUT("/:id", d.invoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", d.invoiceHandler.DeleteInvoice)
			invoices.POST("/:id/send", d.invoiceHandler.SendInvoice)
			invoices.POST("/:id/cancel", d.invoiceHandler.CancelInvoice)
			invoices.POST("/:id/payments", d.invoiceHandler.RecordPayment)
			invoices.GET("/:id/payments", d.invoiceHandler.ListPayments)
		}

		// Task routes (protected)
		tasks := v1.Group("/tasks")
		tasks.Use(d.authMiddleware)
		{
			tasks.POST("", d.taskHandler.CreateTask)
			tasks.GET("", d.taskHandler.ListTasks)
			tasks.PUT("/:id", d.taskHandler.UpdateTask)
			tasks.DELETE("/:id", d.taskHandler.DeleteTask)
		}

		// Goal routes (protected)
		goals := v1.Group("/goals")
		goals.Use(d.authMiddleware)
		{
			goals.POST("", d.goalHandler.CreateGoal)
			goals.GET("", d.goalHandler.ListGoals)
			goals.PATCH("/:id/progress", d.goalHandler.UpdateGoalProgress)
			goals.DELETE("/:id", d.goalHandler.DeleteGoal)
		}

		// Calendar event routes (protected)
		events := v1.Group("/events")
		events.Use(d.authMiddleware)
		{
			events.POST("", d.eventHandler.CreateEvent)
			events.GET("", d.eventHandler.ListEvents)
			events.PUT("/:id", d.eventHandler.UpdateEvent)
			events.DELETE("/:id", d.eventHandler.DeleteEvent)
		}
	}
}
