package routes

import (
	"taller_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders     = "/work-orders"
	PathProcesses      = "/processes"
	PathPartsRequests  = "/parts-requests"
	PathAuthorizations = "/authorizations"
	PathInvoices       = "/invoices"
	PathPayments       = "/payments"
	PathCommissions    = "/commissions"
)

type workshopHandlers struct {
	workOrders     *handlers.WorkOrderHandler
	processes      *handlers.ProcessHandler
	partsRequests  *handlers.PartsRequestHandler
	authorizations *handlers.AuthorizationHandler
	invoices       *handlers.InvoiceHandler
	payments       *handlers.PaymentHandler
	commissions    *handlers.CommissionHandler
}

func addWorkshopRoutes(rg *gin.RouterGroup, h workshopHandlers) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.workOrders.CreateWorkOrder)
		workOrders.GET("", h.workOrders.ListWorkOrders)
		workOrders.GET("/:id", h.workOrders.GetWorkOrder)
		workOrders.POST("/:id/transitions", h.workOrders.RequestTransition)
		workOrders.POST("/:id/recalculate", h.workOrders.RecalculateTotals)

		// Per-order ledgers.
		workOrders.GET("/:id/processes", h.processes.ListByWorkOrder)
		workOrders.GET("/:id/parts-requests", h.partsRequests.ListByWorkOrder)
		workOrders.GET("/:id/authorizations", h.authorizations.ListByWorkOrder)
		workOrders.GET("/:id/invoice", h.invoices.GetLatestByWorkOrder)
		workOrders.GET("/:id/payments", h.payments.ListByWorkOrder)
		workOrders.GET("/:id/balance", h.payments.GetBalance)
		workOrders.GET("/:id/commissions", h.commissions.ListByWorkOrder)
	}

	processes := rg.Group(PathProcesses)
	{
		processes.POST("", h.processes.CreateProcess)
		processes.GET("/:id", h.processes.GetProcess)
		processes.PATCH("/:id/start", h.processes.StartProcess)
		processes.PATCH("/:id/complete", h.processes.CompleteProcess)
	}

	partsRequests := rg.Group(PathPartsRequests)
	{
		partsRequests.POST("", h.partsRequests.RequestPart)
		partsRequests.GET("/:id", h.partsRequests.GetPartsRequest)
		partsRequests.PATCH("/:id/order", h.partsRequests.MarkOrdered)
		partsRequests.PATCH("/:id/receive", h.partsRequests.MarkReceived)
	}

	authorizations := rg.Group(PathAuthorizations)
	{
		authorizations.POST("", h.authorizations.RequestAuthorization)
		authorizations.GET("/:id", h.authorizations.GetAuthorization)
		authorizations.PATCH("/:id/approve", h.authorizations.ApproveAuthorization)
		authorizations.PATCH("/:id/reject", h.authorizations.RejectAuthorization)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.invoices.GenerateInvoice)
		invoices.GET("/:id", h.invoices.GetInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.payments.RecordPayment)
		payments.DELETE("/:id", h.payments.DeletePayment)
	}

	commissions := rg.Group(PathCommissions)
	{
		commissions.POST("", h.commissions.CreateCommission)
		commissions.GET("/:id", h.commissions.GetCommission)
		commissions.PATCH("/:id/status", h.commissions.SetStatus)
		commissions.PATCH("/:id/pay", h.commissions.MarkPaid)
	}

	rg.GET("/employees/:employee_id/commissions", h.commissions.ListByEmployee)
}
