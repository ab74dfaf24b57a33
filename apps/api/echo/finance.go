package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo/core/finance"
)

func registerFinanceAPI(g *echo.Group, s *Server) {
	svc := s.deps.FinanceSvc
	transactions := newCollectionAPI("Transactions", &finance.Transactions, s.deps.Validate, svc.QueryTransactions, svc.GetTransactionByID)
	budgets := newCollectionAPI("Budgets", &finance.Budgets, s.deps.Validate, svc.QueryBudgets, svc.GetBudgetByID)
	invoices := newCollectionAPI("Invoices", &finance.Invoices, s.deps.Validate, svc.QueryInvoices, svc.GetInvoiceByID)

	g.GET("/stats", statsHandler(svc.Stats))

	tg := g.Group("/transactions")
	tg.GET("", transactions.list)
	tg.GET("/export", transactions.export)
	tg.GET("/:id", transactions.retrieve)

	bg := g.Group("/budgets")
	bg.GET("", budgets.list)
	bg.GET("/export", budgets.export)
	bg.GET("/:id", budgets.retrieve)

	ig := g.Group("/invoices")
	ig.GET("", invoices.list)
	ig.GET("/export", invoices.export)
	ig.GET("/:id", invoices.retrieve)
}
