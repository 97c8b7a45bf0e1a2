package internal

import (
	"crmdigest/internal/controllers"
	"crmdigest/internal/providers"
	"net/http"
)

func InitRoutes(reportController *controllers.ReportController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/send-test-email", http.HandlerFunc(reportController.SendTestEmail))
	routers.Get("/report", http.HandlerFunc(reportController.GetReport))
	routers.Get("/report/preview", http.HandlerFunc(reportController.Preview))
	return routers
}
