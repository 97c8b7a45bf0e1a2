//go:build wireinject
// +build wireinject

package di

import (
	"crmdigest/internal"
	"crmdigest/internal/controllers"
	"crmdigest/internal/crm"
	"crmdigest/internal/mail"
	"crmdigest/internal/providers"
	"crmdigest/internal/services"
	"crmdigest/internal/statistic"
	"crmdigest/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		statistic.NewZstdCompressor,
		crm.NewClient,
		mail.ProvideRenderer,
		mail.NewSmtpTransport,
		services.NewReportService,
		statistic.NewFileManager,
		statistic.NewScheduler,
		controllers.NewHealthController,
		controllers.NewReportController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
