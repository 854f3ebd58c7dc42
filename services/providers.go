package services

import (
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(NewClassifierService),
	fx.Provide(NewStatisticsService),
	fx.Provide(NewGraphService),
	fx.Provide(NewInventoryService),
)
