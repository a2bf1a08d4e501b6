package components

import (
	"coupon-issuance/internal/handler"
	"coupon-issuance/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAdmissionHandler,
		api.NewCampaignHandler,
		api.NewMonitoringHandler,
	),
	fx.Invoke(handler.NewRouter),
)
