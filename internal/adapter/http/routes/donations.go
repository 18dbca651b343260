package routes

import (
	"donations_core/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDonations = "/donations"
	PathReturns   = "/returns"
	PathWebhooks  = "/webhooks"
	PathCampaigns = "/campaigns"
)

func addDonationRoutes(rg *gin.RouterGroup, h *handlers.DonationHandler) {
	donations := rg.Group(PathDonations)
	{
		donations.POST("/:method/intents", h.CreateIntent)
		donations.POST("/:method/captures/:reference", h.Capture)
		donations.POST("/:method/payments/:donation_id", h.ProcessPayment)
		donations.GET("/:id", h.GetDonation)
		donations.GET("/:id/history", h.GetHistory)
	}

	rg.GET(PathReturns+"/:method", h.Return)
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/:provider", h.Receive)
}

func addCampaignRoutes(rg *gin.RouterGroup, h *handlers.CampaignHandler) {
	campaigns := rg.Group(PathCampaigns)
	{
		campaigns.POST("", h.CreateCampaign)
		campaigns.GET("/:id", h.GetCampaign)
		campaigns.PATCH("/:id/close", h.CloseCampaign)
	}
}
