package handlers

import (
	"errors"
	"net/http"

	request "donations_core/internal/adapter/http/dto/request"
	response "donations_core/internal/adapter/http/dto/response"
	"donations_core/internal/usecase"
	"donations_core/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCampaignPayload = pkg.NewDomainErrorSimple("INVALID_CAMPAIGN_INPUT", "Invalid campaign payload", http.StatusBadRequest)
)

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
}

func NewCampaignHandler(uc usecase.ICampaignUseCase) *CampaignHandler {
	return &CampaignHandler{usecase: uc}
}

// CreateCampaign godoc
// @Summary      Create campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CampaignRequest  true  "Campaign"
// @Success      201      {object}  response.CampaignResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var payload request.CampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Create(c.Request.Context(), payload.Title, payload.Goal, payload.Currency)
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCampaign(campaign))
}

// GetCampaign godoc
// @Summary      Get campaign
// @Tags         campaigns
// @Produce      json
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  response.CampaignResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

// CloseCampaign godoc
// @Summary      Close campaign
// @Tags         campaigns
// @Produce      json
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  response.CampaignResponse
// @Router       /campaigns/{id}/close [patch]
func (h *CampaignHandler) CloseCampaign(c *gin.Context) {
	campaign, err := h.usecase.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignID), errors.Is(err, usecase.ErrInvalidCampaignTitle), errors.Is(err, usecase.ErrInvalidCampaignGoal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
