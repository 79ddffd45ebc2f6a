// Package offer serves tracked job applications and their status transitions
package offer

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devagent-backend/internal/controller"
	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

// OfferController exposes OfferService and step creation over HTTP
type OfferController struct {
	Offers *lifecycle.OfferService
	Steps  *lifecycle.StepService
}

// NewOfferController creates controller on top of given services
func NewOfferController(offers *lifecycle.OfferService, steps *lifecycle.StepService) *OfferController {
	return &OfferController{
		Offers: offers,
		Steps:  steps,
	}
}

type listQuery struct {
	Archived bool `form:"archived"`
}

// ListOffers responds with active offers of user, or archived ones with ?archived=true
// @Summary List own offers
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param archived query bool false "List finished offers instead of active ones"
// @Success 200 {array} model.OfferResponse "Offers, recently updated first"
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /offers [get]
func (oc *OfferController) ListOffers(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "archived must be true or false"})
		return
	}

	offers, err := oc.Offers.List(c.Request.Context(), userID, lifecycle.ListFilter{Archived: q.Archived})
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	resp := make([]model.OfferResponse, 0, len(offers))
	for i := range offers {
		resp = append(resp, offers[i].ToOfferResponse())
	}
	c.JSON(http.StatusOK, resp)
}

// CreateOffer creates offer in CREATED status
// @Summary Create offer
// @Description Company may be referenced by company_id or created inline with new_company.
// @Description Skills are created when they do not exist yet.
// @Tags Offer
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param offer body lifecycle.OfferAttrs true "Offer attributes"
// @Success 201 {object} model.OfferResponse "Created offer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /offers [post]
func (oc *OfferController) CreateOffer(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	var attrs lifecycle.OfferAttrs
	if !controller.BindJSON(c, &attrs) {
		return
	}

	offer, err := oc.Offers.Create(c.Request.Context(), userID, attrs)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer.ToOfferResponse())
}

// GetOffer responds with offer, its steps and derived values
// @Summary Get offer detail
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.OfferResponse "Offer"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id} [get]
func (oc *OfferController) GetOffer(c *gin.Context) {
	oc.respondWith(c, http.StatusOK, oc.Offers.Get)
}

// UpdateOffer edits offer attributes. Status can only change through transitions.
// @Summary Update offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Param offer body lifecycle.OfferAttrs true "Changed attributes"
// @Success 200 {object} model.OfferResponse "Updated offer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id} [patch]
func (oc *OfferController) UpdateOffer(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	offerID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var attrs lifecycle.OfferAttrs
	if !controller.BindJSON(c, &attrs) {
		return
	}

	offer, err := oc.Offers.Update(c.Request.Context(), userID, offerID, attrs)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer.ToOfferResponse())
}

// DeleteOffer removes offer with all its steps
// @Summary Delete offer
// @Tags Offer
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 204 "Deleted"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id} [delete]
func (oc *OfferController) DeleteOffer(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	offerID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	if err := oc.Offers.Delete(c.Request.Context(), userID, offerID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SendOffer marks created offer as sent
// @Summary Mark application as sent
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.OfferResponse "Offer in APPLICATION_SENT status"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user or not in CREATED status"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id}/send [post]
func (oc *OfferController) SendOffer(c *gin.Context) {
	oc.respondWith(c, http.StatusOK, oc.Offers.Send)
}

// SignContract marks active offer with accepted latest step as signed
// @Summary Sign contract
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.OfferResponse "Offer in CONTRACT_SIGNED status"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user, not active or latest step not positive"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id}/sign-contract [post]
func (oc *OfferController) SignContract(c *gin.Context) {
	oc.respondWith(c, http.StatusOK, oc.Offers.SignContract)
}

// ResignOffer resigns offer and its pending latest step
// @Summary Resign from offer
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Success 200 {object} model.OfferResponse "Offer in RESIGNED status"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id}/resign [post]
func (oc *OfferController) ResignOffer(c *gin.Context) {
	oc.respondWith(c, http.StatusOK, oc.Offers.Resign)
}

// CreateStep adds recruitment step to offer
// @Summary Add recruitment step
// @Description Step with scheduled_on is created as PLANNED. Offer that was not
// @Description active yet becomes ACTIVE.
// @Tags Step
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Param step body lifecycle.StepAttrs true "Step attributes"
// @Success 201 {object} model.StepResponse "Created step"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or step type"
// @Failure 403 {object} utilities.ErrorResponse "Offer of another user"
// @Failure 404 {object} utilities.ErrorResponse "Offer not exist"
// @Router /offers/{id}/steps [post]
func (oc *OfferController) CreateStep(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	offerID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var attrs lifecycle.StepAttrs
	if !controller.BindJSON(c, &attrs) {
		return
	}

	step, err := oc.Steps.Create(c.Request.Context(), userID, offerID, attrs)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, step.ToStepResponse())
}

type offerOperation func(ctx context.Context, developerID uuid.UUID, offerID uint) (*model.Offer, error)

func (oc *OfferController) respondWith(c *gin.Context, status int, op offerOperation) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	offerID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	offer, err := op(c.Request.Context(), userID, offerID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(status, offer.ToOfferResponse())
}
