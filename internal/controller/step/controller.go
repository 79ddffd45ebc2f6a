// Package step serves recruitment steps and their status transitions
package step

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devagent-backend/internal/controller"
	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/model"
)

// StepController exposes StepService over HTTP
type StepController struct {
	Steps *lifecycle.StepService
}

// NewStepController creates controller on top of given service
func NewStepController(steps *lifecycle.StepService) *StepController {
	return &StepController{
		Steps: steps,
	}
}

// GetStep responds with single step
// @Summary Get recruitment step
// @Tags Step
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Success 200 {object} model.StepResponse "Step"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id} [get]
func (sc *StepController) GetStep(c *gin.Context) {
	sc.respondWith(c, sc.Steps.Get)
}

// UpdateStep edits step attributes
// @Summary Update recruitment step
// @Description Setting scheduled_on on created step makes it PLANNED.
// @Tags Step
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Param step body lifecycle.StepAttrs true "Changed attributes"
// @Success 200 {object} model.StepResponse "Updated step"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or step type"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id} [patch]
func (sc *StepController) UpdateStep(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	stepID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var attrs lifecycle.StepAttrs
	if !controller.BindJSON(c, &attrs) {
		return
	}

	step, err := sc.Steps.Update(c.Request.Context(), userID, stepID, attrs)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step.ToStepResponse())
}

// FinishStep marks planned step as waiting for response.
// Step in any other status is returned unchanged.
// @Summary Finish recruitment step
// @Tags Step
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Success 200 {object} model.StepResponse "Step"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id}/finish [post]
func (sc *StepController) FinishStep(c *gin.Context) {
	sc.respondWith(c, sc.Steps.Finish)
}

// AcceptStep records positive response
// @Summary Accept recruitment step
// @Tags Step
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Success 200 {object} model.StepResponse "Step"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id}/accept [post]
func (sc *StepController) AcceptStep(c *gin.Context) {
	sc.respondWith(c, sc.Steps.Accept)
}

// RejectStep records negative response, offer becomes negative too
// @Summary Reject recruitment step
// @Tags Step
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Success 200 {object} model.StepResponse "Step"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id}/reject [post]
func (sc *StepController) RejectStep(c *gin.Context) {
	sc.respondWith(c, sc.Steps.Reject)
}

// ResignStep resigns step, offer becomes resigned too
// @Summary Resign recruitment step
// @Tags Step
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Step ID"
// @Success 200 {object} model.StepResponse "Step"
// @Failure 403 {object} utilities.ErrorResponse "Step of another user"
// @Failure 404 {object} utilities.ErrorResponse "Step not exist"
// @Router /steps/{id}/resign [post]
func (sc *StepController) ResignStep(c *gin.Context) {
	sc.respondWith(c, sc.Steps.Resign)
}

type stepOperation func(ctx context.Context, developerID uuid.UUID, stepID uint) (*model.RecruitmentStep, error)

func (sc *StepController) respondWith(c *gin.Context, op stepOperation) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	stepID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	step, err := op(c.Request.Context(), userID, stepID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step.ToStepResponse())
}
