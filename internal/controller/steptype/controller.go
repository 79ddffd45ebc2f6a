// Package steptype serves recruitment step types defined by the user
package steptype

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"devagent-backend/internal/controller"
	"devagent-backend/internal/database"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

type StepTypeController struct {
	DB *database.DBinstanceStruct
}

func NewStepTypeController(db *database.DBinstanceStruct) *StepTypeController {
	return &StepTypeController{
		DB: db,
	}
}

type stepTypeInfo struct {
	Name string `json:"name" binding:"required,max=32"`
}

// ListStepTypes responds with step types added by user
// @Summary List own step types
// @Tags StepType
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.StepType "Step types"
// @Router /step-types [get]
func (sc *StepTypeController) ListStepTypes(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	types := []model.StepType{}
	if err := sc.DB.WithContext(c.Request.Context()).
		Where("added_by_id = ?", userID).
		Order("name ASC").
		Find(&types).Error; err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateStepType adds step type owned by user
// @Summary Add step type
// @Tags StepType
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param step_type body stepTypeInfo true "Step type name"
// @Success 201 {object} model.StepType "Created step type"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /step-types [post]
func (sc *StepTypeController) CreateStepType(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	var info stepTypeInfo
	if !controller.BindJSON(c, &info) {
		return
	}
	name := strings.TrimSpace(info.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Step type name must be provided"})
		return
	}

	stepType := model.StepType{Name: name, AddedByID: userID}
	if err := sc.DB.WithContext(c.Request.Context()).Omit("AddedBy").Create(&stepType).Error; err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stepType)
}
