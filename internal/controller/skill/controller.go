// Package skill serves globally shared skill tags
package skill

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"devagent-backend/internal/controller"
	"devagent-backend/internal/database"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

type SkillController struct {
	DB *database.DBinstanceStruct
}

func NewSkillController(db *database.DBinstanceStruct) *SkillController {
	return &SkillController{
		DB: db,
	}
}

type skillInfo struct {
	Name string `json:"name" binding:"required,max=64"`
}

// ListSkills responds with every skill sorted by name
// @Summary List skills
// @Tags Skill
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Skill "Skills"
// @Router /skills [get]
func (sc *SkillController) ListSkills(c *gin.Context) {
	skills := []model.Skill{}
	if err := sc.DB.WithContext(c.Request.Context()).Order("name ASC").Find(&skills).Error; err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// CreateSkill adds new skill tag
// @Summary Add skill
// @Tags Skill
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param skill body skillInfo true "Skill name"
// @Success 201 {object} model.Skill "Created skill"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 409 {object} utilities.ErrorResponse "Skill already exist"
// @Router /skills [post]
func (sc *SkillController) CreateSkill(c *gin.Context) {
	var info skillInfo
	if !controller.BindJSON(c, &info) {
		return
	}
	name := strings.TrimSpace(info.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Skill name must be provided"})
		return
	}

	skill := model.Skill{Name: name}
	if err := sc.DB.WithContext(c.Request.Context()).Create(&skill).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Skill already exist"})
			return
		}
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}
