// Package company serves companies added by the user
package company

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devagent-backend/internal/controller"
	"devagent-backend/internal/database"
	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

// CompanyController holds DB reference for company handlers
type CompanyController struct {
	DB *database.DBinstanceStruct
}

// NewCompanyController creates a new instance of CompanyController
func NewCompanyController(db *database.DBinstanceStruct) *CompanyController {
	return &CompanyController{
		DB: db,
	}
}

// companyInfo mirrors model.EditableCompanyInfo, empty fields are kept on merge
type companyInfo struct {
	Name     string  `json:"name" binding:"max=64"`
	Location *string `json:"location" binding:"omitempty,max=32"`
	Website  *string `json:"website" binding:"omitempty,max=64,url"`
}

// ListCompanies responds with companies added by user, sorted by name
// @Summary List own companies
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Company "Companies"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies [get]
func (cc *CompanyController) ListCompanies(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	companies := []model.Company{}
	if err := cc.DB.WithContext(c.Request.Context()).
		Where("added_by_id = ?", userID).
		Order("name ASC").
		Find(&companies).Error; err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// CreateCompany adds company owned by user
// @Summary Add company
// @Tags Company
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company body companyInfo true "Company information"
// @Success 201 {object} model.Company "Created company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 409 {object} utilities.ErrorResponse "Company with this name already exist"
// @Router /companies [post]
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}

	var info companyInfo
	if !controller.BindJSON(c, &info) {
		return
	}
	info.Name = strings.TrimSpace(info.Name)
	if info.Name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Company name must be provided"})
		return
	}

	company := model.Company{AddedByID: userID}
	utilities.MergeNonEmpty(&company.EditableCompanyInfo, &info)

	if err := cc.DB.WithContext(c.Request.Context()).Omit("AddedBy").Create(&company).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Company with this name already exist"})
			return
		}
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// UpdateCompany edits company owned by user
// @Summary Update company
// @Tags Company
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Company ID"
// @Param company body companyInfo true "Changed information"
// @Success 200 {object} model.Company "Updated company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 403 {object} utilities.ErrorResponse "Company added by another user"
// @Failure 404 {object} utilities.ErrorResponse "Company not exist"
// @Failure 409 {object} utilities.ErrorResponse "Company with this name already exist"
// @Router /companies/{id} [patch]
func (cc *CompanyController) UpdateCompany(c *gin.Context) {
	userID, ok := controller.CurrentUserID(c)
	if !ok {
		return
	}
	companyID, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}

	var info companyInfo
	if !controller.BindJSON(c, &info) {
		return
	}

	db := cc.DB.WithContext(c.Request.Context())
	var company model.Company
	if err := db.Take(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.RespondError(c, fmt.Errorf("company %d: %w", companyID, lifecycle.ErrNotFound))
			return
		}
		controller.RespondError(c, err)
		return
	}
	if company.AddedByID != userID {
		controller.RespondError(c, fmt.Errorf("company %d belongs to another user: %w", companyID, lifecycle.ErrPermissionDenied))
		return
	}

	info.Name = strings.TrimSpace(info.Name)
	utilities.MergeNonEmpty(&company.EditableCompanyInfo, &info)
	if err := db.Omit("AddedBy").Save(&company).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Company with this name already exist"})
			return
		}
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
