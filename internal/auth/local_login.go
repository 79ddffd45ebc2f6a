package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devagent-backend/internal/database"
	"devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type registerInfo struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required"`
}

type loginInfo struct {
	// Username holds either username or email
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned after successful registration or login
type TokenResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

// LocalRegisterHandler creates developer account and logs it in
// @Summary Register developer account
// @Description Username and email must be unique and password must be at least 8 characters long
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "Account information"
// @Success 201 {object} TokenResponse "Account created"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 409 {object} utilities.ErrorResponse "Username or email already exist"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) LocalRegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username, valid email and password must be provided",
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		EditableUserInfo: model.EditableUserInfo{
			Username: strings.TrimSpace(info.Username),
			Email:    strings.ToLower(strings.TrimSpace(info.Email)),
		},
		Password: hashedPassword,
	}
	if err := lh.DB.Create(&user).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			LogAuthAttempt("Local", false, user.Username, "username or email taken")
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "Username or email already exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	lh.respondWithToken(c, http.StatusCreated, user)
}

// LocalLoginHandler logs developer in with username or email and password
// @Summary Login with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} TokenResponse "Logged in"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "User not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	identifier := strings.TrimSpace(info.Username)
	var user model.User
	err := lh.DB.Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt("Local", false, identifier, "user not found")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt("Local", false, identifier, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	lh.respondWithToken(c, http.StatusOK, user)
}

func (lh *LocalAuthHandler) respondWithToken(c *gin.Context, status int, user model.User) {
	accessToken, expiresAt, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("Local", true, user.Username, "")
	c.JSON(status, TokenResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}
