package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/auth"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
)

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the public representation of a user.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// TokenResponse is returned after a successful registration or login.
type TokenResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed. The /me route requires authentication,
// which is why the middleware is passed in.
func RegisterAuthRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", authRequired, GetMe)
}

// @Summary		Register
// @Description	Registers a new user and returns an access token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	TokenResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/api/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return
	}

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Username and password are required"))
		return
	}

	if len(credentials.Password) < 6 {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Password must be at least 6 characters"))
		return
	}

	var existing models.User
	err := models.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		httputil.NewError(c, http.StatusBadRequest, models.ErrUsernameTaken)
		return
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		httputil.ErrorHandler(c, err)
		return
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	user := models.User{Username: username, PasswordHash: hash}
	err = models.DB.Create(&user).Error
	if err != nil {
		// A concurrent registration can still hit the unique index
		httputil.ErrorHandler(c, err)
		return
	}

	token, err := auth.NewToken(user)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		Token: token,
		User:  UserInfo{ID: user.ID, Username: user.Username},
	})
}

// @Summary		Login
// @Description	Logs in with username and password
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/api/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Username and password are required"))
		return
	}

	var user models.User
	err := models.DB.Where("username = ?", strings.TrimSpace(credentials.Username)).First(&user).Error
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, errors.New("Invalid username or password"))
		return
	}

	if auth.CheckPassword(user.PasswordHash, credentials.Password) != nil {
		httputil.NewError(c, http.StatusUnauthorized, errors.New("Invalid username or password"))
		return
	}

	token, err := auth.NewToken(user)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token: token,
		User:  UserInfo{ID: user.ID, Username: user.Username},
	})
}

// @Summary		Current user
// @Description	Returns the currently authenticated user
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserInfo
// @Failure		401	{object}	httputil.HTTPError
// @Router			/api/auth/me [get]
func GetMe(c *gin.Context) {
	claims := currentUser(c)

	c.JSON(http.StatusOK, UserInfo{
		ID:       claims.ID,
		Username: claims.Username,
	})
}
