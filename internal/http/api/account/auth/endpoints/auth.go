package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/http/api"
	"github.com/hymuslim/hymuslim-server/internal/http/api/account/auth/packets"
	"github.com/hymuslim/hymuslim-server/internal/http/middleware"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

type AuthController struct {
	store  db.Store
	secret string
}

func NewAuthController(store db.Store, secret string) *AuthController {
	return &AuthController{store: store, secret: secret}
}

// RegisterAuthRoutes mounts the public signup/login endpoints and the
// token-protected profile endpoint.
func RegisterAuthRoutes(r gin.IRoutes, store db.Store, secret string) {
	ctl := NewAuthController(store, secret)
	r.POST("/auth/signup", api.ResolveEndpoint(ctl.signup))
	r.POST("/auth/login", api.ResolveEndpoint(ctl.login))
}

// RegisterProfileRoutes mounts the endpoints that need an authenticated
// account.
func RegisterProfileRoutes(r gin.IRoutes) {
	r.GET("/auth/current_profile", api.ResolveEndpointWithAuth(currentProfile))
}

// POST /api/account/auth/signup
func (a *AuthController) signup(ctx *gin.Context) (any, *api.Error) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := a.store.GetUserByEmail(request.Email); err == nil {
		return nil, &api.Error{Code: http.StatusConflict, Message: "email already registered"}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not check email"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(userID, a.secret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}

	log.Info().Int("user", userID).Msg("account created")
	ctx.JSON(http.StatusCreated, gin.H{"token": token})
	return nil, nil
}

// POST /api/account/auth/login
func (a *AuthController) login(ctx *gin.Context) (any, *api.Error) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	user, err := a.store.GetUserByEmail(request.Email)
	if err != nil || !middleware.CheckPassword(user.HashedPassword, request.Password) {
		return nil, &api.Error{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(user.ID, a.secret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}
	return gin.H{"token": token}, nil
}

// GET /api/account/auth/current_profile
func currentProfile(_ *gin.Context, user *model.User) (any, *api.Error) {
	return user, nil
}
