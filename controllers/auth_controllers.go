package controllers

import (
	"context"
	"log"

	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AuthController handles login, registration and profile reads
type AuthController struct {
	auth  *services.AuthService
	store *services.HotelStore
	rdb   *redis.Client
}

// NewAuthController creates an AuthController
func NewAuthController(auth *services.AuthService, store *services.HotelStore, rdb *redis.Client) *AuthController {
	return &AuthController{
		auth:  auth,
		store: store,
		rdb:   rdb,
	}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, token, err := ctl.auth.Login(input.Email, input.Password)
	if err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	if err := services.SaveSession(context.Background(), ctl.rdb, user.ID, &userResponse); err != nil {
		log.Printf("Failed to persist session for user %d: %v", user.ID, err)
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": token,
	})
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, token, err := ctl.auth.Register(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	if err := services.SaveSession(context.Background(), ctl.rdb, user.ID, &userResponse); err != nil {
		log.Printf("Failed to persist session for user %d: %v", user.ID, err)
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": token,
	})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if ok {
		if err := services.ClearSession(context.Background(), ctl.rdb, userID); err != nil {
			log.Printf("Failed to clear session for user %d: %v", userID, err)
		}
	}
	response.Success(c, nil)
}

func (ctl *AuthController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	// Prefer the persisted session blob; fall back to the store.
	if session, err := services.GetSession(context.Background(), ctl.rdb, userID); err == nil && session != nil {
		response.Success(c, session)
		return
	}

	user, err := ctl.store.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}
