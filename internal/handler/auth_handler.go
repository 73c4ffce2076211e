package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/db"
	"github.com/greenpark/cms/internal/service"
)

type signUpPayload struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type signInPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfilePayload struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Avatar *string `json:"avatar" binding:"omitempty,url"`
}

// SignUp registers an account. The response envelope never carries the
// password hash.
func (a *API) SignUp(c *gin.Context) {
	var payload signUpPayload
	if !bindJSON(c, &payload) {
		return
	}

	user, err := a.users.SignUp(service.SignUpInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusConflict, CodeConflict, "email already registered")
			return
		}
		respondInternal(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusCreated, gin.H{"status": 201, "message": "account created", "result": nil})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  201,
		"message": "account created",
		"result": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"createdAt": user.CreatedAt,
		},
	})
}

// SignIn checks the static admin credentials and sets the admin-session
// cookie the context builder recognizes.
func (a *API) SignIn(c *gin.Context) {
	var payload signInPayload
	if !bindJSON(c, &payload) {
		return
	}

	if a.admin.Email == "" || a.admin.Password == "" ||
		!strings.EqualFold(payload.Email, a.admin.Email) ||
		payload.Password != a.admin.Password {
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
		return
	}

	c.SetCookie(AdminSessionCookie, "true", int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": 200, "message": "signed in", "user": a.adminIdentity()})
}

// SignOut clears the admin-session cookie.
func (a *API) SignOut(c *gin.Context) {
	c.SetCookie(AdminSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": 200, "message": "signed out"})
}

// GetMe returns the caller's own profile. Without persistence it
// synthesizes a record from the request identity instead of failing.
func (a *API) GetMe(c *gin.Context) {
	user := currentUser(c)

	if a.db == nil {
		now := time.Now()
		c.JSON(http.StatusOK, gin.H{"user": db.User{
			Model: db.Model{ID: user.ID, CreatedAt: now, UpdatedAt: now},
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}})
		return
	}

	record, err := a.users.Get(user.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "user not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": record})
}

// UpdateProfile updates the caller's own name/avatar.
func (a *API) UpdateProfile(c *gin.Context) {
	var payload updateProfilePayload
	if !bindJSON(c, &payload) {
		return
	}

	user := currentUser(c)

	if a.db == nil {
		name := user.Name
		if payload.Name != nil {
			name = *payload.Name
		}
		avatar := ""
		if payload.Avatar != nil {
			avatar = *payload.Avatar
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  200,
			"message": "profile updated",
			"result": gin.H{
				"id":     user.ID,
				"name":   name,
				"email":  user.Email,
				"avatar": avatar,
				"role":   user.Role,
			},
		})
		return
	}

	record, err := a.users.UpdateProfile(user.ID, service.ProfileUpdateInput{
		Name:   payload.Name,
		Avatar: payload.Avatar,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "user not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": 200, "message": "profile updated", "result": record})
}
