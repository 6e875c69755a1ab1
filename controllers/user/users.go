package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/apperrors"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

const AdminKeyHeader = "X-Admin-Key"

// -------- Request Structs --------

// RegisterRequest accepts either "name" or "username" for the user name.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	AdminKey string `json:"adminKey"`
}

func (r RegisterRequest) input() services.RegisterInput {
	username := r.Username
	if strings.TrimSpace(username) == "" {
		username = r.Name
	}
	return services.RegisterInput{Username: username, Email: r.Email, Password: r.Password}
}

// LoginRequest accepts "identifier", "email" or "username".
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

func (r LoginRequest) identifier() string {
	for _, v := range []string{r.Identifier, r.Email, r.Username} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// -------- Handlers --------

// POST /api/users/register/customer
func RegisterCustomer(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		user, err := users.RegisterCustomer(c.Request.Context(), req.input())
		if err != nil {
			response.Error(c, err, "Registration failed")
			return
		}
		response.Success(c, http.StatusCreated, "Registration successful!", gin.H{
			"userId": user.ID,
			"role":   user.Role,
		})
	}
}

// POST /api/users/register/admin
func RegisterAdmin(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		key := req.AdminKey
		if key == "" {
			key = c.GetHeader(AdminKeyHeader)
		}

		user, err := users.RegisterAdmin(c.Request.Context(), req.input(), key)
		if err != nil {
			response.Error(c, err, "Registration failed")
			return
		}
		response.Success(c, http.StatusCreated, "Admin registered successfully!", gin.H{
			"userId": user.ID,
			"role":   user.Role,
		})
	}
}

// POST /api/users/login
func Login(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		res, err := users.Login(c.Request.Context(), req.identifier(), req.Password)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindUnexpected {
				response.Internal(c, err, "Login failed")
				return
			}
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		payload := gin.H{
			"userId":   res.User.ID,
			"username": res.User.Username,
			"email":    res.User.Email,
			"role":     res.User.Role,
			"isAdmin":  res.User.Role == models.RoleAdmin,
		}
		if res.Token != "" {
			payload["token"] = res.Token
		}
		response.Success(c, http.StatusOK, "Login successful!", payload)
	}
}

// GET /api/users/:id
func GetProfile(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		user, err := users.GetProfile(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to get user")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"user": user})
	}
}

// PUT /api/users/:id/update
func UpdateProfile(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		var upd services.ProfileUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		user, err := users.UpdateProfile(c.Request.Context(), id, upd)
		if err != nil {
			response.Error(c, err, "Failed to update profile")
			return
		}
		response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
	}
}
