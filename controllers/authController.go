package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Students must register with a campus email address.
	studentEmailDomain = "@cuet.ac.bd"

	// Standard response messages
	msgInvalidInput          = "Invalid input"
	msgUserAlreadyExists     = "User already exists"
	msgStudentEmailRequired  = "Students must use a valid CUET email address"
	msgVendorFieldsRequired  = "Vendor name and location are required"
	msgFailedToHashPassword  = "Failed to hash password"
	msgInvalidCredentials    = "Invalid credentials"
	msgFailedToGenerateToken = "Failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID.Hex(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

type AuthController struct {
	users   stores.UserStore
	vendors stores.VendorStore
}

func NewAuthController(users stores.UserStore, vendors stores.VendorStore) *AuthController {
	return &AuthController{users: users, vendors: vendors}
}

type RegisterData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
	StudentID   string `json:"studentId"`
	Phone       string `json:"phone"`
	VendorName  string `json:"vendorName"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Register handles user registration. Vendor registrations also create
// the vendor storefront profile.
func (ac *AuthController) Register(ctx *gin.Context) {
	var registerData RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	role := registerData.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	email := strings.ToLower(strings.TrimSpace(registerData.Email))
	if role == models.RoleStudent && !strings.HasSuffix(email, studentEmailDomain) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgStudentEmailRequired)
		return
	}

	if role == models.RoleVendor && (registerData.VendorName == "" || registerData.Location == "") {
		sendErrorResponse(ctx, http.StatusBadRequest, msgVendorFieldsRequired)
		return
	}

	if _, err := ac.users.GetByEmail(ctx.Request.Context(), email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Name:     registerData.Name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Phone:    registerData.Phone,
	}
	if role == models.RoleStudent {
		user.StudentID = registerData.StudentID
	}

	if err := ac.users.Create(ctx.Request.Context(), &user); err != nil {
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if role == models.RoleVendor {
		vendor := models.Vendor{
			User:         user.ID,
			Name:         registerData.VendorName,
			Description:  registerData.Description,
			Location:     registerData.Location,
			Logo:         "https://via.placeholder.com/150",
			ContactPhone: registerData.Phone,
			ContactEmail: email,
		}
		if err := ac.vendors.Create(ctx.Request.Context(), &vendor); err != nil {
			log.Println("Vendor profile creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	tokenString, err := generateJWT(&user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   tokenString,
		"user":    userSummary(&user),
	})
}

// Login handles user authentication.
func (ac *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := ac.users.GetByEmail(ctx.Request.Context(), strings.ToLower(loginData.Email))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user":    userSummary(user),
	})
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID.Hex(),
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"studentId": user.StudentID,
			"phone":     user.Phone,
		},
	})
}
