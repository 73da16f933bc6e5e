package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"quitq/internal/models"
	"quitq/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Test successful registration
	user := &models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.False(t, user.IsAdmin, "registration must never grant the admin flag")
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
	mockRepo.AssertExpectations(t)

	// Test email already registered
	user2 := &models.User{Name: "Other", Email: "test@example.com", Password: "password123"}
	mockRepo.On("GetByEmail", user2.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user2)
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// Registration always strips an admin flag sneaked into the payload
	user3 := &models.User{Name: "Sneaky", Email: "sneaky@example.com", Password: "password123", IsAdmin: true}
	mockRepo.On("GetByEmail", user3.Email).Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err = authService.RegisterUser(user3)
	assert.NoError(t, err)
	assert.False(t, user3.IsAdmin)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		IsAdmin:  true,
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate the token structure
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, true, claims["is_admin"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.LoginUser("test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, models.ErrNotFound).Once()
	_, err = authService.LoginUser("nobody@example.com", "password123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials) // Should return generic invalid credentials error
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"is_admin": false,
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(), // Expires in 1 hour
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, false, claims["is_admin"])

	// Test invalid token (garbage)
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(), // Expired 1 hour ago
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_ResolveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"is_admin": false,
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Valid token resolving to a live user
	user := &models.User{ID: "user-123", Name: "Test User", Email: "test@example.com"}
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	resolved, err := authService.ResolveUser(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user, resolved)
	mockRepo.AssertExpectations(t)

	// Valid token whose user no longer exists must fail
	mockRepo.On("GetByID", "user-123").Return(nil, models.ErrNotFound).Once()
	_, err = authService.ResolveUser(tokenString)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Name: "Old Name", Email: "old@example.com", Password: string(hashedPassword)}

	// Update without password change keeps the existing hash
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Update", user).Return(nil).Once()
	err := authService.UpdateProfile(user, "New Name", "new@example.com", "12 Main St", "")
	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "12 Main St", user.Address)
	assert.Equal(t, string(hashedPassword), user.Password)
	mockRepo.AssertExpectations(t)

	// Changing to an email owned by someone else is rejected
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "other"}, nil).Once()
	err = authService.UpdateProfile(user, "New Name", "taken@example.com", "", "")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// A new password is re-hashed
	mockRepo.On("Update", user).Return(nil).Once()
	err = authService.UpdateProfile(user, "New Name", "new@example.com", "", "freshpassword")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("freshpassword")))
	mockRepo.AssertExpectations(t)
}
