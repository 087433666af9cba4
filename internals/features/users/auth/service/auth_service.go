package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"geocourse_backend/internals/configs"
	authHelper "geocourse_backend/internals/features/users/auth/helper"
	authModel "geocourse_backend/internals/features/users/auth/model"
	authRepo "geocourse_backend/internals/features/users/auth/repository"
	userModel "geocourse_backend/internals/features/users/user/model"
	helpers "geocourse_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.UserEmail, input.UserPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := input.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.UserPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.UserPassword = passwordHash

	// Admin status is never granted here; admins are provisioned by the seed step.
	input.UserIsAdmin = false
	input.UserIsPaid = false
	input.UserIsActive = true

	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Username or email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"id":        input.UserID,
		"user_name": input.UserName,
		"email":     input.UserEmail,
	})
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByIdentifier(db, input.Identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// first Google sign-in: create the account
		newUser := userModel.UserModel{
			UserName: name,
			UserEmail:    email,
			UserPassword: generateDummyPassword(),
			UserGoogleID: &googleID,
			UserIsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"is_admin":  user.UserIsAdmin,
		"is_paid":   user.UserIsPaid,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": user.UserID.String(),
		"id":  user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create refresh token")
	}

	// persist the refresh token hashed
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.UserID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"user": fiber.Map{
			"id":        user.UserID,
			"user_name": user.UserName,
			"email":     user.UserEmail,
			"is_admin":  user.UserIsAdmin,
			"is_paid":   user.UserIsPaid,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	raw := helpers.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			raw = strings.TrimSpace(body.RefreshToken)
		}
	}
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	sub, _ := claims["sub"].(string)
	user, err := findUserBySub(db, sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}

	now := nowUTC()
	hash := computeRefreshHash(raw, refreshSecret)
	stored, err := authRepo.FindActiveRefreshToken(db, user.UserID, hash, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token revoked or expired")
	}

	// rotate: revoke the used token, then issue a fresh pair
	if err := authRepo.RevokeRefreshToken(db, stored.ID, now); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}
	return issueTokens(c, db, *user)
}

func findUserBySub(db *gorm.DB, sub string) (*userModel.UserModel, error) {
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}
	return authRepo.FindUserByID(db, id)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helpers.GetRawAccessToken(c)

	ttl := resolveBlacklistTTL(accessToken)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	if rt := helpers.GetRefreshTokenFromCookie(c); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshTokenByHash(db, computeRefreshHash(rt, refreshSecret), nowUTC())
		}
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := authHelper.ValidateChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password changed successfully", nil)
}

/* ==========================
   UTIL
========================== */

func generateDummyPassword() string {
	hash, _ := authHelper.HashPassword("RandomDummyPassword123!")
	return hash
}
