package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/femnest/cmd/config"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
	"github.com/muhammadheryan/femnest/utils/logger"
	"github.com/muhammadheryan/femnest/utils/simulate"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "femnest"

var fieldMessages = map[string]string{
	constant.FieldEmail:           "Please enter a valid email address.",
	constant.FieldPassword:        "Password must be at least 6 characters.",
	constant.FieldConfirmPassword: "Passwords do not match.",
}

type CredentialApp interface {
	Validate(mode constant.AuthMode, req *model.CredentialRequest) map[string]string
	Login(ctx context.Context, req *model.CredentialRequest) (*model.CredentialResponse, error)
	Signup(ctx context.Context, req *model.CredentialRequest) (*model.CredentialResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type CredentialAppImpl struct {
	config   *config.Config
	demoHash []byte
}

func NewCredentialApp(config *config.Config) (CredentialApp, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Demo.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	return &CredentialAppImpl{
		config:   config,
		demoHash: hash,
	}, nil
}

// Validate runs every credential rule for the mode and returns the full error set.
// An empty map means the input may be submitted.
func (s *CredentialAppImpl) Validate(mode constant.AuthMode, req *model.CredentialRequest) map[string]string {
	errs := make(map[string]string)

	if err := validatorx.ValidateVar(req.Email, "looseemail"); err != nil {
		errs[constant.FieldEmail] = fieldMessages[constant.FieldEmail]
	}
	if err := validatorx.ValidateVar(req.Password, "min=6"); err != nil {
		errs[constant.FieldPassword] = fieldMessages[constant.FieldPassword]
	}
	if mode == constant.AuthModeSignup && req.Password != req.ConfirmPassword {
		errs[constant.FieldConfirmPassword] = fieldMessages[constant.FieldConfirmPassword]
	}

	return errs
}

func (s *CredentialAppImpl) Login(ctx context.Context, req *model.CredentialRequest) (*model.CredentialResponse, error) {
	if fields := s.Validate(constant.AuthModeLogin, req); len(fields) > 0 {
		return nil, errors.SetValidationError(fields)
	}

	if err := simulate.RoundTrip(ctx, s.config.Simulation.AuthDelay); err != nil {
		logger.Debug("[Login] round trip abandoned", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	if !s.isDemoCredential(req) {
		logger.Info("[Login] credential mismatch", zap.String("email", req.Email))
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token, err := s.generateJWT(req.Email)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CredentialResponse{
		Email: req.Email,
		Token: token,
		Notification: model.Notification{
			Title:       "Login Successful",
			Description: "Welcome back to FemNest!",
			Variant:     constant.VariantDefault,
		},
	}, nil
}

// Signup accepts any input that passes validation; nothing is stored.
func (s *CredentialAppImpl) Signup(ctx context.Context, req *model.CredentialRequest) (*model.CredentialResponse, error) {
	if fields := s.Validate(constant.AuthModeSignup, req); len(fields) > 0 {
		return nil, errors.SetValidationError(fields)
	}

	if err := simulate.RoundTrip(ctx, s.config.Simulation.AuthDelay); err != nil {
		logger.Debug("[Signup] round trip abandoned", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	token, err := s.generateJWT(req.Email)
	if err != nil {
		logger.Error("[Signup] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Signup] account created", zap.String("email", req.Email))
	return &model.CredentialResponse{
		Email: req.Email,
		Token: token,
		Notification: model.Notification{
			Title:       "Account Created",
			Description: "Your FemNest account has been created successfully!",
			Variant:     constant.VariantDefault,
		},
	}, nil
}

// ValidateToken checks a reveal token and returns its session id.
func (s *CredentialAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	if claims.ID == "" {
		return "", fmt.Errorf("token missing jti")
	}

	return claims.ID, nil
}

func (s *CredentialAppImpl) isDemoCredential(req *model.CredentialRequest) bool {
	if req.Email != s.config.Demo.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.demoHash, []byte(req.Password)) == nil
}

// generateJWT issues the token that unlocks the post-auth panels
func (s *CredentialAppImpl) generateJWT(email string) (string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to create session id: %w", err)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
