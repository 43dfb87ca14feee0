package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"biblioteca-api/internal/jwt"
	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// Token lifetimes for the auth flows.
const (
	registrationTokenTTL = 24 * time.Hour
	validationTokenTTL   = 5 * time.Minute
	resetTokenTTL        = 5 * time.Minute
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrEmailNotVerified   = errors.New("email address has not been verified")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenUsed          = errors.New("token was already used")
	ErrAlreadyVerified    = errors.New("email was already verified")
	ErrInvalidFullName    = errors.New("full name must be between 3 and 64 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("password must be between 8 and 254 characters")
)

// AuthUserReader defines read operations for users.
type AuthUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// AuthUserWriter defines write operations for users.
type AuthUserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, fullName, email, passwordHash string) error
	SetVerified(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TokenService defines the token operations the auth flows need.
type TokenService interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GenerateFor(ctx context.Context, userID uuid.UUID, purpose string, ttl time.Duration) (string, error)
	GetClaimsFor(ctx context.Context, tokenString, purpose string) (*jwt.Claims, error)
}

// TokenConsumer tracks one-time tokens so a second exchange is refused.
type TokenConsumer interface {
	IsConsumed(ctx context.Context, tokenID string) (bool, error)
	MarkConsumed(ctx context.Context, tokenID string) error
}

// Mailer delivers notification emails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RegisterResult is the outcome of a registration: the new user, their email
// validation token, and whether the verification mail went out.
type RegisterResult struct {
	User            models.UserDB `json:"user"`
	ValidationToken string        `json:"tokenValidacion"`
	EmailDelivered  bool          `json:"emailDelivered"`
	Warning         string        `json:"warning,omitempty"`
}

// ValidateEmailResult reports the outcome of a token exchange.
type ValidateEmailResult struct {
	Status  bool   `json:"estatus"`
	Message string `json:"mensaje"`
}

// LoginResult carries the authenticated user's id and access token.
type LoginResult struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"jwt"`
}

// RecoverPasswordResult describes the dispatched reset instructions.
type RecoverPasswordResult struct {
	Success bool   `json:"exito"`
	Message string `json:"mensaje"`
	Token   string `json:"token"`
}

// ResetPasswordResult is the outcome of a completed password reset.
type ResetPasswordResult struct {
	User    models.UserDB `json:"user"`
	Message string        `json:"mensaje"`
	Warning string        `json:"warning,omitempty"`
}

// AuthService handles registration, login, email verification, and password
// recovery.
type AuthService struct {
	reader     AuthUserReader
	writer     AuthUserWriter
	tokens     TokenService
	usedTokens TokenConsumer
	mailer     Mailer
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	reader AuthUserReader,
	writer AuthUserWriter,
	tokens TokenService,
	usedTokens TokenConsumer,
	mailer Mailer,
) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		tokens:     tokens,
		usedTokens: usedTokens,
		mailer:     mailer,
	}
}

// Register creates an unverified user and dispatches a verification email.
// The user row is committed regardless of email delivery: a send failure is
// reported on the result, never rolled into a failed registration.
func (svc *AuthService) Register(ctx context.Context, fullName, email, password string) (*RegisterResult, error) {
	if err := validateUserInput(fullName, email, password); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	userID := uuid.New()
	if err := svc.writer.Save(ctx, userID, fullName, email, string(hashed)); err != nil {
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to reload user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, err := svc.tokens.GenerateFor(ctx, userID, jwt.PurposeVerifyEmail, registrationTokenTTL)
	if err != nil {
		logger.Log.Errorw("failed to generate validation token", "userID", userID, "error", err)
		return nil, err
	}

	result := &RegisterResult{User: *user, ValidationToken: token, EmailDelivered: true}

	body := "Valida tu direccion de correo usando este token: <br/><br/><b>" + token + "</b>"
	if err := svc.mailer.Send(ctx, email, "Biblioteca Virtual - Validacion de correo electronico", body); err != nil {
		logger.Log.Warnw("verification email not delivered", "userID", userID, "error", err)
		result.EmailDelivered = false
		result.Warning = "the verification email could not be delivered"
	}

	return result, nil
}

// ValidateEmail exchanges a one-time verification token, marking the subject
// user's email address as verified.
func (svc *AuthService) ValidateEmail(ctx context.Context, token string) (*ValidateEmailResult, error) {
	claims, err := svc.tokens.GetClaimsFor(ctx, token, jwt.PurposeVerifyEmail)
	if err != nil {
		return nil, ErrInvalidToken
	}

	used, err := svc.usedTokens.IsConsumed(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token consumption", "error", err)
		return nil, err
	}
	if used {
		return nil, ErrTokenUsed
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "userID", claims.UserID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.IsVerified {
		return &ValidateEmailResult{Status: false, Message: "El email ya fue validado anteriormente"}, nil
	}

	if err := svc.writer.SetVerified(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to mark user verified", "userID", user.UserID, "error", err)
		return nil, err
	}
	if err := svc.usedTokens.MarkConsumed(ctx, claims.ID); err != nil {
		logger.Log.Errorw("failed to mark token consumed", "error", err)
	}

	return &ValidateEmailResult{Status: true, Message: "Validacion de correo con exito"}, nil
}

// GenerateEmailValidationToken issues a short-lived verification token for a
// registered but still unverified user and emails it. Here the email is the
// deliverable, so a send failure is an error.
func (svc *AuthService) GenerateEmailValidationToken(ctx context.Context, email string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to load user by email", "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.IsVerified {
		return "", ErrAlreadyVerified
	}

	token, err := svc.tokens.GenerateFor(ctx, user.UserID, jwt.PurposeVerifyEmail, validationTokenTTL)
	if err != nil {
		logger.Log.Errorw("failed to generate validation token", "userID", user.UserID, "error", err)
		return "", err
	}

	body := "Valida tu direccion de correo usando este token: <br/><br/><b>" + token + "</b>"
	if err := svc.mailer.Send(ctx, user.Email, "Biblioteca Virtual - Tu token para validar tu correo", body); err != nil {
		return "", err
	}

	return token, nil
}

// Login authenticates a user. Unverified accounts cannot log in even with
// correct credentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to load user by email", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "userID", user.UserID, "error", err)
		return nil, err
	}

	return &LoginResult{UserID: user.UserID, Token: token}, nil
}

// RecoverPassword issues a short-lived reset token and emails it to the user.
// The email is the deliverable: a send failure fails the operation and no
// state changes.
func (svc *AuthService) RecoverPassword(ctx context.Context, email string) (*RecoverPasswordResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to load user by email", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, err := svc.tokens.GenerateFor(ctx, user.UserID, jwt.PurposeResetPassword, resetTokenTTL)
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "userID", user.UserID, "error", err)
		return nil, err
	}

	body := "Tu token de reinicio es: <b>" + token + "</b>"
	if err := svc.mailer.Send(ctx, user.Email, "Biblioteca Virtual - Recuperar contrasena", body); err != nil {
		return nil, err
	}

	return &RecoverPasswordResult{
		Success: true,
		Message: fmt.Sprintf("Las instrucciones para reiniciar la contrasena fueron enviadas a %s", email),
		Token:   token,
	}, nil
}

// ResetPassword exchanges a one-time reset token for a new credential. The
// new hash is persisted first; the notification email afterwards is
// best-effort and reported as a warning when it fails.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (*ResetPasswordResult, error) {
	claims, err := svc.tokens.GetClaimsFor(ctx, token, jwt.PurposeResetPassword)
	if err != nil {
		return nil, ErrInvalidToken
	}

	used, err := svc.usedTokens.IsConsumed(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token consumption", "error", err)
		return nil, err
	}
	if used {
		return nil, ErrTokenUsed
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "userID", claims.UserID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !validLength(newPassword, 8, 254) {
		return nil, ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	if err := svc.writer.UpdatePassword(ctx, user.UserID, string(hashed)); err != nil {
		logger.Log.Errorw("failed to update password", "userID", user.UserID, "error", err)
		return nil, err
	}
	if err := svc.usedTokens.MarkConsumed(ctx, claims.ID); err != nil {
		logger.Log.Errorw("failed to mark token consumed", "error", err)
	}

	result := &ResetPasswordResult{
		User:    *user,
		Message: "La clave de usuario fue remplazada con exito",
	}

	body := "<b>" + user.FullName + "</b>, tu clave fue remplazada con exito."
	if err := svc.mailer.Send(ctx, user.Email, "Biblioteca Virtual - Notificacion de cambio de clave", body); err != nil {
		logger.Log.Warnw("password change notification not delivered", "userID", user.UserID, "error", err)
		result.Warning = "the notification email could not be delivered"
	}

	return result, nil
}

// GetAllUsers returns every registered user.
func (svc *AuthService) GetAllUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// GetUserData returns one user by id.
func (svc *AuthService) GetUserData(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func validateUserInput(fullName, email, password string) error {
	if !validLength(fullName, 3, 64) {
		return ErrInvalidFullName
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if !validLength(password, 8, 254) {
		return ErrInvalidPassword
	}
	return nil
}
