package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"biblioteca-api/internal/jwt"
	"biblioteca-api/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	writer := NewMockAuthUserWriter(ctrl)
	tokens := NewMockTokenService(ctrl)
	mailer := NewMockMailer(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any(), "Maria Gomez", "maria@test.com", gomock.Any()).Return(nil)
	reader.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.UserDB{
		UserID: uuid.New(), FullName: "Maria Gomez", Email: "maria@test.com",
	}, nil)
	tokens.EXPECT().GenerateFor(ctx, gomock.Any(), jwt.PurposeVerifyEmail, registrationTokenTTL).Return("validation-token", nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(nil)

	svc := NewAuthService(reader, writer, tokens, NewMockTokenConsumer(ctrl), mailer)
	result, err := svc.Register(ctx, "Maria Gomez", "maria@test.com", "supersecret")

	assert.NoError(t, err)
	assert.Equal(t, "validation-token", result.ValidationToken)
	assert.True(t, result.EmailDelivered)
	assert.Empty(t, result.Warning)
}

func TestAuthService_Register_EmailFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	writer := NewMockAuthUserWriter(ctrl)
	tokens := NewMockTokenService(ctrl)
	mailer := NewMockMailer(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any(), "Maria Gomez", "maria@test.com", gomock.Any()).Return(nil)
	reader.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.UserDB{
		UserID: uuid.New(), FullName: "Maria Gomez", Email: "maria@test.com",
	}, nil)
	tokens.EXPECT().GenerateFor(ctx, gomock.Any(), jwt.PurposeVerifyEmail, registrationTokenTTL).Return("validation-token", nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc := NewAuthService(reader, writer, tokens, NewMockTokenConsumer(ctrl), mailer)
	result, err := svc.Register(ctx, "Maria Gomez", "maria@test.com", "supersecret")

	assert.NoError(t, err)
	assert.False(t, result.EmailDelivered)
	assert.NotEmpty(t, result.Warning)
}

func TestAuthService_Register_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		fullName  string
		email     string
		password  string
		mockSetup func(reader *MockAuthUserReader)
		wantErr   error
	}{
		{
			name: "short full name", fullName: "ab", email: "maria@test.com", password: "supersecret",
			mockSetup: func(reader *MockAuthUserReader) {},
			wantErr:   ErrInvalidFullName,
		},
		{
			name: "invalid email", fullName: "Maria Gomez", email: "not-an-email", password: "supersecret",
			mockSetup: func(reader *MockAuthUserReader) {},
			wantErr:   ErrInvalidEmail,
		},
		{
			name: "short password", fullName: "Maria Gomez", email: "maria@test.com", password: "short",
			mockSetup: func(reader *MockAuthUserReader) {},
			wantErr:   ErrInvalidPassword,
		},
		{
			name: "email taken", fullName: "Maria Gomez", email: "maria@test.com", password: "supersecret",
			mockSetup: func(reader *MockAuthUserReader) {
				reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
					UserID: uuid.New(), Email: "maria@test.com",
				}, nil)
			},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockAuthUserReader(ctrl)
			tt.mockSetup(reader)

			svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), NewMockTokenService(ctrl), NewMockTokenConsumer(ctrl), NewMockMailer(ctrl))
			result, err := svc.Register(ctx, tt.fullName, tt.email, tt.password)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_ValidateEmail(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	writer := NewMockAuthUserWriter(ctrl)
	tokens := NewMockTokenService(ctrl)
	consumed := NewMockTokenConsumer(ctrl)

	claims := &jwt.Claims{UserID: userID, Purpose: jwt.PurposeVerifyEmail}
	claims.ID = tokenID

	tokens.EXPECT().GetClaimsFor(ctx, "the-token", jwt.PurposeVerifyEmail).Return(claims, nil)
	consumed.EXPECT().IsConsumed(ctx, tokenID).Return(false, nil)
	reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
	writer.EXPECT().SetVerified(ctx, userID).Return(nil)
	consumed.EXPECT().MarkConsumed(ctx, tokenID).Return(nil)

	svc := NewAuthService(reader, writer, tokens, consumed, NewMockMailer(ctrl))
	result, err := svc.ValidateEmail(ctx, "the-token")

	assert.NoError(t, err)
	assert.True(t, result.Status)
}

func TestAuthService_ValidateEmail_SecondUseRefused(t *testing.T) {
	ctx := context.Background()
	tokenID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := NewMockTokenService(ctrl)
	consumed := NewMockTokenConsumer(ctrl)

	claims := &jwt.Claims{UserID: uuid.New(), Purpose: jwt.PurposeVerifyEmail}
	claims.ID = tokenID

	tokens.EXPECT().GetClaimsFor(ctx, "the-token", jwt.PurposeVerifyEmail).Return(claims, nil)
	consumed.EXPECT().IsConsumed(ctx, tokenID).Return(true, nil)

	svc := NewAuthService(NewMockAuthUserReader(ctrl), NewMockAuthUserWriter(ctrl), tokens, consumed, NewMockMailer(ctrl))
	result, err := svc.ValidateEmail(ctx, "the-token")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestAuthService_ValidateEmail_AlreadyVerified(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)
	consumed := NewMockTokenConsumer(ctrl)

	claims := &jwt.Claims{UserID: userID, Purpose: jwt.PurposeVerifyEmail}
	claims.ID = tokenID

	tokens.EXPECT().GetClaimsFor(ctx, "the-token", jwt.PurposeVerifyEmail).Return(claims, nil)
	consumed.EXPECT().IsConsumed(ctx, tokenID).Return(false, nil)
	reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, IsVerified: true}, nil)

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, consumed, NewMockMailer(ctrl))
	result, err := svc.ValidateEmail(ctx, "the-token")

	assert.NoError(t, err)
	assert.False(t, result.Status)
}

func TestAuthService_ValidateEmail_BadToken(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := NewMockTokenService(ctrl)
	tokens.EXPECT().GetClaimsFor(ctx, "garbage", jwt.PurposeVerifyEmail).Return(nil, errors.New("bad token"))

	svc := NewAuthService(NewMockAuthUserReader(ctrl), NewMockAuthUserWriter(ctrl), tokens, NewMockTokenConsumer(ctrl), NewMockMailer(ctrl))
	result, err := svc.ValidateEmail(ctx, "garbage")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_GenerateEmailValidationToken_MailFailureIsError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)
	mailer := NewMockMailer(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
		UserID: userID, Email: "maria@test.com",
	}, nil)
	tokens.EXPECT().GenerateFor(ctx, userID, jwt.PurposeVerifyEmail, validationTokenTTL).Return("fresh-token", nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, NewMockTokenConsumer(ctrl), mailer)
	token, err := svc.GenerateEmailValidationToken(ctx, "maria@test.com")

	assert.Empty(t, token)
	assert.Error(t, err)
}

func TestAuthService_GenerateEmailValidationToken_AlreadyVerified(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
		UserID: uuid.New(), Email: "maria@test.com", IsVerified: true,
	}, nil)

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), NewMockTokenService(ctrl), NewMockTokenConsumer(ctrl), NewMockMailer(ctrl))
	_, err := svc.GenerateEmailValidationToken(ctx, "maria@test.com")

	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
		UserID: userID, Email: "maria@test.com", PasswordHash: string(hashed), IsVerified: true,
	}, nil)
	tokens.EXPECT().Generate(ctx, userID).Return("access-token", nil)

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, NewMockTokenConsumer(ctrl), NewMockMailer(ctrl))
	result, err := svc.Login(ctx, "maria@test.com", "supersecret")

	assert.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, "access-token", result.Token)
}

func TestAuthService_Login_Errors(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		mockSetup func(reader *MockAuthUserReader)
		wantErr   error
	}{
		{
			name: "unknown email", password: "supersecret",
			mockSetup: func(reader *MockAuthUserReader) {
				reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "wrong password", password: "wrongsecret",
			mockSetup: func(reader *MockAuthUserReader) {
				reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
					UserID: uuid.New(), PasswordHash: string(hashed), IsVerified: true,
				}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "correct credentials but unverified", password: "supersecret",
			mockSetup: func(reader *MockAuthUserReader) {
				reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
					UserID: uuid.New(), PasswordHash: string(hashed), IsVerified: false,
				}, nil)
			},
			wantErr: ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockAuthUserReader(ctrl)
			tt.mockSetup(reader)

			svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), NewMockTokenService(ctrl), NewMockTokenConsumer(ctrl), NewMockMailer(ctrl))
			result, err := svc.Login(ctx, "maria@test.com", tt.password)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RecoverPassword_MailFailureIsError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)
	mailer := NewMockMailer(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
		UserID: userID, Email: "maria@test.com",
	}, nil)
	tokens.EXPECT().GenerateFor(ctx, userID, jwt.PurposeResetPassword, resetTokenTTL).Return("reset-token", nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, NewMockTokenConsumer(ctrl), mailer)
	result, err := svc.RecoverPassword(ctx, "maria@test.com")

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestAuthService_RecoverPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)
	mailer := NewMockMailer(ctrl)

	reader.EXPECT().GetByEmail(ctx, "maria@test.com").Return(&models.UserDB{
		UserID: userID, Email: "maria@test.com",
	}, nil)
	tokens.EXPECT().GenerateFor(ctx, userID, jwt.PurposeResetPassword, resetTokenTTL).Return("reset-token", nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(nil)

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, NewMockTokenConsumer(ctrl), mailer)
	result, err := svc.RecoverPassword(ctx, "maria@test.com")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "reset-token", result.Token)
	assert.Contains(t, result.Message, "maria@test.com")
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	writer := NewMockAuthUserWriter(ctrl)
	tokens := NewMockTokenService(ctrl)
	consumed := NewMockTokenConsumer(ctrl)
	mailer := NewMockMailer(ctrl)

	claims := &jwt.Claims{UserID: userID, Purpose: jwt.PurposeResetPassword}
	claims.ID = tokenID

	tokens.EXPECT().GetClaimsFor(ctx, "reset-token", jwt.PurposeResetPassword).Return(claims, nil)
	consumed.EXPECT().IsConsumed(ctx, tokenID).Return(false, nil)
	reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{
		UserID: userID, FullName: "Maria Gomez", Email: "maria@test.com",
	}, nil)
	writer.EXPECT().UpdatePassword(ctx, userID, gomock.Any()).Return(nil)
	consumed.EXPECT().MarkConsumed(ctx, tokenID).Return(nil)
	mailer.EXPECT().Send(ctx, "maria@test.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	svc := NewAuthService(reader, writer, tokens, consumed, mailer)
	result, err := svc.ResetPassword(ctx, "reset-token", "brandnewsecret")

	// the notification is best-effort, a failed send only sets the warning
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Warning)
}

func TestAuthService_ResetPassword_ShortPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthUserReader(ctrl)
	tokens := NewMockTokenService(ctrl)
	consumed := NewMockTokenConsumer(ctrl)

	claims := &jwt.Claims{UserID: userID, Purpose: jwt.PurposeResetPassword}
	claims.ID = tokenID

	tokens.EXPECT().GetClaimsFor(ctx, "reset-token", jwt.PurposeResetPassword).Return(claims, nil)
	consumed.EXPECT().IsConsumed(ctx, tokenID).Return(false, nil)
	reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)

	svc := NewAuthService(reader, NewMockAuthUserWriter(ctrl), tokens, consumed, NewMockMailer(ctrl))
	result, err := svc.ResetPassword(ctx, "reset-token", "short")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
