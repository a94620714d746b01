package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/repository"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/email"
	"github.com/hotel-booking/backend/pkg/hash"
	"github.com/hotel-booking/backend/pkg/logger"
	"github.com/hotel-booking/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	otpPurposeVerify = "verify"
	otpPurposeReset  = "reset"
)

type authService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
	tokenManager   auth.TokenManager
	otpGenerator   otp.Generator
	otpGuard       AttemptGuard
	notifier       Notifier
	authConfig     config.AuthConfig
	now            func() time.Time
}

func newAuthService(userRepository repository.Users,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	otpGuard AttemptGuard,
	notifier Notifier,
	authConfig config.AuthConfig,
) *authService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenManager:   tokenManager,
		otpGenerator:   otpGenerator,
		otpGuard:       otpGuard,
		notifier:       notifier,
		authConfig:     authConfig,
		now:            time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func otpGuardKey(purpose string, subject string) string {
	return purpose + ":" + subject
}

func (s *authService) createSession(user *domain.User) (*Session, error) {
	token, ttl, err := s.tokenManager.NewSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate session token failed: %w", err)
	}

	return &Session{Token: token, TTL: ttl, User: user}, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	name := strings.TrimSpace(input.Name)
	userEmail := normalizeEmail(input.Email)
	if name == "" || userEmail == "" || input.Password == "" {
		return nil, ErrMissingDetails
	}
	if !email.IsEmailValid(userEmail) {
		return nil, validationError("invalid email")
	}

	existing, err := s.userRepository.GetByEmail(ctx, userEmail)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExist
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	now := s.now()
	user := &domain.User{
		ID:        userID,
		Name:      name,
		Email:     userEmail,
		Password:  passwordHash,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExist
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	session, err := s.createSession(user)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendWelcome(ctx, user.Email, user.Name); err != nil {
		logger.Warn("welcome email not sent", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return session, nil
}

func (s *authService) Login(ctx context.Context, userEmail string, password string) (*Session, error) {
	userEmail = normalizeEmail(userEmail)
	if userEmail == "" || password == "" {
		return nil, validationError("email and password are required")
	}

	user, err := s.userRepository.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password failed: %w", err)
	}

	return s.createSession(user)
}

func (s *authService) SendVerifyOtp(ctx context.Context, userID uuid.UUID) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsAccountVerified {
		return ErrAccountVerified
	}

	code := s.otpGenerator.RandomCode(s.authConfig.OTP.Length)
	expireAt := s.now().Add(s.authConfig.OTP.VerifyTTL)

	if err := s.userRepository.SetVerifyOtp(ctx, user.ID, code, &expireAt); err != nil {
		return fmt.Errorf("store verify otp failed: %w", err)
	}

	if err := s.otpGuard.Reset(ctx, otpGuardKey(otpPurposeVerify, user.ID.String())); err != nil {
		return fmt.Errorf("reset otp attempts failed: %w", err)
	}

	if err := s.notifier.SendVerificationCode(ctx, user.Email, code); err != nil {
		logger.Warn("verification email not sent", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrMissingDetails
	}

	guardKey := otpGuardKey(otpPurposeVerify, userID.String())
	if err := s.checkGuard(ctx, guardKey); err != nil {
		return err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.checkCode(ctx, guardKey, user.VerifyCode(), code); err != nil {
		if errors.Is(err, ErrOtpExpired) {
			if clearErr := s.userRepository.SetVerifyOtp(ctx, user.ID, "", nil); clearErr != nil {
				return fmt.Errorf("clear expired verify otp failed: %w", clearErr)
			}
		}
		return err
	}

	if err := s.userRepository.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("mark user verified failed: %w", err)
	}

	if err := s.otpGuard.Reset(ctx, guardKey); err != nil {
		logger.Warn("otp attempts not reset", zap.String("key", guardKey), zap.Error(err))
	}

	return nil
}

func (s *authService) SendResetOtp(ctx context.Context, userEmail string) error {
	userEmail = normalizeEmail(userEmail)
	if userEmail == "" {
		return validationError("email is required")
	}

	user, err := s.userRepository.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	code := s.otpGenerator.RandomCode(s.authConfig.OTP.Length)
	expireAt := s.now().Add(s.authConfig.OTP.ResetTTL)

	if err := s.userRepository.SetResetOtp(ctx, user.ID, code, &expireAt); err != nil {
		return fmt.Errorf("store reset otp failed: %w", err)
	}

	if err := s.otpGuard.Reset(ctx, otpGuardKey(otpPurposeReset, user.ID.String())); err != nil {
		return fmt.Errorf("reset otp attempts failed: %w", err)
	}

	if err := s.notifier.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		logger.Warn("password reset email not sent", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, userEmail string, code string, newPassword string) error {
	userEmail = normalizeEmail(userEmail)
	code = strings.TrimSpace(code)
	if userEmail == "" || code == "" || newPassword == "" {
		return validationError("email, otp and new password are required")
	}

	user, err := s.userRepository.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	guardKey := otpGuardKey(otpPurposeReset, user.ID.String())
	if err := s.checkGuard(ctx, guardKey); err != nil {
		return err
	}

	if err := s.checkCode(ctx, guardKey, user.ResetCode(), code); err != nil {
		if errors.Is(err, ErrOtpExpired) {
			if clearErr := s.userRepository.SetResetOtp(ctx, user.ID, "", nil); clearErr != nil {
				return fmt.Errorf("clear expired reset otp failed: %w", clearErr)
			}
		}
		return err
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	if err := s.otpGuard.Reset(ctx, guardKey); err != nil {
		logger.Warn("otp attempts not reset", zap.String("key", guardKey), zap.Error(err))
	}

	return nil
}

func (s *authService) IsAuthenticated(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.getUser(ctx, userID)
}

func (s *authService) getUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}
	return user, nil
}

func (s *authService) checkGuard(ctx context.Context, key string) error {
	locked, err := s.otpGuard.Locked(ctx, key)
	if err != nil {
		return fmt.Errorf("check otp attempts failed: %w", err)
	}
	if locked {
		return ErrOtpLocked
	}
	return nil
}

// checkCode compares the submitted code with the stored one. A mismatch counts as a failed attempt.
func (s *authService) checkCode(ctx context.Context, guardKey string, stored domain.OtpCode, code string) error {
	if !stored.IsIssued() || subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		if err := s.otpGuard.Fail(ctx, guardKey); err != nil {
			return fmt.Errorf("record otp attempt failed: %w", err)
		}
		return ErrInvalidOtp
	}

	if stored.IsExpired(s.now()) {
		return ErrOtpExpired
	}

	return nil
}
