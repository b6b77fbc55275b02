package application

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"

	"frankies/internal/pkg/logger"
	"frankies/internal/service/account/domain"
	"frankies/internal/service/account/domain/port"
)

const otpTTL = 5 * time.Minute

// Credentials is everything a caller can present to prove identity. Which
// factor applies is decided by the orchestrator, not the transport.
type Credentials struct {
	Password string
	OTP      string
}

// Factor is one interchangeable way to verify a caller's identity.
type Factor interface {
	Verify(ctx context.Context, user *domain.User, creds Credentials) error
}

// PasswordFactor verifies the stored bcrypt hash.
type PasswordFactor struct {
	hasher PasswordHasher
}

func NewPasswordFactor(hasher PasswordHasher) *PasswordFactor {
	return &PasswordFactor{hasher: hasher}
}

func (f *PasswordFactor) Verify(ctx context.Context, user *domain.User, creds Credentials) error {
	if creds.Password == "" {
		return domain.ErrInvalidCredentials
	}
	if err := f.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// OTPFactor verifies a pending one-time code. A matching code is cleared so
// it can never be replayed; expiry is owned by the store's TTL.
type OTPFactor struct {
	store port.OTPStore
}

func NewOTPFactor(store port.OTPStore) *OTPFactor {
	return &OTPFactor{store: store}
}

func (f *OTPFactor) Verify(ctx context.Context, user *domain.User, creds Credentials) error {
	if creds.OTP == "" {
		return domain.ErrInvalidOTP
	}
	stored, err := f.store.Get(ctx, user.Email)
	if err != nil {
		return errors.Wrap(err, "load pending otp")
	}
	if stored == "" || stored != creds.OTP {
		return domain.ErrInvalidOTP
	}
	return errors.Wrap(f.store.Clear(ctx, user.Email), "clear otp")
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// AuthService is the single login orchestrator: it resolves the user, picks
// the factor matching the presented credentials, verifies it and issues a
// session token.
type AuthService struct {
	users     domain.UserRepository
	password  Factor
	otp       Factor
	tokens    TokenIssuer
	otpStore  port.OTPStore
	otpSender port.OTPSender
	tracer    trace.Tracer
}

func NewAuthService(users domain.UserRepository, password, otp Factor, tokens TokenIssuer, otpStore port.OTPStore, otpSender port.OTPSender, tracer trace.Tracer) *AuthService {
	return &AuthService{
		users:     users,
		password:  password,
		otp:       otp,
		tokens:    tokens,
		otpStore:  otpStore,
		otpSender: otpSender,
		tracer:    tracer,
	}
}

// Login authenticates via the OTP factor when a code is presented, the
// password factor otherwise. An unknown email reports the same error as a
// wrong password.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "account.Login")
	defer span.End()

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		if req.OTP != "" {
			return nil, domain.ErrInvalidOTP
		}
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetch user for login")
	}

	factor := s.password
	if req.OTP != "" {
		factor = s.otp
	}
	if err := factor.Verify(ctx, user, Credentials{Password: req.Password, OTP: req.OTP}); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}
	return &LoginResponse{User: user.Profile(), Token: token}, nil
}

// RequestOTP generates a 6-digit code, stores it for 5 minutes and hands it
// to the messaging collaborator for delivery.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "account.RequestOTP")
	defer span.End()

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	if err := s.otpStore.Put(ctx, user.Email, code, otpTTL); err != nil {
		return errors.Wrap(err, "store otp")
	}
	if err := s.otpSender.Send(ctx, user.Email, code); err != nil {
		return errors.Wrap(err, "dispatch otp")
	}

	logger.Ctx(ctx).Info().Str("email", user.Email).Msg("otp issued")
	return nil
}
