package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shawon-burger/database"
	"shawon-burger/helpers"
	"shawon-burger/mailer"
	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	GenerateToken(email, name, uid, userRole string) (string, error)
}

type AuthService struct {
	users  UserStore
	mail   mailer.Mailer
	tokens TokenIssuer
	now    func() time.Time
}

func NewAuthService(users UserStore, mail mailer.Mailer, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, mail: mail, tokens: tokens, now: time.Now}
}

// Session is what a successful login or verification hands back to the client.
type Session struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// UnverifiedError carries the pending account id so the client can show the OTP form.
type UnverifiedError struct {
	UserID string
	Cause  error
}

func (e *UnverifiedError) Error() string { return ErrUnverified.Error() }
func (e *UnverifiedError) Unwrap() error { return ErrUnverified }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return "", err
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", err
	}

	hash, err := helpers.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", validationErrorf("password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	otp, err := s.newOTP()
	if err != nil {
		return "", err
	}
	now := s.now()
	user := &models.User{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		Phone:      req.Phone,
		Address:    req.Address,
		Role:       models.RoleCustomer,
		IsVerified: false,
		OTP:        &otp,
		Created_at: now,
		Updated_at: now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	userID := user.ID.Hex()
	if err := s.mail.SendVerificationEmail(ctx, user.Email, otp.Code, user.Name); err != nil {
		log.Printf("verification email to user %s failed: %v", userID, err)
		return userID, ErrEmailDelivery
	}
	return userID, nil
}

func (s *AuthService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (*Session, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := s.findUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}
	if user.OTP == nil || !helpers.OTPMatches(user.OTP.Code, req.OTP) {
		return nil, ErrInvalidOTP
	}
	if s.now().After(user.OTP.ExpiresAt) {
		return nil, ErrOTPExpired
	}
	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, notFound(err, "user")
	}
	user.IsVerified = true
	return s.session(user)
}

func (s *AuthService) ResendOTP(ctx context.Context, req models.ResendOTPRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	user, err := s.findUser(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	return s.issueOTP(ctx, user)
}

// Login never returns a session for an unverified account; it re-sends a code instead.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*Session, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, validationErrorf("Email and password are required")
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if ok, _ := helpers.VerifyPassword(req.Password, user.Password); !ok {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		if err := s.issueOTP(ctx, user); err != nil {
			return nil, &UnverifiedError{UserID: user.ID.Hex(), Cause: err}
		}
		return nil, &UnverifiedError{UserID: user.ID.Hex()}
	}
	return s.session(user)
}

func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Name == nil && upd.Phone == nil && upd.Address == nil {
		return nil, validationErrorf("Invalid updates")
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// SeedAdmin creates the admin account once. Existing accounts are left untouched.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		log.Println("admin already exists:", email)
		return nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return err
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	now := s.now()
	admin := &models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		Password:   hash,
		Role:       models.RoleAdmin,
		IsVerified: true,
		Created_at: now,
		Updated_at: now,
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Println("Admin user created successfully")
	return nil
}

func (s *AuthService) findUser(ctx context.Context, hexID string) (*models.User, error) {
	id, err := ParseID(hexID, "user")
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (s *AuthService) newOTP() (models.OTP, error) {
	code, err := helpers.GenerateOTP()
	if err != nil {
		return models.OTP{}, err
	}
	return models.OTP{Code: code, ExpiresAt: s.now().Add(helpers.OTPTTL)}, nil
}

func (s *AuthService) issueOTP(ctx context.Context, user *models.User) error {
	otp, err := s.newOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, user.ID, otp); err != nil {
		return notFound(err, "user")
	}
	if err := s.mail.SendVerificationEmail(ctx, user.Email, otp.Code, user.Name); err != nil {
		log.Printf("verification email to user %s failed: %v", user.ID.Hex(), err)
		return ErrEmailDelivery
	}
	return nil
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.Email, user.Name, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user.Summary()}, nil
}
