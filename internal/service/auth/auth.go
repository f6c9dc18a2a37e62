package auth

import (
	"context"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/passhash"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

// AuthService handles operator accounts for the ops panel.
type AuthService struct {
	userRepo     UserRepo
	tokenService TokenProvider
	log          logger.Logger
}

func NewAuthService(userRepo UserRepo, tokenService TokenProvider, log logger.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		log:          log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	// Проверяем существует ли пользователь
	user, err := s.userRepo.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserWithEmailNotFound
	}

	// Проверяем пароль
	if ok, err := passhash.VerifyPassword(password, user.GetPassword()); err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	// Генерируем токены
	tokens, err := s.tokenService.GenerateTokens(ctx, user)
	if err != nil {
		return nil, ErrTokenGenerateFail
	}

	return tokens, nil
}

// Register creates a new operator account.
func (s *AuthService) Register(ctx context.Context, req *models.UserCreateRequest) (uuid.UUID, error) {
	ctx = wrap.WithAction(ctx, "operator_register")

	// Check if user with such email already exists
	u, err := s.userRepo.GetUser(ctx, req.Email)
	if err != nil {
		return uuid.UUID{}, ErrUnexpected
	}

	if u != nil {
		return uuid.UUID{}, ErrNotUniqueEmail
	}

	hashPassword, err := passhash.HashPassword(req.Password)
	if err != nil {
		s.log.Error(ctx, "Failed to generate hash from password", err)
		return uuid.UUID{}, ErrUnexpected
	}

	newUser := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  types.RoleOperator.String(),
	}
	newUser.SetPassword(hashPassword)

	id, err := s.userRepo.CreateUser(ctx, &newUser)
	if err != nil {
		s.log.Error(ctx, "Failed to save user", err)
		return uuid.UUID{}, ErrUnexpected
	}

	return id, nil
}

// RoleCheck validates an access token and loads the account it belongs to.
func (s *AuthService) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokenService.Validate(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != models.AccessToken {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUnexpected
	}

	if user == nil {
		return nil, types.ErrUserNotFound
	}

	return user, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	return s.tokenService.Refresh(ctx, refreshToken)
}
