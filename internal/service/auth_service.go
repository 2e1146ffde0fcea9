package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/pkg/mailer"
	"studysage-be/internal/pkg/serverutils"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	signupGrant  int
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	signupGrant int,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		signupGrant:  signupGrant,
	}
}

func userToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:                 u.Id,
		Email:              u.Email,
		FullName:           u.FullName,
		Age:                u.Age,
		Credits:            u.Credits,
		SubscriptionStatus: u.SubscriptionStatus,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:                 uuid.New(),
		Email:              email,
		FullName:           strings.TrimSpace(req.FullName),
		PasswordHash:       string(hash),
		Age:                req.Age,
		Credits:            s.signupGrant,
		SubscriptionStatus: entity.SubscriptionStatusFree,
		CreatedAt:          time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	// Mail delivery must not block or fail the signup.
	go func(toEmail, fullName string) {
		if err := s.emailService.SendWelcome(toEmail, fullName); err != nil {
			fmt.Printf("[WARN] Welcome mail failed for %s: %v\n", toEmail, err)
		}
	}(user.Email, user.FullName)

	token, err := serverutils.GenerateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  userToResponse(&user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := serverutils.GenerateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	res := userToResponse(user)
	return &res, nil
}

func (s *authService) UpdateMe(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		if fullName == "" {
			return nil, fmt.Errorf("full name must not be blank")
		}
		user.FullName = fullName
	}
	if req.Age != nil {
		user.Age = req.Age
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := userToResponse(user)
	return &res, nil
}
