package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

type userRepository interface {
	Save(ctx context.Context, user *entity.User) error
	RetrieveByID(ctx context.Context, id string) (*entity.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
}

type UserUseCase struct {
	userIDLength int
	maxRetries   int
	bcryptCost   int
	codeGen      codeGenerator
	userRepo     userRepository
	now          func() time.Time
}

type UserUseCaseOption func(*UserUseCase)

func WithUserIDLength(n int) UserUseCaseOption {
	return func(uc *UserUseCase) {
		uc.userIDLength = n
	}
}

func WithUserMaxRetries(n int) UserUseCaseOption {
	return func(uc *UserUseCase) {
		if n > 0 {
			uc.maxRetries = n
		}
	}
}

func WithBcryptCost(cost int) UserUseCaseOption {
	return func(uc *UserUseCase) {
		uc.bcryptCost = cost
	}
}

func NewUserUseCase(codeGen codeGenerator, userRepo userRepository, opts ...UserUseCaseOption) *UserUseCase {
	uc := &UserUseCase{
		userIDLength: 10,
		maxRetries:   defaultMaxRetries,
		bcryptCost:   bcrypt.DefaultCost,
		codeGen:      codeGen,
		userRepo:     userRepo,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *UserUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Register"

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: email or password is empty: %w", op, entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.RetrieveByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailTaken)
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: failed to look up email: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	for i := 0; i < uc.maxRetries; i++ {
		id := uc.codeGen.Generate(uc.userIDLength)
		if id == "" {
			return nil, fmt.Errorf("%s: failed to generate user id of length %d", op, uc.userIDLength)
		}

		user := &entity.User{
			ID:           id,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    uc.now(),
		}

		if err := uc.userRepo.Save(ctx, user); err != nil {
			if errors.Is(err, entity.ErrUserExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to register user: %w", op, err)
		}

		return user, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Login"

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: email or password is empty: %w", op, entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.RetrieveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: unknown email: %w", op, entity.ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: failed to look up email: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, fmt.Errorf("%s: password mismatch: %w", op, entity.ErrInvalidCredentials)
	}

	return user, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	const op = "usecase.UserUseCase.GetUser"

	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrMustLogin)
	}

	user, err := uc.userRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}
