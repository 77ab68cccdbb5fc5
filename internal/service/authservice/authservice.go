package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	studentRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		studentRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a zeroed account: level 1, no experience, no points,
// empty counters.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.Student, error) {
	existing, err := s.studentRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find student: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("student already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	student := &domain.Student{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		zap.L().Error("can't create student: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("student successfully registered", zap.String("login", login))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Student, error) {
	student, err := s.studentRepo.FindByLogin(ctx, login)
	if err != nil || student == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(student.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("student successfully authenticated", zap.String("login", login))
	return student, nil
}

func (s *Service) GenerateToken(studentID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(studentID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
