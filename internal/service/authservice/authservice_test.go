package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, studentRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name            string
		login           string
		password        string
		prepareMock     func()
		expectedStudent *domain.Student
		expectedError   error
	}{
		{
			name:     "Successful registration",
			login:    "teststudent",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				studentRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, student *domain.Student) (*domain.Student, error) {
					student.ID = 1
					student.Level = 1
					return student, nil
				})
			},
			expectedStudent: &domain.Student{
				ID:           1,
				Login:        "teststudent",
				PasswordHash: "hashedpassword",
				Level:        1,
			},
			expectedError: nil,
		},
		{
			name:     "Student already exists",
			login:    "teststudent",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(&domain.Student{Login: "teststudent"}, nil)
			},
			expectedStudent: nil,
			expectedError:   ErrLoginTaken,
		},
		{
			name:     "Error finding student",
			login:    "teststudent",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(nil, errors.New("database error"))
			},
			expectedStudent: nil,
			expectedError:   errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "teststudent",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedStudent: nil,
			expectedError:   errors.New("hash error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			student, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStudent, student)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, studentRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name            string
		login           string
		password        string
		prepareMock     func()
		expectedStudent *domain.Student
		expectedError   error
	}{
		{
			name:     "Successful authentication",
			login:    "teststudent",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(&domain.Student{ID: 1, Login: "teststudent", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedStudent: &domain.Student{ID: 1, Login: "teststudent", PasswordHash: "hashedpassword"},
			expectedError:   nil,
		},
		{
			name:     "Unknown login",
			login:    "nosuch",
			password: "testpassword",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "nosuch").Return(nil, nil)
			},
			expectedStudent: nil,
			expectedError:   ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "teststudent",
			password: "wrong",
			prepareMock: func() {
				studentRepo.EXPECT().FindByLogin(context.Background(), "teststudent").Return(&domain.Student{ID: 1, Login: "teststudent", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedStudent: nil,
			expectedError:   ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			student, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStudent, student)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)

	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)
}
