package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-profile-backend/internal/authz"
	"go-profile-backend/internal/domain"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Fetch(ctx context.Context) ([]domain.ProfileSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileSummary), args.Error(1)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}
func (m *MockProfileRepo) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.EmployeeProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.EmployeeProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Skill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Education, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockEducationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}
func (m *MockEducationRepo) Create(ctx context.Context, education *domain.Education) error {
	return m.Called(ctx, education).Error(0)
}
func (m *MockEducationRepo) Update(ctx context.Context, education *domain.Education) error {
	return m.Called(ctx, education).Error(0)
}
func (m *MockEducationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCertificationRepo struct {
	mock.Mock
}

func (m *MockCertificationRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Certification, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) Create(ctx context.Context, certification *domain.Certification) error {
	return m.Called(ctx, certification).Error(0)
}
func (m *MockCertificationRepo) Update(ctx context.Context, certification *domain.Certification) error {
	return m.Called(ctx, certification).Error(0)
}
func (m *MockCertificationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Project, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Helpers

func ptr[T any](v T) *T { return &v }

func newProfileUC(profiles *MockProfileRepo, skills *MockSkillRepo, projects *MockProjectRepo) domain.ProfileUsecase {
	education := new(MockEducationRepo)
	certifications := new(MockCertificationRepo)
	education.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Education{}, nil).Maybe()
	certifications.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Certification{}, nil).Maybe()
	return usecase.NewProfileUsecase(profiles, skills, education, certifications, projects, authz.OwnerOrReadOnly{}, validator.New())
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestProfileCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign ownership to the caller", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		skills := new(MockSkillRepo)
		projects := new(MockProjectRepo)
		uc := newProfileUC(profiles, skills, projects)

		profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.EmployeeProfile) bool {
			return p.OwnerID == 7
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.EmployeeProfile).ID = 42
		}).Return(nil)
		profiles.On("GetByID", mock.Anything, int64(42)).Return(&domain.EmployeeProfile{
			ID:       42,
			OwnerID:  7,
			Owner:    domain.UserSummary{ID: 7, Username: "alice"},
			Position: "Engineer",
		}, nil)
		skills.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Skill{}, nil)
		projects.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Project{}, nil)

		detail, err := uc.Create(ctx, 7, domain.ProfilePatch{Position: ptr("Engineer")})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), detail.ID)
		assert.Equal(t, "alice", detail.Owner.Username)
		profiles.AssertExpectations(t)
	})

	t.Run("Should reject a missing position", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		_, err := uc.Create(ctx, 7, domain.ProfilePatch{Bio: ptr("hello")})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return conflict when the caller already owns a profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

		_, err := uc.Create(ctx, 7, domain.ProfilePatch{Position: ptr("Engineer")})
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	owned := func() *domain.EmployeeProfile {
		return &domain.EmployeeProfile{ID: 1, OwnerID: 7, Bio: ptr("old bio"), Position: "Engineer"}
	}

	t.Run("Should forbid updates from anyone but the owner", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByID", mock.Anything, int64(1)).Return(owned(), nil)

		_, err := uc.Update(ctx, 99, 1, domain.ProfilePatch{Position: ptr("CTO")}, false)
		assert.Error(t, err)
		assert.Equal(t, 403, appCode(t, err))
		profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Partial update should keep omitted fields", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		skills := new(MockSkillRepo)
		projects := new(MockProjectRepo)
		uc := newProfileUC(profiles, skills, projects)

		profiles.On("GetByID", mock.Anything, int64(1)).Return(owned(), nil)
		profiles.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.EmployeeProfile) bool {
			return p.Position == "Engineer" && p.Bio != nil && *p.Bio == "new bio"
		})).Return(nil)
		skills.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Skill{}, nil)
		projects.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Project{}, nil)

		detail, err := uc.Update(ctx, 7, 1, domain.ProfilePatch{Bio: ptr("new bio")}, true)
		assert.NoError(t, err)
		assert.Equal(t, "Engineer", detail.Position)
		profiles.AssertExpectations(t)
	})

	t.Run("Full update should require the position field", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByID", mock.Anything, int64(1)).Return(owned(), nil)

		_, err := uc.Update(ctx, 7, 1, domain.ProfilePatch{Bio: ptr("new bio")}, false)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should return not found for an unknown profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(ctx, 7, 404, domain.ProfilePatch{Position: ptr("CTO")}, false)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestProfileDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid deletion by a non-owner", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByID", mock.Anything, int64(1)).Return(&domain.EmployeeProfile{ID: 1, OwnerID: 7}, nil)

		err := uc.Delete(ctx, 99, 1)
		assert.Error(t, err)
		assert.Equal(t, 403, appCode(t, err))
		profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Owner should be able to delete", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByID", mock.Anything, int64(1)).Return(&domain.EmployeeProfile{ID: 1, OwnerID: 7}, nil)
		profiles.On("Delete", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, uc.Delete(ctx, 7, 1))
		profiles.AssertExpectations(t)
	})
}

func TestProfileGetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return not found when the caller has no profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := newProfileUC(profiles, new(MockSkillRepo), new(MockProjectRepo))

		profiles.On("GetByOwnerID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetMine(ctx, 7)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
		assert.Contains(t, err.Error(), "not created a profile")
	})

	t.Run("Should assemble the detail with children", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		skills := new(MockSkillRepo)
		projects := new(MockProjectRepo)
		uc := newProfileUC(profiles, skills, projects)

		profiles.On("GetByOwnerID", mock.Anything, int64(7)).Return(&domain.EmployeeProfile{
			ID: 1, OwnerID: 7, Position: "Engineer",
		}, nil)
		skills.On("Fetch", mock.Anything, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 1
		})).Return([]domain.Skill{{ID: 5, ProfileID: 1, Name: "Go", Proficiency: "Expert"}}, nil)
		projects.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Project{}, nil)

		detail, err := uc.GetMine(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, detail.Skills, 1)
		assert.Equal(t, "Go", detail.Skills[0].Name)
	})
}

func TestSkillCreate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject a reference to a missing profile", func(t *testing.T) {
		skills := new(MockSkillRepo)
		profiles := new(MockProfileRepo)
		uc := usecase.NewSkillUsecase(skills, profiles, authz.OwnerOrReadOnly{}, validate)

		profiles.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		err := uc.Create(ctx, 7, &domain.Skill{ProfileID: 404, Name: "Go", Proficiency: "Expert"})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		skills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should forbid attaching to another user's profile", func(t *testing.T) {
		skills := new(MockSkillRepo)
		profiles := new(MockProfileRepo)
		uc := usecase.NewSkillUsecase(skills, profiles, authz.OwnerOrReadOnly{}, validate)

		profiles.On("GetByID", mock.Anything, int64(1)).Return(&domain.EmployeeProfile{ID: 1, OwnerID: 99}, nil)

		err := uc.Create(ctx, 7, &domain.Skill{ProfileID: 1, Name: "Go", Proficiency: "Expert"})
		assert.Error(t, err)
		assert.Equal(t, 403, appCode(t, err))
		skills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Owner should be able to attach a skill", func(t *testing.T) {
		skills := new(MockSkillRepo)
		profiles := new(MockProfileRepo)
		uc := usecase.NewSkillUsecase(skills, profiles, authz.OwnerOrReadOnly{}, validate)

		profiles.On("GetByID", mock.Anything, int64(1)).Return(&domain.EmployeeProfile{ID: 1, OwnerID: 7}, nil)
		skills.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.ProfileOwnerID == 7
		})).Return(nil)

		err := uc.Create(ctx, 7, &domain.Skill{ProfileID: 1, Name: "Go", Proficiency: "Expert"})
		assert.NoError(t, err)
		skills.AssertExpectations(t)
	})
}

func TestSkillUpdate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()
	owned := func() *domain.Skill {
		return &domain.Skill{ID: 5, ProfileID: 1, Name: "Go", Proficiency: "Expert", ProfileOwnerID: 7}
	}

	t.Run("Should forbid updates via the parent's owner", func(t *testing.T) {
		skills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skills, new(MockProfileRepo), authz.OwnerOrReadOnly{}, validate)

		skills.On("GetByID", mock.Anything, int64(5)).Return(owned(), nil)

		_, err := uc.Update(ctx, 99, 5, domain.SkillPatch{Name: ptr("Rust")}, true)
		assert.Error(t, err)
		assert.Equal(t, 403, appCode(t, err))
		skills.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Partial update should merge supplied fields only", func(t *testing.T) {
		skills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skills, new(MockProfileRepo), authz.OwnerOrReadOnly{}, validate)

		skills.On("GetByID", mock.Anything, int64(5)).Return(owned(), nil)
		skills.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.Name == "Rust" && s.Proficiency == "Expert"
		})).Return(nil)

		skill, err := uc.Update(ctx, 7, 5, domain.SkillPatch{Name: ptr("Rust")}, true)
		assert.NoError(t, err)
		assert.Equal(t, "Rust", skill.Name)
		skills.AssertExpectations(t)
	})

	t.Run("Full update should require every field", func(t *testing.T) {
		skills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skills, new(MockProfileRepo), authz.OwnerOrReadOnly{}, validate)

		skills.On("GetByID", mock.Anything, int64(5)).Return(owned(), nil)

		_, err := uc.Update(ctx, 7, 5, domain.SkillPatch{Name: ptr("Rust")}, false)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
	})
}

func TestSkillListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("Should surface a missing profile as not found", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		uc := usecase.NewSkillUsecase(new(MockSkillRepo), profiles, authz.OwnerOrReadOnly{}, validator.New())

		profiles.On("GetByOwnerID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.ListMine(ctx, 7)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})

	t.Run("Should narrow to the caller's profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		skills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skills, profiles, authz.OwnerOrReadOnly{}, validator.New())

		profiles.On("GetByOwnerID", mock.Anything, int64(7)).Return(&domain.EmployeeProfile{ID: 3, OwnerID: 7}, nil)
		skills.On("Fetch", mock.Anything, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 3
		})).Return([]domain.Skill{{ID: 1, ProfileID: 3}}, nil)

		result, err := uc.ListMine(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func newAuthUC(users *MockUserRepo) (domain.AuthUsecase, *token.Service, token.RevocationStore) {
	tokens := token.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	revocations := token.NewMemoryRevocationStore()
	return usecase.NewAuthUsecase(users, tokens, revocations, validator.New()), tokens, revocations
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hash the password and issue a token pair", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, tokens, _ := newAuthUC(users)

		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash != "s3cretpass" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)

		user, pair, err := uc.Register(ctx, domain.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cretpass",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)

		claims, err := tokens.ValidateAccess(pair.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "alice", claims.Username)

		_, err = tokens.ValidateRefresh(pair.RefreshToken)
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("Should reject invalid input before touching the store", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, _, _ := newAuthUC(users)

		_, _, err := uc.Register(ctx, domain.RegisterInput{Username: "al", Email: "nope", Password: "short"})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a duplicate to conflict", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, _, _ := newAuthUC(users)

		users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cretpass",
		})
		assert.Error(t, err)
		assert.Equal(t, 409, appCode(t, err))
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	alice := &domain.User{ID: 7, Username: "alice", PasswordHash: string(hash)}

	t.Run("Should succeed with the right password", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, _, _ := newAuthUC(users)

		users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)

		user, pair, err := uc.Login(ctx, "alice", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("Wrong password and unknown user should be indistinguishable", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, _, _ := newAuthUC(users)

		users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		users.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, _, badPass := uc.Login(ctx, "alice", "wrong")
		_, _, badUser := uc.Login(ctx, "ghost", "whatever")
		assert.Error(t, badPass)
		assert.Error(t, badUser)
		assert.Equal(t, badPass.Error(), badUser.Error())
		assert.Equal(t, 401, appCode(t, badPass))
	})
}

func TestAuthRefresh(t *testing.T) {
	ctx := context.Background()
	alice := &domain.User{ID: 7, Username: "alice"}

	t.Run("Should rotate the pair and revoke the old refresh token", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, tokens, _ := newAuthUC(users)

		users.On("GetByID", mock.Anything, int64(7)).Return(alice, nil)

		refresh, err := tokens.GenerateRefreshToken(7)
		assert.NoError(t, err)

		pair, err := uc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)

		// Replaying the consumed token must fail.
		_, err = uc.Refresh(ctx, refresh)
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
		assert.Contains(t, err.Error(), "revoked")
	})

	t.Run("Should reject an access token presented as refresh", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, tokens, _ := newAuthUC(users)

		access, err := tokens.GenerateAccessToken(7, "alice")
		assert.NoError(t, err)

		_, err = uc.Refresh(ctx, access)
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a refresh token for a deleted user", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, tokens, _ := newAuthUC(users)

		users.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		refresh, _ := tokens.GenerateRefreshToken(7)
		_, err := uc.Refresh(ctx, refresh)
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})
}

func TestAuthLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Logout should revoke the refresh token", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, tokens, _ := newAuthUC(users)

		refresh, err := tokens.GenerateRefreshToken(7)
		assert.NoError(t, err)
		assert.NoError(t, uc.Logout(ctx, refresh))

		_, err = uc.Refresh(ctx, refresh)
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})

	t.Run("Logout with a garbage token should fail", func(t *testing.T) {
		users := new(MockUserRepo)
		uc, _, _ := newAuthUC(users)

		err := uc.Logout(ctx, "not-a-token")
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})
}

func TestProjectFullUpdate(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	owned := func() *domain.Project {
		return &domain.Project{
			ID:               9,
			ProfileID:        1,
			Title:            "Old",
			Description:      "Old project",
			TechnologiesUsed: []string{"Go", "Postgres"},
			ProjectURL:       ptr("https://example.com"),
			StartDate:        start,
			ProfileOwnerID:   7,
		}
	}

	t.Run("Full update should clear fields that were not resupplied", func(t *testing.T) {
		projects := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(projects, new(MockProfileRepo), authz.OwnerOrReadOnly{}, validate)

		projects.On("GetByID", mock.Anything, int64(9)).Return(owned(), nil)
		projects.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Title == "New" && len(p.TechnologiesUsed) == 0 && p.ProjectURL == nil
		})).Return(nil)

		project, err := uc.Update(ctx, 7, 9, domain.ProjectPatch{
			Title:       ptr("New"),
			Description: ptr("New project"),
			StartDate:   &start,
		}, false)
		assert.NoError(t, err)
		assert.Nil(t, project.ProjectURL)
		projects.AssertExpectations(t)
	})

	t.Run("Partial update should leave the technology list alone", func(t *testing.T) {
		projects := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(projects, new(MockProfileRepo), authz.OwnerOrReadOnly{}, validate)

		projects.On("GetByID", mock.Anything, int64(9)).Return(owned(), nil)
		projects.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Title == "New" && len(p.TechnologiesUsed) == 2
		})).Return(nil)

		project, err := uc.Update(ctx, 7, 9, domain.ProjectPatch{Title: ptr("New")}, true)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "Postgres"}, project.TechnologiesUsed)
	})
}
