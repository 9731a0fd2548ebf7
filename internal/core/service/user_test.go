package service_test

import (
	"context"
	"testing"
	"time"

	"todolist/internal/adapter/database/sqlite"
	"todolist/internal/adapter/database/sqlite/repository"
	"todolist/internal/core/apperr"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
	. "todolist/pkg/test"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

// fixedClock pins time so timestamp and deadline assertions are exact.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type UserServiceTestSuite struct {
	suite.Suite
	svc  port.UserService
	repo port.UserRepository
}

func (s *UserServiceTestSuite) SetupTest() {
	db := sqlite.FromSQL(InitTestDB())

	s.repo = repository.NewUserRepository(db)
	s.svc = service.NewUserService(s.repo, fixedClock{now: testNow})
}

func TestUserServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegister_Success() {
	user, err := s.svc.Register(context.Background(), "alice_99", "secret123")

	Expect(err).ToNot(HaveOccurred())
	Expect(user.ID).ToNot(BeZero())
	Expect(user.Username).To(Equal("alice_99"))
	Expect(user.EncryptedPassword).ToNot(Equal("secret123"))
}

func (s *UserServiceTestSuite) TestRegister_InvalidUsername() {
	_, err := s.svc.Register(context.Background(), "a!", "secret123")

	Expect(err).To(MatchError(apperr.ErrInvalidUsername))
}

func (s *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()

	_, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	_, err = s.svc.Register(ctx, "alice_99", "othersecret")
	Expect(err).To(MatchError(apperr.ErrDuplicateUsername))
}

func (s *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()

	registered, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	user, err := s.svc.Authenticate(ctx, "alice_99", "secret123")

	Expect(err).ToNot(HaveOccurred())
	Expect(user.ID).To(Equal(registered.ID))
}

func (s *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()

	_, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	_, err = s.svc.Authenticate(ctx, "alice_99", "wrongpass")
	Expect(err).To(MatchError(apperr.ErrAuthenticationFailure))
}

func (s *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	_, err := s.svc.Authenticate(context.Background(), "nobody", "secret123")

	Expect(err).To(MatchError(apperr.ErrUserNotFound))
}

func (s *UserServiceTestSuite) TestUpdateProfile_PartialFields() {
	ctx := context.Background()

	user, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	newName := "alice_new"
	err = s.svc.UpdateProfile(ctx, user.ID, &newName, nil)
	Expect(err).ToNot(HaveOccurred())

	// old password still works, only the name changed
	updated, err := s.svc.Authenticate(ctx, "alice_new", "secret123")
	Expect(err).ToNot(HaveOccurred())
	Expect(updated.Username).To(Equal("alice_new"))
}

func (s *UserServiceTestSuite) TestUpdateProfile_RejectsInvalidUsername() {
	ctx := context.Background()

	user, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	bad := "no spaces here"
	err = s.svc.UpdateProfile(ctx, user.ID, &bad, nil)
	Expect(err).To(MatchError(apperr.ErrInvalidUsername))
}

func (s *UserServiceTestSuite) TestUpdateProfile_RejectsEmptyPassword() {
	ctx := context.Background()

	user, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	empty := ""
	err = s.svc.UpdateProfile(ctx, user.ID, nil, &empty)
	Expect(err).To(MatchError(apperr.ErrAuthenticationFailure))
}

func (s *UserServiceTestSuite) TestSetAvatar() {
	ctx := context.Background()

	user, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	err = s.svc.SetAvatar(ctx, user.ID, "/images/abc.png")
	Expect(err).ToNot(HaveOccurred())

	stored, err := s.repo.GetByID(ctx, user.ID)
	Expect(err).ToNot(HaveOccurred())
	Expect(stored.AvatarURL).To(Equal("/images/abc.png"))
}

func (s *UserServiceTestSuite) TestDelete_UnknownUser() {
	err := s.svc.Delete(context.Background(), 424242)

	Expect(err).To(MatchError(apperr.ErrUserNotFound))
}

func (s *UserServiceTestSuite) TestDelete_RemovesUser() {
	ctx := context.Background()

	user, err := s.svc.Register(ctx, "alice_99", "secret123")
	Expect(err).ToNot(HaveOccurred())

	err = s.svc.Delete(ctx, user.ID)
	Expect(err).ToNot(HaveOccurred())

	_, err = s.repo.GetByID(ctx, user.ID)
	Expect(err).To(MatchError(apperr.ErrUserNotFound))
}
