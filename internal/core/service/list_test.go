package service_test

import (
	"context"
	"testing"

	"todolist/internal/adapter/database/sqlite"
	"todolist/internal/adapter/database/sqlite/repository"
	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
	. "todolist/pkg/test"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type ListServiceTestSuite struct {
	suite.Suite
	svc      port.ListService
	taskRepo port.TaskRepository
	userID   int64
}

func (s *ListServiceTestSuite) SetupTest() {
	db := sqlite.FromSQL(InitTestDB())

	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	s.taskRepo = repository.NewTaskRepository(db)

	clock := fixedClock{now: testNow}
	s.svc = service.NewListService(listRepo, userRepo, clock)

	userSvc := service.NewUserService(userRepo, clock)
	user, err := userSvc.Register(context.Background(), "list_owner", "secret123")
	s.Require().NoError(err)

	s.userID = user.ID
}

func TestListServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(ListServiceTestSuite))
}

func (s *ListServiceTestSuite) TestCreate_Success() {
	list, err := s.svc.Create(context.Background(), s.userID, "groceries")

	Expect(err).ToNot(HaveOccurred())
	Expect(list.ID).ToNot(BeZero())
	Expect(list.Category).To(Equal("groceries"))
	Expect(list.UserID).To(Equal(s.userID))
}

func (s *ListServiceTestSuite) TestCreate_UnknownUser() {
	_, err := s.svc.Create(context.Background(), 424242, "groceries")

	Expect(err).To(MatchError(apperr.ErrUserNotFound))
}

func (s *ListServiceTestSuite) TestCreate_DuplicateCategory() {
	ctx := context.Background()

	_, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	_, err = s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).To(MatchError(apperr.ErrCategoryConflict))
}

func (s *ListServiceTestSuite) TestEnsureList_CreatesWhenAbsent() {
	ctx := context.Background()

	list, err := s.svc.EnsureList(ctx, s.userID, "groceries")

	Expect(err).ToNot(HaveOccurred())
	Expect(list.ID).ToNot(BeZero())

	// a second call resolves to the same list instead of failing
	again, err := s.svc.EnsureList(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())
	Expect(again.ID).To(Equal(list.ID))
}

func (s *ListServiceTestSuite) TestGet_ReturnsTaskIDsInOrder() {
	ctx := context.Background()

	list, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	first := s.createTask(list.ID, "milk")
	second := s.createTask(list.ID, "bread")

	got, taskIDs, err := s.svc.Get(ctx, list.ID)

	Expect(err).ToNot(HaveOccurred())
	Expect(got.ID).To(Equal(list.ID))
	Expect(taskIDs).To(Equal([]int64{first, second}))
}

func (s *ListServiceTestSuite) TestGet_UnknownList() {
	_, _, err := s.svc.Get(context.Background(), 424242)

	Expect(err).To(MatchError(apperr.ErrListNotFound))
}

func (s *ListServiceTestSuite) TestGetAll_EmptyForUnknownUser() {
	lists, tasksByList, err := s.svc.GetAll(context.Background(), 424242)

	Expect(err).ToNot(HaveOccurred())
	Expect(lists).To(BeEmpty())
	Expect(tasksByList).To(BeEmpty())
}

func (s *ListServiceTestSuite) TestGetAll_GroupsTasksByList() {
	ctx := context.Background()

	groceries, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	work, err := s.svc.Create(ctx, s.userID, "work")
	Expect(err).ToNot(HaveOccurred())

	milk := s.createTask(groceries.ID, "milk")
	report := s.createTask(work.ID, "report")

	lists, tasksByList, err := s.svc.GetAll(ctx, s.userID)

	Expect(err).ToNot(HaveOccurred())
	Expect(lists).To(HaveLen(2))
	Expect(tasksByList[groceries.ID]).To(Equal([]int64{milk}))
	Expect(tasksByList[work.ID]).To(Equal([]int64{report}))
}

func (s *ListServiceTestSuite) TestChangeCategory_Success() {
	ctx := context.Background()

	list, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	err = s.svc.ChangeCategory(ctx, list.ID, "errands", s.userID)
	Expect(err).ToNot(HaveOccurred())

	got, _, err := s.svc.Get(ctx, list.ID)
	Expect(err).ToNot(HaveOccurred())
	Expect(got.Category).To(Equal("errands"))
}

func (s *ListServiceTestSuite) TestChangeCategory_Conflict() {
	ctx := context.Background()

	_, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	other, err := s.svc.Create(ctx, s.userID, "work")
	Expect(err).ToNot(HaveOccurred())

	err = s.svc.ChangeCategory(ctx, other.ID, "groceries", s.userID)
	Expect(err).To(MatchError(apperr.ErrCategoryConflict))
}

func (s *ListServiceTestSuite) TestDelete_RemovesListAndTasks() {
	ctx := context.Background()

	list, err := s.svc.Create(ctx, s.userID, "groceries")
	Expect(err).ToNot(HaveOccurred())

	taskIDs := []int64{
		s.createTask(list.ID, "milk"),
		s.createTask(list.ID, "bread"),
		s.createTask(list.ID, "eggs"),
	}

	err = s.svc.Delete(ctx, list.ID, s.userID)
	Expect(err).ToNot(HaveOccurred())

	_, _, err = s.svc.Get(ctx, list.ID)
	Expect(err).To(MatchError(apperr.ErrListNotFound))

	for _, id := range taskIDs {
		_, err := s.taskRepo.GetByID(ctx, id)
		Expect(err).To(MatchError(apperr.ErrTaskNotFound))
	}
}

func (s *ListServiceTestSuite) TestDelete_UnknownList() {
	err := s.svc.Delete(context.Background(), 424242, s.userID)

	Expect(err).To(MatchError(apperr.ErrListNotFound))
}

func (s *ListServiceTestSuite) createTask(listID int64, name string) int64 {
	task, err := s.taskRepo.Create(context.Background(), domain.Task{
		Name:       name,
		TodoListID: listID,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	})
	s.Require().NoError(err)

	return task.ID
}
