package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/internal/adapter/database/sqlite"
	"todolist/internal/adapter/database/sqlite/repository"
	adapterhttp "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/routes"
	"todolist/internal/adapter/storage"
	"todolist/internal/core/model/response"
	"todolist/internal/core/service"
	. "todolist/pkg/test"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerSuite struct {
	suite.Suite
	Router *gin.Engine
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.T().Setenv("JWT_SECRET", "test-secret")

	db := sqlite.FromSQL(InitTestDB())

	container := adapterhttp.NewContainer(adapterhttp.Repositories{
		User: repository.NewUserRepository(db),
		List: repository.NewListRepository(db),
		Task: repository.NewTaskRepository(db),
	}, storage.NewLocalStore(s.T().TempDir(), "/images"), service.SystemClock{})

	s.Router = routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		ListHandler: container.ListHandler,
		TaskHandler: container.TaskHandler,
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) TestRegisterSuccess() {
	reqBody := strings.NewReader(`{"username": "alice_99", "password": "12345678"}`)
	req, _ := http.NewRequest("POST", "/user/register", reqBody)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	body, _ := io.ReadAll(rr.Body)
	data := response.SuccessResponse{}
	json.Unmarshal(body, &data)

	Expect(data.Data).ToNot(BeNil())
}

func (s *AuthHandlerSuite) TestRegisterInvalidUsername() {
	reqBody := strings.NewReader(`{"username": "bad name here!!", "password": "12345678"}`)
	req, _ := http.NewRequest("POST", "/user/register", reqBody)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)
	data := response.ErrorResponse{}
	json.Unmarshal(body, &data)

	Expect(data.Error.Code).To(Equal(1001))
}

func (s *AuthHandlerSuite) TestRegisterDuplicateUsername() {
	for i := 0; i < 2; i++ {
		reqBody := strings.NewReader(`{"username": "alice_99", "password": "12345678"}`)
		req, _ := http.NewRequest("POST", "/user/register", reqBody)

		rr := httptest.NewRecorder()
		s.Router.ServeHTTP(rr, req)

		if i == 0 {
			Expect(rr.Code).To(Equal(http.StatusCreated))
			continue
		}

		Expect(rr.Code).To(Equal(http.StatusBadRequest))

		body, _ := io.ReadAll(rr.Body)
		data := response.ErrorResponse{}
		json.Unmarshal(body, &data)

		Expect(data.Error.Code).To(Equal(1003))
	}
}

func (s *AuthHandlerSuite) TestRegisterValidationError() {
	reqBody := strings.NewReader(`{"username": "alice_99", "password": "123"}`)
	req, _ := http.NewRequest("POST", "/user/register", reqBody)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)
	data := response.ErrorResponse{}
	json.Unmarshal(body, &data)

	Expect(len(data.Error.Errors)).To(BeNumerically(">", 0))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	reqBody := strings.NewReader(`{"username": "alice_99", "password": "12345678"}`)
	req, _ := http.NewRequest("POST", "/user/register", reqBody)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	reqBody = strings.NewReader(`{"username": "alice_99", "password": "12345678"}`)
	req, _ = http.NewRequest("POST", "/user/login", reqBody)
	rr = httptest.NewRecorder()

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)
	data := gin.H{}
	json.Unmarshal(body, &data)

	Expect(data["access_token"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestLoginWrongPassword() {
	reqBody := strings.NewReader(`{"username": "alice_99", "password": "12345678"}`)
	req, _ := http.NewRequest("POST", "/user/register", reqBody)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	reqBody = strings.NewReader(`{"username": "alice_99", "password": "wrongpass"}`)
	req, _ = http.NewRequest("POST", "/user/login", reqBody)
	rr = httptest.NewRecorder()

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))

	body, _ := io.ReadAll(rr.Body)
	data := response.ErrorResponse{}
	json.Unmarshal(body, &data)

	Expect(data.Error.Code).To(Equal(1002))
}

func (s *AuthHandlerSuite) TestLoginUnknownUser() {
	reqBody := strings.NewReader(`{"username": "nobody99", "password": "12345678"}`)
	req, _ := http.NewRequest("POST", "/user/login", reqBody)
	rr := httptest.NewRecorder()

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	body, _ := io.ReadAll(rr.Body)
	data := response.ErrorResponse{}
	json.Unmarshal(body, &data)

	Expect(data.Error.Code).To(Equal(1005))
}
