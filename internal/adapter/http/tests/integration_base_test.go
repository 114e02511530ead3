package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"taskcollab/internal/adapter/auth"
	dbadapter "taskcollab/internal/adapter/db"
	httpadapter "taskcollab/internal/adapter/http"
	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/handlers"
	"taskcollab/internal/app/notify"
	"taskcollab/internal/app/service"
	"taskcollab/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase wires the full router against a fresh in-memory
// database for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	DB         *sqlx.DB
	Router     *gin.Engine
	Dispatcher *notify.Dispatcher
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	db, err := dbadapter.ConnectSQLite(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.ApplySchema(context.Background(), db))
	s.DB = db

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)

	s.Dispatcher = notify.NewDispatcher(notify.Config{Workers: 1, QueueSize: 16}, notificationRepository)
	s.Require().NoError(s.Dispatcher.Start())

	tokens := auth.NewJWTManager(auth.JWTConfig{
		AccessSecret:         "integration-access",
		RefreshSecret:        "integration-refresh",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		Issuer:               "taskcollab-test",
	})
	authService := service.NewAuthService(userRepository, auth.NewPasswordHasherWithCost(bcrypt.MinCost), tokens)
	invitationService := service.NewInvitationService(taskRepository, userRepository, dbadapter.NewInvitationRepository(db), s.Dispatcher)
	subTaskService := service.NewSubTaskService(taskRepository, dbadapter.NewSubTaskRepository(db), s.Dispatcher)

	router, err := httpadapter.NewRouter(zap.NewNop(), httpadapter.RouterConfig{}, tokens, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(service.NewUserService(userRepository, taskRepository)),
		Task:         handlers.NewTaskHandler(service.NewTaskService(taskRepository)),
		Invitation:   handlers.NewInvitationHandler(invitationService),
		SubTask:      handlers.NewSubTaskHandler(subTaskService),
		Notification: handlers.NewNotificationHandler(service.NewNotificationService(notificationRepository)),
	})
	s.Require().NoError(err)
	s.Router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	s.Require().NoError(s.Dispatcher.Stop(context.Background()))
	s.Require().NoError(s.DB.Close())
}

// DrainNotifications stops the dispatcher so every queued notification is
// stored before the test reads them back.
func (s *IntegrationSuiteBase) DrainNotifications() {
	s.Require().NoError(s.Dispatcher.Stop(context.Background()))
}

func (s *IntegrationSuiteBase) Do(method, target, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = encoded
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) Signup(name string) dto.SessionResponse {
	rec := s.Do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    name + "@example.com",
		"password": "password123",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var session dto.SessionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	return session
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}
