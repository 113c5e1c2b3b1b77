package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"logistics-backoffice/internal/config"
	domainClient "logistics-backoffice/internal/domain/client"
	clientMocks "logistics-backoffice/internal/domain/client/mocks"
	domainDocument "logistics-backoffice/internal/domain/document"
	documentMocks "logistics-backoffice/internal/domain/document/mocks"
	"logistics-backoffice/internal/domain/event"
	domainNotification "logistics-backoffice/internal/domain/notification"
	notificationMocks "logistics-backoffice/internal/domain/notification/mocks"
	domainOrder "logistics-backoffice/internal/domain/order"
	orderMocks "logistics-backoffice/internal/domain/order/mocks"
	routeMocks "logistics-backoffice/internal/domain/route/mocks"
	"logistics-backoffice/internal/domain/session"
	txMocks "logistics-backoffice/internal/domain/transaction/mocks"
	domainTR "logistics-backoffice/internal/domain/transportation"
	trMocks "logistics-backoffice/internal/domain/transportation/mocks"
	domainUser "logistics-backoffice/internal/domain/user"
	userMocks "logistics-backoffice/internal/domain/user/mocks"
	"logistics-backoffice/internal/infrastructure/redisstore"
	"logistics-backoffice/pkg/utils"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "router-test-secret"

type fixture struct {
	router        *gin.Engine
	token         string
	clients       *clientMocks.MockRepository
	orders        *orderMocks.MockRepository
	routes        *routeMocks.MockRepository
	requests      *trMocks.MockRepository
	notifications *notificationMocks.MockRepository
	documents     *documentMocks.MockRepository
	users         *userMocks.MockRepository
	sessions      *redisstore.RedisStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &fixture{
		clients:       clientMocks.NewMockRepository(ctrl),
		orders:        orderMocks.NewMockRepository(ctrl),
		routes:        routeMocks.NewMockRepository(ctrl),
		requests:      trMocks.NewMockRepository(ctrl),
		notifications: notificationMocks.NewMockRepository(ctrl),
		documents:     documentMocks.NewMockRepository(ctrl),
		users:         userMocks.NewMockRepository(ctrl),
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Environment: "test", MaxRequestSize: 1 << 20},
		Session: config.SessionConfig{Secret: testSecret, TTL: time.Hour, CookieName: "session"},
	}

	mr := miniredis.RunT(t)
	client := redisstore.NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessions := redisstore.NewRedisStore(client)
	f.sessions = sessions

	repos := Repositories{
		Clients:       f.clients,
		Orders:        f.orders,
		Routes:        f.routes,
		Requests:      f.requests,
		Notifications: f.notifications,
		Documents:     f.documents,
		Users:         f.users,
	}
	services := NewServices(cfg, repos, txMocks.NewMockManager(ctrl), sessions, event.NopPublisher{})
	f.router = NewRouter(testContext(t), cfg, services)

	sess := &session.Session{ID: "sess-1", UserID: 1, Username: "admin", Role: domainUser.RoleAdmin}
	require.NoError(t, sessions.Save(context.Background(), sess, time.Hour))
	token, _, err := utils.GenerateSessionToken(sess.ID, testSecret, time.Hour)
	require.NoError(t, err)
	f.token = token

	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestClients_CreateThenGet(t *testing.T) {
	f := newFixture(t)

	var stored domainClient.Client
	f.clients.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domainClient.Client) error {
			c.ID = 1
			stored = *c
			return nil
		})
	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (*domainClient.Client, error) {
			c := stored
			return &c, nil
		})

	w := f.do(http.MethodPost, "/api/clients", `{"name":"  Acme Logistics ","email":"Ops@Acme.test"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, float64(1), created["id"])

	w = f.do(http.MethodGet, "/api/clients/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Acme Logistics", got["name"])
	assert.Equal(t, "ops@acme.test", got["email"])
}

func TestClients_ValidationError(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/clients", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	fields, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, fields)
	assert.Equal(t, "name", fields[0].(map[string]interface{})["field"])
}

func TestClients_MalformedBodyAndID(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/clients", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w)["message"])

	w = f.do(http.MethodGet, "/api/clients/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID", decode(t, w)["message"])
}

func TestOrders_NotFound(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, domainOrder.ErrOrderNotFound)

	w := f.do(http.MethodGet, "/api/orders/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode(t, w)["message"])
}

func TestOrders_RoutesOfOrderWithoutRoutes(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domainOrder.Order{ID: 7}, nil)
	f.routes.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := f.do(http.MethodGet, "/api/orders/7/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTransportationRequest_AcceptThenBackToPending(t *testing.T) {
	f := newFixture(t)

	current := domainTR.Request{ID: 5, OrderID: 7, CarrierID: 3, RequestNumber: "TR-5", Status: domainTR.StatusPending}
	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).
		DoAndReturn(func(context.Context, int64) (*domainTR.Request, error) {
			tr := current
			return &tr, nil
		}).Times(2)
	f.requests.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domainTR.Request) error {
			current = *tr
			return nil
		})

	w := f.do(http.MethodPost, "/api/transportation-requests/5/accept", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "accepted", decode(t, w)["status"])

	w = f.do(http.MethodPut, "/api/transportation-requests/5", `{"status":"pending"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cannot change transportation request status from accepted to pending", decode(t, w)["message"])
	assert.Equal(t, domainTR.StatusAccepted, current.Status)
}

func TestNotifications_ListWithFilters(t *testing.T) {
	f := newFixture(t)

	userID, orderID := int64(7), int64(40)
	f.notifications.EXPECT().List(gomock.Any(), &domainNotification.Filter{UserID: &userID, OrderID: &orderID, UnreadOnly: true}).
		Return([]*domainNotification.Notification{{ID: 1, UserID: 7, Title: "Delay", Message: "Truck late", RelatedOrderID: &orderID}}, nil)

	w := f.do(http.MethodGet, "/api/notifications?userId=7&unread=true&orderId=40", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Delay", list[0]["title"])
}

func TestNotifications_Update(t *testing.T) {
	f := newFixture(t)

	stored := &domainNotification.Notification{ID: 3, UserID: 7, Title: "Old", Message: "Hello", Type: domainNotification.TypeInfo}
	f.notifications.EXPECT().GetByID(gomock.Any(), int64(3)).Return(stored, nil).Times(2)
	f.notifications.EXPECT().Update(gomock.Any(), stored).Return(nil).Times(2)

	w := f.do(http.MethodPatch, "/api/notifications/3", `{"title":"New","type":"warning"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "New", body["title"])
	assert.Equal(t, "warning", body["type"])
	assert.Equal(t, "Hello", body["message"])

	w = f.do(http.MethodPut, "/api/notifications/3", `{"isRead":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isRead"])
}

func TestNotifications_CreateBlankTitle(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/notifications", `{"userId":7,"title":"   ","message":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocuments_List(t *testing.T) {
	f := newFixture(t)

	orderID := int64(4)
	f.documents.EXPECT().List(gomock.Any(), &domainDocument.Filter{OrderID: &orderID}).
		Return([]*domainDocument.Document{{ID: 2, OrderID: 4, FileName: "cmr.pdf"}}, nil)

	w := f.do(http.MethodGet, "/api/documents?orderId=4", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "cmr.pdf", list[0]["fileName"])
}

func TestUsers_RoleChangeEndsSessions(t *testing.T) {
	f := newFixture(t)

	logist := &session.Session{ID: "sess-5", UserID: 5, Username: "petrov", Role: domainUser.RoleLogist}
	require.NoError(t, f.sessions.Save(context.Background(), logist, time.Hour))
	logistToken, _, err := utils.GenerateSessionToken(logist.ID, testSecret, time.Hour)
	require.NoError(t, err)

	stored := &domainUser.User{ID: 5, Username: "petrov", Email: "petrov@example.com", Role: domainUser.RoleLogist}
	f.users.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
	f.users.EXPECT().Update(gomock.Any(), stored).Return(nil)

	w := f.do(http.MethodPatch, "/api/users/5", `{"role":"manager"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "manager", decode(t, w)["role"])

	f.token = logistToken
	w = f.do(http.MethodGet, "/api/notifications", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	f := newFixture(t)
	f.token = ""

	w := f.do(http.MethodGet, "/api/clients", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decode(t, w)["message"])

	f.token = "not-a-token"
	w = f.do(http.MethodGet, "/api/clients", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired session", decode(t, w)["message"])
}

func TestLogin_UnknownUser(t *testing.T) {
	f := newFixture(t)
	f.token = ""
	f.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, domainUser.ErrUserNotFound)

	w := f.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"whatever1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", decode(t, w)["message"])
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}

	healthy := NewRouter(testContext(t), cfg, &Services{}, HealthCheck{Name: "database", Check: func(context.Context) error { return nil }})
	w := httptest.NewRecorder()
	healthy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","components":{"database":"up"}}`, w.Body.String())

	unhealthy := NewRouter(testContext(t), cfg, &Services{},
		HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)
	w = httptest.NewRecorder()
	unhealthy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","components":{"database":"up","redis":"down"}}`, w.Body.String())
}
