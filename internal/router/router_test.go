package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-mongo-shop/config"
	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/payment"
	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
	"github.com/oksasatya/go-mongo-shop/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type fakeGateway struct {
	amounts []int64
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, amount float64) (string, error) {
	f.amounts = append(f.amounts, payment.ToMinorUnits(amount))
	return "pi_test_secret", nil
}

type testApp struct {
	engine  *gin.Engine
	repos   container.Repositories
	gateway *fakeGateway
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gw := &fakeGateway{}
	app := newTestAppWithGateway(t, gw)
	app.gateway = gw
	return app
}

func newTestAppWithGateway(t *testing.T, gw application.PaymentGateway) *testApp {
	t.Helper()
	logger := helpers.NewLogger("shop-test", "test")

	cfg := config.Load()
	cfg.StoreDriver = "memory"
	cfg.Env = "test"
	cfg.DebugMetricsEnabled = true

	c := &container.Container{
		Config:   cfg,
		Logger:   logger,
		Repos:    container.NewMemoryRepositories(),
		Payments: gw,
	}
	return &testApp{engine: NewEngine(c), repos: c.Repos}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testApp) role(t *testing.T, email string) entity.Role {
	t.Helper()
	u, err := a.repos.Users.FindOne(context.Background(), repository.ByEmail(email))
	require.NoError(t, err)
	if u == nil {
		return ""
	}
	return u.Role
}

func TestWelcomeAndHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = app.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/debug/vars", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/card", `{"answer":"42"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = app.do(t, http.MethodGet, "/debug/store", "")
	assert.Equal(t, http.StatusOK, w.Code)
	counts := decode[map[string]int](t, w)
	assert.Equal(t, 1, counts["Card"])
	assert.Equal(t, 0, counts["Order"])
}

func TestUnknownEmailIsNotAdmin(t *testing.T) {
	app := newTestApp(t)
	for _, email := range []string{"nobody@x.io", "", "a%2Bb@x.io"} {
		w := app.do(t, http.MethodGet, "/user?email="+email, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin":false}`, w.Body.String())
	}
}

func TestPutUserUpsertsAndGuardsRole(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPut, "/user", `{"email":"a@x.io","name":"Ann","role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[map[string]any](t, w)
	assert.EqualValues(t, 1, res["upsertedCount"])
	assert.Equal(t, entity.RoleDefault, app.role(t, "a@x.io"))

	w = app.do(t, http.MethodGet, "/user?email=a@x.io", "")
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = app.do(t, http.MethodPut, "/user", `{"name":"no email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w), "message")
}

func TestAdminPromotion(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	_, err := app.repos.Users.InsertMany(ctx, []entity.User{
		{Email: "boss@x.io", Role: entity.RoleAdmin},
		{Email: "joe@x.io", Role: entity.RoleDefault},
		{Email: "t@x.io", Role: entity.RoleDefault},
	})
	require.NoError(t, err)

	t.Run("empty body is a missing requester", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/user/admin", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["message"], "requester")
		assert.Equal(t, entity.RoleDefault, app.role(t, "t@x.io"))
	})

	t.Run("missing requester is 404 and mutates nothing", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/user/admin", `{"newAdminEmail":"t@x.io"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["message"], "requester")
		assert.Equal(t, entity.RoleDefault, app.role(t, "t@x.io"))
	})

	t.Run("non admin requester is 403 and mutates nothing", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/user/admin", `{"requester":"joe@x.io","newAdminEmail":"t@x.io"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NotEmpty(t, decode[map[string]string](t, w)["message"])
		assert.Equal(t, entity.RoleDefault, app.role(t, "t@x.io"))
	})

	t.Run("admin requester promotes idempotently", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := app.do(t, http.MethodPut, "/user/admin", `{"requester":"boss@x.io","newAdminEmail":"t@x.io"}`)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, entity.RoleAdmin, app.role(t, "t@x.io"))
		}
		w := app.do(t, http.MethodGet, "/user?email=t@x.io", "")
		assert.JSONEq(t, `{"admin":true}`, w.Body.String())
	})
}

func TestMakePayment(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPut, "/user", `{"email":"a@x.io"}`)

	w := app.do(t, http.MethodPut, "/makepayment?email=a@x.io", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["modifiedCount"])

	u, err := app.repos.Users.FindOne(context.Background(), repository.ByEmail("a@x.io"))
	require.NoError(t, err)
	assert.True(t, u.IsPaidUser)

	w = app.do(t, http.MethodPut, "/makepayment?email=ghost@x.io", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode[map[string]any](t, w)["matchedCount"])
}

func TestProducts(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/products", `{"name":"Phantom 4","price":1299.5,"rating":4.7,"desc":"drone"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	id, _ := created["_id"].(string)
	require.Len(t, id, 24)
	assert.Equal(t, []any{}, created["comments"])

	w = app.do(t, http.MethodGet, "/products/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Phantom 4", decode[map[string]any](t, w)["name"])

	w = app.do(t, http.MethodGet, "/products", "")
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = app.do(t, http.MethodGet, "/products/search?q=phantom", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = app.do(t, http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = app.do(t, http.MethodPost, "/products", `{"name":"no price","rating":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["message"], "price")

	w = app.do(t, http.MethodPost, "/products", `{"name":"neg","price":-1,"rating":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodDelete, "/products/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["deletedCount"])
}

func TestMalformedProductIDDeletesNothing(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/products", `{"name":"A","price":1,"rating":1}`)

	for _, method := range []string{http.MethodDelete, http.MethodGet} {
		w := app.do(t, method, "/products/not-an-id", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformated id"}`, w.Body.String())
	}

	all, err := app.repos.Products.Find(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderLifecycle(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/orders", `{"email":"a@x.io","product_id":"p1","status":"shipped","qty":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[map[string]any](t, w)
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 2, order["qty"])
	id := order["_id"].(string)

	stored, err := app.repos.Orders.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, stored.Status)

	w = app.do(t, http.MethodPut, "/orders/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	stored, _ = app.repos.Orders.FindByID(context.Background(), id)
	assert.Equal(t, entity.OrderShipped, stored.Status)

	// shipping an unknown id creates it
	fresh := primitive.NewObjectID().Hex()
	w = app.do(t, http.MethodPut, "/orders/"+fresh, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["upsertedCount"])
	created, _ := app.repos.Orders.FindByID(context.Background(), fresh)
	require.NotNil(t, created)
	assert.Equal(t, entity.OrderShipped, created.Status)

	w = app.do(t, http.MethodGet, "/orders?email=a@x.io", "")
	assert.Len(t, decode[[]map[string]any](t, w), 1)
	w = app.do(t, http.MethodGet, "/orders", "")
	assert.Len(t, decode[[]map[string]any](t, w), 2)

	w = app.do(t, http.MethodDelete, "/orders/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["deletedCount"])

	w = app.do(t, http.MethodPut, "/orders/bad", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderIgnoresNonStringStatus(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"email":"a@x.io","status":1}`,
		`{"email":"a@x.io","status":{"x":"shipped"}}`,
		`{"email":"a@x.io","status":false}`,
	} {
		w := app.do(t, http.MethodPost, "/orders", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		assert.Equal(t, "pending", decode[map[string]any](t, w)["status"], body)
	}

	stored, err := app.repos.Orders.Find(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, o := range stored {
		assert.Equal(t, entity.OrderPending, o.Status)
	}
}

func TestOrderWithFreeFormProductRefCannotBeBulkDeleted(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/orders", `{"email":"a@x.io","product_id":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodDelete, "/orders/deleteall/p1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"malformated id"}`, w.Body.String())

	left, err := app.repos.Orders.Find(context.Background(), repository.ByProductID("p1"))
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestDeleteOrdersByProduct(t *testing.T) {
	app := newTestApp(t)
	target := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	for _, body := range []string{
		`{"email":"a@x.io","product_id":"` + target + `"}`,
		`{"email":"b@x.io","product_id":"` + target + `"}`,
		`{"email":"c@x.io","product_id":"` + other + `"}`,
	} {
		require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/orders", body).Code)
	}

	w := app.do(t, http.MethodDelete, "/orders/deleteall/"+target, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode[map[string]any](t, w)["deletedCount"])

	left, err := app.repos.Orders.Find(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other, left[0].ProductID)

	w = app.do(t, http.MethodDelete, "/orders/deleteall/xyz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrdersByEmail(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/orders", `{"email":"a@x.io"}`)
	app.do(t, http.MethodPost, "/orders", `{"email":"a@x.io"}`)
	app.do(t, http.MethodPost, "/orders", `{"email":"b@x.io"}`)

	w := app.do(t, http.MethodDelete, "/orders?email=a@x.io", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode[map[string]any](t, w)["deletedCount"])

	w = app.do(t, http.MethodDelete, "/orders", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviews(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/reviews", `[{"email":"a@x.io","text":"good"},{"email":"b@x.io","text":"bad"}]`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[map[string]any](t, w)
	assert.EqualValues(t, 2, res["insertedCount"])

	w = app.do(t, http.MethodPost, "/reviews", `{"email":"c@x.io","text":"ok"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/reviews", "")
	reviews := decode[[]map[string]any](t, w)
	require.Len(t, reviews, 3)
	assert.Equal(t, "good", reviews[0]["text"])

	w = app.do(t, http.MethodPost, "/reviews", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = app.do(t, http.MethodPost, "/reviews", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCards(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/card", `{"question":"6x7?","answer":"42","tags":["math"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	card := decode[map[string]any](t, w)
	id := card["_id"].(string)
	assert.NotEmpty(t, card["createdAt"])

	w = app.do(t, http.MethodGet, "/card/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", decode[map[string]any](t, w)["answer"])

	w = app.do(t, http.MethodGet, "/card", "")
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = app.do(t, http.MethodPost, "/card", `{"question":"no answer"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["message"], "answer")

	w = app.do(t, http.MethodGet, "/card/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, "null", w.Body.String())

	w = app.do(t, http.MethodGet, "/card/zz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntent(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/create-payment-intent", `{"price":500}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_test_secret"}`, w.Body.String())
	assert.Equal(t, []int64{50000}, app.gateway.amounts)

	w = app.do(t, http.MethodPost, "/create-payment-intent", `{"price":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = app.do(t, http.MethodPost, "/create-payment-intent", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, app.gateway.amounts, 1)
}

func TestCreatePaymentIntentGatewayFailureIsBare500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	app := newTestAppWithGateway(t, payment.NewStripeGateway("sk_test_123", srv.URL))

	w := app.do(t, http.MethodPost, "/create-payment-intent", `{"price":500}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
}
