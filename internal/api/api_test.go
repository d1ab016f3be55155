package api_test

import (
	"context"
	"math/rand"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableside/internal/api"
	"tableside/internal/cart"
	"tableside/internal/client"
	"tableside/internal/domain"
	"tableside/internal/mockbackend"
	"tableside/internal/nav"
	"tableside/internal/session"
)

// The resource modules are exercised end to end: real client, real mock
// backend, httptest in between. This doubles as the contract test for the
// mock's response shapes.

type testEnv struct {
	client       *client.Client
	store        *session.MemoryStore
	router       *nav.Router
	sessions     *api.SessionAPI
	products     *api.Products
	orders       *api.Orders
	reservations *api.Reservations
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := mockbackend.New(mockbackend.Options{
		Rand: rand.New(rand.NewSource(42)),
		Now:  func() time.Time { return time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC) },
	})
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	router := nav.NewRouter(nav.DefaultRoutes(), store)
	c := client.New(client.Config{
		BaseURL:   srv.URL + "/api",
		Sessions:  store,
		Navigator: router,
		Logger:    zap.NewNop().Sugar(),
	})

	return &testEnv{
		client:       c,
		store:        store,
		router:       router,
		sessions:     api.NewSessionAPI(c, store),
		products:     api.NewProducts(c),
		orders:       api.NewOrders(c),
		reservations: api.NewReservations(c),
	}
}

func TestLoginStoresSessionAndOpensGuardedRoutes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.Equal(t, "/login", env.router.Navigate("/customer/menu"))

	sess, err := env.sessions.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, sess.Role)
	assert.Equal(t, sess.Credential, env.store.Credential())

	assert.Equal(t, "/customer/menu", env.router.Navigate("/customer/menu"))
	assert.Equal(t, "/login", env.router.Navigate("/admin/dashboard"))
}

func TestAdminLoginOpensAdminRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)

	assert.Equal(t, "/admin/dashboard", env.router.Navigate("/admin/dashboard"))
	// Asymmetric policy: the admin can also browse the customer screens.
	assert.Equal(t, "/customer/menu", env.router.Navigate("/customer/menu"))
}

func TestMenuToCartToOrderFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.sessions.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	menu, err := env.products.List(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, menu, 8)

	basket := cart.NewStore()
	basket.Add(menu[0])
	basket.Add(menu[0])
	basket.Add(menu[1])
	require.Equal(t, 3, basket.TotalCount())

	order, err := env.orders.Submit(ctx, basket.Items(), "A7", basket.TotalAmount())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, "A7", order.TableID)
	assert.InDelta(t, basket.TotalAmount(), order.TotalAmount, 1e-9)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)

	basket.Clear()
	assert.Empty(t, basket.Items())

	listed, err := env.orders.List(ctx, url.Values{})
	require.NoError(t, err)
	require.NotEmpty(t, listed)
	assert.Equal(t, order.ID, listed[0].ID)

	require.NoError(t, env.orders.UpdateStatus(ctx, order.ID, domain.OrderCompleted))
	listed, err = env.orders.List(ctx, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, listed[0].Status)
}

func TestProductAdminOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.sessions.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	require.NoError(t, env.products.ToggleRecommend(ctx, "5", true))

	menu, err := env.products.List(ctx, url.Values{})
	require.NoError(t, err)
	for _, p := range menu {
		if p.ID == "5" {
			assert.True(t, p.IsRecommended)
		}
	}

	require.NoError(t, env.products.Add(ctx, domain.Product{
		Name: "Dumplings", Price: 26.0, Category: "Staples",
	}))
	require.NoError(t, env.products.Delete(ctx, "8"))

	menu, err = env.products.List(ctx, url.Values{})
	require.NoError(t, err)
	assert.Len(t, menu, 8)

	err = env.products.Delete(ctx, "no-such-id")
	var appErr *client.ApplicationError
	require.ErrorAs(t, err, &appErr)
}

func TestUploadImageReturnsURL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.sessions.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	imageURL, err := env.products.UploadImage(ctx, "ribs.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ribs.png", imageURL)
}

func TestReservationFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.sessions.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, env.reservations.Create(ctx, domain.Reservation{
		TableID: "B4", Name: "Chen", Guests: 4, Time: "2024-05-21 19:00:00",
	}))

	occupied, err := env.reservations.OccupiedTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B4"}, occupied)

	listed, err := env.reservations.List(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.ReservationPending, listed[0].Status)

	require.NoError(t, env.reservations.UpdateStatus(ctx, listed[0].ID, domain.ReservationCancelled))

	occupied, err = env.reservations.OccupiedTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, occupied)
}

func TestLogoutClosesGuardedRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "/customer/menu", env.router.Navigate("/customer/menu"))

	env.sessions.Logout()

	assert.Equal(t, "/login", env.router.Navigate("/customer/menu"))
}
