package main

import (
	"context"
	"log"
	"net/url"

	"tableside/config"
	"tableside/internal/api"
	"tableside/internal/bus"
	"tableside/internal/cart"
	"tableside/internal/client"
	"tableside/internal/nav"
	"tableside/internal/session"
)

// kiosk walks the whole customer flow against a running backend (real or
// mock): login, browse the menu, fill a cart, place the order, nudge the
// dashboard.
func main() {
	cfg := config.Load()
	logger := config.MustInitLogger()
	defer logger.Sync()

	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(config.MustInitRedis(cfg.RedisAddr), "kiosk")
	}

	router := nav.NewRouter(nav.DefaultRoutes(), sessions)
	notifications := bus.New()

	cli := client.New(client.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.RequestTimeout,
		Sessions:  sessions,
		Navigator: router,
		Logger:    logger,
	})

	sessionAPI := api.NewSessionAPI(cli, sessions)
	products := api.NewProducts(cli)
	orders := api.NewOrders(cli)

	if err := notifications.Subscribe(bus.RefreshDashboard, func() {
		logger.Info("dashboard refresh requested")
	}); err != nil {
		log.Fatal("Failed to subscribe:", err)
	}

	ctx := context.Background()

	sess, err := sessionAPI.Login(ctx, "diner", "secret")
	if err != nil {
		log.Fatal("Login failed:", err)
	}
	logger.Infow("logged in", "role", sess.Role)

	if path := router.Navigate("/customer/menu"); path != "/customer/menu" {
		log.Fatal("Navigation rejected, landed on ", path)
	}

	menu, err := products.List(ctx, url.Values{})
	if err != nil {
		log.Fatal("Menu fetch failed:", err)
	}
	logger.Infow("menu loaded", "products", len(menu))
	if len(menu) == 0 {
		return
	}

	basket := cart.NewStore()
	basket.Add(menu[0])
	basket.Add(menu[0])
	if len(menu) > 1 {
		basket.Add(menu[1])
	}
	logger.Infow("cart ready", "count", basket.TotalCount(), "amount", basket.TotalAmount())

	order, err := orders.Submit(ctx, basket.Items(), "A3", basket.TotalAmount())
	if err != nil {
		log.Fatal("Order failed:", err)
	}
	basket.Clear()
	logger.Infow("order placed", "id", order.ID, "status", order.Status)

	notifications.Publish(bus.RefreshDashboard)
}
