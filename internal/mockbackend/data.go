package mockbackend

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"tableside/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Menu returns the canned product list the mock serves. Fresh copies every
// call so handler mutations never leak between server instances.
func Menu() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Kung Pao Chicken", Price: 38.0, Description: "Classic Sichuan stir-fry, sweet heat and tender chicken", ImageURL: "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=1000&q=80", Category: "Mains", IsRecommended: true},
		{ID: "2", Name: "Mapo Tofu", Price: 22.0, Description: "Numbing, spicy, made for rice", ImageURL: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=1000&q=80", Category: "Mains", IsRecommended: true},
		{ID: "3", Name: "Steamed Sea Bass", Price: 68.0, Description: "Delicate and light, steamed whole", ImageURL: "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=1000&q=80", Category: "Seafood", IsRecommended: false},
		{ID: "4", Name: "Sweet and Sour Ribs", Price: 45.0, Description: "Sticky glazed ribs, crowd favorite", ImageURL: "https://images.unsplash.com/photo-1544025162-d76694265947?w=1000&q=80", Category: "Mains", IsRecommended: true},
		{ID: "5", Name: "Tomato and Egg Stir-fry", Price: 18.0, Description: "The national home-style dish", ImageURL: "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=1000&q=80", Category: "Vegetarian", IsRecommended: false},
		{ID: "6", Name: "Yangzhou Fried Rice", Price: 28.0, Description: "Loose grains, generous toppings", ImageURL: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=1000&q=80", Category: "Staples", IsRecommended: false},
		{ID: "7", Name: "Fruit Salad", Price: 25.0, Description: "Seasonal fresh fruit", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=1000&q=80", Category: "Cold Dishes", IsRecommended: true},
		{ID: "8", Name: "Cola Chicken Wings", Price: 35.0, Description: "Sweet-savory wings braised in cola", ImageURL: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=1000&q=80", Category: "Mains", IsRecommended: false},
	}
}

// SeedOrders generates the historical order list the dashboard charts feed
// on: 50 orders spread over the past 8 days, newest first. The rand source
// is injected so tests can pin the output.
func SeedOrders(rng *rand.Rand, now time.Time) []domain.Order {
	statuses := []string{domain.OrderPending, domain.OrderCompleted, domain.OrderCancelled}

	orders := make([]domain.Order, 0, 50)
	for i := 0; i < 50; i++ {
		created := now.AddDate(0, 0, -rng.Intn(8))
		created = time.Date(created.Year(), created.Month(), created.Day(),
			rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, created.Location())

		orders = append(orders, domain.Order{
			ID: fmt.Sprintf("%d", 100000+rng.Intn(900000)),
			Items: []domain.CartItem{
				{Product: domain.Product{ID: "1", Name: "Kung Pao Chicken", Price: 38.0}, Quantity: 1},
			},
			TotalAmount: float64(50 + rng.Intn(251)),
			Status:      statuses[rng.Intn(len(statuses))],
			CreateTime:  created.Format(timeLayout),
			TableID:     fmt.Sprintf("A%d", 1+rng.Intn(10)),
		})
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreateTime > orders[j].CreateTime
	})
	return orders
}
