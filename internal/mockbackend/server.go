package mockbackend

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"tableside/internal/domain"
)

// Options configures a mock server instance. The zero value is what tests
// want: no latency, time-seeded randomness replaced by a fixed source only
// when Rand is set.
type Options struct {
	LatencyMin time.Duration
	LatencyMax time.Duration
	Rand       *rand.Rand
	Now        func() time.Time
}

// Server is a shape-compatible stand-in for the real backend, for local
// development only. State lives in memory for the life of the process;
// handlers skip most validation the real backend performs.
type Server struct {
	mu           sync.Mutex
	products     []domain.Product
	orders       []domain.Order
	reservations []domain.Reservation
	tokens       map[string]string

	rng    *rand.Rand
	now    func() time.Time
	minLat time.Duration
	maxLat time.Duration

	router *mux.Router
}

func New(opts Options) *Server {
	s := &Server{
		tokens: make(map[string]string),
		rng:    opts.Rand,
		now:    opts.Now,
		minLat: opts.LatencyMin,
		maxLat: opts.LatencyMax,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.products = Menu()
	s.orders = SeedOrders(s.rng, s.now())

	r := mux.NewRouter()
	r.HandleFunc("/health", s.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", s.login).Methods("POST")

	r.HandleFunc("/api/products", s.getProducts).Methods("GET")
	r.HandleFunc("/api/products", s.addProduct).Methods("POST")
	r.HandleFunc("/api/products", s.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/recommend", s.toggleRecommend).Methods("POST")
	r.HandleFunc("/api/products/{id}", s.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/orders", s.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", s.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", s.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", s.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", s.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/admin", s.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations/occupied", s.getOccupiedTables).Methods("GET")
	r.HandleFunc("/api/reservations/{id}/status", s.updateReservationStatus).Methods("PUT")

	r.HandleFunc("/api/common/upload", s.uploadImage).Methods("POST")

	s.router = r
	return s
}

// Handler returns the routing handler; mains typically wrap it in cors.
func (s *Server) Handler() http.Handler {
	return s.router
}

// latency sleeps somewhere inside the configured window, emulating a network
// round trip.
func (s *Server) latency() {
	if s.maxLat <= 0 {
		return
	}
	span := s.maxLat - s.minLat
	d := s.minLat
	if span > 0 {
		s.mu.Lock()
		d += time.Duration(s.rng.Int63n(int64(span)))
		s.mu.Unlock()
	}
	time.Sleep(d)
}

func (s *Server) nextID() string {
	return strconv.FormatInt(100000+s.rng.Int63n(900000000), 10)
}

func writeEnvelope(w http.ResponseWriter, data any, message string) {
	code := 200
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Envelope{
		Code:    &code,
		Data:    mustRaw(data),
		Message: message,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Envelope{
		Code:    &code,
		Message: message,
	})
}

func mustRaw(data any) json.RawMessage {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return raw
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "mock-backend",
		"timestamp": s.now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeError(w, 500, "Wrong username or password")
		return
	}

	role := domain.RoleCustomer
	if creds.Username == "admin" {
		role = domain.RoleAdmin
	}

	s.mu.Lock()
	token := fmt.Sprintf("mock-token-%d", s.rng.Int63())
	s.tokens[token] = role
	s.mu.Unlock()

	writeEnvelope(w, domain.Session{Credential: token, Role: role}, "success")
}

func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	s.latency()

	s.mu.Lock()
	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	writeEnvelope(w, products, "success")
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}

	s.mu.Lock()
	if product.ID == "" {
		product.ID = s.nextID()
	}
	s.products = append(s.products, product)
	s.mu.Unlock()

	writeEnvelope(w, product, "Product added")
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			writeEnvelope(w, product, "Product updated")
			return
		}
	}
	writeError(w, 500, "Product not found")
}

func (s *Server) toggleRecommend(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var payload struct {
		ID            string `json:"id"`
		IsRecommended bool   `json:"isRecommended"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == payload.ID {
			s.products[i].IsRecommended = payload.IsRecommended
			writeEnvelope(w, nil, "OK")
			return
		}
	}
	writeError(w, 500, "Product not found")
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.latency()
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			writeEnvelope(w, nil, "Product deleted")
			return
		}
	}
	writeError(w, 500, "Product not found")
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var payload struct {
		Items       []domain.CartItem `json:"items"`
		TotalAmount float64           `json:"totalAmount"`
		TableID     string            `json:"tableId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}

	s.mu.Lock()
	order := domain.Order{
		ID:          s.nextID(),
		Items:       payload.Items,
		TotalAmount: payload.TotalAmount,
		Status:      domain.OrderPending,
		CreateTime:  s.now().Format(timeLayout),
		TableID:     payload.TableID,
	}
	if order.TableID == "" {
		order.TableID = "walk-in"
	}
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	writeEnvelope(w, order, "Order placed")
}

func (s *Server) getOrders(w http.ResponseWriter, r *http.Request) {
	s.latency()

	s.mu.Lock()
	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	s.mu.Unlock()

	writeEnvelope(w, orders, "success")
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s.latency()
	id := mux.Vars(r)["id"]
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			writeEnvelope(w, s.orders[i], "Order updated")
			return
		}
	}
	writeError(w, 500, "Order not found")
}

// getOrderQRCode renders a PNG linking back to the order, for printing on
// the receipt.
func (s *Server) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	found := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		writeError(w, 500, "Order not found")
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("http://localhost/orders/%s", id), qrcode.Medium, 256)
	if err != nil {
		writeError(w, 500, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) createReservation(w http.ResponseWriter, r *http.Request) {
	s.latency()

	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeError(w, 400, "Invalid payload")
		return
	}

	s.mu.Lock()
	reservation.ID = s.nextID()
	reservation.Status = domain.ReservationPending
	s.reservations = append(s.reservations, reservation)
	s.mu.Unlock()

	writeEnvelope(w, reservation, "Reservation submitted")
}

func (s *Server) getReservations(w http.ResponseWriter, r *http.Request) {
	s.latency()

	s.mu.Lock()
	reservations := make([]domain.Reservation, len(s.reservations))
	copy(reservations, s.reservations)
	s.mu.Unlock()

	writeEnvelope(w, reservations, "success")
}

func (s *Server) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	s.latency()
	id := mux.Vars(r)["id"]
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
			writeEnvelope(w, s.reservations[i], "Reservation updated")
			return
		}
	}
	writeError(w, 500, "Reservation not found")
}

// getOccupiedTables returns table ids held by any non-cancelled reservation.
func (s *Server) getOccupiedTables(w http.ResponseWriter, r *http.Request) {
	s.latency()

	s.mu.Lock()
	seen := make(map[string]bool)
	tables := []string{}
	for _, res := range s.reservations {
		if res.Status == domain.ReservationCancelled {
			continue
		}
		if !seen[res.TableID] {
			seen[res.TableID] = true
			tables = append(tables, res.TableID)
		}
	}
	s.mu.Unlock()

	writeEnvelope(w, tables, "success")
}

func (s *Server) uploadImage(w http.ResponseWriter, r *http.Request) {
	s.latency()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, 400, "File too large")
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		writeError(w, 400, "Error retrieving the file")
		return
	}
	defer file.Close()

	// Nothing is written anywhere; the mock only hands back a plausible URL.
	writeEnvelope(w, fmt.Sprintf("/uploads/%s", handler.Filename), "Upload complete")
}
