package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/gateway"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/routes"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

//
// ---------- in-memory stub stores ----------
//

type stubUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *stubUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, stores.ErrNotFound
}

type stubVendorStore struct {
	vendors map[primitive.ObjectID]*models.Vendor
}

func newStubVendorStore() *stubVendorStore {
	return &stubVendorStore{vendors: map[primitive.ObjectID]*models.Vendor{}}
}

func (s *stubVendorStore) Create(_ context.Context, vendor *models.Vendor) error {
	vendor.ID = primitive.NewObjectID()
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt
	cp := *vendor
	s.vendors[vendor.ID] = &cp
	return nil
}

func (s *stubVendorStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	vendor, ok := s.vendors[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *vendor
	return &cp, nil
}

func (s *stubVendorStore) GetByUserID(_ context.Context, userID primitive.ObjectID) (*models.Vendor, error) {
	for _, vendor := range s.vendors {
		if vendor.User == userID {
			cp := *vendor
			return &cp, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *stubVendorStore) ListOpen(_ context.Context) ([]models.Vendor, error) {
	var open []models.Vendor
	for _, vendor := range s.vendors {
		if vendor.IsOpen {
			open = append(open, *vendor)
		}
	}
	return open, nil
}

func (s *stubVendorStore) Update(_ context.Context, vendor *models.Vendor) error {
	if _, ok := s.vendors[vendor.ID]; !ok {
		return stores.ErrNotFound
	}
	cp := *vendor
	s.vendors[vendor.ID] = &cp
	return nil
}

func (s *stubVendorStore) SetOpen(_ context.Context, id primitive.ObjectID, isOpen bool) error {
	vendor, ok := s.vendors[id]
	if !ok {
		return stores.ErrNotFound
	}
	vendor.IsOpen = isOpen
	return nil
}

type stubMenuStore struct {
	items map[primitive.ObjectID]*models.MenuItem
}

func newStubMenuStore() *stubMenuStore {
	return &stubMenuStore{items: map[primitive.ObjectID]*models.MenuItem{}}
}

func (s *stubMenuStore) Create(_ context.Context, item *models.MenuItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *stubMenuStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *stubMenuStore) ListByVendor(_ context.Context, vendorID primitive.ObjectID, availableOnly bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range s.items {
		if item.Vendor != vendorID {
			continue
		}
		if availableOnly && !item.IsAvailable {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *stubMenuStore) Update(_ context.Context, item *models.MenuItem) error {
	if _, ok := s.items[item.ID]; !ok {
		return stores.ErrNotFound
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *stubMenuStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.items, id)
	return nil
}

func (s *stubMenuStore) SetAvailability(_ context.Context, id primitive.ObjectID, isAvailable bool) error {
	item, ok := s.items[id]
	if !ok {
		return stores.ErrNotFound
	}
	item.IsAvailable = isAvailable
	return nil
}

// setPrice simulates a vendor editing a live menu item outside the API.
func (s *stubMenuStore) setPrice(id primitive.ObjectID, price float64) {
	if item, ok := s.items[id]; ok {
		item.Price = price
	}
}

type stubOrderStore struct {
	orders  map[primitive.ObjectID]*models.Order
	created []primitive.ObjectID
}

func newStubOrderStore() *stubOrderStore {
	return &stubOrderStore{orders: map[primitive.ObjectID]*models.Order{}}
}

func (s *stubOrderStore) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	cp.StatusHistory = append([]models.StatusEntry(nil), order.StatusHistory...)
	s.orders[order.ID] = &cp
	s.created = append(s.created, order.ID)
	return nil
}

func (s *stubOrderStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	cp.StatusHistory = append([]models.StatusEntry(nil), order.StatusHistory...)
	return &cp, nil
}

func (s *stubOrderStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var orders []models.Order
	for i := len(s.created) - 1; i >= 0; i-- {
		order := s.orders[s.created[i]]
		if order.User == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (s *stubOrderStore) ListByVendor(_ context.Context, vendorID primitive.ObjectID, status string) ([]models.Order, error) {
	var orders []models.Order
	for i := len(s.created) - 1; i >= 0; i-- {
		order := s.orders[s.created[i]]
		if order.Vendor != vendorID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (s *stubOrderStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, entry models.StatusEntry) error {
	order, ok := s.orders[id]
	if !ok {
		return stores.ErrNotFound
	}
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, entry)
	return nil
}

func (s *stubOrderStore) SetPaymentStatus(_ context.Context, id primitive.ObjectID, status string) error {
	order, ok := s.orders[id]
	if !ok {
		return stores.ErrNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (s *stubOrderStore) SetPaymentID(_ context.Context, id primitive.ObjectID, paymentID string) error {
	order, ok := s.orders[id]
	if !ok {
		return stores.ErrNotFound
	}
	order.PaymentID = paymentID
	return nil
}

//
// ---------- fake payment gateway ----------
//

type fakeGateway struct {
	initResp    *gateway.InitResponse
	initErr     error
	lastSession gateway.PaymentSession
	onInitiate  func(gateway.PaymentSession)

	validation    *gateway.ValidationResponse
	validateErr   error
	validateCalls int
}

func (f *fakeGateway) InitiatePayment(_ context.Context, session gateway.PaymentSession) (*gateway.InitResponse, error) {
	f.lastSession = session
	if f.onInitiate != nil {
		f.onInitiate(session)
	}
	if f.initErr != nil {
		return nil, f.initErr
	}
	if f.initResp != nil {
		return f.initResp, nil
	}
	return &gateway.InitResponse{Status: "SUCCESS", GatewayPageURL: "https://sandbox.sslcommerz.com/pay/session"}, nil
}

func (f *fakeGateway) ValidateTransaction(_ context.Context, _ string) (*gateway.ValidationResponse, error) {
	f.validateCalls++
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	if f.validation != nil {
		return f.validation, nil
	}
	return &gateway.ValidationResponse{Status: "VALID"}, nil
}

//
// ---------- test environment ----------
//

type testEnv struct {
	server  *gin.Engine
	users   *stubUserStore
	vendors *stubVendorStore
	menu    *stubMenuStore
	orders  *stubOrderStore
	gateway *fakeGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("CLIENT_URL", "http://localhost:5173")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:   newStubUserStore(),
		vendors: newStubVendorStore(),
		menu:    newStubMenuStore(),
		orders:  newStubOrderStore(),
		gateway: &fakeGateway{},
	}

	server := gin.New()
	authenticate := middlewares.Authenticate(env.users)

	routes.AuthRoutes(server, controllers.NewAuthController(env.users, env.vendors), authenticate)
	routes.VendorRoutes(server, controllers.NewVendorController(env.vendors), authenticate)
	routes.MenuRoutes(server, controllers.NewMenuController(env.menu, env.vendors), authenticate)
	routes.OrderRoutes(server, controllers.NewOrderController(env.orders, env.menu, env.vendors), authenticate)
	routes.PaymentRoutes(server, controllers.NewPaymentController(env.orders, env.vendors, env.gateway), authenticate)

	env.server = server
	return env
}

func (e *testEnv) addUser(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addStudent(t *testing.T, name, email string) *models.User {
	return e.addUser(t, name, email, models.RoleStudent)
}

func (e *testEnv) addVendor(t *testing.T, name, vendorName string, isOpen bool) (*models.User, *models.Vendor) {
	t.Helper()
	user := e.addUser(t, name, name+"@example.com", models.RoleVendor)

	vendor := &models.Vendor{User: user.ID, Name: vendorName, Location: "Cafeteria Block", IsOpen: isOpen}
	require.NoError(t, e.vendors.Create(context.Background(), vendor))
	return user, vendor
}

func (e *testEnv) addMenuItem(t *testing.T, vendorID primitive.ObjectID, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Vendor:      vendorID,
		Name:        name,
		Price:       price,
		Category:    "Snacks",
		IsAvailable: available,
	}
	require.NoError(t, e.menu.Create(context.Background(), item))
	return item
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID.Hex(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.server.ServeHTTP(recorder, req)
	return recorder
}

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// placeOrder creates an order through the API and returns its id.
func (e *testEnv) placeOrder(t *testing.T, token string, vendorID primitive.ObjectID, items []map[string]any) primitive.ObjectID {
	t.Helper()
	recorder := e.request(t, http.MethodPost, "/orders", map[string]any{
		"vendorId": vendorID.Hex(),
		"items":    items,
	}, token)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	order := body["order"].(map[string]any)
	orderID, err := primitive.ObjectIDFromHex(order["id"].(string))
	require.NoError(t, err)
	return orderID
}
