package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/config"
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/routes"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeRemote stands in for the remote storefront service
type fakeRemote struct {
	mu       sync.Mutex
	products []models.Product
	tiers    map[string][]models.ProductTier
	reviews  map[string][]models.Review
	orders   []models.Order

	failReviews bool
	failTiers   bool
	failOrders  bool
	created     []models.CreateOrderRequest
	uploads     []string
	saved       []models.Product
	newReviews  []models.Review
	updates     map[string]models.UpdateOrderRequest
	authHeaders []string
	tokens      map[string]string
}

func newFakeRemote() *fakeRemote {
	desc := "Soft linen"
	return &fakeRemote{
		products: []models.Product{
			{
				ID:                 "p1",
				Name:               "Linen shirt",
				Description:        &desc,
				Price:              decimal.NewFromInt(300000),
				DiscountPercentage: 50,
				ProductImage:       "https://cdn.example.com/p1.jpg",
				Sizes:              []models.Size{{SizeName: "M"}, {SizeName: "L"}},
				Attributes: []models.Attribute{
					{ID: "c1", Name: "Blue", Kind: models.AttributeColor, Image: "https://cdn.example.com/c1.jpg"},
				},
			},
			{ID: "p2", Name: "Canvas tote", Price: decimal.NewFromInt(120000)},
			{ID: "p3", Name: "Wool scarf", Price: decimal.NewFromInt(250000), DiscountPercentage: 10},
		},
		tiers: map[string][]models.ProductTier{},
		reviews: map[string][]models.Review{
			"p1": {
				{ID: "r1", ProductID: "p1", Rating: 5, Content: "Great"},
				{ID: "r2", ProductID: "p1", Rating: 4, Content: "Good"},
				{ID: "r3", ProductID: "p1", Rating: 3, Content: "Fine"},
				{ID: "r4", ProductID: "p1", Rating: 5, Content: "Lovely"},
				{ID: "r5", ProductID: "p1", Rating: 4, Content: "Nice"},
				{ID: "r6", ProductID: "p1", Rating: 5, Content: "Again"},
			},
		},
		orders: []models.Order{
			{ID: "o1", ProductID: "p1", CustomerName: "An", Status: models.OrderStatusPending, TotalPrice: decimal.NewFromInt(150000), CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)},
			{ID: "o2", ProductID: "p2", CustomerName: "Binh", Status: models.OrderStatusShipped, TotalPrice: decimal.NewFromInt(120000), CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)},
		},
		updates: map[string]models.UpdateOrderRequest{},
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeRemote) product(id string) (models.Product, bool) {
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))

	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && path == "/products":
		writeJSON(w, http.StatusOK, gin.H{"products": f.products})

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/products/"):
		p, ok := f.product(strings.TrimPrefix(path, "/products/"))
		if !ok {
			writeJSON(w, http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		writeJSON(w, http.StatusOK, gin.H{"product": p})

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/product-tiers/product/"):
		if f.failTiers {
			writeJSON(w, http.StatusInternalServerError, gin.H{"message": "database down"})
			return
		}
		tiers := f.tiers[strings.TrimPrefix(path, "/product-tiers/product/")]
		if tiers == nil {
			tiers = []models.ProductTier{}
		}
		writeJSON(w, http.StatusOK, gin.H{"productTiers": tiers})

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/reviews/product/"):
		if f.failReviews {
			writeJSON(w, http.StatusInternalServerError, gin.H{"message": "database down"})
			return
		}
		reviews := f.reviews[strings.TrimPrefix(path, "/reviews/product/")]
		if reviews == nil {
			reviews = []models.Review{}
		}
		writeJSON(w, http.StatusOK, gin.H{"reviews": reviews})

	case r.Method == http.MethodPost && path == "/orders":
		if f.failOrders {
			writeJSON(w, http.StatusInternalServerError, gin.H{"message": "out of stock"})
			return
		}
		var req models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		f.created = append(f.created, req)
		order := models.Order{
			ID:              "new-order",
			ProductID:       req.ProductID,
			CustomerName:    req.CustomerName,
			PhoneNumber:     req.PhoneNumber,
			ShippingAddress: req.ShippingAddress,
			Sizes:           req.Sizes,
			Colors:          req.Colors,
			Quantity:        req.Quantity,
			TotalPrice:      decimal.NewFromInt(150000),
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		}
		writeJSON(w, http.StatusCreated, gin.H{"order": order})

	case r.Method == http.MethodGet && path == "/orders":
		writeJSON(w, http.StatusOK, gin.H{"orders": f.orders})

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/orders/"):
		id := strings.TrimPrefix(path, "/orders/")
		var req models.UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		f.updates[id] = req
		order := models.Order{ID: id, Status: models.OrderStatusPending}
		if req.Status != nil {
			order.Status = *req.Status
		}
		writeJSON(w, http.StatusOK, gin.H{"order": order})

	case r.Method == http.MethodPost && path == "/auth/login":
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, gin.H{"message": "Wrong password"})
			return
		}
		role := models.RoleUser
		if req.Username == "admin" {
			role = models.RoleAdmin
		}
		writeJSON(w, http.StatusOK, gin.H{"user": models.AuthUser{Username: req.Username, Role: role, AccessToken: f.tokens[role]}})

	case r.Method == http.MethodPost && path == "/upload":
		_, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": "file is required"})
			return
		}
		if strings.HasPrefix(header.Filename, "broken") {
			writeJSON(w, http.StatusInternalServerError, gin.H{"message": "storage unavailable"})
			return
		}
		f.uploads = append(f.uploads, header.Filename)
		writeJSON(w, http.StatusOK, gin.H{"fileUrl": "https://cdn.example.com/" + header.Filename})

	case (r.Method == http.MethodPost && path == "/products") || (r.Method == http.MethodPut && strings.HasPrefix(path, "/products/")):
		var p models.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		status := http.StatusOK
		if r.Method == http.MethodPost {
			p.ID = "p-new"
			status = http.StatusCreated
		} else {
			p.ID = strings.TrimPrefix(path, "/products/")
		}
		f.saved = append(f.saved, p)
		writeJSON(w, status, gin.H{"product": p})

	case r.Method == http.MethodPost && path == "/reviews":
		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		review.ID = "r-new"
		f.newReviews = append(f.newReviews, review)
		writeJSON(w, http.StatusCreated, gin.H{"review": review})

	case r.Method == http.MethodPost && path == "/product-tiers":
		var tier models.ProductTier
		if err := json.NewDecoder(r.Body).Decode(&tier); err != nil {
			writeJSON(w, http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		tier.ID = "t" + strconv.Itoa(len(f.tiers[tier.ProductID])+1)
		f.tiers[tier.ProductID] = append(f.tiers[tier.ProductID], tier)
		writeJSON(w, http.StatusCreated, gin.H{"productTier": tier})

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/product-tiers/"):
		id := strings.TrimPrefix(path, "/product-tiers/")
		for productID, tiers := range f.tiers {
			for i, tier := range tiers {
				if tier.ID == id {
					f.tiers[productID] = append(tiers[:i:i], tiers[i+1:]...)
					writeJSON(w, http.StatusOK, gin.H{"message": "deleted"})
					return
				}
			}
		}
		writeJSON(w, http.StatusNotFound, gin.H{"message": "Tier not found"})

	default:
		writeJSON(w, http.StatusNotFound, gin.H{"message": "no route " + path})
	}
}

type testServer struct {
	remote *fakeRemote
	ctl    *controllers.Controller
	router *gin.Engine
	drafts *checkout.Registry
}

func newTestServer(t *testing.T) *testServer {
	utils.TestSetup(t)

	remote := newFakeRemote()
	remote.tokens = map[string]string{
		models.RoleUser:  utils.GetTestToken(t, models.RoleUser, time.Hour),
		models.RoleAdmin: utils.GetTestToken(t, models.RoleAdmin, time.Hour),
	}
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	drafts := checkout.NewRegistry(0)
	t.Cleanup(drafts.Close)

	ctl := &controllers.Controller{
		API:            api.New(srv.URL, 5*time.Second),
		Promotion:      promotion.NewEngine(),
		Store:          controllers.SharedStoreProvider(promotion.NewMemoryStore()),
		PromotionScope: "global",
		Drafts:         drafts,
		Geography:      geography.Default(),
		Sampler:        promotion.NewSampler(1),
	}
	cfg := &config.Config{SessionName: "storefront", PromotionScope: "global"}
	return &testServer{remote: remote, ctl: ctl, router: routes.SetupRouter(cfg, ctl), drafts: drafts}
}

// session carries cookies from one request to the next like a browser
type session struct {
	t       *testing.T
	server  *testServer
	cookies []*http.Cookie
}

func (s *testServer) visitor(t *testing.T) *session {
	return &session{t: t, server: s}
}

func (s *session) do(method, path string, body interface{}) utils.TestResponse {
	s.t.Helper()
	resp := utils.MakeTestRequest(s.t, s.server.router, utils.TestRequest{
		Method:  method,
		Path:    path,
		Body:    body,
		Cookies: s.cookies,
	})
	if len(resp.Cookies) > 0 {
		s.cookies = resp.Cookies
	}
	return resp
}

// formFile is one file part of a multipart request
type formFile struct {
	field, name string
}

// doForm sends a multipart form; files are sent in order with small fake contents
func (s *session) doForm(method, path string, fields map[string]string, files []formFile) utils.TestResponse {
	s.t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, writer.WriteField(k, v))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(s.t, err)
		_, err = part.Write([]byte("fake image " + f.name))
		require.NoError(s.t, err)
	}
	require.NoError(s.t, writer.Close())

	return utils.MakeTestRequest(s.t, s.server.router, utils.TestRequest{
		Method:  method,
		Path:    path,
		Body:    &buf,
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
		Cookies: s.cookies,
	})
}

func (s *session) login(username string) {
	s.t.Helper()
	resp := s.do(http.MethodPost, "/v1/auth/login", gin.H{"username": username, "password": "secret"})
	require.Equal(s.t, http.StatusOK, resp.StatusCode, "login failed: %v", resp.Body)
}

func (f *fakeRemote) createdOrders() []models.CreateOrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CreateOrderRequest(nil), f.created...)
}

func (f *fakeRemote) update(id string) (models.UpdateOrderRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.updates[id]
	return req, ok
}

func (f *fakeRemote) savedProducts() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Product(nil), f.saved...)
}

func (f *fakeRemote) uploadedFiles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

func (f *fakeRemote) createdReviews() []models.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Review(nil), f.newReviews...)
}

func (f *fakeRemote) lastAuthHeader() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.authHeaders) == 0 {
		return ""
	}
	return f.authHeaders[len(f.authHeaders)-1]
}

func (f *fakeRemote) configure(fn func(f *fakeRemote)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}
