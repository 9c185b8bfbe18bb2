package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Govind-619/Storefront/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second)
}

func TestGetProductDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products/p1", r.URL.Path)
		_, _ = io.WriteString(w, `{"product":{"id":"p1","name":"Shirt","price":"199000","discountPercentage":20,
			"attributes":[{"id":"a1","name":"Red","type":"Color"}]}}`)
	})

	p, err := client.GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Shirt", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(199000)))
	assert.Equal(t, models.AttributeColor, p.Attributes[0].Kind)
}

func TestUnknownAttributeKindFailsDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"product":{"id":"p1","attributes":[{"id":"a1","name":"X","type":"Pattern"}]}}`)
	})

	_, err := client.GetProduct(context.Background(), "p1")
	assert.Error(t, err)
}

func TestNon2xxBecomesError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":["product not found"]}`)
	})

	_, err := client.GetProduct(context.Background(), "missing")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "product not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestCreateOrderSendsBodyAndToken(t *testing.T) {
	var got models.CreateOrderRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"order":{"id":"o1","productId":"p1","status":"PENDING"}}`)
	})

	order, err := client.WithToken("tok").CreateOrder(context.Background(), models.CreateOrderRequest{
		ProductID: "p1", CustomerName: "A", Tiers: []string{"t1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, []string{"t1"}, got.Tiers)
	assert.Zero(t, got.Quantity)
}

func TestWithTokenDoesNotLeak(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"products":[]}`)
	})
	_ = client.WithToken("secret")

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
}

func TestUploadImagesIsSequentialAndOrdered(t *testing.T) {
	var names []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		names = append(names, header.Filename)
		_, _ = io.WriteString(w, `{"fileUrl":"https://cdn.example/`+header.Filename+`"}`)
	})

	urls, err := client.UploadImages(context.Background(), []File{
		{Name: "a.png", Content: strings.NewReader("a")},
		{Name: "b.png", Content: strings.NewReader("b")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, names)
	assert.Equal(t, []string{"https://cdn.example/a.png", "https://cdn.example/b.png"}, urls)
}

func TestLoginRequiresToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"user":{"role":"ADMIN"}}`)
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	assert.Error(t, err)
}

func TestTransportFailureIsWrapped(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second)

	_, err := client.ListOrders(context.Background())

	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}
