package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	s := newTestServer(t)

	resp := s.visitor(t).do(http.MethodGet, "/v1/products?limit=2", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	products := resp.Data()["products"].([]interface{})
	require.Len(t, products, 2)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "p1", first["id"])
	assert.Equal(t, "150.000đ", first["formattedNetPrice"])
	assert.Equal(t, float64(150000), first["netPrice"])
	assert.NotEmpty(t, first["soldCount"])

	pagination := resp.Body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
}

func TestGetProductDetail(t *testing.T) {
	s := newTestServer(t)

	resp := s.visitor(t).do(http.MethodGet, "/v1/products/p1", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := resp.Data()
	assert.Nil(t, data["notification"])
	assert.Equal(t, []interface{}{"https://cdn.example.com/p1.jpg", "https://cdn.example.com/c1.jpg"}, data["images"])
	assert.Greater(t, data["expiresAt"].(float64), float64(0))
	assert.Equal(t, "02", data["countdown"].(map[string]interface{})["hours"])

	reviews := data["reviews"].(map[string]interface{})
	assert.Equal(t, float64(6), reviews["count"])
	assert.Len(t, reviews["reviews"], utils.DefaultReviewPageSize)
	assert.InDelta(t, 26.0/6.0, reviews["averageRating"].(float64), 0.0001)

	others := data["otherProducts"].([]interface{})
	require.Len(t, others, 2)
	for _, o := range others {
		assert.NotEqual(t, "p1", o.(map[string]interface{})["id"])
	}

	proof := data["socialProof"].(map[string]interface{})
	viewers := []interface{}{}
	for _, n := range promotion.ViewerCounts {
		viewers = append(viewers, float64(n))
	}
	assert.Contains(t, viewers, proof["viewers"])
	sold := proof["soldCount"].(float64)
	assert.True(t, sold >= promotion.MinSoldCount && sold <= promotion.MaxSoldCount)
}

func TestGetProductDetailDegradesWithoutReviews(t *testing.T) {
	s := newTestServer(t)
	s.remote.configure(func(f *fakeRemote) { f.failReviews = true })

	resp := s.visitor(t).do(http.MethodGet, "/v1/products/p1", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := resp.Data()
	assert.Equal(t, utils.ErrGeneric, data["notification"])
	reviews := data["reviews"].(map[string]interface{})
	assert.Equal(t, float64(0), reviews["count"])
	assert.Empty(t, reviews["reviews"])
	assert.Nil(t, reviews["averageRating"])
	// the rest of the page still renders
	assert.Len(t, data["otherProducts"], 2)
}

func TestGetProductDetailNotFound(t *testing.T) {
	s := newTestServer(t)

	resp := s.visitor(t).do(http.MethodGet, "/v1/products/missing", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", resp.Body["status"])
}

func TestListProductReviewsShowMore(t *testing.T) {
	s := newTestServer(t)

	resp := s.visitor(t).do(http.MethodGet, "/v1/products/p1/reviews?page=2", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	reviews := resp.Data()["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "r6", reviews[0].(map[string]interface{})["id"])
}

func TestCountdownSharedAcrossPages(t *testing.T) {
	s := newTestServer(t)
	v := s.visitor(t)

	detail := v.do(http.MethodGet, "/v1/products/p1", nil)
	countdown := v.do(http.MethodGet, "/v1/promotion/countdown", nil)
	other := v.do(http.MethodGet, "/v1/products/p2", nil)

	require.Equal(t, http.StatusOK, countdown.StatusCode)
	expiresAt := detail.Data()["expiresAt"]
	assert.Equal(t, expiresAt, countdown.Data()["expiresAt"])
	assert.Equal(t, expiresAt, other.Data()["expiresAt"])
}
