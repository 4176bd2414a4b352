package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
)

// fakeClient records the last request and answers with cart or err.
type fakeClient struct {
	cart *cartv1.Cart
	err  error
	last any
}

func (f *fakeClient) answer(in any) (*cartv1.Cart, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return f.cart, nil
}

func (f *fakeClient) GetCart(ctx context.Context, in *cartv1.GetCartRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) CreateCart(ctx context.Context, in *cartv1.CreateCartRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) GetOrCreateCart(ctx context.Context, in *cartv1.GetOrCreateCartRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) AddLines(ctx context.Context, in *cartv1.AddLinesRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) RemoveLines(ctx context.Context, in *cartv1.RemoveLinesRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) UpdateLines(ctx context.Context, in *cartv1.UpdateLinesRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) UpdateAttributes(ctx context.Context, in *cartv1.UpdateAttributesRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) UpdateBuyerIdentity(ctx context.Context, in *cartv1.UpdateBuyerIdentityRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) UpdateDiscountCodes(ctx context.Context, in *cartv1.UpdateDiscountCodesRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}
func (f *fakeClient) UpdateNote(ctx context.Context, in *cartv1.UpdateNoteRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return f.answer(in)
}

func newTestRouter(c *fakeClient) http.Handler {
	return newRouter(&cartHandler{client: c, timeout: time.Second, log: logger.Discard()})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CartRoutes(t *testing.T) {
	const gid = "gid://shopify/Cart/c1?key=abc"
	escaped := "/carts/" + url.PathEscape(gid)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   any
	}{
		{"get", http.MethodGet, escaped, "", http.StatusOK,
			&cartv1.GetCartRequest{CartId: gid}},
		{"create", http.MethodPost, "/carts", `{"note":"hi","lines":[{"merchandise_id":"v1","quantity":1}]}`, http.StatusCreated,
			&cartv1.CreateCartRequest{Note: "hi", Lines: []*cartv1.LineInput{{MerchandiseId: "v1", Quantity: 1}}}},
		{"get or create", http.MethodPost, escaped + "/get-or-create", `{"note":"fallback"}`, http.StatusOK,
			&cartv1.GetOrCreateCartRequest{CartId: gid, Create: &cartv1.CreateCartRequest{Note: "fallback"}}},
		{"add lines", http.MethodPost, escaped + "/lines", `{"lines":[{"merchandise_id":"v2","quantity":3}]}`, http.StatusOK,
			&cartv1.AddLinesRequest{CartId: gid, Lines: []*cartv1.LineInput{{MerchandiseId: "v2", Quantity: 3}}}},
		{"update lines", http.MethodPatch, escaped + "/lines", `{"lines":[{"id":"l1","quantity":0}]}`, http.StatusOK,
			&cartv1.UpdateLinesRequest{CartId: gid, Lines: []*cartv1.LineUpdate{{Id: "l1", Quantity: 0}}}},
		{"remove lines", http.MethodDelete, escaped + "/lines", `{"line_ids":["l1","l2"]}`, http.StatusOK,
			&cartv1.RemoveLinesRequest{CartId: gid, LineIds: []string{"l1", "l2"}}},
		{"attributes", http.MethodPut, escaped + "/attributes", `{"attributes":[{"key":"gift","value":"yes"}]}`, http.StatusOK,
			&cartv1.UpdateAttributesRequest{CartId: gid, Attributes: []*cartv1.Attribute{{Key: "gift", Value: "yes"}}}},
		{"buyer identity", http.MethodPut, escaped + "/buyer-identity", `{"buyer_identity":{"email":"a@b.c","country_code":"US"}}`, http.StatusOK,
			&cartv1.UpdateBuyerIdentityRequest{CartId: gid, BuyerIdentity: &cartv1.BuyerIdentityInput{Email: "a@b.c", CountryCode: "US"}}},
		{"discount codes", http.MethodPut, escaped + "/discount-codes", `{"discount_codes":["SAVE10"]}`, http.StatusOK,
			&cartv1.UpdateDiscountCodesRequest{CartId: gid, DiscountCodes: []string{"SAVE10"}}},
		{"note", http.MethodPut, escaped + "/note", `{"note":"ring twice"}`, http.StatusOK,
			&cartv1.UpdateNoteRequest{CartId: gid, Note: "ring twice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{cart: &cartv1.Cart{Id: gid, TotalQuantity: 1}}
			rec := do(t, newTestRouter(c), tt.method, tt.path, tt.body)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, c.last)

			var got cartv1.Cart
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, gid, got.Id)
		})
	}
}

func TestRouter_Errors(t *testing.T) {
	t.Run("grpc error is mapped", func(t *testing.T) {
		c := &fakeClient{err: status.Error(codes.NotFound, "cart not found")}
		rec := do(t, newTestRouter(c), http.MethodGet, "/carts/c1", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "cart not found", body.Error.Message)
	})

	t.Run("bad json is rejected before the call", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{}}
		rec := do(t, newTestRouter(c), http.MethodPost, "/carts/c1/lines", `{"lines":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, c.last)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{}}
		rec := do(t, newTestRouter(c), http.MethodPut, "/carts/c1/note", `{"notes":"typo"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, c.last)
	})

	t.Run("healthz", func(t *testing.T) {
		rec := do(t, newTestRouter(&fakeClient{}), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_EmptyBodies(t *testing.T) {
	// an io.MultiReader has no known length, so the request is sent chunked
	chunkedEmpty := func(method, path string) *http.Request {
		req := httptest.NewRequest(method, path, io.MultiReader())
		require.Equal(t, int64(-1), req.ContentLength)
		return req
	}

	t.Run("create with chunked empty body", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{Id: "c1"}}
		rec := httptest.NewRecorder()
		newTestRouter(c).ServeHTTP(rec, chunkedEmpty(http.MethodPost, "/carts"))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, &cartv1.CreateCartRequest{}, c.last)
	})

	t.Run("create without body", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{Id: "c1"}}
		rec := do(t, newTestRouter(c), http.MethodPost, "/carts", "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, &cartv1.CreateCartRequest{}, c.last)
	})

	t.Run("get or create with chunked empty body", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{Id: "c1"}}
		rec := httptest.NewRecorder()
		newTestRouter(c).ServeHTTP(rec, chunkedEmpty(http.MethodPost, "/carts/c1/get-or-create"))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, &cartv1.GetOrCreateCartRequest{CartId: "c1", Create: &cartv1.CreateCartRequest{}}, c.last)
	})

	t.Run("lines still require a body", func(t *testing.T) {
		c := &fakeClient{cart: &cartv1.Cart{}}
		rec := httptest.NewRecorder()
		newTestRouter(c).ServeHTTP(rec, chunkedEmpty(http.MethodPost, "/carts/c1/lines"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, c.last)
	})
}
