package cart

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/angelmondragon/shopcart-backend/internal/cart"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
)

func newService(t *testing.T) cartsvc.Service {
	t.Helper()
	svc, err := cartsvc.NewService(cartsvc.NewStore(), logger.Nop(), nil)
	require.NoError(t, err)
	return svc
}

func post(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func get(t *testing.T, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func productJSON(id int, price string) string {
	return fmt.Sprintf(`{"id":%d,"title":"t","price":%s,"description":"d","category":"c","image":"i"}`, id, price)
}

func TestCartListEmptyIsArray(t *testing.T) {
	resp := get(t, CartList(newService(t), logger.Nop()), "/cart")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestCartAddAndList(t *testing.T) {
	svc := newService(t)
	add := CartAdd(svc, logger.Nop())

	resp := post(t, add, "/cart/add", `{"id":1,"title":"Bag","price":10.5,"description":"d","category":"c","image":"http://img/1.png"}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"added to cart"}`, resp.Body.String())
	post(t, add, "/cart/add", `{"id":1,"title":"Bag","price":10.5,"description":"d","category":"c","image":"http://img/1.png"}`)

	resp = get(t, CartList(svc, logger.Nop()), "/cart")
	assert.JSONEq(t, `[{"product":{"id":1,"title":"Bag","price":10.5,"description":"d","category":"c","image":"http://img/1.png"},"quantity":2}]`, resp.Body.String())
}

func TestCartAddRequiresID(t *testing.T) {
	resp := post(t, CartAdd(newService(t), logger.Nop()), "/cart/add", `{"title":"no id"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"VALIDATION_ERROR"`)
}

func TestCartAddRejectsIncompleteProducts(t *testing.T) {
	svc := newService(t)
	add := CartAdd(svc, logger.Nop())

	for name, body := range map[string]string{
		"only id":       `{"id":2}`,
		"quoted price":  `{"id":2,"title":"t","price":"10","description":"d","category":"c","image":"i"}`,
		"null price":    `{"id":2,"title":"t","price":null,"description":"d","category":"c","image":"i"}`,
		"missing image": `{"id":2,"title":"t","price":10,"description":"d","category":"c"}`,
		"negative id":   `{"id":-1,"title":"t","price":10,"description":"d","category":"c","image":"i"}`,
	} {
		resp := post(t, add, "/cart/add", body)
		assert.Equal(t, http.StatusBadRequest, resp.Code, name)
		assert.Contains(t, resp.Body.String(), `"VALIDATION_ERROR"`, name)
	}

	lines, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartEditRejectsQuantityAboveRange(t *testing.T) {
	svc := newService(t)
	post(t, CartAdd(svc, logger.Nop()), "/cart/add", productJSON(1, "1"))
	edit := CartEdit(svc, logger.Nop())

	resp := post(t, edit, "/cart/edit", `{"product_id":1,"quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(t, edit, "/cart/edit", `{"product_id":1,"quantity":4294967296}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(t, edit, "/cart/edit", `{"product_id":1,"quantity":4294967295}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"quantity updated"}`, resp.Body.String())
}

func TestCartEdit(t *testing.T) {
	svc := newService(t)
	post(t, CartAdd(svc, logger.Nop()), "/cart/add", productJSON(4, "2"))
	edit := CartEdit(svc, logger.Nop())

	resp := post(t, edit, "/cart/edit", `{"product_id":4,"quantity":5}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"quantity updated"}`, resp.Body.String())

	resp = post(t, edit, "/cart/edit", `{"product_id":99,"quantity":5}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"error":"Product not found in cart","code":"NOT_FOUND"}`, resp.Body.String())

	resp = post(t, edit, "/cart/edit", `{"product_id":4,"quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = get(t, CartSummary(svc, logger.Nop()), "/cart/summary")
	assert.JSONEq(t, `{"lines":1,"items":5,"total":10}`, resp.Body.String())
}

func TestCartDelete(t *testing.T) {
	svc := newService(t)
	add := CartAdd(svc, logger.Nop())
	post(t, add, "/cart/add", productJSON(1, "1"))
	post(t, add, "/cart/add", productJSON(2, "1"))
	del := CartDelete(svc, logger.Nop())

	resp := post(t, del, "/cart/delete", `{"product_id":1}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"deleted from cart"}`, resp.Body.String())

	resp = post(t, del, "/cart/delete", `{"product_id":1}`)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"error":"Product not found in cart","code":"NOT_FOUND"}`, resp.Body.String())

	resp = post(t, del, "/cart/delete", `{"product_id":"1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	lines, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Product.ID)
}

func TestCartHandlersWithoutService(t *testing.T) {
	resp := get(t, CartList(nil, logger.Nop()), "/cart")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
