package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) fillCart(t *testing.T) {
	t.Helper()
	item := e.seedItem(t, "Item A", 10000)
	w := e.doJSON(http.MethodPost, "/cart/increase/", gin.H{"item_id": item.ID})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutSubmitCOD(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)

	w := env.doForm(http.MethodPost, "/checkout/", url.Values{
		"name":          {"Ravi"},
		"phone":         {"999"},
		"paymentMethod": {"COD"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/orders/ORD"), loc)

	code := strings.Trim(strings.TrimPrefix(loc, "/orders/"), "/")
	order, err := env.checkout.FindOrder(context.Background(), testSession, code)
	require.NoError(t, err)
	assert.Equal(t, "COD", order.PaymentStatus)
	assert.Equal(t, "Ravi", order.Customer.Name)
}

func TestCheckoutSubmitOnlineStashesPending(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)

	w := env.doForm(http.MethodPost, "/checkout/", url.Values{
		"name":          {"Asha"},
		"paymentMethod": {"GPay"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/payment/confirm/", w.Header().Get("Location"))

	// no order yet; the form data is parked
	assert.Empty(t, env.checkout.ListOrders(context.Background(), testSession))
	pending, ok := env.checkout.PeekPending(context.Background(), testSession)
	require.True(t, ok)
	assert.Equal(t, "GPay", pending.PaymentMethod)
	assert.Equal(t, "Asha", pending.Customer.Name)
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/checkout/", url.Values{"paymentMethod": {"COD"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart/", w.Header().Get("Location"))
}

func TestPlaceOrderFinalizesPending(t *testing.T) {
	env := newTestEnv(t)
	env.fillCart(t)

	w := env.doForm(http.MethodPost, "/checkout/", url.Values{
		"name":          {"Asha"},
		"paymentMethod": {"PhonePe"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	w = env.doGet("/place-order/")
	require.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/orders/ORD"), loc)

	code := strings.Trim(strings.TrimPrefix(loc, "/orders/"), "/")
	order, err := env.checkout.FindOrder(context.Background(), testSession, code)
	require.NoError(t, err)
	assert.Equal(t, "Paid", order.PaymentStatus)
	assert.Equal(t, "PhonePe", order.PaymentMethod)
	assert.Equal(t, "Asha", order.Customer.Name)

	// stash consumed
	_, ok := env.checkout.PeekPending(context.Background(), testSession)
	assert.False(t, ok)
}

func TestPlaceOrderEmptyCartRedirects(t *testing.T) {
	env := newTestEnv(t)

	w := env.doGet("/place-order/")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart/", w.Header().Get("Location"))
}

func TestOrderDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.doGet("/orders/ORD404/")
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "ORD404", body["order_id"])
}

func TestOrdersListNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		env.fillCart(t)
		w := env.doForm(http.MethodPost, "/checkout/", url.Values{"paymentMethod": {"COD"}})
		require.Equal(t, http.StatusFound, w.Code)
	}

	w := env.doGet("/orders/")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	orders := data["orders"].([]any)
	assert.Len(t, orders, 2)
}

func TestPaymentConfirmShowsPendingAndTotals(t *testing.T) {
	env := newTestEnv(t)
	item := env.seedItem(t, "Item B", 5000)
	w := env.doJSON(http.MethodPost, "/cart/increase/", gin.H{"item_id": fmt.Sprint(item.ID)})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doForm(http.MethodPost, "/checkout/", url.Values{"paymentMethod": {"GPay"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = env.doGet("/payment/confirm/")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(5000), data["subtotal"])
	assert.Equal(t, float64(8000), data["total"])
	pending := data["pending"].(map[string]any)
	assert.Equal(t, "GPay", pending["payment_method"])
}
