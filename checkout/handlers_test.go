package checkout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sunsmart/cart"
	"sunsmart/models"
	"sunsmart/orders"
	"sunsmart/utils"

	"github.com/julienschmidt/httprouter"
)

func newFlowRouter() *httprouter.Router {
	router := httprouter.New()
	router.GET("/api/cart", cart.GetCart)
	router.POST("/api/cart/items", cart.AddItem)
	router.GET("/api/checkout", GetCheckout)
	router.POST("/api/checkout/begin", BeginCheckout)
	router.POST("/api/checkout/address", SubmitAddress)
	router.POST("/api/checkout/back", StepBack)
	router.POST("/api/checkout/payment", SubmitPayment)
	return router
}

func do(t *testing.T, router *httprouter.Router, sid, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(utils.SessionHeader, sid)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutHTTPFlow(t *testing.T) {
	orders.Local.Reset()
	router := newFlowRouter()
	sid := "flow-session-1"

	// begin with nothing in the cart
	rec := do(t, router, sid, "POST", "/api/checkout/begin", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("begin with empty cart: expected 400, got %d", rec.Code)
	}

	rec = do(t, router, sid, "POST", "/api/cart/items", map[string]interface{}{"partId": "1", "quantity": 1})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add to cart: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, sid, "POST", "/api/checkout/begin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("begin: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// payment before address is out of order
	rec = do(t, router, sid, "POST", "/api/checkout/payment", map[string]string{"method": "UPI"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("payment from ADDRESS: expected 409, got %d", rec.Code)
	}

	rec = do(t, router, sid, "POST", "/api/checkout/address", map[string]string{
		"name": "Rajesh", "phone": "9985265605", "line1": "Plot 12", "city": "Hyderabad",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("address: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, sid, "POST", "/api/checkout/payment", map[string]string{"method": "UPI"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("payment: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Step  Step         `json:"step"`
		Order models.Order `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Step != StepSuccess {
		t.Errorf("expected SUCCESS step, got %s", resp.Step)
	}
	if resp.Order.TrackerID == "" {
		t.Error("order has no tracker id")
	}
	if resp.Order.Status != models.OrderProcessing {
		t.Errorf("expected PROCESSING, got %s", resp.Order.Status)
	}

	// the order is recorded locally even though no store is reachable
	if _, ok := orders.Local.Status(resp.Order.ID); !ok {
		t.Error("completed order not recorded locally")
	}

	// and the cart was cleared
	rec = do(t, router, sid, "GET", "/api/cart", nil)
	var view struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Count != 0 {
		t.Errorf("cart not cleared after payment, count=%d", view.Count)
	}
}

func TestCheckoutBadAddressOverHTTP(t *testing.T) {
	router := newFlowRouter()
	sid := "flow-session-2"

	do(t, router, sid, "POST", "/api/cart/items", map[string]interface{}{"partId": "2", "quantity": 1})
	do(t, router, sid, "POST", "/api/checkout/begin", nil)

	rec := do(t, router, sid, "POST", "/api/checkout/address", map[string]string{
		"name": "", "phone": "123", "line1": "x", "city": "Hyderabad",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", rec.Code)
	}
}

func TestCheckoutBadPaymentMethodOverHTTP(t *testing.T) {
	router := newFlowRouter()
	sid := "flow-session-3"

	do(t, router, sid, "POST", "/api/cart/items", map[string]interface{}{"partId": "3", "quantity": 1})
	do(t, router, sid, "POST", "/api/checkout/begin", nil)
	do(t, router, sid, "POST", "/api/checkout/address", map[string]string{
		"name": "A", "phone": "1", "line1": "B", "city": "C",
	})

	rec := do(t, router, sid, "POST", "/api/checkout/payment", map[string]string{"method": "CHEQUE"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad method: expected 400, got %d", rec.Code)
	}
}

func TestStepBackOverHTTP(t *testing.T) {
	router := newFlowRouter()
	sid := "flow-session-4"

	do(t, router, sid, "POST", "/api/cart/items", map[string]interface{}{"partId": "1", "quantity": 1})
	do(t, router, sid, "POST", "/api/checkout/begin", nil)

	rec := do(t, router, sid, "POST", "/api/checkout/back", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("back from ADDRESS: expected 200, got %d", rec.Code)
	}
	var view Flow
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Step != StepCart {
		t.Errorf("expected CART after back, got %s", view.Step)
	}

	rec = do(t, router, sid, "POST", "/api/checkout/back", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("back from CART: expected 409, got %d", rec.Code)
	}
}
