package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nextbite/nextbite/internal/middleware"
	"github.com/nextbite/nextbite/internal/models"
	"github.com/nextbite/nextbite/internal/service"
)

// fakeOrderService implements OrderService for testing.
type fakeOrderService struct {
	orderID  string
	placeErr error
	entries  []models.OrderEntry
	histErr  error

	gotEmail string
	gotItems []models.LineItem
	gotDate  time.Time
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, email string, items []models.LineItem, orderDate time.Time) (string, error) {
	f.gotEmail = email
	f.gotItems = items
	f.gotDate = orderDate
	return f.orderID, f.placeErr
}

func (f *fakeOrderService) History(ctx context.Context, email string) ([]models.OrderEntry, error) {
	f.gotEmail = email
	return f.entries, f.histErr
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return req.WithContext(middleware.WithEmail(req.Context(), "ann@example.com"))
}

func TestOrderHandler_OrderData(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeOrderService
		expectedCode int
		wantOrderID  string
	}{
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeOrderService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "email mismatch with token",
			body:         `{"email":"mallory@example.com","orderData":[{"name":"Pizza","qty":1,"price":500}]}`,
			service:      &fakeOrderService{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unparsable order date",
			body:         `{"orderData":[{"name":"Pizza","qty":1,"price":500}],"orderDate":"next tuesday"}`,
			service:      &fakeOrderService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty payload rejected",
			body:         `{"orderData":[]}`,
			service:      &fakeOrderService{placeErr: service.ErrInvalidOrderPayload},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "store failure",
			body:         `{"orderData":[{"name":"Pizza","qty":1,"price":500}]}`,
			service:      &fakeOrderService{placeErr: errors.New("store down")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "success",
			body:         `{"email":"Ann@Example.com","orderData":[{"name":"Pizza","qty":1,"price":500}],"orderDate":"2024-01-01"}`,
			service:      &fakeOrderService{orderID: "log-1"},
			expectedCode: http.StatusOK,
			wantOrderID:  "log-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := authedRequest("POST", "/api/orderData", tt.body)
			h := &OrderHandler{OrderService: tt.service}
			h.OrderData(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.wantOrderID != "" {
				var payload map[string]any
				if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if payload["orderId"] != tt.wantOrderID {
					t.Errorf("orderId = %v; want %q", payload["orderId"], tt.wantOrderID)
				}
				if tt.service.gotEmail != "ann@example.com" {
					t.Errorf("service email = %q; want token email", tt.service.gotEmail)
				}
				want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
				if !tt.service.gotDate.Equal(want) {
					t.Errorf("orderDate = %v; want %v", tt.service.gotDate, want)
				}
			}
		})
	}
}

func TestOrderHandler_MyOrderData_POST(t *testing.T) {
	entries := []models.OrderEntry{{ID: "e1", Items: []models.LineItem{{Name: "Pizza", Quantity: 1, Price: 500}}}}
	svc := &fakeOrderService{entries: entries}

	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/api/myOrderData", `{"email":"ann@example.com"}`)
	(&OrderHandler{OrderService: svc}).MyOrderData(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var payload struct {
		Success   bool                `json:"success"`
		OrderData []models.OrderEntry `json:"orderData"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || len(payload.OrderData) != 1 {
		t.Errorf("payload = %+v; want one entry", payload)
	}
}

func TestOrderHandler_MyOrderData_EmailMismatch(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authedRequest("POST", "/api/myOrderData", `{"email":"mallory@example.com"}`)
	(&OrderHandler{OrderService: &fakeOrderService{}}).MyOrderData(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
}

func TestOrderHandler_MyOrderData_GETQueryEmail(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"mismatching query email", "/api/myOrderData?email=mallory@example.com", http.StatusUnauthorized},
		{"matching query email", "/api/myOrderData?email=Ann@Example.com", http.StatusOK},
		{"no query email", "/api/myOrderData", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := authedRequest("GET", tt.target, "")
			(&OrderHandler{OrderService: &fakeOrderService{}}).MyOrderData(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d; want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestOrderHandler_MyOrderData_GETEmptyHistory(t *testing.T) {
	svc := &fakeOrderService{entries: []models.OrderEntry{}}

	rec := httptest.NewRecorder()
	req := authedRequest("GET", "/api/myOrderData", "")
	(&OrderHandler{OrderService: svc}).MyOrderData(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 for empty history", rec.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	orders, ok := payload["orderData"].([]any)
	if !ok || len(orders) != 0 {
		t.Errorf("orderData = %v; want empty list", payload["orderData"])
	}
	if svc.gotEmail != "ann@example.com" {
		t.Errorf("service email = %q; want token email", svc.gotEmail)
	}
}

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"", true, time.Time{}},
		{"2024-01-01", true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T10:30:00Z", true, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"next tuesday", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := parseOrderDate(tt.in)
		if ok != tt.ok {
			t.Errorf("parseOrderDate(%q) ok = %v; want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("parseOrderDate(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
