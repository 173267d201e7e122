package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/services"
)

type mockDebtService struct {
	createDebtFn       func(name string, amount float64, reason, date string, status models.DebtStatus, direction models.DebtDirection) (*models.Debt, error)
	getDebtsFn         func(page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error)
	getDebtByIDFn      func(debtID string) (*models.Debt, error)
	updateDebtStatusFn func(debtID string, status models.DebtStatus) (*models.Debt, error)
	deleteDebtFn       func(debtID string) error
}

func (m *mockDebtService) CreateDebt(name string, amount float64, reason, date string, status models.DebtStatus, direction models.DebtDirection) (*models.Debt, error) {
	if m.createDebtFn != nil {
		return m.createDebtFn(name, amount, reason, date, status, direction)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) GetDebts(page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error) {
	if m.getDebtsFn != nil {
		return m.getDebtsFn(page, status)
	}
	resp := pagination.NewPageResponse([]models.Debt{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockDebtService) GetDebtByID(debtID string) (*models.Debt, error) {
	if m.getDebtByIDFn != nil {
		return m.getDebtByIDFn(debtID)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) UpdateDebtStatus(debtID string, status models.DebtStatus) (*models.Debt, error) {
	if m.updateDebtStatusFn != nil {
		return m.updateDebtStatusFn(debtID, status)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) DeleteDebt(debtID string) error {
	if m.deleteDebtFn != nil {
		return m.deleteDebtFn(debtID)
	}
	return nil
}

var _ services.DebtServicer = (*mockDebtService)(nil)

const testDebtID = "01923456-7890-7abc-8def-00000000d001"

func setupDebtRouter(handler *DebtHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/debts", handler.CreateDebt)
	auth.GET("/debts", handler.GetDebts)
	auth.GET("/debts/:id", handler.GetDebt)
	auth.PATCH("/debts/:id", handler.UpdateDebt)
	auth.DELETE("/debts/:id", handler.DeleteDebt)
	return r
}

func TestDebtHandler_CreateDebt(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockDebtService{
			createDebtFn: func(name string, amount float64, reason, date string, status models.DebtStatus, direction models.DebtDirection) (*models.Debt, error) {
				return &models.Debt{
					Base:      models.Base{ID: testDebtID},
					Name:      name,
					Amount:    amount,
					Reason:    reason,
					Date:      date,
					Status:    models.DebtStatusPending,
					Direction: direction,
				}, nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"reason":"concert ticket","date":"2026-01-10","direction":"gave"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		debt := parseJSON(t, rec)["debt"].(map[string]interface{})
		if debt["name"] != "Kenji" {
			t.Errorf("expected Kenji, got %v", debt["name"])
		}
		if debt["status"] != "pending" {
			t.Errorf("expected default status pending, got %v", debt["status"])
		}
		if debt["direction"] != "gave" {
			t.Errorf("expected direction gave, got %v", debt["direction"])
		}
	})

	t.Run("returns 400 on missing direction", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"date":"2026-01-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown direction", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"date":"2026-01-10","direction":"lent"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"date":"2026-01-10","direction":"gave","status":"settled"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"date":"Jan 10","direction":"gave"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/debts", handler.CreateDebt)

		rec := doRequest(r, "POST", "/debts",
			`{"name":"Kenji","amount":40,"date":"2026-01-10","direction":"gave"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestDebtHandler_GetDebts(t *testing.T) {
	t.Run("returns 200 with paginated debts", func(t *testing.T) {
		svc := &mockDebtService{
			getDebtsFn: func(_ pagination.PageRequest, _ *models.DebtStatus) (*pagination.PageResponse[models.Debt], error) {
				resp := pagination.NewPageResponse([]models.Debt{
					{Name: "Kenji", Amount: 40, Direction: models.DebtDirectionGave},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 debt, got %d", len(data))
		}
	})

	t.Run("passes status filter to the service", func(t *testing.T) {
		var got *models.DebtStatus
		svc := &mockDebtService{
			getDebtsFn: func(_ pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error) {
				got = status
				resp := pagination.NewPageResponse([]models.Debt{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts?status=paid", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got != models.DebtStatusPaid {
			t.Errorf("expected status paid, got %v", got)
		}
	})

	t.Run("returns 400 on unknown status filter", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts?status=overdue", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDebtHandler_GetDebt(t *testing.T) {
	t.Run("returns 200 with debt", func(t *testing.T) {
		svc := &mockDebtService{
			getDebtByIDFn: func(debtID string) (*models.Debt, error) {
				return &models.Debt{Base: models.Base{ID: debtID}, Name: "Kenji"}, nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts/"+testDebtID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		debt := parseJSON(t, rec)["debt"].(map[string]interface{})
		if debt["name"] != "Kenji" {
			t.Errorf("expected Kenji, got %v", debt["name"])
		}
	})

	t.Run("returns 404 on unknown debt", func(t *testing.T) {
		svc := &mockDebtService{
			getDebtByIDFn: func(_ string) (*models.Debt, error) {
				return nil, apperrors.ErrDebtNotFound
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts/"+testDebtID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DEBT_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "GET", "/debts/42", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDebtHandler_UpdateDebt(t *testing.T) {
	t.Run("returns 200 after marking paid", func(t *testing.T) {
		svc := &mockDebtService{
			updateDebtStatusFn: func(debtID string, status models.DebtStatus) (*models.Debt, error) {
				return &models.Debt{Base: models.Base{ID: debtID}, Status: status}, nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "PATCH", "/debts/"+testDebtID, `{"status":"paid"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		debt := parseJSON(t, rec)["debt"].(map[string]interface{})
		if debt["status"] != "paid" {
			t.Errorf("expected status paid, got %v", debt["status"])
		}
	})

	t.Run("returns 400 on missing status", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "PATCH", "/debts/"+testDebtID, `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		handler := NewDebtHandler(&mockDebtService{}, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "PATCH", "/debts/"+testDebtID, `{"status":"forgiven"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown debt", func(t *testing.T) {
		svc := &mockDebtService{
			updateDebtStatusFn: func(_ string, _ models.DebtStatus) (*models.Debt, error) {
				return nil, apperrors.ErrDebtNotFound
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "PATCH", "/debts/"+testDebtID, `{"status":"paid"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestDebtHandler_DeleteDebt(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		deleted := ""
		svc := &mockDebtService{
			deleteDebtFn: func(debtID string) error {
				deleted = debtID
				return nil
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "DELETE", "/debts/"+testDebtID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if deleted != testDebtID {
			t.Errorf("expected delete of %s, got %s", testDebtID, deleted)
		}
	})

	t.Run("returns 404 on unknown debt", func(t *testing.T) {
		svc := &mockDebtService{
			deleteDebtFn: func(_ string) error {
				return apperrors.ErrDebtNotFound
			},
		}
		handler := NewDebtHandler(svc, &mockAuditService{})
		r := setupDebtRouter(handler)

		rec := doRequest(r, "DELETE", "/debts/"+testDebtID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
