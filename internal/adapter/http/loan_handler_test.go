package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/domain/actor"
	customerDomain "goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/goldrate"
	loanDomain "goldloan-backend/internal/domain/loan"
	schemeDomain "goldloan-backend/internal/domain/scheme"
	schemereqDomain "goldloan-backend/internal/domain/schemereq"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/internal/testutil/loanmock"
	"goldloan-backend/internal/testutil/notifymock"
	"goldloan-backend/internal/testutil/uowmock"
	"goldloan-backend/internal/usecase/origination"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func withActor(c echo.Context, act actor.Actor) {
	c.Set(middleware.ActorContextKey, act)
}

func staffActor() actor.Actor {
	return actor.Actor{UserID: "staff-1", Role: actor.RoleStaff, BranchID: "BR-01"}
}

// -------- collaborator mocks --------

type stubCustomerRepo struct{ cust *customerDomain.Customer }

func (s *stubCustomerRepo) Create(ctx context.Context, c *customerDomain.Customer) error { return nil }
func (s *stubCustomerRepo) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	if s.cust == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.cust, nil
}
func (s *stubCustomerRepo) Save(ctx context.Context, c *customerDomain.Customer) error { return nil }
func (s *stubCustomerRepo) Delete(ctx context.Context, id uint64) error                { return nil }
func (s *stubCustomerRepo) List(ctx context.Context, branchID string) ([]customerDomain.Customer, error) {
	return nil, nil
}

type stubSchemeRepo struct{ sch *schemeDomain.Scheme }

func (s *stubSchemeRepo) Create(ctx context.Context, sc *schemeDomain.Scheme) error { return nil }
func (s *stubSchemeRepo) GetByID(ctx context.Context, id uint64) (*schemeDomain.Scheme, error) {
	if s.sch == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.sch, nil
}
func (s *stubSchemeRepo) GetByName(ctx context.Context, name string) (*schemeDomain.Scheme, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubSchemeRepo) ListActive(ctx context.Context) ([]schemeDomain.Scheme, error) {
	return nil, nil
}
func (s *stubSchemeRepo) Save(ctx context.Context, sc *schemeDomain.Scheme) error { return nil }

type stubRateRepo struct{ rate *goldrate.GoldRate }

func (s *stubRateRepo) Create(ctx context.Context, r *goldrate.GoldRate) error { return nil }
func (s *stubRateRepo) Latest(ctx context.Context) (*goldrate.GoldRate, error) {
	if s.rate == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.rate, nil
}
func (s *stubRateRepo) GetByDate(ctx context.Context, day time.Time) (*goldrate.GoldRate, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRateRepo) Save(ctx context.Context, r *goldrate.GoldRate) error { return nil }
func (s *stubRateRepo) Delete(ctx context.Context, id uint64) error          { return nil }

type stubRequestRepo struct{}

func (s *stubRequestRepo) Create(ctx context.Context, r *schemereqDomain.SchemeRequest) error {
	return nil
}
func (s *stubRequestRepo) GetByRequestID(ctx context.Context, requestID string) (*schemereqDomain.SchemeRequest, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubRequestRepo) Save(ctx context.Context, r *schemereqDomain.SchemeRequest) error {
	return nil
}
func (s *stubRequestRepo) List(ctx context.Context, f schemereqDomain.ListFilter) ([]schemereqDomain.SchemeRequest, error) {
	return nil, nil
}
func (s *stubRequestRepo) LatestApproved(ctx context.Context, customerRef, schemeRef uint64) (*schemereqDomain.SchemeRequest, error) {
	return nil, gorm.ErrRecordNotFound
}

func originationFixture(loans *loanmock.Repo) *origination.Usecase {
	return origination.NewUsecase(
		loans,
		&stubCustomerRepo{cust: &customerDomain.Customer{ID: 7, CustomerID: strings.Repeat("c", 32), Name: "Asha Rao"}},
		&stubSchemeRepo{sch: &schemeDomain.Scheme{
			ID: 3, SchemeName: "Standard Gold Loan", InterestRate: 12, TenureMonths: 12,
			MaxLoanPercentage: 75, PenalInterestRate: 6, OverdueFine: 500, IsActive: true,
		}},
		&stubRateRepo{rate: &goldrate.GoldRate{RatePerGram22K: 6500, RatePerGram20K: 5900, RatePerGram18K: 5300}},
		&stubRequestRepo{},
		uowmock.Passthrough(uow.Repos{Loans: loans}),
		notifymock.New(),
	)
}

// -------- tests --------

func TestCreateLoan_Success(t *testing.T) {
	e := newEchoWithValidator()

	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *loanDomain.Loan) error {
			l.ID = 42
			return nil
		},
	}
	h := NewLoanHandler(originationFixture(loans))

	reqBody := map[string]any{
		"customer_id": strings.Repeat("c", 32),
		"scheme_id":   3,
		"items": []map[string]any{
			{"name": "Gold chain", "net_weight": 10, "purity": "22k"},
		},
		"loan_amount": 40000,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withActor(c, staffActor())

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got loanDomain.Loan
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanAmount != 40000 || got.Valuation != 65000 {
		t.Fatalf("unexpected loan: %+v", got)
	}
	if got.Status != loanDomain.StatusActive {
		t.Fatalf("status = %s, want active", got.Status)
	}
	if got.BranchID != "BR-01" {
		t.Fatalf("branch = %s, want BR-01", got.BranchID)
	}
}

func TestCreateLoan_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(originationFixture(loanmock.New()))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", strings.NewReader(`{"customer_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestCreateLoan_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(originationFixture(loanmock.New())) // won't be called

	// invalid: customer_id not hex32, purity outside the tier set,
	// loan_amount with too many decimals
	reqBody := map[string]any{
		"customer_id": "NOT_HEX_32",
		"scheme_id":   3,
		"items": []map[string]any{
			{"name": "Gold chain", "net_weight": 10, "purity": "24k"},
		},
		"loan_amount": 40000.123,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q, want %q", er.Error, "validation failed")
	}
	if !containsFieldMsg(er.Details, "CustomerID", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Purity", "one of 22k, 20k, 18k") {
		t.Fatalf("missing purity detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "LoanAmount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 detail: %+v", er.Details)
	}
}

func TestCreateLoan_LtvExceeded(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(originationFixture(loanmock.New()))

	// 10g of 22k at 6500 values 65000; the 75% cap allows 48750.
	reqBody := map[string]any{
		"customer_id": strings.Repeat("c", 32),
		"scheme_id":   3,
		"items": []map[string]any{
			{"name": "Gold chain", "net_weight": 10, "purity": "22k"},
		},
		"loan_amount": 48750.01,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withActor(c, staffActor())

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !strings.Contains(er.Error, "48750.00") {
		t.Fatalf("error must name the limit: %q", er.Error)
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	e := echo.New()
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewLoanHandler(originationFixture(loans))

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/xxx", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues("xxx")

	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !strings.Contains(er.Error, "loan") {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestListLoans_ParsesStatusFilter(t *testing.T) {
	e := echo.New()
	var gotFilter loanDomain.QueryFilter
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context, f loanDomain.QueryFilter) ([]loanDomain.Loan, error) {
			gotFilter = f
			return []loanDomain.Loan{}, nil
		},
	}
	h := NewLoanHandler(originationFixture(loans))

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans?status=active,%20overdue", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withActor(c, staffActor())

	if err := h.ListLoans(c); err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(gotFilter.Statuses) != 2 ||
		gotFilter.Statuses[0] != loanDomain.StatusActive ||
		gotFilter.Statuses[1] != loanDomain.StatusOverdue {
		t.Fatalf("statuses = %v", gotFilter.Statuses)
	}
	if gotFilter.BranchID != "BR-01" {
		t.Fatalf("staff must be pinned to own branch, got %q", gotFilter.BranchID)
	}
}
