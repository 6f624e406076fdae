package http

import (
	"net/http"
	"strings"
	"testing"

	farmerdomain "agrifin-backend/internal/domain/farmer"
	domain "agrifin-backend/internal/domain/loan"
)

func loanBody(farmerID string, amount float64) map[string]any {
	return map[string]any{
		"farmerId":     farmerID,
		"loanAmount":   amount,
		"interestRate": 8,
		"tenure":       12,
		"purpose":      "Seeds",
	}
}

func TestLoan_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	f := createFarmer(t, s, "ramesh@example.com", "9876543210")

	res := s.do(t, http.MethodPost, "/api/loans", loanBody(f.ID, 80000))
	expectStatus(t, res, http.StatusCreated)
	if res.Body.Message != "Loan application submitted successfully" {
		t.Fatalf("unexpected envelope: %s", res.Raw)
	}
	var l domain.Loan
	res.decode(t, &l)
	// 50 base + 20 credit + 10 land + 15 small loan
	if l.AIScore != 95 || l.Status != domain.StatusPending || l.Farmer == nil {
		t.Fatalf("unexpected loan: %+v", l)
	}

	res = s.do(t, http.MethodGet, "/api/farmers/"+f.ID, nil)
	var mirrored farmerdomain.Farmer
	res.decode(t, &mirrored)
	if mirrored.LoanStatus != farmerdomain.LoanStatusApplied {
		t.Fatalf("farmer mirror = %s, want Applied", mirrored.LoanStatus)
	}

	steps := []struct {
		status string
		msg    string
		mirror farmerdomain.LoanStatus
	}{
		{"Approved", "Loan approved successfully", farmerdomain.LoanStatusApproved},
		{"Disbursed", "Loan disbursed successfully", farmerdomain.LoanStatusActive},
	}
	for _, st := range steps {
		res = s.do(t, http.MethodPatch, "/api/loans/"+l.ID+"/status", map[string]any{"status": st.status})
		expectStatus(t, res, http.StatusOK)
		if res.Body.Message != st.msg {
			t.Fatalf("unexpected message for %s: %s", st.status, res.Raw)
		}
		res = s.do(t, http.MethodGet, "/api/farmers/"+f.ID, nil)
		res.decode(t, &mirrored)
		if mirrored.LoanStatus != st.mirror {
			t.Fatalf("after %s farmer mirror = %s, want %s", st.status, mirrored.LoanStatus, st.mirror)
		}
	}

	res = s.do(t, http.MethodGet, "/api/loans/"+l.ID, nil)
	expectStatus(t, res, http.StatusOK)
	res.decode(t, &l)
	if l.ApprovalDate == nil || l.DisbursementDate == nil {
		t.Fatalf("expected approval and disbursement dates: %+v", l)
	}

	res = s.do(t, http.MethodPatch, "/api/loans/"+l.ID+"/status", map[string]any{"status": "Approved"})
	expectStatus(t, res, http.StatusBadRequest)
	if !strings.Contains(res.Body.Message, "cannot change loan status") {
		t.Fatalf("unexpected body: %s", res.Raw)
	}

	res = s.do(t, http.MethodGet, "/api/loans?farmerId="+f.ID+"&status=Disbursed", nil)
	expectStatus(t, res, http.StatusOK)
	if res.Body.Count == nil || *res.Body.Count != 1 {
		t.Fatalf("expected one disbursed loan: %s", res.Raw)
	}
	res = s.do(t, http.MethodGet, "/api/loans?status=Pending", nil)
	if res.Body.Count == nil || *res.Body.Count != 0 {
		t.Fatalf("expected no pending loans: %s", res.Raw)
	}

	metrics := s.do(t, http.MethodGet, "/metrics", nil)
	expectStatus(t, metrics, http.StatusOK)
	if !strings.Contains(string(metrics.Raw), `agrifin_loan_transitions_total{status="Disbursed"} 1`) {
		t.Fatalf("transition metric missing:\n%s", metrics.Raw)
	}
}

func TestLoan_CreateRejects(t *testing.T) {
	s := newTestServer(t)
	f := createFarmer(t, s, "ramesh@example.com", "9876543210")

	tests := []struct {
		name string
		body map[string]any
		code int
		msg  string
	}{
		{"unknown farmer", loanBody("0123456789abcdef0123456789abcdef", 80000), http.StatusNotFound, "Farmer not found"},
		{"malformed farmer id", loanBody("F-1", 80000), http.StatusBadRequest, "must be 32-char lowercase hex"},
		{"amount below minimum", loanBody(f.ID, 500), http.StatusBadRequest, ""},
		{"missing purpose", map[string]any{"farmerId": f.ID, "loanAmount": 80000, "tenure": 12}, http.StatusBadRequest, "is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.do(t, http.MethodPost, "/api/loans", tt.body)
			expectStatus(t, res, tt.code)
			if tt.msg != "" && res.Body.Message != tt.msg {
				t.Fatalf("unexpected body: %s", res.Raw)
			}
		})
	}

	res := s.do(t, http.MethodGet, "/api/loans", nil)
	if res.Body.Count == nil || *res.Body.Count != 0 {
		t.Fatalf("rejected applications must not be stored: %s", res.Raw)
	}
}

func TestLoan_StatusUnknownLoan(t *testing.T) {
	s := newTestServer(t)
	res := s.do(t, http.MethodPatch, "/api/loans/0123456789abcdef0123456789abcdef/status", map[string]any{"status": "Approved"})
	expectStatus(t, res, http.StatusNotFound)
	if res.Body.Message != "Loan not found" {
		t.Fatalf("unexpected body: %s", res.Raw)
	}
	expectStatus(t, s.do(t, http.MethodGet, "/api/loans/0123456789abcdef0123456789abcdef", nil), http.StatusNotFound)
}
