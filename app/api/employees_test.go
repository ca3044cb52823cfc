package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hrms-lite/hrms/app/api/mocks"
	"github.com/hrms-lite/hrms/app/store"
)

func TestServer_CreateAndGetEmployee(t *testing.T) {
	ts, _ := newTestServer(t, false)

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/api/employees",
		`{"employee_id":"  EMP100 ","full_name":" Jane Doe ","email":"jane@example.com","department":" QA "}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decodeBody[EmployeeResponse](t, body)
	assert.Positive(t, created.ID)
	assert.Equal(t, EmployeeResponse{ID: created.ID, EmployeeID: "EMP100", FullName: "Jane Doe",
		Email: "jane@example.com", Department: "QA"}, created)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/api/employees/EMP100", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeBody[EmployeeResponse](t, body))

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]EmployeeResponse](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestServer_GetEmployeeNotFound(t *testing.T) {
	ts, _ := newTestServer(t, false)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/employees/EMP404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Employee with ID 'EMP404' not found."}`, string(body))
}

func TestServer_ListEmployees(t *testing.T) {
	t.Run("empty is array", func(t *testing.T) {
		ts, _ := newTestServer(t, false)
		resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, string(body))
	})

	t.Run("seeded in creation order", func(t *testing.T) {
		ts, _ := newTestServer(t, true)
		resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeBody[[]EmployeeResponse](t, body)
		require.Len(t, list, 5)
		for i, e := range list {
			assert.Equal(t, []string{"EMP001", "EMP002", "EMP003", "EMP004", "EMP005"}[i], e.EmployeeID)
			if i > 0 {
				assert.Greater(t, e.ID, list[i-1].ID)
			}
		}
	})
}

func TestServer_CreateEmployeeConflict(t *testing.T) {
	ts, _ := newTestServer(t, true)

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{"duplicate id", `{"employee_id":"EMP001","full_name":"X","email":"new@example.com","department":"D"}`,
			"Employee ID 'EMP001' already exists."},
		{"duplicate id after trim", `{"employee_id":" EMP002 ","full_name":"X","email":"new@example.com","department":"D"}`,
			"Employee ID 'EMP002' already exists."},
		{"duplicate email", `{"employee_id":"EMP900","full_name":"X","email":"priya.patel@company.com","department":"D"}`,
			"Email 'priya.patel@company.com' is already registered."},
		{"duplicate email in other domain case", `{"employee_id":"EMP901","full_name":"X","email":" priya.patel@Company.COM","department":"D"}`,
			"Email 'priya.patel@company.com' is already registered."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, ts.URL+"/api/employees", tt.body)
			assert.Equal(t, http.StatusConflict, resp.StatusCode)
			assert.Equal(t, tt.detail, decodeBody[ErrorResponse](t, body).Detail)
		})
	}

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]EmployeeResponse](t, body), 5)
}

func TestServer_CreateEmployeeValidation(t *testing.T) {
	ts, _ := newTestServer(t, false)

	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"malformed json", `{"employee_id":`, "invalid request body"},
		{"blank employee id", `{"employee_id":"   ","full_name":"A","email":"a@example.com","department":"D"}`,
			"Employee ID cannot be blank"},
		{"blank full name", `{"employee_id":"E1","full_name":" \t ","email":"a@example.com","department":"D"}`,
			"Full name cannot be blank"},
		{"blank department", `{"employee_id":"E1","full_name":"A","email":"a@example.com","department":""}`,
			"Department cannot be blank"},
		{"missing email", `{"employee_id":"E1","full_name":"A","department":"D"}`, "Email cannot be blank"},
		{"malformed email", `{"employee_id":"E1","full_name":"A","email":"not-an-email","department":"D"}`,
			"not a valid email"},
		{"employee id too long", `{"employee_id":"E123456789012345678901","full_name":"A","email":"a@example.com","department":"D"}`,
			"at most 20"},
		{"department too long", `{"employee_id":"E1","full_name":"A","email":"a@example.com","department":"` +
			"0123456789012345678901234567890123456789012345678901" + `"}`, "at most 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, ts.URL+"/api/employees", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Contains(t, decodeBody[ErrorResponse](t, body).Detail, tt.contains)
		})
	}

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestServer_DeleteEmployee(t *testing.T) {
	ts, _ := newTestServer(t, true)

	resp, body := doRequest(t, http.MethodDelete, ts.URL+"/api/employees/EMP404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Employee with ID 'EMP404' not found."}`, string(body))

	resp, body = doRequest(t, http.MethodDelete, ts.URL+"/api/employees/EMP001", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	resp, _ = doRequest(t, http.MethodGet, ts.URL+"/api/employees/EMP001", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/api/attendance?employee_id=EMP001", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/api/attendance", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]AttendanceResponse](t, body), 6)
}

func TestServer_StoreFailure(t *testing.T) {
	st := mocks.NewStore(t)
	st.On("ListEmployees", mock.Anything).Return(nil, errors.New("disk I/O error")).Once()
	st.On("GetEmployee", mock.Anything, "E1").Return(store.Employee{}, errors.New("database is locked")).Once()
	st.On("DeleteEmployee", mock.Anything, "E1").Return(errors.New("database is locked")).Once()

	srv, err := New(Config{Store: st})
	require.NoError(t, err)
	h := srv.routes()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/employees", http.NoBody),
		httptest.NewRequest(http.MethodGet, "/api/employees/E1", http.NoBody),
		httptest.NewRequest(http.MethodDelete, "/api/employees/E1", http.NoBody),
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code, req.URL.Path)
		assert.JSONEq(t, `{"detail":"Internal Server Error"}`, w.Body.String())
	}
}

func TestServer_CreateEmployeePassesNormalizedRecord(t *testing.T) {
	st := mocks.NewStore(t)
	want := store.Employee{EmployeeID: "E7", FullName: "Seven", Email: "seven@example.com", Department: "Ops"}
	st.On("CreateEmployee", mock.Anything, want).Return(func(_ context.Context, e store.Employee) (store.Employee, error) {
		e.ID = 7
		return e, nil
	}).Once()

	srv, err := New(Config{Store: st})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"employee_id":"E7 ","full_name":" Seven","email":" seven@Example.com ","department":"Ops"}`))
	w := httptest.NewRecorder()
	srv.handleCreateEmployee(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":7,"employee_id":"E7","full_name":"Seven","email":"seven@example.com","department":"Ops"}`,
		w.Body.String())
}
