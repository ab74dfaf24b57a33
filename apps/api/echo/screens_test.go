package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/masomo/core/collection"
	"github.com/trezcool/masomo/core/finance"
	"github.com/trezcool/masomo/core/student"
	exportsvc "github.com/trezcool/masomo/services/export"
)

func TestScreens_authRequired(t *testing.T) {
	paths := []string{
		"/v1/analytics", "/v1/branches/stats", "/v1/courses/1", "/v1/finance/transactions",
		"/v1/library/books/export", "/v1/payroll", "/v1/students", "/v1/teachers/stats",
		"/v1/transport/routes", "/v1/settings/roles",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			tt := httpTest{path: path, wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func TestScreens_invalidToken(t *testing.T) {
	rec := serve(httpTest{path: "/v1/students", token: "not.a.token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_studentApi_queryPage(t *testing.T) {
	token := getToken(t, getUser(t, "3"))

	tests := []struct {
		name      string
		query     string
		wantIDs   []string
		wantPage  int
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{name: "first page", query: "", wantIDs: []string{"1", "2", "3", "4", "5"}, wantPage: 1, wantPages: 2, wantNext: true},
		{name: "second page", query: "?page=2", wantIDs: []string{"6", "7", "8"}, wantPage: 2, wantPages: 2, wantPrev: true},
		{name: "page clamped", query: "?page=99", wantIDs: []string{"6", "7", "8"}, wantPage: 2, wantPages: 2, wantPrev: true},
		{name: "grade", query: "?grade=10TH", wantIDs: []string{"1", "5"}, wantPage: 1, wantPages: 1},
		{name: "search", query: "?search=%20mike%20", wantIDs: []string{"3"}, wantPage: 1, wantPages: 1},
		{name: "best gpa first", query: "?ordering=-gpa", wantIDs: []string{"4", "1", "8", "6", "2"}, wantPage: 1, wantPages: 2, wantNext: true},
		{name: "no match", query: "?search=zzz", wantIDs: []string{}, wantPage: 1, wantPages: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(httpTest{path: "/v1/students" + tt.query, token: token})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var page collection.Page[student.Student]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			got := make([]string, len(page.Items))
			for i, s := range page.Items {
				got[i] = s.ID
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, 5, page.PageSize)
			assert.Equal(t, tt.wantPrev, page.HasPrevious)
			assert.Equal(t, tt.wantNext, page.HasNext)
		})
	}
}

func TestScreens_badRequests(t *testing.T) {
	token := getToken(t, getUser(t, "3"))

	tests := []httpTest{
		{
			name: "unknown grade", path: "/v1/students?grade=13th", wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"grade": "must be one of [all 9th 10th 11th 12th]"}),
		},
		{
			name: "unknown ordering", path: "/v1/courses?ordering=-price", wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"ordering": "cannot order by price"}),
		},
		{
			name: "unknown transaction type", path: "/v1/finance/transactions?type=refund", wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"type": "must be one of [all income expense]"}),
		},
		{name: "page is a number", path: "/v1/students?page=two", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.token = token
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func TestScreens_retrieve(t *testing.T) {
	token := getToken(t, getUser(t, "1"))

	tests := []struct {
		httpTest
		wantID string
	}{
		{httpTest: httpTest{name: "student", path: "/v1/students/5", wantCode: http.StatusOK}, wantID: "5"},
		{httpTest: httpTest{name: "invoice", path: "/v1/finance/invoices/2", wantCode: http.StatusOK}, wantID: "2"},
		{httpTest: httpTest{name: "driver", path: "/v1/transport/drivers/3", wantCode: http.StatusOK}, wantID: "3"},
		{httpTest: httpTest{name: "metric", path: "/v1/analytics/4", wantCode: http.StatusOK}, wantID: "4"},
		{
			httpTest: httpTest{
				name: "student not found", path: "/v1/students/99", wantCode: http.StatusNotFound,
				wantData: marshallObj(t, httpErr{Error: "student not found"}),
			},
		},
		{
			httpTest: httpTest{
				name: "book not found", path: "/v1/library/books/0", wantCode: http.StatusNotFound,
				wantData: marshallObj(t, httpErr{Error: "book not found"}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.token = token
			rec := serve(tt.httpTest)

			checkCodeAndData(t, tt.httpTest, rec)
			if tt.wantID != "" {
				var got struct {
					ID string `json:"id"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestScreens_list(t *testing.T) {
	token := getToken(t, getUser(t, "1"))

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{name: "income", path: "/v1/finance/transactions?type=income&ordering=-amount", wantIDs: []string{"1", "4", "5", "7"}},
		{name: "overdue invoices", path: "/v1/finance/invoices?status=overdue", wantIDs: []string{"2", "4"}},
		{name: "empty", path: "/v1/finance/transactions?search=zzz", wantIDs: []string{}},
		{name: "payroll", path: "/v1/payroll?status=all", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "pending payroll", path: "/v1/payroll?status=pending", wantIDs: []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(httpTest{path: tt.path, token: token})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantIDs, ids(t, rec.Body.Bytes()))
		})
	}
}

func Test_payrollApi_restricted(t *testing.T) {
	tests := []httpTest{
		{name: "teacher", path: "/v1/payroll", token: getToken(t, getUser(t, "3")), wantCode: http.StatusForbidden},
		{name: "principal", path: "/v1/payroll/stats", token: getToken(t, getUser(t, "2")), wantCode: http.StatusForbidden},
		{name: "owner", path: "/v1/payroll/stats", token: getToken(t, getUser(t, "1")), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantCode == http.StatusForbidden {
				tt.wantData = marshallObj(t, httpErr{Error: "permission denied"})
			}
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func Test_financeApi_stats(t *testing.T) {
	rec := serve(httpTest{path: "/v1/finance/stats", token: getToken(t, getUser(t, "3"))})
	require.Equal(t, http.StatusOK, rec.Code)

	var stats finance.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.Transactions)
	assert.Equal(t, 104000.0, stats.NetIncome)
	assert.Equal(t, null.Float64From(34.2), stats.BudgetUtilization)
	assert.Equal(t, null.Float64From(67), stats.CollectionRate)
	assert.Equal(t, 2, stats.OverdueInvoices)
}

func TestScreens_statsUnsetValues(t *testing.T) {
	token := getToken(t, getUser(t, "1"))
	for _, path := range []string{
		"/v1/analytics/stats", "/v1/branches/stats", "/v1/courses/stats", "/v1/library/stats",
		"/v1/students/stats", "/v1/teachers/stats", "/v1/transport/stats",
	} {
		t.Run(path, func(t *testing.T) {
			rec := serve(httpTest{path: path, token: token})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, json.Valid(rec.Body.Bytes()))
		})
	}
}

func TestScreens_export(t *testing.T) {
	token := getToken(t, getUser(t, "1"))

	tests := []struct {
		name         string
		path         string
		wantFilename string
		wantSheet    string
		wantRows     int // header included
	}{
		{name: "income", path: "/v1/finance/transactions/export?type=income", wantFilename: "transactions.xlsx", wantSheet: "Transactions", wantRows: 5},
		{name: "students ignore pages", path: "/v1/students/export", wantFilename: "students.xlsx", wantSheet: "Students", wantRows: 9},
		{name: "drivers", path: "/v1/transport/drivers/export", wantFilename: "drivers.xlsx", wantSheet: "Drivers", wantRows: 4},
		{name: "users", path: "/v1/settings/users/export?is_active=true", wantFilename: "users.xlsx", wantSheet: "Users", wantRows: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(httpTest{path: tt.path, token: token})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, exportsvc.ContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="`+tt.wantFilename+`"`, rec.Header().Get("Content-Disposition"))

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, []string{tt.wantSheet}, f.GetSheetList())
			rows, err := f.GetRows(tt.wantSheet)
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
			assert.Equal(t, "ID", rows[0][0])
		})
	}
}

func TestHome(t *testing.T) {
	rec := serve(httpTest{path: "/"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Masomo Admin API!", rec.Body.String())
}
