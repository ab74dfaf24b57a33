package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/masomo/apps/api/echo"
	"github.com/trezcool/masomo/core/user"
)

func loginBody(t *testing.T, uname, pwd string) []byte {
	return marshallObj(t, LoginRequest{Username: uname, Password: pwd})
}

func parseToken(t *testing.T, body []byte) *Claims {
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	require.NoError(t, err)
	return claims
}

func Test_userApi_login(t *testing.T) {
	const path = "/v1/auth/login"
	authFailed := marshallObj(t, httpErr{Error: "authentication failed"})

	tests := []struct {
		httpTest
		wantSubject string
		wantAdmin   bool
	}{
		{
			httpTest:    httpTest{name: "username", body: loginBody(t, "admin", "masomo-admin"), wantCode: http.StatusOK},
			wantSubject: "1", wantAdmin: true,
		},
		{
			httpTest:    httpTest{name: "email", body: loginBody(t, " S.Mitchell@school.edu", "masomo-teacher"), wantCode: http.StatusOK},
			wantSubject: "3",
		},
		{httpTest: httpTest{name: "wrong password", body: loginBody(t, "admin", "admin"), wantCode: http.StatusBadRequest, wantData: authFailed}},
		{httpTest: httpTest{name: "unknown user", body: loginBody(t, "ghost", "boo"), wantCode: http.StatusBadRequest, wantData: authFailed}},
		{
			httpTest: httpTest{
				name: "deactivated", body: loginBody(t, "clerk", "masomo-clerk"), wantCode: http.StatusForbidden,
				wantData: marshallObj(t, httpErr{Error: "account deactivated"}),
			},
		},
		{
			httpTest: httpTest{
				name: "blank", body: loginBody(t, "  ", ""), wantCode: http.StatusBadRequest,
				wantData: marshallObj(t, map[string]string{"username": "this field is required", "password": "this field cannot be blank"}),
			},
		},
		{
			httpTest: httpTest{
				name: "blank password", body: loginBody(t, "admin", "   "), wantCode: http.StatusBadRequest,
				wantData: marshallObj(t, map[string]string{"password": "this field cannot be blank"}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, path, tt.body)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt.httpTest, rec)
			if tt.wantCode == http.StatusOK {
				claims := parseToken(t, rec.Body.Bytes())
				assert.Equal(t, tt.wantSubject, claims.Subject)
				assert.Equal(t, tt.wantAdmin, claims.IsAdmin)
				assert.Equal(t, claims.IssuedAt, claims.OrigIssuedAt)
			}
		})
	}
}

func Test_userApi_refreshToken(t *testing.T) {
	const path = "/v1/auth/token-refresh"
	admin := getUser(t, "1")
	origIat := time.Now().Add(-30 * time.Minute).Unix()

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "refreshed", token: getToken(t, admin, origIat), wantCode: http.StatusOK},
		{
			name: "refresh expired", token: getToken(t, admin, time.Now().Add(-2*time.Hour).Unix()),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "refresh has expired"}),
		},
		{
			name: "deactivated", token: getToken(t, getUser(t, "4")),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "account deactivated"}),
		},
		{
			name: "unknown user", token: getToken(t, user.User{ID: "99", Username: "ghost"}),
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, httpErr{Error: "user not authenticated"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method, tt.path = http.MethodPost, path
			rec := serve(tt)

			checkCodeAndData(t, tt, rec)
			if tt.wantCode == http.StatusOK {
				claims := parseToken(t, rec.Body.Bytes())
				assert.Equal(t, admin.ID, claims.Subject)
				assert.Equal(t, origIat, claims.OrigIssuedAt, "the original issue time is kept")
			}
		})
	}
}

func Test_settingsApi(t *testing.T) {
	adminToken := getToken(t, getUser(t, "1"))
	teacherToken := getToken(t, getUser(t, "3"))

	tests := []struct {
		httpTest
		wantIDs []string
	}{
		{httpTest: httpTest{name: "Auth required", path: "/v1/settings/users", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}},
		{
			httpTest: httpTest{
				name: "Admin required", path: "/v1/settings/users", token: teacherToken,
				wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
			},
		},
		{httpTest: httpTest{name: "Get all", path: "/v1/settings/users", token: adminToken, wantCode: http.StatusOK}, wantIDs: []string{"1", "2", "3", "4"}},
		{httpTest: httpTest{name: "inactive", path: "/v1/settings/users?is_active=false", token: adminToken, wantCode: http.StatusOK}, wantIDs: []string{"4"}},
		{httpTest: httpTest{name: "role", path: "/v1/settings/users?role=TEACHER:", token: adminToken, wantCode: http.StatusOK}, wantIDs: []string{"3"}},
		{httpTest: httpTest{name: "search", path: "/v1/settings/users?search=school.edu&ordering=-name", token: adminToken, wantCode: http.StatusOK}, wantIDs: []string{"1", "4", "3", "2"}},
		{
			httpTest: httpTest{
				name: "unknown role", path: "/v1/settings/users?role=janitor", token: adminToken,
				wantCode: http.StatusBadRequest, wantData: marshallObj(t, map[string]string{"role": "unknown role"}),
			},
		},
		{
			httpTest: httpTest{
				name: "roles", path: "/v1/settings/roles", token: adminToken,
				wantCode: http.StatusOK, wantData: marshallObj(t, user.Roles),
			},
		},
		{
			httpTest: httpTest{
				name: "stats", path: "/v1/settings/stats", token: adminToken,
				wantCode: http.StatusOK, wantData: marshallObj(t, user.Stats{Total: 4, Active: 3, Inactive: 1, Admins: 2, Teachers: 2}),
			},
		},
		{
			httpTest: httpTest{
				name: "user not found", path: "/v1/settings/users/99", token: adminToken,
				wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "user not found"}),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.httpTest)

			checkCodeAndData(t, tt.httpTest, rec)
			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, ids(t, rec.Body.Bytes()))
			}
		})
	}
}

func Test_userApi_retrieve_hidesPassword(t *testing.T) {
	rec := serve(httpTest{path: "/v1/settings/users/2", token: getToken(t, getUser(t, "1"))})
	require.Equal(t, http.StatusOK, rec.Code)

	var usr map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
	assert.Equal(t, "principal", usr["username"])
	assert.NotContains(t, usr, "password_hash")
	assert.NotContains(t, usr, "PasswordHash")
}
