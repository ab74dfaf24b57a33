package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/masomo/apps/api/echo"
	"github.com/trezcool/masomo/core/user"
	"github.com/trezcool/masomo/tests"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	if method == "" {
		method = http.MethodGet
	}
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func serve(tt httpTest) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func getUser(t *testing.T, id string) user.User {
	return testutil.GetUser(t, usrRepo, id)
}

func getToken(t *testing.T, usr user.User, origIat ...int64) string {
	token, err := GenerateToken(conf, GetUserClaims(conf, usr, origIat...))
	require.NoError(t, err, "getToken()")
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	require.NoError(t, err, "marshallObj()")
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	}
}

// ids decodes a JSON list of records and returns their IDs in order.
func ids(t *testing.T, body []byte) []string {
	var recs []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &recs))
	got := make([]string, len(recs))
	for i, rec := range recs {
		got[i] = rec.ID
	}
	return got
}
