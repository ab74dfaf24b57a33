// Package testutil holds the helpers shared by the test suites.
package testutil

import (
	"context"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/user"
	"github.com/trezcool/masomo/storage/database/inmem"
)

// OpenDB loads the embedded fixtures.
func OpenDB(t *testing.T) *inmemdb.DB {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

// NewConfig returns a TEST mode configuration that does not read the environment.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:   "Masomo",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			DisableReqLogs:            true,
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: time.Hour,
			ShutdownTimeout:           time.Second,
		},
		Listing: core.ListingConfig{PageSize: 5},
	}
}

// NewValidator returns a validator with the app's custom tags and english translations registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	return validate, translator
}

func GetUser(t *testing.T, repo user.Repository, id string) user.User {
	t.Helper()
	usr, err := repo.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetUser(%s) failed: %v", id, err)
	}
	return usr
}
