package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	"recipebox-backend/lib/configuration"
	"recipebox-backend/lib/telemetry"

	_ "modernc.org/sqlite"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	result := ServiceResult{}
	if params.DbSchema != "" {
		dbpath := params.DbPath
		if dbpath == "" {
			dbpath = ":memory:"
		}
		db, err := configuration.Sqlite{File: dbpath}.OpenDB(params.DbSchema)
		if err != nil {
			t.Fatal(err)
		}
		result.DB = db
	}

	return result, func() {
		if result.DB != nil {
			result.DB.Close()
		}
		cleanup()
	}
}
