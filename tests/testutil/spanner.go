package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	testProject  = "test-project"
	testInstance = "test-instance"
	testDatabase = "country-edit-test"
)

var testSchema = []string{
	`CREATE TABLE countries (
  uid        STRING(64) NOT NULL,
  name       STRING(50) NOT NULL,
  code       STRING(4) NOT NULL,
  updated_at TIMESTAMP NOT NULL
) PRIMARY KEY (uid)`,
	`CREATE TABLE revisions (
  revision_id STRING(36) NOT NULL,
  uid         STRING(64) NOT NULL,
  name        STRING(50) NOT NULL,
  code        STRING(4) NOT NULL,
  saved_at    TIMESTAMP NOT NULL
) PRIMARY KEY (revision_id)`,
	`CREATE INDEX idx_revisions_uid ON revisions(uid, saved_at DESC)`,
}

var provisionOnce sync.Once

// SetupSpannerTest creates a client against the Spanner emulator and
// returns it with a cleanup function. Tests calling it are skipped
// when SPANNER_EMULATOR_HOST is not set.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner integration test")
	}

	ctx := context.Background()
	provisionOnce.Do(func() {
		provisionDatabase(t, ctx)
	})

	client, err := spanner.NewClient(ctx, TestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	// Clean database before test
	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// TestSpannerDB returns the emulator database path used by tests.
func TestSpannerDB() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", testProject, testInstance, testDatabase)
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()

	mutations := []*spanner.Mutation{
		spanner.Delete("revisions", spanner.AllKeys()),
		spanner.Delete("countries", spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}

// provisionDatabase creates the emulator instance, database and schema.
// Everything is idempotent so repeated test runs reuse what exists.
func provisionDatabase(t *testing.T, ctx context.Context) {
	t.Helper()

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	require.NoError(t, err, "failed to create instance admin client")
	defer instanceAdmin.Close()

	instanceName := fmt.Sprintf("projects/%s/instances/%s", testProject, testInstance)
	if _, err := instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instanceName}); err != nil {
		require.Equal(t, codes.NotFound, status.Code(err), "failed to check instance")

		op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
			Parent:     fmt.Sprintf("projects/%s", testProject),
			InstanceId: testInstance,
			Instance: &instancepb.Instance{
				Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", testProject),
				DisplayName: "Test Instance",
				NodeCount:   1,
			},
		})
		require.NoError(t, err, "failed to create instance")
		_, err = op.Wait(ctx)
		require.NoError(t, err, "failed waiting for instance creation")
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	require.NoError(t, err, "failed to create database admin client")
	defer adminClient.Close()

	if _, err := adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: TestSpannerDB()}); err == nil {
		return
	}

	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          instanceName,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", testDatabase),
		ExtraStatements: testSchema,
	})
	require.NoError(t, err, "failed to create database")
	_, err = op.Wait(ctx)
	require.NoError(t, err, "failed waiting for database creation")
}
