package load_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/db"
	"github.com/gyeh/namecleaner/internal/load"
	"github.com/gyeh/namecleaner/internal/logging"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/tabular"
)

const (
	testPort     = 15433
	testDB       = "cleantest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool on a freshly migrated schema.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("embedded postgres disabled in -short mode")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS cleaning CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := db.ApplyMigrations(ctx, pool, logging.Setup("text", "warn")); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample_companies.csv")
	if err := tabular.WriteCSVFile(path, model.SampleTable("company_name")); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestEndToEnd_Load(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	cfg := &config.Config{InputPath: writeSample(t), Column: "company_name"}
	summary, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("load.Run: %v", err)
	}

	want := int64(len(model.SampleCompanies))
	if summary.RowsLoaded != want {
		t.Errorf("RowsLoaded: got %d, want %d", summary.RowsLoaded, want)
	}

	t.Run("cleaned_names", func(t *testing.T) {
		rows, err := pool.Query(ctx,
			"SELECT cleaned_name FROM cleaning.company_names ORDER BY source_row_number")
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		defer rows.Close()

		var got []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				t.Fatalf("scan: %v", err)
			}
			got = append(got, name)
		}
		wantNames := []string{
			"Apple", "Microsoft", "Amazon.com", "Tesla", "Walmart",
			"Netflix", "Meta Platforms", "Alphabet", "Toyota Motor", "Samsung Electronics",
		}
		if fmt.Sprint(got) != fmt.Sprint(wantNames) {
			t.Errorf("cleaned names:\n got %v\nwant %v", got, wantNames)
		}
	})

	t.Run("suffix_recorded", func(t *testing.T) {
		var suffix string
		err := pool.QueryRow(ctx,
			"SELECT suffix FROM cleaning.company_names WHERE source_row_number = 2").Scan(&suffix)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if suffix != "Corporation" {
			t.Errorf("suffix: got %q, want Corporation", suffix)
		}
	})

	t.Run("run_loaded", func(t *testing.T) {
		var status string
		var rowsLoaded int64
		err := pool.QueryRow(ctx,
			"SELECT status, rows_loaded FROM cleaning.runs WHERE run_id = $1", summary.RunID).
			Scan(&status, &rowsLoaded)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if status != "loaded" || rowsLoaded != want {
			t.Errorf("run: status=%q rows=%d", status, rowsLoaded)
		}
	})
}

func TestEndToEnd_Idempotency(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")
	cfg := &config.Config{InputPath: writeSample(t), Column: "company_name"}

	first, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	second, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.Skipped {
		t.Error("second run should skip an already loaded file")
	}

	cfg.Force = true
	third, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if third.RunID != first.RunID {
		t.Errorf("forced run should reuse run %d, got %d", first.RunID, third.RunID)
	}

	var count int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM cleaning.company_names").Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != first.RowsLoaded {
		t.Errorf("expected %d rows after forced reload, got %d", first.RowsLoaded, count)
	}
}
