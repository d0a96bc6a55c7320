//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "gymfinder/internal/adapters/http_server"
	"gymfinder/internal/app"
	"gymfinder/internal/domain"
	mysqlrepo "gymfinder/internal/storage/mysql"
)

// ---------- helpers ----------
func pstr(s string) *string     { return &s }
func pfloat(f float64) *float64 { return &f }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// nullCache satisfies the cache port without a redis dependency.
type nullCache struct{}

func (nullCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nullCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nullCache) Del(ctx context.Context, key string) error { return nil }

// gymNorthOf places a venue d kilometers due north of (39.90, 116.40).
func gymNorthOf(id int64, name string, dKm float64) domain.Venue {
	lat := 39.90 + dKm/6371*(180/3.14159265358979)
	return domain.Venue{
		ID:       id,
		Name:     name,
		City:     pstr("北京"),
		Country:  pstr("中国"),
		Lat:      pfloat(lat),
		Lng:      pfloat(116.40),
		Type:     domain.TypeComprehensive,
		Programs: []string{"crossfit"},
		Tags:     []string{},
		Schedule: domain.WeeklySchedule{"monday": "06:00-22:00"},
		Images:   []string{},
		RawJSON:  []byte(`{}`),
	}
}

// ---------- the test ----------
func TestHTTP_EndToEnd_Search(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=gymfinder",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "gymfinder")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for _, v := range []domain.Venue{
		gymNorthOf(1, "CrossFit 三里屯", 1.2),
		gymNorthOf(2, "CrossFit 国贸", 3.0),
		gymNorthOf(3, "CrossFit 朝阳", 8.0),
	} {
		if err := repo.UpsertVenue(ctx, v); err != nil {
			t.Fatalf("seed %d: %v", v.ID, err)
		}
	}

	// Wire the real HTTP surface over the real engine.
	d := app.NewDiscoveryService(repo, time.UTC)
	q := app.NewQueryService(repo, nullCache{}, time.Minute)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{D: d, Q: q})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// Radius 5km keeps the two nearest, ordered by ascending distance.
	res, err := http.Get(ts.URL + "/v1/gyms?lat=39.90&lng=116.40&keyword=CrossFit&radius=5&sort=distance&page=1&page_size=10")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body domain.PageResult
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 2 || body.Items[0].ID != 1 || body.Items[1].ID != 2 {
		t.Fatalf("unexpected items: %+v", body.Items)
	}
	if body.Meta.Total != 2 || body.Meta.HasNext {
		t.Fatalf("meta: %+v", body.Meta)
	}
	if body.CurrentCity != "北京" {
		t.Fatalf("current city: %q", body.CurrentCity)
	}

	// A lone latitude is rejected before the catalog is touched.
	res2, err := http.Get(ts.URL + "/v1/gyms?lat=39.90")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for lone latitude, got %d", res2.StatusCode)
	}

	// City listing endpoint.
	res3, err := http.Get(ts.URL + "/v1/cities")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res3.Body.Close()
	var cities []domain.CityCount
	if err := json.NewDecoder(res3.Body).Decode(&cities); err != nil {
		t.Fatalf("decode cities: %v", err)
	}
	if len(cities) != 1 || cities[0].City != "北京" || cities[0].Count != 3 {
		t.Fatalf("cities: %+v", cities)
	}
}
