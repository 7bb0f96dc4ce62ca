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
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "hotel_catalog/internal/adapters/http_server"
	redisad "hotel_catalog/internal/adapters/redis"
	"hotel_catalog/internal/app"
	"hotel_catalog/internal/convert"
	"hotel_catalog/internal/domain"
	mysqlrepo "hotel_catalog/internal/storage/mysql"
)

// ---------- helpers ----------
func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
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

// ---------- the test ----------
func TestHTTP_EndToEnd_Catalog(t *testing.T) {
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
			"MYSQL_DATABASE=catalog",
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
		"root", hostPort, "catalog")

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

	// Apply the real migrations
	applyMigrations(t, db)

	// In-process redis for the read-side cache
	mr := miniredis.RunT(t)

	repo := mysqlrepo.New(db)
	cache := redisad.New(mr.Addr(), "", 0)
	q := app.NewQueryService(repo, cache, 5*time.Minute)
	conv := app.NewConversionService(nil, convert.New(), repo, cache)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, C: conv})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// Seed one record through the repo
	ctx := context.Background()
	if err := repo.UpsertHotel(ctx, domain.CanonicalHotel{
		LocalName:    "Khách Sạn Hoa Sen",
		GlobalName:   "Khách Sạn Hoa Sen",
		Type:         domain.HotelTypeHotel,
		Address:      "5 Le Loi, Hue",
		Star:         "3",
		ServiceScope: "LOCAL",
		Area:         "Hue",
		KeyFeatures:  []string{},
		Code:         "KHÁCH_SẠN_HOA_SEN",
		Seasons:      []domain.Season{},
		Rooms:        []domain.Room{},
	}); err != nil {
		t.Fatalf("UpsertHotel: %v", err)
	}

	// GET /v1/hotels/{code}
	res, err := http.Get(ts.URL + "/v1/hotels/KH%C3%81CH_S%E1%BA%A0N_HOA_SEN")
	if err != nil {
		t.Fatalf("GET hotel: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET hotel status %d", res.StatusCode)
	}
	var got domain.CanonicalHotel
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode hotel: %v", err)
	}
	res.Body.Close()
	if got.Code != "KHÁCH_SẠN_HOA_SEN" || got.Type != domain.HotelTypeHotel {
		t.Fatalf("unexpected hotel: %+v", got)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag header")
	}

	// Conditional re-read must short-circuit with 304
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/hotels/KH%C3%81CH_S%E1%BA%A0N_HOA_SEN", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional GET status %d, want 304", res2.StatusCode)
	}

	// GET /v1/hotels list
	res3, err := http.Get(ts.URL + "/v1/hotels?q=Hoa")
	if err != nil {
		t.Fatalf("GET list: %v", err)
	}
	var page domain.HotelsPage
	if err := json.NewDecoder(res3.Body).Decode(&page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	res3.Body.Close()
	if len(page.Items) != 1 || page.Items[0].Code != "KHÁCH_SẠN_HOA_SEN" {
		t.Fatalf("unexpected list: %+v", page.Items)
	}

	// POST /v1/conversions runs the engine synchronously
	rawBody := `{
		"hotel_info": {"name": "Nhà Nghỉ Bình Minh", "address": "9 Hai Ba Trung", "rating": 2, "location": "Da Nang"},
		"room_types": [
			{"room_type": "Standard", "bed_type": "DBL", "room_size": "20 sqm",
			 "capacity": {"total": 2, "adults": 2, "children": 0}}
		],
		"inclusions": ["wifi"]
	}`
	res4, err := http.Post(ts.URL+"/v1/conversions", "application/json", strings.NewReader(rawBody))
	if err != nil {
		t.Fatalf("POST conversion: %v", err)
	}
	if res4.StatusCode != http.StatusOK {
		t.Fatalf("POST conversion status %d", res4.StatusCode)
	}
	var converted domain.CanonicalHotel
	if err := json.NewDecoder(res4.Body).Decode(&converted); err != nil {
		t.Fatalf("decode conversion: %v", err)
	}
	res4.Body.Close()
	if converted.Code != "NHÀ_NGHỈ_BÌNH_MINH" {
		t.Fatalf("converted code = %q", converted.Code)
	}
	if len(converted.Rooms) != 1 || converted.Rooms[0].BedTypes[0] != domain.BedDouble {
		t.Fatalf("converted rooms = %+v", converted.Rooms)
	}

	// Structurally broken record comes back as 422
	res5, err := http.Post(ts.URL+"/v1/conversions", "application/json",
		strings.NewReader(`{"hotel_info": {"address": "no name"}, "room_types": []}`))
	if err != nil {
		t.Fatalf("POST invalid conversion: %v", err)
	}
	res5.Body.Close()
	if res5.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid conversion status %d, want 422", res5.StatusCode)
	}
}
