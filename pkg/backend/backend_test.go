package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/esportlab/elab/pkg/api"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/credential"
	"github.com/esportlab/elab/pkg/db"
	"github.com/esportlab/elab/pkg/db/migrate"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/esportlab/elab/pkg/schedule"
	"github.com/matryer/is"
)

func testBackend(t *testing.T, handler http.Handler) *Backend {
	t.Helper()
	ctx := context.TODO()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dataPath := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DataPath = dataPath
	cfg.API.BaseURL = srv.URL
	cfg.API.MaxRetries = 0

	database, err := db.Open(ctx, cfg.DB.Driver, filepath.Join(dataPath, "elab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() }) // nolint: errcheck
	if err := migrate.Migrate(ctx, database); err != nil {
		t.Fatal(err)
	}

	creds := credential.NewFileStore(dataPath)
	if err := creds.Write("test-token"); err != nil {
		t.Fatal(err)
	}

	client := api.NewClient(cfg, creds, nil)
	b, err := New(ctx, cfg, client, creds, database)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

const overviewBody = `{"teamId":3,"teamName":"Alpha","members":[{"memberId":1,"displayName":"kai","availabilities":[],"stats":{}}]}`

func TestOverviewCaching(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	var calls atomic.Int32
	b := testBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(overviewBody)) // nolint: errcheck
	}))

	win := schedule.CurrentWeek(time.Now())
	o, err := b.Overview(ctx, 3, win)
	is.NoErr(err)
	is.Equal(o.TeamName, "Alpha")

	_, err = b.Overview(ctx, 3, win)
	is.NoErr(err)
	is.Equal(calls.Load(), int32(1))

	// A different week is a different key.
	_, err = b.Overview(ctx, 3, win.Shift(schedule.Next))
	is.NoErr(err)
	is.Equal(calls.Load(), int32(2))
}

func TestMutationInvalidatesOverview(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	var gets atomic.Int32
	b := testBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
			w.Write([]byte(overviewBody)) // nolint: errcheck
			return
		}
		w.Write([]byte(`{"id":9}`)) // nolint: errcheck
	}))

	win := schedule.CurrentWeek(time.Now())
	_, err := b.Overview(ctx, 3, win)
	is.NoErr(err)

	_, err = b.CreateSlot(ctx, proto.UpsertSlotOptions{})
	is.NoErr(err)

	_, err = b.Overview(ctx, 3, win)
	is.NoErr(err)
	is.Equal(gets.Load(), int32(2))
}

func TestOverviewSnapshotFallback(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	var fail atomic.Bool
	b := testBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(overviewBody)) // nolint: errcheck
	}))

	win := schedule.CurrentWeek(time.Now())
	_, err := b.Overview(ctx, 3, win)
	is.NoErr(err)

	// Backend goes away; the dropped cache entry forces a fetch that fails
	// over to the stored snapshot.
	fail.Store(true)
	b.cache.Invalidate(ctx, tagAvailability)

	o, err := b.Overview(ctx, 3, win)
	is.NoErr(err)
	is.Equal(o.TeamName, "Alpha")
}

func TestSelectedTeamRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	b := testBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	id, err := b.SelectedTeam(ctx)
	is.NoErr(err)
	is.Equal(id, int64(0))

	is.NoErr(b.SetSelectedTeam(ctx, 7))
	is.NoErr(b.SetSelectedTeam(ctx, 8))

	id, err = b.SelectedTeam(ctx)
	is.NoErr(err)
	is.Equal(id, int64(8))

	is.NoErr(b.ClearSelectedTeam(ctx))
	id, err = b.SelectedTeam(ctx)
	is.NoErr(err)
	is.Equal(id, int64(0))
}
