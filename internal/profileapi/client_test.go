package profileapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/nfrund/househarmony/internal/profileapi/profileapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*profileapi.Client, *profileapitest.Server) {
	t.Helper()
	srv := profileapitest.NewServer()
	t.Cleanup(srv.Close)
	return profileapi.NewClient(srv.URL), srv
}

func TestClient_CreateThenList(t *testing.T) {
	ctx := context.Background()
	client, _ := newClient(t)

	created, err := client.Create(ctx, domain.Draft{Name: "Ana", Icon: "/placeholder.svg"})
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{ID: 1, Name: "Ana", Icon: "/placeholder.svg"}, created)

	profiles, err := client.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, profiles, created)
}

func TestClient_UpdateThenList(t *testing.T) {
	ctx := context.Background()
	client, srv := newClient(t)
	seeded := srv.Seed(domain.Draft{Name: "Ana", Icon: domain.DefaultIcon}, domain.Draft{Name: "Luis", Icon: domain.DefaultIcon})

	patch := domain.Draft{Name: "Ana Maria", Icon: "https://github.com/shadcn.png"}
	updated, err := client.Update(ctx, seeded[0].ID, patch)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].ID, updated.ID)
	assert.Equal(t, patch, updated.Draft())

	profiles, err := client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Profile{updated, seeded[1]}, profiles)
}

func TestClient_DeleteThenList(t *testing.T) {
	ctx := context.Background()
	client, srv := newClient(t)
	seeded := srv.Seed(domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	require.NoError(t, client.Delete(ctx, seeded[0].ID))

	profiles, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NotNil(t, profiles, "an empty list decodes to an empty slice")
}

func TestClient_DeleteUnknownID(t *testing.T) {
	client, _ := newClient(t)

	err := client.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)

	var rf *profileapi.RequestFailedError
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, "delete", rf.Op)
	assert.Equal(t, http.StatusNotFound, rf.StatusCode)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	ctx := context.Background()
	client, srv := newClient(t)
	seeded := srv.Seed(domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	for _, op := range []string{"list", "create", "update", "delete"} {
		srv.FailWith(op, http.StatusInternalServerError)
	}

	_, err := client.List(ctx)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	_, err = client.Create(ctx, domain.Draft{Name: "Luis", Icon: domain.DefaultIcon})
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	_, err = client.Update(ctx, seeded[0].ID, domain.Draft{Name: "X", Icon: domain.DefaultIcon})
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	err = client.Delete(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)

	assert.Equal(t, []domain.Profile{seeded[0]}, srv.Profiles(), "failed calls leave the service untouched")
	assert.Equal(t, 1, srv.Requests("create"), "no retry on failure")
}

func TestClient_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := profileapi.NewClient(url).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)

	var rf *profileapi.RequestFailedError
	require.True(t, errors.As(err, &rf))
	assert.Zero(t, rf.StatusCode)
}

func TestClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "not-a-list"`))
	}))
	t.Cleanup(srv.Close)

	_, err := profileapi.NewClient(srv.URL).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_WireFormat(t *testing.T) {
	type seen struct {
		method, path, contentType string
		body                      map[string]any
	}
	var got []seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &s.body))
		}
		got = append(got, s)

		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_, _ = w.Write([]byte(`{"id":5,"name":"Ana","icon":"/placeholder.svg"}`))
		}
	}))
	t.Cleanup(srv.Close)

	client := profileapi.NewClient(srv.URL + "/")
	ctx := context.Background()
	draft := domain.Draft{Name: "Ana", Icon: "/placeholder.svg"}

	_, err := client.Create(ctx, draft)
	require.NoError(t, err)
	_, err = client.Update(ctx, 5, draft)
	require.NoError(t, err)
	require.NoError(t, client.Delete(ctx, 5))

	require.Len(t, got, 3)
	assert.Equal(t, http.MethodPost, got[0].method)
	assert.Equal(t, "/api/profiles", got[0].path)
	assert.Equal(t, "application/json", got[0].contentType)
	assert.Equal(t, map[string]any{"name": "Ana", "icon": "/placeholder.svg"}, got[0].body, "create body carries no id")

	assert.Equal(t, http.MethodPut, got[1].method)
	assert.Equal(t, "/api/profiles/5", got[1].path)
	assert.NotContains(t, got[1].body, "id")

	assert.Equal(t, http.MethodDelete, got[2].method)
	assert.Equal(t, "/api/profiles/5", got[2].path)
	assert.Nil(t, got[2].body)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", profileapi.NewClient("").BaseURL())
}

func TestRequestFailedError_Message(t *testing.T) {
	err := &profileapi.RequestFailedError{Op: "list", StatusCode: 503}
	assert.Equal(t, "list profile: unexpected status 503", err.Error())
}
