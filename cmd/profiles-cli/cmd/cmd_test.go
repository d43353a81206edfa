package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/nfrund/househarmony/internal/profileapi/profileapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const avatar1 = "https://github.com/shadcn.png"

func newAPI(t *testing.T, seed ...domain.Draft) *profileapitest.Server {
	t.Helper()
	srv := profileapitest.NewServer()
	t.Cleanup(srv.Close)
	srv.Seed(seed...)
	return srv
}

// run executes the CLI against api with the given stdin and returns stdout.
func run(t *testing.T, api *profileapitest.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--api-url", api.URL}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	out, err := run(t, api, "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Default")
}

func TestList_JSON(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	out, err := run(t, api, "", "list", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Profiles []domain.Profile `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []domain.Profile{{ID: 1, Name: "Ana", Icon: domain.DefaultIcon}}, got.Profiles)
}

func TestList_ServiceFailure(t *testing.T) {
	api := newAPI(t)
	api.FailWith("list", http.StatusInternalServerError)

	_, err := run(t, api, "", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestUnsupportedFormat(t *testing.T) {
	api := newAPI(t)

	_, err := run(t, api, "", "list", "--format", "yaml")

	require.Error(t, err)
	assert.Equal(t, 0, api.Requests("list"))
}

func TestCreate(t *testing.T) {
	api := newAPI(t)

	out, err := run(t, api, "", "create", "--name", "Luis", "--icon", avatar1)

	require.NoError(t, err)
	assert.Contains(t, out, "Luis")
	assert.Equal(t, []domain.Profile{{ID: 1, Name: "Luis", Icon: avatar1}}, api.Profiles())
}

func TestCreate_DefaultIcon(t *testing.T) {
	api := newAPI(t)

	_, err := run(t, api, "", "create", "--name", "Ana")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIcon, api.Profiles()[0].Icon)
}

func TestCreate_ValidatesBeforeCalling(t *testing.T) {
	api := newAPI(t)

	_, err := run(t, api, "", "create")
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = run(t, api, "", "create", "--name", "Ana", "--icon", "https://example.com/x.png")
	assert.ErrorIs(t, err, domain.ErrInvalidIcon)

	assert.Equal(t, 0, api.Requests("create"))
}

func TestUpdate_KeepsUnsetFields(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: avatar1})

	_, err := run(t, api, "", "update", "1", "--name", "Ana María")

	require.NoError(t, err)
	assert.Equal(t, []domain.Profile{{ID: 1, Name: "Ana María", Icon: avatar1}}, api.Profiles())
}

func TestUpdate_Errors(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	_, err := run(t, api, "", "update", "1")
	assert.Error(t, err, "no flags")

	_, err = run(t, api, "", "update", "abc", "--name", "x")
	assert.Error(t, err, "bad id")

	_, err = run(t, api, "", "update", "9", "--name", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, api.Requests("update"))
}

func TestDelete_Confirmed(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	out, err := run(t, api, "y\n", "delete", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "cannot be undone")
	assert.Contains(t, out, "Deleted profile 1")
	assert.Empty(t, api.Profiles())
}

func TestDelete_Aborted(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	out, err := run(t, api, "n\n", "delete", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.Len(t, api.Profiles(), 1)
	assert.Equal(t, 0, api.Requests("delete"))
}

func TestDelete_Yes(t *testing.T) {
	api := newAPI(t, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})

	_, err := run(t, api, "", "delete", "1", "--yes")

	require.NoError(t, err)
	assert.Empty(t, api.Profiles())
}

func TestDelete_UnknownIDFailsRequest(t *testing.T) {
	api := newAPI(t)

	_, err := run(t, api, "", "delete", "5", "--yes")

	var reqErr *profileapi.RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}

func TestIconsAndVersion(t *testing.T) {
	api := newAPI(t)

	out, err := run(t, api, "", "icons")
	require.NoError(t, err)
	assert.Contains(t, out, "Avatar 2")

	out, err = run(t, api, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "profiles-cli v"+version+"\n", out)
}
