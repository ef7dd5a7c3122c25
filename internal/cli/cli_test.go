package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/media/local"
	"pet-adoption/internal/router"
)

func newAPI(t *testing.T) string {
	t.Helper()

	store, err := local.NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Media: store}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPetctl_AdminWorkflow(t *testing.T) {
	url := newAPI(t)
	admin := []string{"--url", url, "--password", "admin123"}

	img := filepath.Join(t.TempDir(), "milo.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0o644))

	out, err := runCLI(t, append([]string{"pets", "add", "--name", "Milo", "--type", "dog", "--image", img, "--format", "json"}, admin...)...)
	require.NoError(t, err)
	var added struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, "Pet added successfully", added.Message)
	assert.Equal(t, int64(1), added.ID)

	out, err = runCLI(t, "--url", url, "pets", "list", "--type", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "Milo")
	assert.Contains(t, out, "ADOPTED")

	out, err = runCLI(t, "--url", url, "pets", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, url+"/uploads/milo.png")

	out, err = runCLI(t, "--url", url, "requests", "submit", "--pet-id", "1", "--name", "Ana", "--email", "ana@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Adoption request submitted successfully (id 1)")

	out, err = runCLI(t, append([]string{"requests", "list", "--status", "pending"}, admin...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Milo (#1)")
	assert.Contains(t, out, "pending")

	out, err = runCLI(t, append([]string{"requests", "approve", "1"}, admin...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Adoption request approved and pet marked as adopted")

	out, err = runCLI(t, "--url", url, "pets", "list", "--adopted", "true", "--format", "json")
	require.NoError(t, err)
	var adopted []struct {
		ID      int64 `json:"id"`
		Adopted bool  `json:"adopted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &adopted))
	require.Len(t, adopted, 1)
	assert.True(t, adopted[0].Adopted)

	_, err = runCLI(t, append([]string{"pets", "delete", "1"}, admin...)...)
	require.NoError(t, err)

	out, err = runCLI(t, append([]string{"requests", "list"}, admin...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "No adoption requests found")
}

func TestPetctl_Errors(t *testing.T) {
	url := newAPI(t)

	_, err := runCLI(t, "--url", url, "pets", "adopt", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin password required")

	_, err = runCLI(t, "--url", url, "--password", "wrong", "pets", "adopt", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, err = runCLI(t, "--url", url, "pets", "get", "abc")
	require.Error(t, err)

	_, err = runCLI(t, "--url", url, "pets", "get", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = runCLI(t, "--url", url, "--format", "yaml", "pets", "list")
	require.Error(t, err)

	_, err = runCLI(t, "--url", url, "pets", "list", "--adopted", "maybe")
	require.Error(t, err)
}
