package client_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/media/local"
	"pet-adoption/internal/client"
	"pet-adoption/internal/router"
)

func newClient(t *testing.T) (*client.Client, string) {
	t.Helper()

	store, err := local.NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Media: store}))
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, 5*time.Second)
	require.NoError(t, err)
	return c, ts.URL
}

func TestClient_AdminFlow(t *testing.T) {
	c, baseURL := newClient(t)
	ctx := context.Background()

	// Sin sesión
	_, err := c.CreatePet(ctx, client.NewPet{Name: "Milo", Type: "dog"})
	require.ErrorIs(t, err, client.ErrUnauthorized)

	require.NoError(t, c.Login(ctx, "admin", "admin123"))

	miloID, err := c.CreatePet(ctx, client.NewPet{
		Name:      "Milo",
		Type:      "dog",
		Age:       "2 years",
		ImageName: "milo.jpg",
		Image:     strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	lunaID, err := c.CreatePet(ctx, client.NewPet{Name: "Luna", Type: "cat"})
	require.NoError(t, err)

	milo, err := c.GetPet(ctx, miloID)
	require.NoError(t, err)
	require.NotNil(t, milo.ImageURL)
	assert.Equal(t, baseURL+"/uploads/milo.jpg", *milo.ImageURL)
	assert.Equal(t, "2 years", milo.Age)

	cats, err := c.ListPets(ctx, client.PetFilter{Type: "cat"})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, lunaID, cats[0].ID)

	reqID, err := c.SubmitRequest(ctx, client.NewRequest{
		UserName: "Ana",
		Email:    "ana@example.com",
		PetID:    lunaID,
	})
	require.NoError(t, err)

	pending, err := c.ListRequests(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Luna", pending[0].PetName)

	require.NoError(t, c.ApproveRequest(ctx, reqID))

	adopted := true
	adoptedPets, err := c.ListPets(ctx, client.PetFilter{Adopted: &adopted})
	require.NoError(t, err)
	require.Len(t, adoptedPets, 1)
	assert.Equal(t, lunaID, adoptedPets[0].ID)

	require.NoError(t, c.RejectRequest(ctx, reqID))
	items, err := c.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rejected", items[0].Status)
	assert.False(t, items[0].Approved)

	require.NoError(t, c.MarkAdopted(ctx, miloID))
	require.NoError(t, c.DeleteRequest(ctx, reqID))
	require.NoError(t, c.DeletePet(ctx, miloID))

	_, err = c.GetPet(ctx, miloID)
	require.ErrorIs(t, err, client.ErrNotFound)

	require.NoError(t, c.Logout(ctx))
	_, err = c.ListRequests(ctx, "")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestClient_Errors(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	err := c.Login(ctx, "admin", "nope")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, err = c.SubmitRequest(ctx, client.NewRequest{UserName: "Ana", Email: "ana@example.com", PetID: 42})
	require.ErrorIs(t, err, client.ErrNotFound)

	_, err = c.SubmitRequest(ctx, client.NewRequest{UserName: "Ana", PetID: 42})
	require.ErrorIs(t, err, client.ErrBadRequest)

	_, err = client.New("", time.Second)
	require.Error(t, err)
}

func TestClient_ResolveImageURL(t *testing.T) {
	c, err := client.New("http://pets.example:5000/", time.Second)
	require.NoError(t, err)

	rel := "/uploads/milo.png"
	abs := "https://cdn.example/milo.png"
	empty := ""

	assert.Equal(t, "http://pets.example:5000/uploads/milo.png", c.ResolveImageURL(&rel))
	assert.Equal(t, abs, c.ResolveImageURL(&abs))
	assert.Equal(t, "", c.ResolveImageURL(&empty))
	assert.Equal(t, "", c.ResolveImageURL(nil))
}

func TestClient_AsAdmin(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	called := false
	err := c.AsAdmin(ctx, "admin", "bad", func(ctx context.Context, c *client.Client) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, called)

	var items []client.AdoptionRequest
	err = c.AsAdmin(ctx, "admin", "admin123", func(ctx context.Context, c *client.Client) error {
		var err error
		items, err = c.ListRequests(ctx, "")
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}
