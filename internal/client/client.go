// Package client es el cliente Go del API de adopciones. Lo usa petctl y
// sirve para integraciones; mantiene la cookie de sesión admin.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pet-adoption/internal/platform/httpclient"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)

type Pet struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Gender      string    `json:"gender"`
	Age         string    `json:"age"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Adopted     bool      `json:"adopted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdoptionRequest struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	PetID     int64     `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	Approved  bool      `json:"approved"`
	Rejected  bool      `json:"rejected"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetFilter: campos vacíos/nil no filtran.
type PetFilter struct {
	Type    string
	Adopted *bool
}

type NewPet struct {
	Name        string
	Type        string
	Breed       string
	Gender      string
	Age         string
	Description string

	// Imagen opcional; ImageName define la extensión aceptada por el server.
	ImageName string
	Image     io.Reader
}

type NewRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message,omitempty"`
	PetID    int64  `json:"pet_id"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("client: base url is required")
	}
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Login abre la sesión admin; la cookie queda en el jar del cliente.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return translate(c.http.DoJSON(ctx, http.MethodPost, "/login", nil, body, nil))
}

func (c *Client) Logout(ctx context.Context) error {
	return translate(c.http.DoJSON(ctx, http.MethodPost, "/logout", nil, nil, nil))
}

// AsAdmin vuelve a iniciar sesión antes de fn: la sesión pudo expirar o
// haberse cerrado desde otro lado.
func (c *Client) AsAdmin(ctx context.Context, username, password string, fn func(ctx context.Context, c *Client) error) error {
	if err := c.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return fn(ctx, c)
}

// ResolveImageURL convierte un image_url relativo ("/uploads/x.png") en
// absoluto contra la URL base del API. "" si no hay imagen.
func (c *Client) ResolveImageURL(imageURL *string) string {
	if imageURL == nil || *imageURL == "" {
		return ""
	}
	abs, err := c.http.ResolveURL(*imageURL)
	if err != nil {
		return *imageURL
	}
	return abs
}

func (c *Client) ListPets(ctx context.Context, f PetFilter) ([]Pet, error) {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Adopted != nil {
		q.Set("adopted", strconv.FormatBool(*f.Adopted))
	}

	path := "/pets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id int64) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, petPath(id), nil, nil, &out); err != nil {
		return Pet{}, translate(err)
	}
	return out, nil
}

// CreatePet envía multipart si hay imagen y JSON si no. Devuelve el id.
func (c *Client) CreatePet(ctx context.Context, p NewPet) (int64, error) {
	var resp messageResponse

	if p.Image != nil {
		fields := map[string]string{
			"name":        p.Name,
			"type":        p.Type,
			"breed":       p.Breed,
			"gender":      p.Gender,
			"age":         p.Age,
			"description": p.Description,
		}
		file := &httpclient.FilePart{Field: "image", Filename: p.ImageName, Body: p.Image}
		if err := c.http.DoMultipart(ctx, http.MethodPost, "/pets", fields, file, &resp); err != nil {
			return 0, translate(err)
		}
		return resp.ID, nil
	}

	body := map[string]string{
		"name":        p.Name,
		"type":        p.Type,
		"breed":       p.Breed,
		"gender":      p.Gender,
		"age":         p.Age,
		"description": p.Description,
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", nil, body, &resp); err != nil {
		return 0, translate(err)
	}
	return resp.ID, nil
}

func (c *Client) MarkAdopted(ctx context.Context, id int64) error {
	return translate(c.http.DoJSON(ctx, http.MethodPatch, petPath(id)+"/adopted", nil, nil, nil))
}

func (c *Client) DeletePet(ctx context.Context, id int64) error {
	return translate(c.http.DoJSON(ctx, http.MethodDelete, petPath(id), nil, nil, nil))
}

func (c *Client) SubmitRequest(ctx context.Context, in NewRequest) (int64, error) {
	var resp messageResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/adoption-requests", nil, in, &resp); err != nil {
		return 0, translate(err)
	}
	return resp.ID, nil
}

// ListRequests requiere sesión admin. status vacío lista todas.
func (c *Client) ListRequests(ctx context.Context, status string) ([]AdoptionRequest, error) {
	path := "/adoption-requests"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}

	var out []AdoptionRequest
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (c *Client) ApproveRequest(ctx context.Context, id int64) error {
	return translate(c.http.DoJSON(ctx, http.MethodPatch, requestPath(id)+"/approve", nil, nil, nil))
}

func (c *Client) RejectRequest(ctx context.Context, id int64) error {
	return translate(c.http.DoJSON(ctx, http.MethodPatch, requestPath(id)+"/reject", nil, nil, nil))
}

func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return translate(c.http.DoJSON(ctx, http.MethodDelete, requestPath(id), nil, nil, nil))
}

func petPath(id int64) string {
	return "/pets/" + strconv.FormatInt(id, 10)
}

func requestPath(id int64) string {
	return "/adoption-requests/" + strconv.FormatInt(id, 10)
}

// translate mapea los status del API a errores comparables con errors.Is.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return err
	}

	msg := he.Message()
	if msg == "" {
		msg = http.StatusText(he.StatusCode)
	}

	switch he.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return err
	}
}
