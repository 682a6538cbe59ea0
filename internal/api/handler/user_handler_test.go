package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/admindesk/user-service/internal/core/domain"
	"github.com/admindesk/user-service/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) { return s.listFn(ctx) }

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) SeedAdmin(context.Context, ports.SeedAdminInput) error { return nil }

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u-1", Email: "a@example.com", PasswordHash: "secret-hash"},
				{ID: "u-2", Email: "b@example.com", PasswordHash: "secret-hash"},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked in list response")
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" || input.Password != "pw" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if len(input.Access) != 1 || input.Access[0] != "editor" {
				t.Fatalf("unexpected access: %v", input.Access)
			}
			return &domain.User{ID: "u-1", Name: input.Name, Email: input.Email, Access: input.Access}, nil
		},
	}
	h := NewUserHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"pw","access":["editor"],"comment":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Invalid(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	cases := []string{
		`{"email":"a@example.com","password":"pw"}`, // missing name
		`{"name":"A","password":"pw"}`,              // missing email
		`{"name":"A","email":"not-an-email","password":"pw"}`,
		`{"name":"A","email":"a@example.com"}`, // missing password
		`not-json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400 error, got %v", body, err)
		}
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"A","email":"a@example.com","password":"pw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestUserHandler_Update_PartialBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if id != "u-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Comment == nil || *input.Comment != "new comment" {
				t.Fatalf("comment not carried: %+v", input)
			}
			if input.Name != nil || input.Email != nil || input.Access != nil || input.Password != "" {
				t.Fatalf("absent fields must stay nil/empty: %+v", input)
			}
			return &domain.User{ID: id, Comment: *input.Comment}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/users/u-1", strings.NewReader(`{"comment":"new comment"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "gone@example.com", PasswordHash: "secret-hash"}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/u-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gone@example.com") {
		t.Fatalf("expected the removed record in the body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked in delete response")
	}
}
