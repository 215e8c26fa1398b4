package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"storefront/cache"
	"storefront/logger"
	"storefront/models"

	"github.com/go-resty/resty/v2"
)

// Session carries the caller's credentials to the upstream API.
type Session struct {
	Cookie        string // forwarded verbatim
	Authorization string
	RequestID     string
	UserID        string
	Role          models.Role
}

// Client is the typed API layer. Queries are read through the cache, mutations invalidate tags.
type Client struct {
	http  *resty.Client
	cache *cache.QueryCache

	Auth        *AuthService
	Courses     *CourseService
	Modules     *ModuleService
	Videos      *VideoService
	Users       *UserService
	Enrollments *EnrollmentService
	Stats       *StatsService
}

func New(baseURL string, timeout time.Duration, qc *cache.QueryCache) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	c := &Client{http: rc, cache: qc}
	c.Auth = &AuthService{c: c}
	c.Courses = &CourseService{c: c}
	c.Modules = &ModuleService{c: c}
	c.Videos = &VideoService{c: c}
	c.Users = &UserService{c: c}
	c.Enrollments = &EnrollmentService{c: c}
	c.Stats = &StatsService{c: c}
	return c
}

// Cache exposes the query cache so callers can invalidate after side effects.
func (c *Client) Cache() *cache.QueryCache {
	return c.cache
}

// File is an upload forwarded as a multipart part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Reader      io.Reader
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func (c *Client) request(ctx context.Context, s Session) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if s.Cookie != "" {
		r.SetHeader("Cookie", s.Cookie)
	}
	if s.Authorization != "" {
		r.SetHeader("Authorization", s.Authorization)
	}
	if s.RequestID != "" {
		r.SetHeader("X-Request-ID", s.RequestID)
	}
	return r
}

// call executes the request and decodes the data field of the envelope into out.
func (c *Client) call(r *resty.Request, method, path string, out interface{}) (*resty.Response, error) {
	resp, err := r.Execute(method, path)
	if err != nil {
		logger.Log.Warn("api request failed", "method", method, "path", path, "error", err)
		return resp, fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}

	var env envelope
	body := resp.Body()
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil && resp.IsSuccess() {
			return resp, fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}

	if resp.IsError() {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		logger.Log.Debug("api rejected request", "method", method, "path", path, "status", resp.StatusCode(), "message", msg)
		return resp, &Error{Status: resp.StatusCode(), Message: msg, Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp, fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return resp, nil
}

// get runs a cached GET.
func get[T any](ctx context.Context, c *Client, s Session, path string, query url.Values, scope string, tags []string) (T, error) {
	key := cache.Key(http.MethodGet, path, query.Encode(), scope)
	return cache.Fetch(ctx, c.cache, key, tags, func(ctx context.Context) (T, error) {
		var out T
		r := c.request(ctx, s)
		if len(query) > 0 {
			r.SetQueryParamsFromValues(query)
		}
		_, err := c.call(r, http.MethodGet, path, &out)
		return out, err
	})
}

// mutate sends body as JSON, or as multipart when files are present, then invalidates tags on success.
func mutate[T any](ctx context.Context, c *Client, s Session, method, path string, body interface{}, files []File, tags ...string) (T, *resty.Response, error) {
	var out T
	r := c.request(ctx, s)
	if len(files) > 0 {
		r.SetFormData(formFields(body))
		for _, f := range files {
			r.SetMultipartField(f.Field, f.Name, f.ContentType, f.Reader)
		}
	} else if body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := c.call(r, method, path, &out)
	if err != nil {
		return out, resp, err
	}
	c.cache.Invalidate(ctx, tags...)
	return out, resp, nil
}

// formFields flattens a body for multipart submission.
func formFields(body interface{}) map[string]string {
	if body == nil {
		return nil
	}
	if f, ok := body.(interface{ FormFields() map[string]string }); ok {
		return f.FormFields()
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			out[k] = t
		case nil:
		default:
			enc, _ := json.Marshal(t)
			out[k] = string(enc)
		}
	}
	return out
}

// personal scopes cache keys to one user.
func personal(s Session) string {
	return "user:" + s.UserID
}

// shared scopes cache keys to a role; role-filtered API lists differ per role.
func shared(s Session) string {
	return "role:" + string(s.Role)
}
