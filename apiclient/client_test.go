package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"storefront/cache"
	"storefront/models"
	"storefront/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, cache.NewQueryCache(cache.NewMemoryStore(), time.Minute))
}

func TestListCoursesIsCachedUntilMutation(t *testing.T) {
	var listCalls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/courses":
			atomic.AddInt32(&listCalls, 1)
			assert.Equal(t, "go", r.URL.Query().Get("search"))
			writeJSON(w, 200, map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"items":      []map[string]interface{}{{"id": "c1", "name": "Go 101", "finalPrice": 10}},
					"pagination": map[string]interface{}{"page": 1, "limit": 10, "total": 1, "totalPages": 1},
				},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/courses/c1":
			writeJSON(w, 200, map[string]interface{}{"success": true, "message": "deleted"})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	s := Session{Role: models.RoleAdmin}
	q := url.Values{"search": {"go"}}

	page, err := client.Courses.List(ctx, s, q)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 10.0, page.Items[0].FinalPrice)

	_, err = client.Courses.List(ctx, s, q)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&listCalls))

	require.NoError(t, client.Courses.Delete(ctx, s, "c1"))
	_, err = client.Courses.List(ctx, s, q)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listCalls))
}

func TestCourseDetailIsCachedPerUser(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/courses/slug/go-101", r.URL.Path)
		video := map[string]interface{}{"id": "v1", "title": "Intro"}
		if r.Header.Get("Authorization") == "Bearer enrolled" {
			video["videoUrl"] = "https://cdn.example.com/v1.mp4"
		}
		writeJSON(w, 200, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":      "c1",
				"modules": []map[string]interface{}{{"id": "m1", "videos": []interface{}{video}}},
			},
		})
	})

	ctx := context.Background()
	visitor := Session{UserID: "s1", Role: models.RoleStudent, Authorization: "Bearer visitor"}
	enrolled := Session{UserID: "s2", Role: models.RoleStudent, Authorization: "Bearer enrolled"}

	first, err := client.Courses.BySlug(ctx, visitor, "go-101")
	require.NoError(t, err)
	assert.Empty(t, first.Modules[0].Videos[0].VideoURL)

	second, err := client.Courses.BySlug(ctx, enrolled, "go-101")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v1.mp4", second.Modules[0].Videos[0].VideoURL)

	_, err = client.Courses.BySlug(ctx, visitor, "go-101")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestErrorsCarryStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, map[string]interface{}{"success": false, "message": "Too many requests"})
	})

	err := client.Auth.ForgotPassword(context.Background(), Session{}, "a@b.co")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusTooManyRequests))
	assert.Equal(t, "Too many requests", MessageOf(err))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(err))
}

func TestErrorWithoutBodyUsesStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := client.Videos.Create(context.Background(), Session{}, "m1", VideoInput{Title: "Intro", Duration: 60, VideoNumber: 1, ExternalURL: "https://v.example/1"}, nil)
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.Equal(t, "Conflict", MessageOf(err))
}

func TestJWTExpiredDetection(t *testing.T) {
	assert.True(t, IsJWTExpired(&Error{Status: 401, Message: "jwt expired"}))
	assert.True(t, IsJWTExpired(errors.New("JWT Expired")))
	assert.False(t, IsJWTExpired(&Error{Status: 401, Message: "invalid signature"}))
	assert.False(t, IsJWTExpired(nil))
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second, nil)
	_, err := client.Courses.BySlug(context.Background(), Session{}, "go")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestSessionHeadersAreForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "accessToken=abc", r.Header.Get("Cookie"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		writeJSON(w, 200, map[string]interface{}{"success": true, "data": map[string]interface{}{"id": "u1", "role": "STUDENT"}})
	})

	me, err := client.Auth.Me(context.Background(), Session{Cookie: "accessToken=abc", RequestID: "req-1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, me.Role)
}

func TestLoginReturnsSetCookies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ana@example.com", in.Email)
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "t1", HttpOnly: true})
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "t2", HttpOnly: true})
		writeJSON(w, 200, map[string]interface{}{"success": true, "data": map[string]interface{}{"id": "u1", "role": "INSTRUCTOR"}})
	})

	res, err := client.Auth.Login(context.Background(), Session{}, LoginInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, res.User.Role)
	assert.Len(t, res.SetCookies, 2)
}

func TestCreateCourseMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Go 101", r.FormValue("name"))
		assert.Equal(t, "PAID", r.FormValue("type"))
		assert.Equal(t, "19.99", r.FormValue("price"))
		assert.Equal(t, "go,backend", r.FormValue("tags"))

		f, hdr, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "thumb.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(b))

		writeJSON(w, 201, map[string]interface{}{"success": true, "data": map[string]interface{}{"id": "c9", "thumbnail": "https://cdn.example/thumb.png"}})
	})

	out, err := client.Courses.Create(context.Background(), Session{}, CourseInput{
		Name: "Go 101", Description: "Learn Go", Type: course.TypePaid, Price: 19.99, Tags: []string{"go", "backend"},
	}, []File{{Field: "thumbnail", Name: "thumb.png", ContentType: "image/png", Reader: strings.NewReader("png-bytes")}})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/thumb.png", out.Thumbnail)
}

func TestCreateModuleJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1/modules", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		var in ModuleInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 2, in.ModuleNumber)
		writeJSON(w, 201, map[string]interface{}{"success": true, "data": map[string]interface{}{"id": "m2", "moduleNumber": 2}})
	})

	m, err := client.Modules.Create(context.Background(), Session{}, "c1", ModuleInput{Title: "Basics", ModuleNumber: 2})
	require.NoError(t, err)
	assert.Equal(t, "m2", m.ID)
}

func TestStatsRangeQuery(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, from.Format(time.RFC3339), r.URL.Query().Get("from"))
		assert.Equal(t, to.Format(time.RFC3339), r.URL.Query().Get("to"))
		writeJSON(w, 200, map[string]interface{}{"success": true, "data": map[string]interface{}{"totalUsers": 42}})
	})

	st, err := client.Stats.Admin(context.Background(), Session{Role: models.RoleAdmin}, Range{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, int64(42), st.TotalUsers)
}

func TestFormFieldsFallback(t *testing.T) {
	fields := formFields(map[string]interface{}{"a": "x", "n": 3, "skip": nil})
	assert.Equal(t, map[string]string{"a": "x", "n": "3"}, fields)
	assert.Nil(t, formFields(nil))
}
