package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/db"
)

func postTestEngine(api *API) *gin.Engine {
	r := gin.New()
	r.Use(api.WithUser())

	posts := r.Group("/posts")
	posts.GET("", api.ListPosts)
	posts.GET("/featured", api.ListFeaturedPosts)
	posts.GET("/:slug", api.GetPostBySlug)

	mutate := posts.Group("")
	mutate.Use(api.AuthRequired())
	mutate.POST("", api.CreatePost)
	mutate.PUT("/:id", api.UpdatePost)
	mutate.DELETE("/:id", api.DeletePost)

	return r
}

func TestPostCreateAndFetchBySlug(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := postTestEngine(api)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":     "Bahçe Düzenleme Rehberi",
		"content":   "# Heading\n\nSome **bold** advice.",
		"published": true,
	}, withAdminCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)["post"].(map[string]interface{})
	slug, _ := created["slug"].(string)
	if slug != "bahce-duzenleme-rehberi" {
		t.Fatalf("unexpected slug %q", slug)
	}

	w = doJSON(t, r, http.MethodGet, "/posts/"+slug, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	html, _ := body["html"].(string)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("markdown not rendered: %q", html)
	}

	w = doJSON(t, r, http.MethodGet, "/posts/no-such-slug", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPostMarkdownSanitized(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := postTestEngine(api)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"title":     "Injection",
		"content":   "hello <script>alert(1)</script> world",
		"published": true,
	}, withAdminCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	slug := decodeBody(t, w)["post"].(map[string]interface{})["slug"].(string)

	w = doJSON(t, r, http.MethodGet, "/posts/"+slug, nil, nil)
	html := decodeBody(t, w)["html"].(string)
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag survived sanitization: %q", html)
	}
}

func TestPostUpdateForbiddenForOtherAuthor(t *testing.T) {
	gdb := setupTestDB(t)
	api := newTestAPI(t, gdb)
	r := postTestEngine(api)

	other := db.User{Name: "Other", Email: "other@example.com", Password: "x", Role: db.RoleUser}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	post := db.Post{Title: "Theirs", Slug: "theirs", Content: "body", AuthorID: other.ID}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), gin.H{"title": "Mine now"}, withAdminCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != CodeForbidden {
		t.Fatalf("expected FORBIDDEN, got %q", code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil, withAdminCookie)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on delete, got %d", w.Code)
	}
}

func TestPostListDefaultsToPublished(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := postTestEngine(api)

	for _, p := range []gin.H{
		{"title": "Live", "content": "x", "published": true},
		{"title": "Draft", "content": "x", "published": false},
	} {
		w := doJSON(t, r, http.MethodPost, "/posts", p, withAdminCookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/posts", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	posts := body["posts"].([]interface{})
	if len(posts) != 1 {
		t.Fatalf("expected only the published post, got %d", len(posts))
	}
	pagination := body["pagination"].(map[string]interface{})
	if total := pagination["total"].(float64); total != 1 {
		t.Fatalf("expected total 1, got %v", total)
	}
}

func TestUploadWithoutStorage(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := gin.New()
	r.Use(api.WithUser())
	r.POST("/upload", api.AdminRequired(), api.UploadImage)

	w := doJSON(t, r, http.MethodPost, "/upload", nil, withAdminCookie)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without storage, got %d: %s", w.Code, w.Body.String())
	}
}
