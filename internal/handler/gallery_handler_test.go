package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func galleryTestEngine(api *API) *gin.Engine {
	r := gin.New()
	r.Use(api.WithUser())

	galleries := r.Group("/galleries")
	galleries.GET("", api.ListGalleries)
	galleries.GET("/:id", api.GetGallery)

	admin := galleries.Group("")
	admin.Use(api.AdminRequired())
	admin.POST("", api.CreateGallery)
	admin.PUT("/order", api.UpdateGalleryOrder)
	admin.PUT("/:id", api.UpdateGallery)
	admin.DELETE("/:id", api.DeleteGallery)
	admin.POST("/:id/images", api.AddGalleryImage)

	images := r.Group("/gallery-images")
	images.Use(api.AdminRequired())
	images.DELETE("/:id", api.RemoveGalleryImage)
	images.PUT("/order", api.UpdateGalleryImageOrder)

	return r
}

func TestGalleryCRUDOverHTTP(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := galleryTestEngine(api)

	w := doJSON(t, r, http.MethodPost, "/galleries", gin.H{
		"title":       "Spring Projects",
		"description": "Season opener",
		"images": []gin.H{
			{"url": "https://cdn.example.com/a.jpg", "alt": "before"},
			{"url": "https://cdn.example.com/b.jpg", "alt": "after"},
		},
	}, withAdminCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)["gallery"].(map[string]interface{})
	id := uint(created["id"].(float64))
	if imgs := created["images"].([]interface{}); len(imgs) != 2 {
		t.Fatalf("expected 2 nested images, got %d", len(imgs))
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/galleries/%d", id), nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/galleries/%d", id), gin.H{"title": "Spring Gallery"}, withAdminCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)["gallery"].(map[string]interface{})
	if updated["title"] != "Spring Gallery" {
		t.Fatalf("title not updated: %v", updated["title"])
	}
	if updated["description"] != "Season opener" {
		t.Fatalf("partial update clobbered description: %v", updated["description"])
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/galleries/%d", id), nil, withAdminCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/galleries/%d", id), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGalleryPublicListHidesDrafts(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := galleryTestEngine(api)

	published := false
	for _, g := range []gin.H{
		{"title": "Visible"},
		{"title": "Draft", "published": &published},
	} {
		w := doJSON(t, r, http.MethodPost, "/galleries", g, withAdminCookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/galleries", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	list := decodeBody(t, w)["galleries"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected 1 published gallery, got %d", len(list))
	}
	if title := list[0].(map[string]interface{})["title"]; title != "Visible" {
		t.Fatalf("unexpected gallery in public list: %v", title)
	}
}

func TestGalleryMutationRequiresAdmin(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := galleryTestEngine(api)

	w := doJSON(t, r, http.MethodPost, "/galleries", gin.H{"title": "Nope"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous create, got %d", w.Code)
	}
	if code := errorCode(t, w); code != CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %q", code)
	}
}

func TestGalleryOrderEndpoint(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := galleryTestEngine(api)

	ids := make([]uint, 0, 2)
	for _, title := range []string{"First", "Second"} {
		w := doJSON(t, r, http.MethodPost, "/galleries", gin.H{"title": title}, withAdminCookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d", w.Code)
		}
		g := decodeBody(t, w)["gallery"].(map[string]interface{})
		ids = append(ids, uint(g["id"].(float64)))
	}

	w := doJSON(t, r, http.MethodPut, "/galleries/order", gin.H{
		"items": []gin.H{
			{"id": ids[0], "order": 2},
			{"id": ids[1], "order": 1},
		},
	}, withAdminCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// a batch naming a missing row fails as a whole
	w = doJSON(t, r, http.MethodPut, "/galleries/order", gin.H{
		"items": []gin.H{
			{"id": ids[0], "order": 5},
			{"id": 9999, "order": 6},
		},
	}, withAdminCookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing order target, got %d", w.Code)
	}

	// empty batches are rejected at binding
	w = doJSON(t, r, http.MethodPut, "/galleries/order", gin.H{"items": []gin.H{}}, withAdminCookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", w.Code)
	}
}

func TestGalleryImageAddRemove(t *testing.T) {
	api := newTestAPI(t, setupTestDB(t))
	r := galleryTestEngine(api)

	w := doJSON(t, r, http.MethodPost, "/galleries", gin.H{"title": "Photos"}, withAdminCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d", w.Code)
	}
	g := decodeBody(t, w)["gallery"].(map[string]interface{})
	galleryID := uint(g["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/galleries/%d/images", galleryID), gin.H{
		"url": "https://cdn.example.com/new.jpg",
		"alt": "patio",
	}, withAdminCookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	img := decodeBody(t, w)["image"].(map[string]interface{})
	imageID := uint(img["id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/gallery-images/%d", imageID), nil, withAdminCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/gallery-images/%d", imageID), nil, withAdminCookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for already-removed image, got %d", w.Code)
	}
}
