package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type createPostPayload struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=500"`
	Content     string `json:"content" binding:"required,min=1"`
	Published   bool   `json:"published"`
	Featured    bool   `json:"featured"`
	CategoryID  *uint  `json:"categoryId"`
	TagIDs      []uint `json:"tagIds"`
}

type updatePostPayload struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Published   *bool   `json:"published"`
	Featured    *bool   `json:"featured"`
	CategoryID  *uint   `json:"categoryId"`
	TagIDs      []uint  `json:"tagIds"`
}

// ListPosts returns published posts by default, paginated and filterable
// by search text and category.
func (a *API) ListPosts(c *gin.Context) {
	filter := a.postFilterFromQuery(c)
	if filter.Published == nil {
		published := true
		filter.Published = &published
	}

	result, err := a.posts.List(filter)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": result.Posts, "pagination": result.Pagination})
}

// ListPostsAdmin returns every post, drafts included.
func (a *API) ListPostsAdmin(c *gin.Context) {
	result, err := a.posts.List(a.postFilterFromQuery(c))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": result.Posts, "pagination": result.Pagination})
}

func (a *API) postFilterFromQuery(c *gin.Context) service.PostFilter {
	filter := service.PostFilter{
		Search:    c.Query("search"),
		Published: parseBoolQuery(c, "published"),
		Page:      parseIntQuery(c, "page", 1),
		Limit:     parseIntQuery(c, "limit", 10),
	}
	if id := parseIntQuery(c, "categoryId", 0); id > 0 {
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	return filter
}

// GetPostBySlug returns one post with its sanitized HTML rendering.
func (a *API) GetPostBySlug(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "post not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post, "html": renderMarkdown(post.Content)})
}

// ListFeaturedPosts returns the newest published featured posts.
func (a *API) ListFeaturedPosts(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 5)
	if limit > 20 {
		limit = 20
	}

	posts, err := a.posts.Featured(limit)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost creates a post owned by the caller.
func (a *API) CreatePost(c *gin.Context) {
	var payload createPostPayload
	if !bindJSON(c, &payload) {
		return
	}

	user := currentUser(c)
	post, err := a.posts.Create(service.PostInput{
		Title:       payload.Title,
		Description: payload.Description,
		Content:     payload.Content,
		Published:   payload.Published,
		Featured:    payload.Featured,
		CategoryID:  payload.CategoryID,
		TagIDs:      payload.TagIDs,
		AuthorID:    user.ID,
	})
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost applies a partial update; only the author may touch the post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid post id")
		return
	}

	var payload updatePostPayload
	if !bindJSON(c, &payload) {
		return
	}

	user := currentUser(c)
	post, err := a.posts.Update(id, user.ID, service.PostUpdateInput{
		Title:       payload.Title,
		Description: payload.Description,
		Content:     payload.Content,
		Published:   payload.Published,
		Featured:    payload.Featured,
		CategoryID:  payload.CategoryID,
		TagIDs:      payload.TagIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "post not found")
		case errors.Is(err, service.ErrPostForbidden):
			respondError(c, http.StatusForbidden, CodeForbidden, "you do not own this post")
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a post; only the author may delete it.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid post id")
		return
	}

	user := currentUser(c)
	if err := a.posts.Delete(id, user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "post not found")
		case errors.Is(err, service.ErrPostForbidden):
			respondError(c, http.StatusForbidden, CodeForbidden, "you do not own this post")
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
