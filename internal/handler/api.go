package handler

import (
	"github.com/greenpark/cms/internal/config"
	"github.com/greenpark/cms/internal/service"
	"github.com/greenpark/cms/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers. db may be nil when the
// server runs without persistence; every service degrades to neutral
// results in that case.
type API struct {
	db           *gorm.DB
	posts        *service.PostService
	categories   *service.CategoryService
	galleries    *service.GalleryService
	services     *service.ServiceService
	serviceAreas *service.ServiceAreaService
	references   *service.ReferenceService
	users        *service.UserService
	store        *storage.Client
	admin        adminCredentials
}

type adminCredentials struct {
	Email    string
	Password string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store *storage.Client, cfg *config.Config) *API {
	return &API{
		db:           gdb,
		posts:        service.NewPostService(gdb),
		categories:   service.NewCategoryService(gdb),
		galleries:    service.NewGalleryService(gdb),
		services:     service.NewServiceService(gdb),
		serviceAreas: service.NewServiceAreaService(gdb),
		references:   service.NewReferenceService(gdb),
		users:        service.NewUserService(gdb),
		store:        store,
		admin: adminCredentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		},
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
