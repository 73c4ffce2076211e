package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greenpark/cms/internal/handler"
)

// New wires the gin engine: public reads, authenticated post/category
// mutations, and admin-gated management endpoints.
func New(api *handler.API, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery(), api.WithUser())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/api")
	{
		auth := root.Group("/auth")
		{
			auth.POST("/signup", api.SignUp)
			auth.POST("/signin", api.SignIn)
			auth.POST("/signout", api.SignOut)

			me := auth.Group("")
			me.Use(api.AuthRequired())
			{
				me.GET("/me", api.GetMe)
				me.PUT("/profile", api.UpdateProfile)
			}
		}

		posts := root.Group("/posts")
		{
			posts.GET("", api.ListPosts)
			posts.GET("/featured", api.ListFeaturedPosts)
			posts.GET("/:slug", api.GetPostBySlug)

			mutate := posts.Group("")
			mutate.Use(api.AuthRequired())
			{
				mutate.POST("", api.CreatePost)
				mutate.PUT("/:id", api.UpdatePost)
				mutate.DELETE("/:id", api.DeletePost)
			}
		}

		categories := root.Group("/categories")
		{
			categories.GET("", api.ListCategories)
			categories.GET("/:slug", api.GetCategoryBySlug)

			mutate := categories.Group("")
			mutate.Use(api.AuthRequired())
			{
				mutate.POST("", api.CreateCategory)
				mutate.PUT("/:id", api.UpdateCategory)
				mutate.DELETE("/:id", api.DeleteCategory)
			}
		}

		galleries := root.Group("/galleries")
		{
			galleries.GET("", api.ListGalleries)
			galleries.GET("/:id", api.GetGallery)

			mutate := galleries.Group("")
			mutate.Use(api.AdminRequired())
			{
				mutate.POST("", api.CreateGallery)
				mutate.PUT("/order", api.UpdateGalleryOrder)
				mutate.PUT("/:id", api.UpdateGallery)
				mutate.DELETE("/:id", api.DeleteGallery)
				mutate.POST("/:id/images", api.AddGalleryImage)
			}
		}

		galleryImages := root.Group("/gallery-images")
		galleryImages.Use(api.AdminRequired())
		{
			galleryImages.PUT("/order", api.UpdateGalleryImageOrder)
			galleryImages.DELETE("/:id", api.RemoveGalleryImage)
		}

		services := root.Group("/services")
		{
			services.GET("", api.ListServices)
			services.GET("/:id", api.GetService)

			mutate := services.Group("")
			mutate.Use(api.AdminRequired())
			{
				mutate.POST("", api.CreateService)
				mutate.PUT("/order", api.UpdateServiceOrder)
				mutate.PUT("/:id", api.UpdateService)
				mutate.DELETE("/:id", api.DeleteService)
			}
		}

		serviceAreas := root.Group("/service-areas")
		{
			serviceAreas.GET("", api.ListServiceAreas)

			mutate := serviceAreas.Group("")
			mutate.Use(api.AdminRequired())
			{
				mutate.POST("", api.CreateServiceArea)
				mutate.PUT("/order", api.UpdateServiceAreaOrder)
				mutate.PUT("/:id", api.UpdateServiceArea)
				mutate.DELETE("/:id", api.DeleteServiceArea)
			}
		}

		references := root.Group("/references")
		{
			references.GET("", api.ListReferences)
			references.GET("/:id", api.GetReference)

			mutate := references.Group("")
			mutate.Use(api.AdminRequired())
			{
				mutate.POST("", api.CreateReference)
				mutate.PUT("/order", api.UpdateReferenceOrder)
				mutate.PUT("/:id", api.UpdateReference)
				mutate.DELETE("/:id", api.DeleteReference)
			}
		}

		admin := root.Group("/admin")
		admin.Use(api.AdminRequired())
		{
			admin.GET("/posts", api.ListPostsAdmin)
			admin.GET("/galleries", api.ListGalleriesAdmin)
			admin.GET("/services", api.ListServicesAdmin)
			admin.GET("/service-areas", api.ListServiceAreasAdmin)
			admin.GET("/service-areas/:id", api.GetServiceArea)
			admin.GET("/references", api.ListReferencesAdmin)
			admin.POST("/upload", api.UploadImage)
		}
	}

	return r
}
