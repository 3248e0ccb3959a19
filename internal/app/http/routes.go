package routes

import (
	adminapi "museum-app/internal/api/admin"
	artistsapi "museum-app/internal/api/artists"
	authapi "museum-app/internal/api/auth"
	collectionsapi "museum-app/internal/api/collections"
	exhibitionsapi "museum-app/internal/api/exhibitions"
	homeapi "museum-app/internal/api/home"
	objectsapi "museum-app/internal/api/objects"
	usersapi "museum-app/internal/api/users"
	"museum-app/internal/app/http/middleware"
	"museum-app/internal/domain/objects"
	"museum-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/signup", authapi.Signup)
	public.POST("/login", authapi.Login)
	public.GET("/user/authorize/generate_new_token", authapi.GenerateNewToken)
	public.POST("/user/authorize/validate_token", authapi.ValidateToken)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public catalog reads
	r.GET("/get/homepage/data", homeapi.GetHomepageData)

	r.GET("/get/art_object/sculpture/all/:skip/:limit", objectsapi.ListByKind(objects.KindSculpture))
	r.GET("/get/art_object/painting/all/:skip/:limit", objectsapi.ListByKind(objects.KindPainting))
	r.GET("/get/art_object/other_art/all/:skip/:limit", objectsapi.ListByKind(objects.KindOther))
	r.GET("/get/art_object/", objectsapi.GetByID)
	r.GET("/get/art_object/id/all", objectsapi.ListIDs)
	r.GET("/get/paintings/name/", objectsapi.SearchByName)
	r.GET("/get/art_object/artist/all/:artist_id", objectsapi.ListByArtist)

	r.GET("/get/artist/all/:skip/:limit", artistsapi.ListArtists)
	r.GET("/get/artist/id/:artist_id", artistsapi.GetArtist)
	r.GET("/get/artist/all/ids", artistsapi.ListArtistIDs)
	r.GET("/get/artist/name/:artist_name", artistsapi.SearchArtists)

	r.GET("/get/exhibitions/all/:skip/:limit", exhibitionsapi.ListExhibitions)
	r.GET("/get/exhibitions/", exhibitionsapi.GetExhibition)
	r.GET("/get/exhibitions/all/ids", exhibitionsapi.ListExhibitionIDs)
	r.GET("/get/exhibitions/name/:exhibition_name", exhibitionsapi.SearchExhibitions)
	r.GET("/get/exhibitions/art_object/:exhibition_id", exhibitionsapi.ListExhibitionArtObjects)

	r.GET("/get/collections/permanent/:permanents_id/:skip/:limit", collectionsapi.GetPermanent)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/user/me", usersapi.GetCurrentUser)
	auth.GET("/user/profile/image", usersapi.GetProfileImage)
	auth.POST("/user/profile/image", usersapi.UploadProfileImage)
	auth.PUT("/user/profile/image", usersapi.ReplaceProfileImage)
	auth.DELETE("/user/profile/image", usersapi.DeleteProfileImage)
	auth.PUT("/user/update_username", usersapi.UpdateUsername)
	auth.DELETE("/user/delete", usersapi.DeleteAccount)

	// Catalog mutations: admins and managers only
	staff := auth.Group("/")
	staff.Use(middleware.RequireAnyRole(users.RoleAdmin, users.RoleManager))

	staff.POST("/create/art_object/sculpture", objectsapi.CreateSculpture)
	staff.POST("/create/art_object/painting", objectsapi.CreatePainting)
	staff.POST("/create/art_object/other_art", objectsapi.CreateOtherArt)
	staff.DELETE("/delete/art_object/:id", objectsapi.Delete)

	staff.POST("/create/artist", artistsapi.CreateArtists)
	staff.DELETE("/delete/artist/:artist_id", artistsapi.DeleteArtist)

	staff.POST("/create/exhibition", exhibitionsapi.CreateExhibition)
	staff.POST("/create/exhibition/upload_data", exhibitionsapi.LinkArtObjects)
	staff.DELETE("/delete/exhibition/:exhibition_id", exhibitionsapi.DeleteExhibition)

	staff.POST("/create/collection/new_collection", collectionsapi.CreateCollection)
	staff.POST("/create/collection/borrowed", collectionsapi.CreateBorrowed)
	staff.POST("/create/collection/permanent", collectionsapi.CreatePermanent)
	staff.PUT("/update/collection/borrowed/:id/return", collectionsapi.ReturnBorrowed)
	staff.PUT("/update/collection/permanent/:id/status", collectionsapi.UpdatePermanentStatus)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/stats", adminapi.GetCatalogStats)
	admin.PUT("/user/:id/role", adminapi.UpdateUserRole)
}
