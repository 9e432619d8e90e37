package router

import (
	"encoding/json"
	"net/http"
	"portfolio-api/handler"
	"portfolio-api/service"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "portfolio-api/docs" // generated swagger spec
)

func NewRouter(userHandler *handler.UserHandler, photoHandler *handler.PhotoHandler, contactHandler *handler.ContactHandler, auth *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	requireAuth := handler.AuthMiddleware(auth)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(map[string]string{"msg": "Portfolio API"})
	})
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Auth
	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("GET /refresh", handler.ErrorHandlingMiddleware(userHandler.Refresh))
	mux.Handle("POST /logout", requireAuth(handler.ErrorHandlingMiddleware(userHandler.Logout)))

	// Photo gallery
	mux.Handle("POST /upload-photo", requireAuth(handler.ErrorHandlingMiddleware(photoHandler.UploadPhoto)))
	mux.Handle("GET /photos", handler.ErrorHandlingMiddleware(photoHandler.GetAllPhotos))
	mux.Handle("PUT /update-photo/{id}", requireAuth(handler.ErrorHandlingMiddleware(photoHandler.UpdatePhoto)))
	mux.Handle("DELETE /delete-photo/{id}", requireAuth(handler.ErrorHandlingMiddleware(photoHandler.DeletePhoto)))
	mux.Handle("DELETE /photo/title/{title}", requireAuth(handler.ErrorHandlingMiddleware(photoHandler.DeletePhotoByTitle)))

	// Contact relay
	mux.Handle("POST /contact", handler.ErrorHandlingMiddleware(contactHandler.SendMessage))

	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}
