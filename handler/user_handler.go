package handler

import (
	"encoding/json"
	"net/http"
	"portfolio-api/common"
	"portfolio-api/model"
	"portfolio-api/service"
)

// Browser-side cookie lifetime. This only bounds retention; the tokens carry
// their own much shorter expiries which are checked on every verification.
const authCookieMaxAge = 24 * 60 * 60

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{Service: userService}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user, opens a session and sets the auth cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "Registration payload"
// @Success      201 {object} model.AuthResponse
// @Failure      400 {object} common.AppError
// @Failure      409 {object} common.AppError
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, pair, err := h.Service.Register(&req)
	if err != nil {
		return mapServiceError(err)
	}

	setAuthCookies(w, pair)
	writeJSON(w, http.StatusCreated, model.AuthResponse{User: user, Auth: true})
	return nil
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials, rotates the session and sets the auth cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      200 {object} model.AuthResponse
// @Failure      400 {object} common.AppError
// @Failure      401 {object} common.AppError
// @Router       /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, pair, err := h.Service.Login(&req)
	if err != nil {
		return mapServiceError(err)
	}

	setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, model.AuthResponse{User: user, Auth: true})
	return nil
}

// Refresh godoc
// @Summary      Refresh the session
// @Description  Exchanges the refresh-token cookie for a fresh token pair
// @Tags         auth
// @Produce      json
// @Success      200 {object} model.AuthResponse
// @Failure      401 {object} common.AppError
// @Router       /refresh [get]
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		return common.NewAuthenticationError("Unauthorized", nil)
	}

	user, pair, err := h.Service.Refresh(cookie.Value)
	if err != nil {
		return mapServiceError(err)
	}

	setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, model.AuthResponse{User: user, Auth: true})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Deletes the session record and clears the auth cookies
// @Tags         auth
// @Produce      json
// @Success      200 {object} model.AuthResponse
// @Failure      401 {object} common.AppError
// @Router       /logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
		if err := h.Service.Logout(cookie.Value); err != nil {
			return mapServiceError(err)
		}
	}

	clearAuthCookies(w)
	writeJSON(w, http.StatusOK, model.AuthResponse{User: nil, Auth: false})
	return nil
}

func setAuthCookies(w http.ResponseWriter, pair *model.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
