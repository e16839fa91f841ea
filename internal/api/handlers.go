package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"sehatanak.id/stunting-assistant/internal/auth"
	"sehatanak.id/stunting-assistant/internal/config"
	"sehatanak.id/stunting-assistant/internal/core"
	"sehatanak.id/stunting-assistant/internal/session"
	"sehatanak.id/stunting-assistant/internal/store"
)

type APIHandler struct {
	credentials *auth.Service
	chatService *core.ChatService
	store       *store.SQLiteStore
	sessions    *session.Manager
}

func NewAPIHandler(credentials *auth.Service, chatService *core.ChatService, s *store.SQLiteStore, sessions *session.Manager) *APIHandler {
	return &APIHandler{
		credentials: credentials,
		chatService: chatService,
		store:       s,
		sessions:    sessions,
	}
}

func (h *APIHandler) JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ValidateJWT(tokenString, config.AppConfig.JWTSecret)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		sess := h.sessions.Get(claims.ID)
		if sess == nil || sess.Username != claims.Username {
			http.Error(w, "Session expired, please log in again", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "session", sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromContext(r *http.Request) *session.Session {
	return r.Context().Value("session").(*session.Session)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	err := h.credentials.Register(req.Username, req.Password, optional(req.Email), optional(req.Name))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		}
		logrus.Errorf("Error registering user %q: %v", req.Username, err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"username": req.Username})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	displayName, err := h.credentials.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		logrus.Errorf("Error authenticating user %q: %v", req.Username, err)
		http.Error(w, "Failed to authenticate", http.StatusInternalServerError)
		return
	}

	sess := h.sessions.Create(req.Username, displayName)
	token, err := auth.GenerateJWT(req.Username, sess.ID, config.AppConfig.JWTSecret)
	if err != nil {
		logrus.Errorf("Error generating JWT for user %q: %v", req.Username, err)
		h.sessions.Delete(sess.ID)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"token": token, "name": displayName})
}

func (h *APIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)
	h.sessions.Delete(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Language string `json:"language"`
}

func (h *APIHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}

	response, lang, err := h.chatService.Respond(r.Context(), sess.Username, req.Message)
	if err != nil {
		// The response itself is still valid; only persistence failed.
		logrus.Errorf("Error persisting chat for user %q: %v", sess.Username, err)
	}
	sess.Append(req.Message, response)

	json.NewEncoder(w).Encode(ChatResponse{Response: response, Language: string(lang)})
}

func (h *APIHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)

	limit := store.DefaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.chatService.History(sess.Username, limit)
	if err != nil {
		logrus.Errorf("Error loading history for user %q: %v", sess.Username, err)
		http.Error(w, "Failed to load chat history", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []store.ChatEntry{}
	}
	json.NewEncoder(w).Encode(entries)
}

func (h *APIHandler) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)
	if err := h.store.PurgeUser(sess.Username); err != nil {
		logrus.Errorf("Error clearing history for user %q: %v", sess.Username, err)
		http.Error(w, "Failed to clear chat history", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *APIHandler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		http.Error(w, "New password cannot be empty", http.StatusBadRequest)
		return
	}

	if err := h.credentials.ChangePassword(sess.Username, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		logrus.Errorf("Error changing password for user %q: %v", sess.Username, err)
		http.Error(w, "Failed to change password", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type UpdateProfileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *APIHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.credentials.UpdateProfile(sess.Username, optional(req.Email), optional(req.Name)); err != nil {
		logrus.Errorf("Error updating profile for user %q: %v", sess.Username, err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *APIHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)

	var req DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.credentials.DeleteAccount(sess.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		logrus.Errorf("Error deleting account %q: %v", sess.Username, err)
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	h.sessions.DeleteByUsername(sess.Username)
	w.WriteHeader(http.StatusNoContent)
}

// ResetHandler drops and recreates the store. Restricted to the demo account.
func (h *APIHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r)
	if sess.Username != store.DemoUsername {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.store.ResetAll(); err != nil {
		logrus.Errorf("Error resetting store: %v", err)
		http.Error(w, "Failed to reset database", http.StatusInternalServerError)
		return
	}
	logrus.Warnf("Database reset by %q", sess.Username)
	w.WriteHeader(http.StatusNoContent)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
