// Package mockapi is an in-memory implementation of the account API used for
// local development and tests.
package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/barber/internal/api"
	"github.com/colonyops/barber/internal/core/logging"
)

const minPasswordLen = 6

type account struct {
	user     api.User
	password string
}

// Server holds the mock API state. It is safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	accounts map[string]*account // by email
	sessions map[string]string   // token -> email
	resets   map[string]string   // reset token -> email
	log      zerolog.Logger
}

// New creates an empty mock API.
func New() *Server {
	return &Server{
		accounts: make(map[string]*account),
		sessions: make(map[string]string),
		resets:   make(map[string]string),
		log:      logging.Component("mockapi"),
	}
}

// Handler returns the chi router serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Post("/users", s.createUser)
	r.Post("/sessions", s.createSession)
	r.Route("/password", func(r chi.Router) {
		r.Post("/forgot", s.forgotPassword)
		r.Post("/reset", s.resetPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Put("/profile", s.updateProfile)
		r.Patch("/users/avatar", s.updateAvatar)
	})

	return r
}

// ResetToken returns the most recent recovery token issued for email.
func (s *Server) ResetToken(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, e := range s.resets {
		if e == email {
			return token, true
		}
	}
	return "", false
}

// Seed registers an account directly and returns a session token for it.
func (s *Server) Seed(name, email, password string) (api.User, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := &account{
		user:     api.User{ID: uuid.NewString(), Name: name, Email: email},
		password: password,
	}
	s.accounts[email] = acc
	token := uuid.NewString()
	s.sessions[token] = email
	return acc.user, token
}

type ctxKey struct{}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get(api.RequestIDHeader)).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "JWT token is missing")
			return
		}

		s.mu.Lock()
		email, ok := s.sessions[token]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid JWT token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withEmail(r, email)))
	})
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < minPasswordLen {
		writeError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Email]; exists {
		writeError(w, http.StatusBadRequest, "Email address already used")
		return
	}

	acc := &account{
		user:     api.User{ID: uuid.NewString(), Name: req.Name, Email: req.Email},
		password: req.Password,
	}
	s.accounts[req.Email] = acc

	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.Email]
	if !ok || acc.password != req.Password {
		writeError(w, http.StatusUnauthorized, "Incorrect email/password combination")
		return
	}

	token := uuid.NewString()
	s.sessions[token] = acc.user.Email

	writeJSON(w, http.StatusOK, api.Session{User: acc.user, Token: token})
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[req.Email]; !ok {
		writeError(w, http.StatusBadRequest, "User does not exist")
		return
	}

	token := uuid.NewString()
	s.resets[token] = req.Email
	s.log.Info().Str("email", req.Email).Str("token", token).Msg("password reset token issued")

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Password) < minPasswordLen || req.Password != req.PasswordConfirmation {
		writeError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.resets[req.Token]
	if !ok {
		writeError(w, http.StatusBadRequest, "User token does not exist")
		return
	}
	delete(s.resets, req.Token)
	s.accounts[email].password = req.Password

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := emailFrom(r)
	acc := s.accounts[current]

	if req.Email != current {
		if _, taken := s.accounts[req.Email]; taken {
			writeError(w, http.StatusBadRequest, "E-mail already in use")
			return
		}
	}

	if req.Password != "" {
		if req.OldPassword == "" {
			writeError(w, http.StatusBadRequest, "You need to inform the old password to set a new password")
			return
		}
		if req.OldPassword != acc.password {
			writeError(w, http.StatusBadRequest, "Old password does not match")
			return
		}
		acc.password = req.Password
	}

	acc.user.Name = req.Name
	if req.Email != current {
		acc.user.Email = req.Email
		delete(s.accounts, current)
		s.accounts[req.Email] = acc
		for token, e := range s.sessions {
			if e == current {
				s.sessions[token] = req.Email
			}
		}
	}

	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) updateAvatar(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Avatar file is required")
		return
	}
	_ = file.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.accounts[emailFrom(r)]
	acc.user.AvatarURL = "/files/" + uuid.NewString() + "-" + header.Filename

	writeJSON(w, http.StatusOK, acc.user)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
