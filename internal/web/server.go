// Package web serves the terminal over HTTP: a static page plus a JSON API
// driving the same controller the TUI uses.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"

	"termsim/internal/help"
	"termsim/internal/metrics"
	"termsim/internal/model"
	"termsim/internal/shell"
)

//go:embed static/*
var staticFS embed.FS

// maxBodyBytes bounds request bodies; editor saves are the largest.
const maxBodyBytes = 1 << 20

// Server is the HTTP front end.
type Server struct {
	ctrl *shell.Controller
	log  *zap.Logger
}

// NewServer creates a server over ctrl.
func NewServer(ctrl *shell.Controller, log *zap.Logger) *Server {
	return &Server{ctrl: ctrl, log: log}
}

// sessionView is what a client needs to redraw after a command.
type sessionView struct {
	Session          shell.Session     `json:"session"`
	CurrentDirectory string            `json:"currentDirectory"`
	Theme            model.Theme       `json:"theme"`
	Editor           shell.EditorState `json:"editor"`
	Tabs             []tabView         `json:"tabs"`
}

type tabView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

func newSessionView(st shell.State) sessionView {
	tabs := make([]tabView, 0, len(st.Sessions))
	for _, s := range st.Sessions {
		tabs = append(tabs, tabView{ID: s.ID, Title: s.Title, Active: s.ID == st.ActiveID})
	}
	return sessionView{
		Session:          st.Active(),
		CurrentDirectory: st.CurrentDirectory(),
		Theme:            st.CurrentTheme(),
		Editor:           st.Editor,
		Tabs:             tabs,
	}
}

// Handler returns the HTTP handler with all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /", metrics.Instrument("/", http.FileServer(http.FS(subFS)).ServeHTTP))

	// API Endpoints
	mux.HandleFunc("GET /api/help", metrics.Instrument("/api/help", s.handleHelp))
	mux.HandleFunc("GET /api/state", metrics.Instrument("/api/state", s.handleState))
	mux.HandleFunc("POST /api/exec", metrics.Instrument("/api/exec", s.handleExec))
	mux.HandleFunc("GET /api/complete", metrics.Instrument("/api/complete", s.handleComplete))
	mux.HandleFunc("POST /api/tabs", metrics.Instrument("/api/tabs", s.handleNewTab))
	mux.HandleFunc("POST /api/tabs/{id}/activate", metrics.Instrument("/api/tabs/{id}/activate", s.handleActivateTab))
	mux.HandleFunc("DELETE /api/tabs/{id}", metrics.Instrument("/api/tabs/{id}", s.handleCloseTab))
	mux.HandleFunc("POST /api/editor/save", metrics.Instrument("/api/editor/save", s.handleEditorSave))
	mux.HandleFunc("POST /api/editor/cancel", metrics.Instrument("/api/editor/cancel", s.handleEditorCancel))
	mux.HandleFunc("GET /api/fs", metrics.Instrument("/api/fs", s.handleFS))
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web server listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.Int("status", status), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) hasTab(id string) bool {
	return slices.ContainsFunc(s.ctrl.State().Sessions, func(sess shell.Session) bool {
		return sess.ID == id
	})
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(help.Markdown()))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) handleExec(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input string `json:"input"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}
	st := s.ctrl.Exec(req.Input)
	s.log.Debug("web exec", zap.String("input", req.Input), zap.String("session", st.ActiveID))
	s.writeJSON(w, http.StatusOK, newSessionView(st))
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	candidates := s.ctrl.Complete(r.URL.Query().Get("input"))
	if candidates == nil {
		candidates = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"candidates": candidates})
}

func (s *Server) handleNewTab(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusCreated, newSessionView(s.ctrl.NewTab()))
}

func (s *Server) handleActivateTab(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.hasTab(id) {
		s.writeError(w, http.StatusNotFound, "no such tab: "+id)
		return
	}
	s.writeJSON(w, http.StatusOK, newSessionView(s.ctrl.SwitchTab(id)))
}

func (s *Server) handleCloseTab(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.hasTab(id) {
		s.writeError(w, http.StatusNotFound, "no such tab: "+id)
		return
	}
	s.writeJSON(w, http.StatusOK, newSessionView(s.ctrl.CloseTab(id)))
}

func (s *Server) handleEditorSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}
	st, saved := s.ctrl.SaveEditor(req.Content)
	if !saved {
		s.writeError(w, http.StatusConflict, "editor is not open")
		return
	}
	s.writeJSON(w, http.StatusOK, newSessionView(st))
}

func (s *Server) handleEditorCancel(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, newSessionView(s.ctrl.CancelEditor()))
}

func (s *Server) handleFS(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ctrl.State().FS)
}
