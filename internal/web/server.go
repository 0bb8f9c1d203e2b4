// Package web is the thin HTTP layer over the wiki repository and user
// manager. Only primitive form strings cross the boundary into the domain
// layer; session state (including the authenticated flag) lives here and is
// never persisted.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomebase/tome/internal/markup"
	"github.com/tomebase/tome/internal/wiki"
	"github.com/tomebase/tome/pkg/types"
)

const sessionCookie = "tome_session"

// Server serves the wiki routes. Sessions are held in memory, keyed by a
// random token; restarting the process logs everyone out.
type Server struct {
	cfg   types.Config
	repo  *wiki.Repository
	users *wiki.UserManager
	log   *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[string]*types.User
}

// NewServer returns a Server over the given repository and user manager.
func NewServer(cfg types.Config, repo *wiki.Repository, users *wiki.UserManager, log *zap.SugaredLogger) *Server {
	return &Server{
		cfg:      cfg,
		repo:     repo,
		users:    users,
		log:      log,
		sessions: make(map[string]*types.User),
	}
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Infow("serving wiki", "addr", s.cfg.ListenAddr, "private", s.cfg.Private)
	return http.ListenAndServe(s.cfg.ListenAddr, s.Handler())
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.protect(s.handleHome))
	mux.HandleFunc("GET /index/", s.protect(s.handleIndex))
	mux.HandleFunc("GET /tags/", s.protect(s.handleTags))
	mux.HandleFunc("GET /tag/{name}/", s.protect(s.handleTag))
	mux.HandleFunc("/create/", s.protect(s.handleCreate))
	mux.HandleFunc("/edit/{url...}", s.protect(s.handleEdit))
	mux.HandleFunc("POST /preview/", s.protect(s.handlePreview))
	mux.HandleFunc("/move/{url...}", s.protect(s.handleMove))
	mux.HandleFunc("GET /delete/{url...}", s.protect(s.handleDelete))
	mux.HandleFunc("/search/", s.protect(s.handleSearch))
	mux.HandleFunc("/user/login/", s.handleLogin)
	mux.HandleFunc("GET /user/logout/", s.handleLogout)
	mux.HandleFunc("GET /{url...}", s.protect(s.handleDisplay))
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debugw("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// protect gates a handler behind login when the wiki is private.
func (s *Server) protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Private && s.currentUser(r) == nil {
			http.Redirect(w, r, "/user/login/?next="+r.URL.Path, http.StatusFound)
			return
		}
		next(w, r)
	}
}

func (s *Server) currentUser(r *http.Request) *types.User {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[c.Value]
}

func (s *Server) startSession(w http.ResponseWriter, u *types.User) {
	token := uuid.NewString()
	u.Authenticated = true
	s.mu.Lock()
	s.sessions[token] = u
	s.mu.Unlock()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func (s *Server) endSession(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		if u := s.sessions[c.Value]; u != nil {
			u.Authenticated = false
		}
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
}

func pageURL(r *http.Request) string {
	return markup.CleanURL(strings.Trim(r.PathValue("url"), "/"))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := s.repo.GetByURL("home")
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "page", map[string]any{"Site": s.cfg.SiteTitle, "Page": page})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	pages, err := s.repo.Index()
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "index", map[string]any{"Site": s.cfg.SiteTitle, "Pages": pages})
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	page, err := s.repo.GetByURL(pageURL(r))
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "page", map[string]any{"Site": s.cfg.SiteTitle, "Page": page})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		url := markup.CleanURL(r.FormValue("url"))
		if url != "" {
			http.Redirect(w, r, "/edit/"+url, http.StatusFound)
			return
		}
	}
	s.render(w, "create", map[string]any{"Site": s.cfg.SiteTitle})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	url := pageURL(r)
	page, _, err := s.repo.GetOrBare(url)
	if err != nil {
		s.renderError(w, err)
		return
	}
	if r.Method == http.MethodPost {
		page.SetForm(r.FormValue("title"), r.FormValue("tags"), r.FormValue("body"))
		if err := s.repo.Save(page, true); err != nil {
			s.renderError(w, err)
			return
		}
		http.Redirect(w, r, "/"+url+"/", http.StatusFound)
		return
	}
	s.render(w, "editor", map[string]any{"Site": s.cfg.SiteTitle, "Page": page})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	html, _, _, err := s.repo.Processor().Process(r.FormValue("body"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	url := pageURL(r)
	page, err := s.repo.GetByURL(url)
	if err != nil {
		s.renderError(w, err)
		return
	}
	if r.Method == http.MethodPost {
		newURL := markup.CleanURL(r.FormValue("url"))
		if err := s.repo.Move(url, newURL); err != nil {
			s.renderError(w, err)
			return
		}
		http.Redirect(w, r, "/"+newURL+"/", http.StatusFound)
		return
	}
	s.render(w, "move", map[string]any{"Site": s.cfg.SiteTitle, "Page": page})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := s.repo.Delete(pageURL(r)); err != nil {
		s.renderError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.repo.TagsToPages()
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "tags", map[string]any{"Site": s.cfg.SiteTitle, "Tags": tags})
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	pages, err := s.repo.IndexByTag(name)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "tag", map[string]any{"Site": s.cfg.SiteTitle, "Tag": name, "Pages": pages})
}

// searchOrders maps the form's order option to a repository ordering.
var searchOrders = map[string]wiki.SearchOrder{
	"CDO": wiki.OrderCreatedAsc,
	"CDN": wiki.OrderCreatedDesc,
	"EDO": wiki.OrderEditedAsc,
	"EDN": wiki.OrderEditedDesc,
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Site": s.cfg.SiteTitle, "Term": "", "Searched": false}
	if r.Method == http.MethodPost {
		term := r.FormValue("term")
		ignoreCase := r.FormValue("ignore_case") != ""
		order, ok := searchOrders[r.FormValue("option")]
		if !ok {
			order = wiki.OrderDefault
		}
		results, err := s.repo.Search(term, ignoreCase, nil, order)
		if err != nil {
			s.renderError(w, err)
			return
		}
		data["Term"] = term
		data["Results"] = results
		data["Searched"] = true
	}
	s.render(w, "search", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Site": s.cfg.SiteTitle, "Failed": false}
	if r.Method == http.MethodPost {
		name := strings.TrimSpace(r.FormValue("name"))
		user, err := s.users.GetUser(name)
		if err == nil && user.IsActive() && user.CheckPassword(r.FormValue("password")) {
			s.startSession(w, user)
			next := r.URL.Query().Get("next")
			if next == "" {
				next = "/index/"
			}
			http.Redirect(w, r, next, http.StatusFound)
			return
		}
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			s.renderError(w, err)
			return
		}
		data["Failed"] = true
	}
	s.render(w, "login", data)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.endSession(w, r)
	http.Redirect(w, r, "/user/login/", http.StatusFound)
}

// renderError maps the error taxonomy onto status codes: NotFound is a 404,
// AmbiguousResult and everything else a 500, Conflict a 409.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		http.Error(w, "404 Not Found", http.StatusNotFound)
	case errors.Is(err, types.ErrConflict):
		http.Error(w, "409 Conflict: "+err.Error(), http.StatusConflict)
	default:
		s.log.Errorw("request failed", "error", err)
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}
