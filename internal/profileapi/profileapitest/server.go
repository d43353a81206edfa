// Package profileapitest provides an in-memory /api/profiles service for tests.
package profileapitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/househarmony/internal/domain"
)

// Server is a fake profiles service backed by an ordered in-memory list.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	profiles []domain.Profile
	nextID   int64
	failing  map[string]int
	requests map[string]int
}

// NewServer starts a fake service. Call Close when done.
func NewServer() *Server {
	s := &Server{
		nextID:   1,
		failing:  make(map[string]int),
		requests: make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	g := e.Group("/api/profiles")
	g.GET("", s.list)
	g.POST("", s.create)
	g.PUT("/:id", s.update)
	g.DELETE("/:id", s.delete)

	s.Server = httptest.NewServer(e)
	return s
}

// Seed stores profiles as if they had been created, assigning ids.
func (s *Server) Seed(drafts ...domain.Draft) []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Profile, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, s.insert(d))
	}
	return out
}

// FailWith makes every subsequent call to op ("list", "create", "update" or
// "delete") answer with status. A zero status clears the failure.
func (s *Server) FailWith(op string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failing, op)
		return
	}
	s.failing[op] = status
}

// Requests returns how many times op was called.
func (s *Server) Requests(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[op]
}

// Profiles returns a copy of the stored profiles.
func (s *Server) Profiles() []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Profile(nil), s.profiles...)
}

func (s *Server) insert(d domain.Draft) domain.Profile {
	p := domain.Profile{ID: s.nextID, Name: d.Name, Icon: d.Icon}
	s.nextID++
	s.profiles = append(s.profiles, p)
	return p
}

func (s *Server) indexOf(id int64) int {
	for i, p := range s.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// begin records the call and reports a forced failure, if any.
func (s *Server) begin(op string) (int, bool) {
	s.requests[op]++
	status, ok := s.failing[op]
	return status, ok
}

func (s *Server) list(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status, fail := s.begin("list"); fail {
		return c.NoContent(status)
	}
	return c.JSON(http.StatusOK, append([]domain.Profile{}, s.profiles...))
}

func (s *Server) create(c echo.Context) error {
	var d domain.Draft
	if err := c.Bind(&d); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, fail := s.begin("create"); fail {
		return c.NoContent(status)
	}
	if d.Name == "" {
		return c.NoContent(http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, s.insert(d))
}

func (s *Server) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	var d domain.Draft
	if err := c.Bind(&d); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, fail := s.begin("update"); fail {
		return c.NoContent(status)
	}
	i := s.indexOf(id)
	if i < 0 {
		return c.NoContent(http.StatusNotFound)
	}
	s.profiles[i].Name = d.Name
	s.profiles[i].Icon = d.Icon
	return c.JSON(http.StatusOK, s.profiles[i])
}

func (s *Server) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, fail := s.begin("delete"); fail {
		return c.NoContent(status)
	}
	i := s.indexOf(id)
	if i < 0 {
		return c.NoContent(http.StatusNotFound)
	}
	s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
	return c.NoContent(http.StatusNoContent)
}
