// Package fakeapi serves a stand-in for the Nyaa info API. Tests point the
// client at it through the host override.
package fakeapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/nyaainfo/internal/constants"
	"github.com/amaumene/nyaainfo/internal/models"
)

const (
	errBadAuthorization = "Bad authorization"
	errInvalidQuery     = "Query was not a valid id or hash."
	errNotFound         = "Query not found"
)

// Server holds the torrents and raw bodies the fake API answers with.
type Server struct {
	Username string
	Password string

	mu       sync.RWMutex
	torrents map[string]models.TorrentInfo
	raw      map[string]rawReply
	requests int
}

type rawReply struct {
	status int
	body   string
}

// New creates a fake API accepting the given credentials.
func New(username, password string) *Server {
	return &Server{
		Username: username,
		Password: password,
		torrents: make(map[string]models.TorrentInfo),
		raw:      make(map[string]rawReply),
	}
}

// AddTorrent registers t under its id and its lowercased hash.
func (s *Server) AddTorrent(t models.TorrentInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.torrents[strconv.FormatInt(t.ID, 10)] = t
	if t.HashHex != "" {
		s.torrents[strings.ToLower(t.HashHex)] = t
	}
}

// SetRaw makes the identifier answer with a fixed status and body.
func (s *Server) SetRaw(identifier string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw[identifier] = rawReply{status: status, body: body}
}

// Requests returns how many info requests reached the server.
func (s *Server) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

// Router builds the gin engine for the fake API.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group(constants.APIBase, s.countRequests(), s.requireBasicAuth())
	api.GET("/info/:query", s.handleInfo)

	return r
}

func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		c.Next()
	}
}

// requireBasicAuth answers bad credentials with a JSON errors body, the way
// the real API does.
func (s *Server) requireBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": []string{errBadAuthorization}})
			return
		}
		c.Set(gin.AuthUserKey, user)
		c.Next()
	}
}

func (s *Server) handleInfo(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Param("query")))

	s.mu.RLock()
	raw, hasRaw := s.raw[query]
	torrent, found := s.torrents[query]
	s.mu.RUnlock()

	if hasRaw {
		c.Data(raw.status, "text/html; charset=utf-8", []byte(raw.body))
		return
	}

	if _, err := models.ParseTarget(query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{errInvalidQuery}})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"errors": []string{errNotFound}})
		return
	}

	c.JSON(http.StatusOK, torrent)
}
