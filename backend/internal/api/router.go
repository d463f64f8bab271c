// Package api exposes the graph operations as a JSON form API. Handlers
// validate input at the boundary and only return plain records.
package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"redesocial/backend/internal/graph"
	"redesocial/backend/internal/metrics"
	apperrors "redesocial/backend/pkg/errors"
)

// Handler serves the people and friendship routes
type Handler struct {
	network graph.Network
	log     *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(network graph.Network, log *zap.Logger) *Handler {
	return &Handler{network: network, log: log}
}

// NewRouter builds the gin engine with logging, recovery, metrics and all
// routes registered. collector may be nil.
func NewRouter(h *Handler, collector *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(h.log))
	router.Use(gin.Recovery())
	if collector != nil {
		router.Use(collector.GinMiddleware())
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/stats", h.stats)

		people := api.Group("/people")
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.GET("/search", h.findPerson)
		people.GET("/:id", h.getPerson)
		people.DELETE("/:id", h.deletePerson)
		people.POST("/:id/friends", h.createFriendship)
		people.GET("/:id/friends", h.friendsOf)
		people.GET("/:id/friendships", h.friendships)
	}

	return router
}

// createPersonRequest mirrors the person form. Age is a pointer so that a
// missing age is told apart from zero.
type createPersonRequest struct {
	Name     string `json:"name" binding:"required"`
	Age      *int   `json:"age" binding:"required,min=0"`
	Location string `json:"location" binding:"required"`
}

type createFriendshipRequest struct {
	FriendID string `json:"friend_id" binding:"required"`
}

func (h *Handler) createPerson(c *gin.Context) {
	var req createPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := graph.PersonInput{Name: req.Name, Age: *req.Age, Location: req.Location}
	if err := input.Validate(); err != nil {
		h.respondError(c, "create person", err)
		return
	}

	person, err := h.network.CreatePerson(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create person", err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

func (h *Handler) listPeople(c *gin.Context) {
	people, err := h.network.ListPeople(c.Request.Context())
	if err != nil {
		h.respondError(c, "list people", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"people": nonNil(people)})
}

func (h *Handler) findPerson(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		h.respondError(c, "find person", apperrors.NewValidationFailed("name", "is required"))
		return
	}

	people, err := h.network.FindPerson(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, "find person", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"people": nonNil(people)})
}

func (h *Handler) getPerson(c *gin.Context) {
	person, err := h.network.GetPerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFound graph.ErrPersonNotFound
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		h.respondError(c, "get person", err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *Handler) deletePerson(c *gin.Context) {
	deleted, err := h.network.DeletePerson(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "delete person", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) createFriendship(c *gin.Context) {
	var req createFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.network.CreateFriendship(c.Request.Context(), c.Param("id"), req.FriendID)
	if err != nil {
		h.respondError(c, "create friendship", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

func (h *Handler) friendsOf(c *gin.Context) {
	friends, err := h.network.FriendsOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "friends of", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": nonNil(friends)})
}

func (h *Handler) friendships(c *gin.Context) {
	edges, err := h.network.Friendships(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "friendships", err)
		return
	}
	if edges == nil {
		edges = []graph.Friendship{}
	}
	c.JSON(http.StatusOK, gin.H{"friendships": edges})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.network.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// respondError maps the error taxonomy onto status codes
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsConnectivity(err):
		h.log.Error("Store unreachable", zap.String("operation", op), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
	default:
		h.log.Error("Operation failed", zap.String("operation", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
	}
}

func nonNil(people []graph.Person) []graph.Person {
	if people == nil {
		return []graph.Person{}
	}
	return people
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
