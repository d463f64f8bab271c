package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"redesocial/backend/internal/graph"
	"redesocial/backend/internal/graph/graphtest"
	apperrors "redesocial/backend/pkg/errors"
)

func TestInstrument_Outcomes(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector()
	network := &graphtest.MockNetwork{}
	network.On("CreateFriendship", mock.Anything, "a", "b").Return(true, nil)
	network.On("CreateFriendship", mock.Anything, "a", "x").Return(false, nil)
	network.On("DeletePerson", mock.Anything, "a").Return(false, apperrors.NewGraphConnectionFailed("bolt://x", errors.New("refused")))
	network.On("CreatePerson", mock.Anything, graph.PersonInput{}).Return(nil, apperrors.NewValidationFailed("name", "is required"))

	instrumented := Instrument(network, collector)

	created, err := instrumented.CreateFriendship(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = instrumented.CreateFriendship(ctx, "a", "x")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = instrumented.DeletePerson(ctx, "a")
	assert.True(t, apperrors.IsConnectivity(err))

	_, err = instrumented.CreatePerson(ctx, graph.PersonInput{})
	assert.True(t, apperrors.IsValidation(err))

	ops := collector.GraphOperations
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("create_friendship", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("create_friendship", OutcomeNoop)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("delete_person", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("create_person", OutcomeInvalid)))
	network.AssertExpectations(t)
}

func TestInstrument_GetPersonNotFoundIsNoop(t *testing.T) {
	collector := NewCollector()
	network := &graphtest.MockNetwork{}
	network.On("GetPerson", mock.Anything, "missing").Return(nil, graph.ErrPersonNotFound{PersonID: "missing"})

	_, err := Instrument(network, collector).GetPerson(context.Background(), "missing")
	assert.ErrorAs(t, err, new(graph.ErrPersonNotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.GraphOperations.WithLabelValues("get_person", OutcomeNoop)))
}

func TestGinMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	collector := NewCollector()

	router := gin.New()
	router.Use(collector.GinMiddleware())
	router.GET("/api/people/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/people/123", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/api/people/:id", "204")))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "redesocial_http_requests_total")
}
