package simulation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultMaxSteps caps a single step request when the server sets no limit.
const DefaultMaxSteps = 1000

// SimulationServer handles HTTP requests for simulation runs.
type SimulationServer struct {
	manager  i.SimulationManager
	logger   i.Logger
	maxSteps int
}

// NewSimulationServer creates a new SimulationServer.
func NewSimulationServer(m i.SimulationManager, l i.Logger, maxSteps int) *SimulationServer {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &SimulationServer{
		manager:  m,
		logger:   l,
		maxSteps: maxSteps,
	}
}

// Register registers the simulation routes.
func (c *SimulationServer) Register(route *gin.RouterGroup) {
	simulations := route.Group("/simulations")
	{
		simulations.POST("", c.create)
		simulations.GET("", c.list)
		simulations.GET("/:ID", c.get)
		simulations.POST("/:ID/step", c.step)
		simulations.POST("/:ID/reset", c.reset)
		simulations.DELETE("/:ID", c.remove)
	}
}

// create starts a run from the defaults and the optional request body.
func (c *SimulationServer) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, snap, err := c.manager.NewSimulation(request.params(c.manager.Defaults()))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newSimulationResponse(id, snap))
}

// list returns every run ID.
func (c *SimulationServer) list(ctx *gin.Context) {
	ids := c.manager.List()
	response := ListResponse{IDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		response.IDs = append(response.IDs, id.String())
	}
	ctx.JSON(http.StatusOK, response)
}

// get returns the current state of a run.
func (c *SimulationServer) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	snap, err := c.manager.Snapshot(id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSimulationResponse(id, snap))
}

// step advances a run by the steps query parameter.
func (c *SimulationServer) step(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	steps, err := strconv.Atoi(ctx.DefaultQuery("steps", "1"))
	if err != nil || steps < 1 || steps > c.maxSteps {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("steps must be between 1 and %d", c.maxSteps)})
		return
	}

	result, err := c.manager.Step(id, steps)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, StepResponse{
		Taken:      result.Taken,
		Continued:  result.Continued,
		Simulation: newSimulationResponse(id, result.Snapshot),
	})
}

// reset rebuilds a run with a fresh grid.
func (c *SimulationServer) reset(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	snap, err := c.manager.Reset(id)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSimulationResponse(id, snap))
}

// remove deletes a run.
func (c *SimulationServer) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.manager.Remove(id); err != nil {
		c.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *SimulationServer) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSimulationNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStepCount):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.logger.Error(fmt.Sprintf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid simulation id"})
		return uuid.Nil, false
	}
	return id, true
}
