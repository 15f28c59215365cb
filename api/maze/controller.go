// Package mazeapi handles maze generation and rendering over HTTP.
package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultFormat = render.FormatASCII

// MazeController exposes the maze service.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeInfo)
		mazes.GET("/:ID/path", mc.path)
		mazes.GET("/:ID/render", mc.render)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Generate(ctx.Request.Context(), *request.Size, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// mazeInfo retrieves the record of a maze.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.Get(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// path lists the solution of a maze.
func (mc *MazeController) path(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	m, err := mc.mazeService.Build(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := &PathResponse{
		ID:    id.String(),
		Cells: m.Path(),
		Steps: make([]CellPosition, 0, m.PathLength()),
	}
	for _, cell := range response.Cells {
		row, col, err := m.Position(cell)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Steps = append(response.Steps, CellPosition{Row: row, Col: col})
	}

	ctx.JSON(http.StatusOK, response)
}

// render draws a maze in the format named by the "format" query parameter.
func (mc *MazeController) render(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	format, err := render.ParseFormat(ctx.DefaultQuery("format", string(defaultFormat)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := mc.mazeService.Render(ctx.Request.Context(), id, format)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, format.ContentType(), data)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidSize), errors.Is(err, service.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
