package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narrmaps/narr-maps/internal/domain"
	"github.com/narrmaps/narr-maps/internal/render"
	"github.com/narrmaps/narr-maps/internal/usecase"
)

// Handler handles HTTP requests for NARR map renderings.
type Handler struct {
	plotUC  *usecase.PlotUseCase
	dataDir string
}

// NewHandler creates a new HTTP handler. Input files are resolved relative
// to dataDir; requests may not escape it.
func NewHandler(plotUC *usecase.PlotUseCase, dataDir string) *Handler {
	return &Handler{
		plotUC:  plotUC,
		dataDir: dataDir,
	}
}

// resolveFile turns a relative file name into a path under the data
// directory, rejecting anything that climbs out of it.
func (h *Handler) resolveFile(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("file name is required")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("file name must be relative: %q", name)
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file name escapes the data directory: %q", name)
	}
	return filepath.Join(h.dataDir, clean), nil
}

// parseStyle reads the optional cmap, barb_color, extent and contour
// parameters shared by both map endpoints.
func parseStyle(c *gin.Context) (cmap, barb string, extent *render.Extent, contours *domain.ContourSpec, err error) {
	cmap = c.Query("cmap")
	barb = c.Query("barb_color")

	if extentStr := c.Query("extent"); extentStr != "" {
		extent, err = render.ParseExtent(extentStr)
		if err != nil {
			return "", "", nil, nil, fmt.Errorf("invalid extent: %w", err)
		}
	}

	minStr := c.Query("contour_min")
	maxStr := c.Query("contour_max")
	stepStr := c.Query("contour_step")
	if minStr != "" || maxStr != "" || stepStr != "" {
		if minStr == "" || maxStr == "" || stepStr == "" {
			return "", "", nil, nil, fmt.Errorf("contour_min, contour_max and contour_step must be given together")
		}
		spec := domain.ContourSpec{}
		if spec.Min, err = strconv.ParseFloat(minStr, 64); err != nil {
			return "", "", nil, nil, fmt.Errorf("invalid contour_min: %v", err)
		}
		if spec.Max, err = strconv.ParseFloat(maxStr, 64); err != nil {
			return "", "", nil, nil, fmt.Errorf("invalid contour_max: %v", err)
		}
		if spec.Step, err = strconv.ParseFloat(stepStr, 64); err != nil {
			return "", "", nil, nil, fmt.Errorf("invalid contour_step: %v", err)
		}
		if err = spec.Validate(); err != nil {
			return "", "", nil, nil, err
		}
		contours = &spec
	}
	return cmap, barb, extent, contours, nil
}

// writeMap encodes the finished rendering as PNG on the response.
func writeMap(c *gin.Context, result *usecase.MapResult) {
	var buf bytes.Buffer
	if err := result.Map.EncodePNG(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// plotError maps use case failures to status codes: a requested timestamp or
// level that the files do not contain is 404, everything else 400.
func plotError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrNoMatchingTime) || errors.Is(err, domain.ErrNoMatchingLevel) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// GetPressureMap handles GET /v1/maps/pressure.
func (h *Handler) GetPressureMap(c *gin.Context) {
	uwnd, err := h.resolveFile(c.Query("uwnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vwnd, err := h.resolveFile(c.Query("vwnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hgt, err := h.resolveFile(c.Query("hgt"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	levelStr := c.Query("level")
	if levelStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level parameter is required"})
		return
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid level: %v", err)})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	cmap, barb, extent, contours, err := parseStyle(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.plotUC.PressureLevelMap(usecase.PressureLevelRequest{
		UwndPath:  uwnd,
		VwndPath:  vwnd,
		HgtPath:   hgt,
		Level:     level,
		Date:      date,
		Cmap:      cmap,
		BarbColor: barb,
		Extent:    extent,
		Contours:  contours,
	})
	if err != nil {
		plotError(c, err)
		return
	}
	writeMap(c, result)
}

// GetSurfaceMap handles GET /v1/maps/surface.
func (h *Handler) GetSurfaceMap(c *gin.Context) {
	uwnd, err := h.resolveFile(c.Query("uwnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vwnd, err := h.resolveFile(c.Query("vwnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dpt, err := h.resolveFile(c.Query("dpt"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}

	cmap, barb, extent, contours, err := parseStyle(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.plotUC.SurfaceMap(usecase.SurfaceRequest{
		UwndPath:  uwnd,
		VwndPath:  vwnd,
		DptPath:   dpt,
		Date:      date,
		Cmap:      cmap,
		BarbColor: barb,
		Extent:    extent,
		Contours:  contours,
	})
	if err != nil {
		plotError(c, err)
		return
	}
	writeMap(c, result)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
