package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/agenthands/cocograph/internal/catalog"
	"github.com/agenthands/cocograph/internal/core"
	"github.com/agenthands/cocograph/internal/core/graph"
	"github.com/agenthands/cocograph/internal/core/model"
	"github.com/agenthands/cocograph/internal/dataset"
)

type Server struct {
	Campaign *core.Campaign
	Log      zerolog.Logger
}

func NewServer(campaign *core.Campaign, log zerolog.Logger) *Server {
	return &Server{Campaign: campaign, Log: log}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/campaign", s.GetCampaign)
	r.POST("/datasets", s.AddDataset)
	r.POST("/datasets/stored/:id", s.AddStoredDataset)
	r.POST("/scores", s.Score)
	r.GET("/edges", s.ListEdges)
	r.GET("/edges/:source/:target", s.GetEdge)
	r.POST("/save", s.Save)

	return r
}

func (s *Server) GetCampaign(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"campaign_id": s.Campaign.ID,
		"target_map":  s.Campaign.TargetMap,
		"discipline":  s.Campaign.Discipline,
		"edges":       s.Campaign.Result.Len(),
	})
}

type AddDatasetRequest struct {
	ID    string           `json:"id" binding:"required"`
	Edges []model.ConnEdge `json:"edges" binding:"required"`
}

func (s *Server) AddDataset(c *gin.Context) {
	var req AddDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ds := &dataset.Dataset{ID: req.ID, Graph: graph.NewConnGraph()}
	for _, e := range req.Edges {
		if err := ds.Graph.AddEdge(e); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	s.addDataset(c, ds)
}

func (s *Server) AddStoredDataset(c *gin.Context) {
	ds, err := s.Campaign.LoadDataset(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, dataset.ErrNoEdges) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		s.Log.Error().Err(err).Str("dataset", c.Param("id")).Msg("failed to load dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dataset"})
		return
	}
	s.addDataset(c, ds)
}

func (s *Server) addDataset(c *gin.Context, ds *dataset.Dataset) {
	err := s.Campaign.AddDataset(c.Request.Context(), ds)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "success", "edges": s.Campaign.Result.Len()})
	case errors.Is(err, catalog.ErrIneligible), errors.Is(err, catalog.ErrUnknownMap):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidAttribute), errors.Is(err, model.ErrDisciplineMismatch):
		// Valid edges were merged; only the listed contributions were dropped.
		c.JSON(http.StatusOK, gin.H{"status": "partial", "error": err.Error(), "edges": s.Campaign.Result.Len()})
	case errors.Is(err, model.ErrEmptyContributorList), errors.Is(err, model.ErrMissingRelation), errors.Is(err, model.ErrRuleNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		s.Log.Error().Err(err).Str("dataset", ds.ID).Msg("failed to add dataset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add dataset"})
	}
}

func (s *Server) Score(c *gin.Context) {
	s.Campaign.Finalize()
	c.JSON(http.StatusOK, gin.H{"status": "success", "edges": s.Campaign.Result.Len()})
}

func (s *Server) ListEdges(c *gin.Context) {
	edges := s.Campaign.Result.Edges()
	if source := c.Query("source"); source != "" {
		filtered := edges[:0]
		for _, e := range edges {
			if e.Source == source {
				filtered = append(filtered, e)
			}
		}
		edges = filtered
	}
	c.JSON(http.StatusOK, gin.H{"edges": edges})
}

func (s *Server) GetEdge(c *gin.Context) {
	e, ok := s.Campaign.Result.Edge(c.Param("source"), c.Param("target"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edge not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) Save(c *gin.Context) {
	n, err := s.Campaign.Save(c.Request.Context())
	if err != nil {
		if errors.Is(err, core.ErrNoDriver) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		s.Log.Error().Err(err).Msg("failed to save result graph")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign_id": s.Campaign.ID, "saved": n})
}
