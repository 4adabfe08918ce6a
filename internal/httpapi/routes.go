package httpapi

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"sudokusat/internal/puzzleio"
	"sudokusat/internal/solve"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthHandler)

	api := s.engine.Group("/api")
	{
		api.POST("/solve", s.solveHandler)
	}
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solveRequest is the JSON body /api/solve accepts: Puzzle is the raw
// puzzle text in the same format solve accepts from a file.
type solveRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

type solveResponse struct {
	Solved     bool   `json:"solved"`
	Unsolvable bool   `json:"unsolvable"`
	Grid       string `json:"grid,omitempty"`
	Size       int    `json:"size"`
	Clauses    int    `json:"clauses"`
	Atoms      int    `json:"atoms"`
}

func (s *Server) solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workDir, err := os.MkdirTemp(s.cfg.WorkDir, "sudokusat-api-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't allocate scratch directory"})
		return
	}
	defer os.RemoveAll(workDir)

	puzzlePath := filepath.Join(workDir, "puzzle.txt")
	if err := os.WriteFile(puzzlePath, []byte(req.Puzzle), 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't stage puzzle input"})
		return
	}

	result, err := solve.Run(context.Background(), solve.Options{
		PuzzlePath: puzzlePath,
		SolverCmd:  s.cfg.SolverCmd,
		SolverArgs: s.cfg.SolverArgs,
		WorkDir:    workDir,
		OmitOutput: true,
		Log:        s.cfg.Log,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := solveResponse{
		Size:       result.Size,
		Clauses:    result.NumClauses,
		Atoms:      result.NumAtoms,
		Unsolvable: result.Unsolvable,
	}
	if result.Unsolvable {
		c.JSON(http.StatusOK, resp)
		return
	}

	var sb strings.Builder
	if err := puzzleio.Write(&sb, result.Grid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't render solved grid"})
		return
	}
	resp.Solved = true
	resp.Grid = sb.String()
	c.JSON(http.StatusOK, resp)
}
