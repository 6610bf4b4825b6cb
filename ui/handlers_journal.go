package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rushd/domain/journal"
)

// entryRequest is the JSON body for creating or updating a journal entry
type entryRequest struct {
	Date       time.Time `json:"date"`
	Mood       *int      `json:"mood"`
	Energy     *int      `json:"energy"`
	Note       string    `json:"note"`
	Gratitude  string    `json:"gratitude"`
	Activities []string  `json:"activities"`
	Triggers   []string  `json:"triggers"`
}

func (r entryRequest) domain(id string) journal.Entry {
	return journal.Entry{
		ID:         id,
		Date:       r.Date,
		Mood:       r.Mood,
		Energy:     r.Energy,
		Note:       r.Note,
		Gratitude:  r.Gratitude,
		Activities: r.Activities,
		Triggers:   r.Triggers,
	}
}

func (s *Server) handleListEntries(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	entries, err := s.analytics.ListEntries(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) handleCreateEntry(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry payload"})
		return
	}

	entry, err := s.analytics.CreateEntry(c.Request.Context(), userID, req.domain(""))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (s *Server) handleUpdateEntry(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry payload"})
		return
	}

	if err := s.analytics.UpdateEntry(c.Request.Context(), userID, req.domain(c.Param("id"))); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (s *Server) handleDeleteEntry(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	if err := s.analytics.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// handleAnalytics computes the analytics view for one lookback range. A
// journal without enough data returns an explicit empty marker, not an
// error.
func (s *Server) handleAnalytics(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}
	rng := journal.Range(c.DefaultQuery("range", string(journal.Range30Days)))
	if _, known := rng.Duration(); !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown range"})
		return
	}

	result, err := s.analytics.Analyze(c.Request.Context(), userID, rng)
	if err != nil {
		s.fail(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"range": rng, "empty": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rng, "analytics": result})
}

func (s *Server) handleAnalyticsOverview(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	overview, err := s.analytics.Overview(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}
