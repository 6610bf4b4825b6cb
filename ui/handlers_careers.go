package ui

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"rushd/domain/assessment"
	"rushd/domain/career"
)

func (s *Server) handleListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": assessment.DefaultQuestions()})
}

// handleSubmitAssessment accepts the raw answers object. Answer values
// vary in shape per question kind, so the body is decoded dynamically;
// malformed answers are dropped rather than rejected.
func (s *Server) handleSubmitAssessment(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}
	answers := assessment.Decode(body)

	recs, audit, err := s.recommendations.SubmitAssessment(c.Request.Context(), userID, answers)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"source":          audit.Source,
		"answered":        len(answers),
	})
}

func (s *Server) handleListRecommendations(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	filters := career.Filters{
		MinCompatibility: queryInt(c, "min_compatibility"),
		Industry:         c.Query("industry"),
		MinSalary:        queryInt(c, "min_salary"),
		Growth:           c.Query("growth"),
		IslamicAlignment: c.Query("alignment"),
		SavedOnly:        c.Query("saved") == "true",
	}
	sortKey := career.SortKey(c.DefaultQuery("sort", string(career.SortCompatibility)))

	recs, audit, err := s.recommendations.ListRecommendations(c.Request.Context(), userID, filters, sortKey)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"source":          audit.Source,
	})
}

// handleGetCareer returns one catalog entry with its descriptive text
// rendered from markdown for the profile detail page.
func (s *Server) handleGetCareer(c *gin.Context) {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	profile, err := s.recommendations.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "career profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":          profile,
		"description_html": string(markdown.ToHTML([]byte(profile.Description), nil, nil)),
		"perspective_html": string(markdown.ToHTML([]byte(profile.IslamicPerspective.Notes), nil, nil)),
	})
}

func (s *Server) handleSaveCareer(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := s.recommendations.SaveCareer(c.Request.Context(), userID, profileID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (s *Server) handleUnsaveCareer(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := s.recommendations.UnsaveCareer(c.Request.Context(), userID, profileID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
