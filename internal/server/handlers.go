package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/resume"
)

// minResumeChars rejects uploads whose extracted text is too short to be a
// resume.
const minResumeChars = 20

// topJobsLimit caps the job list endpoint.
const topJobsLimit = 5

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !resume.AllowedFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed: PDF, DOCX, TXT"})
		return
	}
	if limit := engine.Cfg.MaxUploadMiB << 20; limit > 0 && file.Size > limit {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File exceeds %d MiB limit", engine.Cfg.MaxUploadMiB)})
		return
	}

	jobIndex := resume.NoJob
	if v := c.PostForm("selected_job_id"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selected_job_id"})
			return
		}
		jobIndex = idx
	}

	engine.IncrUploads()

	// Base strips any path components a hostile client sends.
	filename := filepath.Base(file.Filename)
	dst := filepath.Join(engine.Cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		engine.IncrUploadErrors()
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error saving upload: %v", err)})
		return
	}

	resumeText := resume.ExtractText(c.Request.Context(), dst, filename)
	if len(strings.TrimSpace(resumeText)) < minResumeChars {
		engine.IncrUploadErrors()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Could not extract text from resume or file is too short. Extracted %d characters.", len(resumeText)),
		})
		return
	}

	analysis, err := s.analyzer.Analyze(c.Request.Context(), resumeText, filename, jobIndex)
	if err != nil {
		engine.IncrUploadErrors()
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing resume: %v", err)})
		return
	}
	engine.IncrResumesParsed()
	if analysis.JobMatch != nil {
		engine.IncrJobComparisons()
	}

	if err := s.store.Append(analysis); err != nil {
		engine.IncrUploadErrors()
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error saving analysis: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Resume processed successfully",
		"data":    analysis,
	})
}

func (s *Server) handleResumes(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Load())
}

// jobSummary is a posting reduced for the selection list: no topics, no
// resources.
type jobSummary struct {
	JobTitle       string      `json:"job_title"`
	CompanyName    string      `json:"company_name"`
	JobDescription string      `json:"job_description"`
	Skills         []skillName `json:"skills"`
}

type skillName struct {
	Name string `json:"name"`
}

func (s *Server) handleJobs(c *gin.Context) {
	if s.jobsDoc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "LinkedIn jobs file not found"})
		return
	}

	unique := resume.UniqueJobs(s.jobsDoc)
	if len(unique) > topJobsLimit {
		unique = unique[:topJobsLimit]
	}

	top := make([]jobSummary, 0, len(unique))
	for _, job := range unique {
		names := make([]skillName, 0, len(job.Skills))
		for _, sk := range job.Skills {
			names = append(names, skillName{Name: sk.Name})
		}
		top = append(top, jobSummary{
			JobTitle:       job.JobTitle,
			CompanyName:    job.CompanyName,
			JobDescription: job.JobDescription,
			Skills:         names,
		})
	}
	c.JSON(http.StatusOK, gin.H{"jobs": top})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.String(http.StatusOK, engine.FormatMetrics())
}
