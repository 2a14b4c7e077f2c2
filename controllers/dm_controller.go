package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"dmforge/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type GenerateDMRequest struct {
	AthleteName    string `json:"athlete_name"`
	Accomplishment string `json:"accomplishment"`
}

type GenerateDMResponse struct {
	DM string `json:"dm"`
}

// Home renders the empty outreach form.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"dm":             "",
		"athleteName":    "",
		"accomplishment": "",
	})
}

// GenerateDMUI handles the form submission and re-renders the page with the
// generated message (or an inline error).
func GenerateDMUI(c *gin.Context) {
	athleteName := strings.TrimSpace(c.PostForm("athlete_name"))
	accomplishment := strings.TrimSpace(c.PostForm("accomplishment"))

	if athleteName == "" {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"dm":             "Please provide an athlete name.",
			"athleteName":    "",
			"accomplishment": "",
		})
		return
	}

	dm, err := services.GenerateDM(c.Request.Context(), athleteName, accomplishment)
	if err != nil {
		logrus.Errorf("DM generation failed for %q: %v", athleteName, err)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"dm":             "Something went wrong while generating the DM. Please try again.",
			"athleteName":    athleteName,
			"accomplishment": accomplishment,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"dm":             dm,
		"athleteName":    athleteName,
		"accomplishment": accomplishment,
	})
}

// GenerateDM is the JSON endpoint: {athlete_name, accomplishment?} -> {dm}.
func GenerateDM(c *gin.Context) {
	var req GenerateDMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	athleteName := strings.TrimSpace(req.AthleteName)
	if athleteName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'athlete_name' in request body"})
		return
	}

	dm, err := services.GenerateDM(c.Request.Context(), athleteName, strings.TrimSpace(req.Accomplishment))
	if err != nil {
		logrus.Errorf("DM generation failed for %q: %v", athleteName, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateDMResponse{DM: dm})
}

// StreamDM validates the same JSON payload, then replays the generated
// message over server-sent events: a progress event first, one event per
// word, and a terminal [DONE] marker. The model call runs after the progress
// event has been flushed, so an upstream failure at that point is reported as
// an event rather than a status code.
func StreamDM(c *gin.Context) {
	var req GenerateDMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	athleteName := strings.TrimSpace(req.AthleteName)
	if athleteName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'athlete_name' in request body"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	writeEvent(c.Writer, "Generating DM...")
	c.Writer.Flush()

	chunks, err := services.StreamDM(c.Request.Context(), athleteName, strings.TrimSpace(req.Accomplishment))
	if err != nil {
		logrus.Errorf("DM generation failed for %q: %v", athleteName, err)
		writeEvent(c.Writer, err.Error())
		writeEvent(c.Writer, "[DONE]")
		c.Writer.Flush()
		return
	}

	c.Stream(func(w io.Writer) bool {
		chunk, ok := <-chunks
		if !ok {
			writeEvent(w, "[DONE]")
			return false
		}
		writeEvent(w, chunk)
		return true
	})
}

func writeEvent(w io.Writer, payload string) {
	fmt.Fprintf(w, "data: %s\n\n", payload)
}
