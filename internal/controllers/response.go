package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// success {"error": false, "message"?, "data"} and
// failure {"error": true, "message", "detail"?}.

func respondOK(c *gin.Context, message string, data interface{}) {
	body := gin.H{"error": false, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"error": true, "message": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	c.JSON(status, body)
}

// uploadName lets a multipart file participate in presence validation before
// anything is written to disk.
func uploadName(fh *multipart.FileHeader, err error) string {
	if err != nil || fh == nil {
		return ""
	}
	return fh.Filename
}
