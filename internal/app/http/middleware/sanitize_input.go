package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInputMiddleware cleans string fields in JSON bodies with bluemonday
// before handlers see them. Editor routes run through this too: by the time
// text-block content reaches the document it is markup-safe, which is what
// lets the code generator emit it verbatim.
func SanitizeInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.UGCPolicy()
	strict := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		sanitizeValue(body, policy, strict)

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// sanitizeValue walks nested JSON. Keys named "text" keep basic user markup
// (bold, links); every other string is stripped to plain text.
func sanitizeValue(v interface{}, policy, strict *bluemonday.Policy) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if str, ok := inner.(string); ok {
				if k == "text" {
					val[k] = policy.Sanitize(str)
				} else {
					val[k] = strict.Sanitize(str)
				}
				continue
			}
			sanitizeValue(inner, policy, strict)
		}
	case []interface{}:
		for _, inner := range val {
			sanitizeValue(inner, policy, strict)
		}
	}
}
