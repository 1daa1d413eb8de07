package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidInput = errors.New("invalid input")

// pageParam reads ?page=, defaulting to 1 when absent or not a positive integer.
func pageParam(c *gin.Context, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// firstParam returns the first non-blank of the named query parameters.
func firstParam(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return v
		}
	}
	return ""
}

func requiredParam(c *gin.Context, names ...string) (string, error) {
	if v := firstParam(c, names...); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: missing query parameter %q", errInvalidInput, names[0])
}

func boolParam(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}
