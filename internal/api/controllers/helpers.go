package controllers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"beveragebuddy/pkg/utils"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.ErrInvalidID
	}
	return uint(id), nil
}

func searchParam(c *gin.Context) string {
	return strings.TrimSpace(c.Query("q"))
}

// listURL is where a list page lives for the given search term.
func listURL(path, search string) string {
	if search == "" {
		return path
	}
	return path + "?q=" + url.QueryEscape(search)
}
