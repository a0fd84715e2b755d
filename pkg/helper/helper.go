package helper

import (
	"fmt"
	"strings"

	"github.com/savioruz/courtside/pkg/constant"
)

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func DefaultPagination(page, limit int) (resultPage, resultLimit int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultLimit = limit
	if resultLimit <= 0 {
		resultLimit = constant.PaginationDefaultLimit
	}

	return resultPage, resultLimit
}

// BearerToken extracts the token part of an Authorization header value.
func BearerToken(header string) (string, bool) {
	const parts = 2

	fields := strings.SplitN(header, " ", parts)
	if len(fields) != parts || fields[0] != "Bearer" || fields[1] == "" {
		return "", false
	}

	return fields[1], true
}
