package models

import (
	"net/url"
	"strconv"
)

// Page is one slice of a paginated listing. Page is zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
	TotalElements int64 `json:"totalElements"`
}

func pageValues(page, size int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if size > 0 {
		v.Set("size", strconv.Itoa(size))
	}
	return v
}
