// Package models defines the client-side data models exchanged with the
// study-group API: groups, reviews, profiles, pages and auth payloads.
package models

import (
	"net/url"
	"strconv"
	"time"
)

// GroupStatus is the lifecycle state of a recruitment post.
type GroupStatus string

const (
	GroupRecruiting GroupStatus = "RECRUITING"
	GroupExpired    GroupStatus = "EXPIRED"
	GroupDeleted    GroupStatus = "DELETED"
)

// Group is an immutable snapshot of a study group as returned by the server.
// Every change goes through the API and a refetch.
type Group struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryID    int64  `json:"categoryId"`
	SubcategoryID int64  `json:"subcategoryId"`

	// Capacity is nil when the group has no member limit.
	Capacity *int `json:"capacity,omitempty"`

	LeaderID       int64  `json:"leaderId"`
	LeaderNickname string `json:"leaderNickname"`

	// Online groups have no Location.
	Online   bool   `json:"online"`
	Location string `json:"location,omitempty"`

	Status    GroupStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateGroupRequest is the body of POST /groups.
type CreateGroupRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=2000"`
	CategoryID    int64  `json:"categoryId" validate:"required,gt=0"`
	SubcategoryID int64  `json:"subcategoryId,omitempty" validate:"gte=0"`
	Capacity      *int   `json:"capacity,omitempty" validate:"omitempty,gte=2"`
	Online        bool   `json:"online"`
	Location      string `json:"location,omitempty" validate:"required_if=Online false"`
}

// GroupQuery filters GET /groups. Zero fields are omitted.
type GroupQuery struct {
	Keyword    string
	CategoryID int64
	Page       int
	Size       int
}

// Values encodes q as URL query parameters.
func (q GroupQuery) Values() url.Values {
	v := pageValues(q.Page, q.Size)
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	return v
}
