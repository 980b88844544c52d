package models

import (
	"net/url"
	"strconv"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one member's rating of another member within a group.
type Review struct {
	ID               int64     `json:"id"`
	GroupID          int64     `json:"groupId"`
	ReviewerID       int64     `json:"reviewerId"`
	ReviewerNickname string    `json:"reviewerNickname"`
	RevieweeID       int64     `json:"revieweeId"`
	RevieweeNickname string    `json:"revieweeNickname"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ReviewRequest is the body of POST /reviews and PUT /reviews/{id}.
// GroupID and RevieweeID are ignored by the server on update.
type ReviewRequest struct {
	GroupID    int64  `json:"groupId" validate:"required,gt=0"`
	RevieweeID int64  `json:"revieweeId" validate:"required,gt=0"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Comment    string `json:"comment,omitempty" validate:"max=500"`
}

// ReviewQuery filters GET /reviews.
type ReviewQuery struct {
	GroupID    int64
	RevieweeID int64
	Page       int
	Size       int
}

func (q ReviewQuery) Values() url.Values {
	v := pageValues(q.Page, q.Size)
	if q.GroupID > 0 {
		v.Set("groupId", strconv.FormatInt(q.GroupID, 10))
	}
	if q.RevieweeID > 0 {
		v.Set("revieweeId", strconv.FormatInt(q.RevieweeID, 10))
	}
	return v
}
