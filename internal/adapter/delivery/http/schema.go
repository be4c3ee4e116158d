package http

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

// urlRequest represents the structure for a request to shorten or modify a URL.
type urlRequest struct {
	LongURL string `json:"long_url" validate:"required,url"`
}

// credentialsRequest is the body of register and login requests.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type urlResponse struct {
	ShortCode string    `json:"short_code"`
	LongURL   string    `json:"long_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toURLResponse(url *entity.URL) urlResponse {
	return urlResponse{
		ShortCode: url.ShortCode,
		LongURL:   url.LongURL,
		CreatedAt: url.CreatedAt,
		UpdatedAt: url.UpdatedAt,
	}
}

// toURLListResponse orders urls by creation time, oldest first.
func toURLListResponse(urls map[string]*entity.URL) []urlResponse {
	sorted := slices.SortedFunc(maps.Values(urls), func(a, b *entity.URL) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ShortCode, b.ShortCode))
	})

	resp := make([]urlResponse, 0, len(sorted))
	for _, url := range sorted {
		resp = append(resp, toURLResponse(url))
	}

	return resp
}

type visitResponse struct {
	VisitorID string    `json:"visitor_id"`
	Timestamp time.Time `json:"timestamp"`
}

type urlStats struct {
	Visits         int             `json:"visits"`
	UniqueVisitors int             `json:"unique_visitors"`
	VisitLog       []visitResponse `json:"visit_log"`
}

type urlStatsResponse struct {
	urlResponse
	Stats urlStats `json:"stats"`
}

func toURLStatsResponse(url *entity.URL) urlStatsResponse {
	log := make([]visitResponse, 0, len(url.Visits))
	for _, v := range url.Visits {
		log = append(log, visitResponse{
			VisitorID: v.VisitorID,
			Timestamp: v.Timestamp,
		})
	}

	return urlStatsResponse{
		urlResponse: toURLResponse(url),
		Stats: urlStats{
			Visits:         url.VisitCount(),
			UniqueVisitors: url.UniqueVisitors(),
			VisitLog:       log,
		},
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
