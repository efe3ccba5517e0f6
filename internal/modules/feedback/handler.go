package feedback

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesignal/core/internal/pkg/ratelimit"
	"github.com/thesignal/core/internal/pkg/response"
)

// maxBodyBytes bounds the request body before any parsing happens.
const maxBodyBytes = 10000

type submitRequest struct {
	ArticleID string          `json:"articleId"`
	Ratings   json.RawMessage `json:"ratings"`
	Tags      []string        `json:"tags"`
	Comment   string          `json:"comment"`
}

type submitRatings struct {
	Accurate  json.RawMessage `json:"accurate"`
	Balanced  json.RawMessage `json:"balanced"`
	Important json.RawMessage `json:"important"`
}

type submitResponse struct {
	Success bool    `json:"success"`
	Summary Summary `json:"summary"`
}

// RegisterRoutes mounts the feedback endpoints on rg. The limiter keys
// on client IP and only counts submissions that passed validation.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service, limiter *ratelimit.Limiter, logger *zap.Logger) {
	log := logger.Named("FeedbackHandler")

	rg.POST("/feedback", func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.PayloadTooLarge(c, "request body too large")
				return
			}
			response.BadRequest(c, "could not read request body")
			return
		}

		var req submitRequest
		if err := json.Unmarshal(body, &req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
		if req.ArticleID == "" {
			response.BadRequest(c, "articleId is required")
			return
		}
		if _, err := uuid.Parse(req.ArticleID); err != nil {
			response.BadRequest(c, "invalid articleId")
			return
		}

		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			response.TooManyRequests(c, "60")
			return
		}

		// A malformed or missing ratings object degrades to all-unknown
		// rather than rejecting the submission.
		var ratings submitRatings
		if len(req.Ratings) > 0 {
			_ = json.Unmarshal(req.Ratings, &ratings)
		}

		summary, err := svc.Submit(Entry{
			ArticleID: req.ArticleID,
			Accurate:  coerceRating(ratings.Accurate),
			Balanced:  coerceRating(ratings.Balanced),
			Important: coerceRating(ratings.Important),
			Tags:      req.Tags,
			Comment:   req.Comment,
			IP:        ip,
		})
		if err != nil {
			log.Error("feedback submit failed",
				zap.String("articleId", req.ArticleID),
				zap.Error(err),
			)
			response.InternalError(c)
			return
		}
		response.OK(c, submitResponse{Success: true, Summary: summary})
	})

	rg.GET("/feedback", func(c *gin.Context) {
		articleID := c.Query("articleId")
		if articleID == "" {
			response.BadRequest(c, "articleId is required")
			return
		}
		if _, err := uuid.Parse(articleID); err != nil {
			response.BadRequest(c, "invalid articleId")
			return
		}

		summary, err := svc.ArticleSummary(articleID)
		if err != nil {
			log.Error("summary lookup failed",
				zap.String("articleId", articleID),
				zap.Error(err),
			)
			response.InternalError(c)
			return
		}
		response.OK(c, summary)
	})
}
