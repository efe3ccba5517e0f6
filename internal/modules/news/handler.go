package news

import (
	"github.com/gin-gonic/gin"
	"github.com/thesignal/core/internal/models"
	"github.com/thesignal/core/internal/pkg/response"
)

const (
	defaultCategoryLimit = 10
	relatedLimit         = 3
)

type articleList struct {
	Articles []models.ArticleModel `json:"articles"`
}

type articleDetail struct {
	Article models.ArticleModel   `json:"article"`
	Related []models.ArticleModel `json:"related"`
}

// RegisterRoutes mounts the article read endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, agg *Aggregator) {
	rg.GET("/news", func(c *gin.Context) {
		category := c.Query("category")
		if category == "" {
			response.OK(c, agg.AllLatest())
			return
		}
		if !ValidCategory(category) {
			response.BadRequest(c, "unknown category: "+category)
			return
		}
		response.OK(c, articleList{Articles: agg.ByCategory(category, defaultCategoryLimit)})
	})

	rg.GET("/news/article/:slug", func(c *gin.Context) {
		article := agg.BySlug(c.Param("slug"))
		if article == nil {
			response.NotFound(c, "article not found")
			return
		}
		response.OK(c, articleDetail{
			Article: *article,
			Related: agg.Related(article, relatedLimit),
		})
	})

	rg.GET("/news/id/:id", func(c *gin.Context) {
		article := agg.ByID(c.Param("id"))
		if article == nil {
			response.NotFound(c, "article not found")
			return
		}
		response.OK(c, articleDetail{
			Article: *article,
			Related: agg.Related(article, relatedLimit),
		})
	})
}
