package http

import (
	"github.com/KaiMitchell/ssbackendreg/internal/delivery/http/handler"
	"github.com/KaiMitchell/ssbackendreg/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Router struct {
	candidateHandler *handler.CandidateHandler
	matchHandler     *handler.MatchHandler
	skillHandler     *handler.SkillHandler
	profileHandler   *handler.ProfileHandler
	log              *logrus.Logger
}

func NewRouter(
	candidateHandler *handler.CandidateHandler,
	matchHandler *handler.MatchHandler,
	skillHandler *handler.SkillHandler,
	profileHandler *handler.ProfileHandler,
	log *logrus.Logger,
) *Router {
	return &Router{
		candidateHandler: candidateHandler,
		matchHandler:     matchHandler,
		skillHandler:     skillHandler,
		profileHandler:   profileHandler,
		log:              log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(r.log), gin.Recovery())

	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		candidates := v1.Group("/candidates")
		{
			candidates.GET("", r.candidateHandler.Browse)
			candidates.GET("/teaching", r.candidateHandler.FilteredTeaching)
			candidates.GET("/learning", r.candidateHandler.FilteredLearning)
			candidates.POST("/quick-filter", r.candidateHandler.QuickFilter)
		}

		v1.GET("/skills", r.skillHandler.Catalog)

		users := v1.Group("/users")
		{
			users.GET("/:username/skills", r.skillHandler.UserSkills)
			users.POST("/:username/skills", r.skillHandler.Declare)
			users.GET("/:username/profile-skills", r.skillHandler.ProfileSkills)
			users.GET("/:username/matches", r.matchHandler.Matches)
			users.PUT("/:username/description", r.profileHandler.UpdateDescription)
		}

		requests := v1.Group("/match-requests")
		{
			requests.POST("", r.matchHandler.Propose)
			requests.DELETE("", r.matchHandler.Cancel)
			requests.POST("/accept", r.matchHandler.Accept)
		}
	}

	return router
}
