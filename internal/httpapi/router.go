package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig bundles the handlers and middleware inputs for NewRouter.
type RouterConfig struct {
	Log         *zap.SugaredLogger
	CORSOrigins []string

	Plans       *PlanHandler
	Chats       *ChatHandler
	Users       *UserHandler
	Courses     *CourseHandler
	Assignments *AssignmentHandler
}

// NewRouter assembles the full route table.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Log != nil {
		router.Use(RequestLogger(cfg.Log))
	}
	router.Use(CORS(cfg.CORSOrigins))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	agent := router.Group("/agent")
	{
		agent.POST("/plan/:userID", cfg.Plans.Plan)
		agent.GET("/health", cfg.Plans.Health)
	}

	chat := router.Group("/chat")
	{
		chat.POST("/", cfg.Chats.Chat)
		chat.GET("/health", cfg.Chats.Health)
	}

	router.POST("/users", cfg.Users.Create)
	router.GET("/users/:userID", cfg.Users.Get)
	router.GET("/users/:userID/assignments", cfg.Assignments.ListByUser)
	router.GET("/users/:userID/courses", cfg.Courses.ListByUser)

	assignments := router.Group("/assignments")
	{
		assignments.POST("", cfg.Assignments.Create)
		assignments.GET("/:id", cfg.Assignments.Get)
		assignments.PUT("/:id", cfg.Assignments.Update)
		assignments.DELETE("/:id", cfg.Assignments.Delete)
	}

	courses := router.Group("/courses")
	{
		courses.POST("", cfg.Courses.Create)
		courses.GET("/:id", cfg.Courses.Get)
		courses.PUT("/:id", cfg.Courses.Update)
		courses.DELETE("/:id", cfg.Courses.Delete)
	}

	return router
}
