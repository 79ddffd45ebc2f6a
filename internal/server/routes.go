// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "devagent-backend/docs"
	"devagent-backend/internal/auth"
	"devagent-backend/internal/controller/company"
	"devagent-backend/internal/controller/offer"
	"devagent-backend/internal/controller/skill"
	"devagent-backend/internal/controller/step"
	"devagent-backend/internal/controller/steptype"
	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/middleware"
	"devagent-backend/internal/telemetry"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.SafeHeader())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(s.Blacklist)

	offerService := lifecycle.NewOfferService(s.DB)
	stepService := lifecycle.NewStepService(s.DB)
	offerController := offer.NewOfferController(offerService, stepService)
	stepController := step.NewStepController(stepService)
	companyController := company.NewCompanyController(s.DB)
	skillController := skill.NewSkillController(s.DB)
	stepTypeController := steptype.NewStepTypeController(s.DB)

	rateLimit := middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond, s.Redis)

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(telemetry.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.BodyLimit(s.Config.BodyLimitBytes))
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", rateLimit, lAuth.LocalLoginHandler)
			authRoute.POST("register", rateLimit, lAuth.LocalRegisterHandler)
		}

		needAuth := v1.Group("")
		needAuth.Use(middleware.JwtBlacklistCheck(s.Blacklist), middleware.RequireAuth(s.DB), rateLimit)
		{
			needAuth.POST("auth/logout", logout.LogoutHandler)

			offerRoute := needAuth.Group("/offers")
			{
				offerRoute.GET("", offerController.ListOffers)
				offerRoute.POST("", offerController.CreateOffer)
				offerRoute.GET("/:id", offerController.GetOffer)
				offerRoute.PATCH("/:id", offerController.UpdateOffer)
				offerRoute.DELETE("/:id", offerController.DeleteOffer)
				offerRoute.POST("/:id/send", offerController.SendOffer)
				offerRoute.POST("/:id/sign-contract", offerController.SignContract)
				offerRoute.POST("/:id/resign", offerController.ResignOffer)
				offerRoute.POST("/:id/steps", offerController.CreateStep)
			}

			stepRoute := needAuth.Group("/steps")
			{
				stepRoute.GET("/:id", stepController.GetStep)
				stepRoute.PATCH("/:id", stepController.UpdateStep)
				stepRoute.POST("/:id/finish", stepController.FinishStep)
				stepRoute.POST("/:id/accept", stepController.AcceptStep)
				stepRoute.POST("/:id/reject", stepController.RejectStep)
				stepRoute.POST("/:id/resign", stepController.ResignStep)
			}

			companyRoute := needAuth.Group("/companies")
			{
				companyRoute.GET("", companyController.ListCompanies)
				companyRoute.POST("", companyController.CreateCompany)
				companyRoute.PATCH("/:id", companyController.UpdateCompany)
			}

			needAuth.GET("/skills", skillController.ListSkills)
			needAuth.POST("/skills", skillController.CreateSkill)
			needAuth.GET("/step-types", stepTypeController.ListStepTypes)
			needAuth.POST("/step-types", stepTypeController.CreateStepType)
		}
	}

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()

	if s.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			stats["status"] = "down"
			stats["redis"] = err.Error()
		} else {
			stats["redis"] = "up"
		}
	}

	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
