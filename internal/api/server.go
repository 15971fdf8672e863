package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/hbcon/festvote/docs"
	v1 "github.com/hbcon/festvote/internal/api/handler/v1"
	"github.com/hbcon/festvote/internal/api/middleware"
	"github.com/hbcon/festvote/internal/config"
	"github.com/hbcon/festvote/internal/repository"
	"github.com/hbcon/festvote/internal/repository/dao"
	"github.com/hbcon/festvote/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	catalog := service.NewCatalogService(conf.Catalog, http.DefaultClient)

	authHandler := s.initAuthHandler(db)
	votingHandler := s.initVotingHandler(db)
	beersHandler := s.initBeersHandler(db, catalog)
	roundHandler := s.initRoundHandler(db)
	checkinHandler := s.initCheckinHandler(db)
	votersHandler := s.initVotersHandler(db)
	settingsHandler := s.initSettingsHandler(db)
	resultsHandler := s.initResultsHandler(db, catalog)

	s.MountHandlers(authHandler, votingHandler, beersHandler, roundHandler,
		checkinHandler, votersHandler, settingsHandler, resultsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	organizerDAO := dao.NewOrganizerDAO(db)
	repo := repository.NewOrganizerRepository(organizerDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initVotingHandler(db *gorm.DB) *v1.VotingHandler {
	svc := service.NewVotingService(
		repository.NewVoteRepository(dao.NewVoteDAO(db)),
		repository.NewVoterRepository(dao.NewVoterDAO(db)),
		repository.NewRoundRepository(dao.NewRoundDAO(db)),
		repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		repository.NewSettingsRepository(dao.NewSettingsDAO(db)),
	)
	voterSvc := service.NewVoterService(repository.NewVoterRepository(dao.NewVoterDAO(db)))
	handler := v1.NewVotingHandler(svc, voterSvc)

	return handler
}

func (s *Server) initBeersHandler(db *gorm.DB, catalog *service.CatalogService) *v1.BeersHandler {
	roundSvc := service.NewRoundService(repository.NewRoundRepository(dao.NewRoundDAO(db)))
	checkinSvc := service.NewCheckinService(
		repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		repository.NewRoundRepository(dao.NewRoundDAO(db)),
		repository.NewSettingsRepository(dao.NewSettingsDAO(db)),
	)
	handler := v1.NewBeersHandler(roundSvc, checkinSvc, catalog)

	return handler
}

func (s *Server) initRoundHandler(db *gorm.DB) *v1.RoundHandler {
	roundDAO := dao.NewRoundDAO(db)
	repo := repository.NewRoundRepository(roundDAO)
	svc := service.NewRoundService(repo)
	handler := v1.NewRoundHandler(svc)

	return handler
}

func (s *Server) initCheckinHandler(db *gorm.DB) *v1.CheckinHandler {
	svc := service.NewCheckinService(
		repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		repository.NewRoundRepository(dao.NewRoundDAO(db)),
		repository.NewSettingsRepository(dao.NewSettingsDAO(db)),
	)
	handler := v1.NewCheckinHandler(svc)

	return handler
}

func (s *Server) initVotersHandler(db *gorm.DB) *v1.VotersHandler {
	voterDAO := dao.NewVoterDAO(db)
	repo := repository.NewVoterRepository(voterDAO)
	svc := service.NewVoterService(repo)
	handler := v1.NewVotersHandler(svc)

	return handler
}

func (s *Server) initSettingsHandler(db *gorm.DB) *v1.SettingsHandler {
	settingsDAO := dao.NewSettingsDAO(db)
	repo := repository.NewSettingsRepository(settingsDAO)
	svc := service.NewSettingsService(repo)
	handler := v1.NewSettingsHandler(svc)

	return handler
}

func (s *Server) initResultsHandler(db *gorm.DB, catalog *service.CatalogService) *v1.ResultsHandler {
	svc := service.NewTallyService(
		repository.NewVoteRepository(dao.NewVoteDAO(db)),
		repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		repository.NewRoundRepository(dao.NewRoundDAO(db)),
		catalog,
	)
	handler := v1.NewResultsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	votingHandler *v1.VotingHandler,
	beersHandler *v1.BeersHandler,
	roundHandler *v1.RoundHandler,
	checkinHandler *v1.CheckinHandler,
	votersHandler *v1.VotersHandler,
	settingsHandler *v1.SettingsHandler,
	resultsHandler *v1.ResultsHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.GET("/healthcheck", v1.HandleHealthcheck)
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/register/:voterID", votingHandler.HandleRegisterVoter)
		public.GET("/beers", beersHandler.HandleGetActiveRoundBeers)
		public.POST("/votes/toggle", votingHandler.HandleToggleVote)
		public.GET("/votes/current", votingHandler.HandleGetCurrentVotes)

		public.GET("/rounds/:roundID/results", resultsHandler.HandleRoundResults)
		public.GET("/leaderboard", resultsHandler.HandleLeaderboard)
	}

	export := s.Router.Group(basePath, middleware.RequireAPIKey(s.Config.Export.APIKey))
	{
		export.GET("/export/results", resultsHandler.HandleExportResults)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/rounds", roundHandler.HandleCreateRound)
		admin.GET("/rounds", roundHandler.HandleListRounds)
		admin.POST("/rounds/:roundID/activate", roundHandler.HandleActivateRound)
		admin.GET("/rounds/:roundID/startbahns", checkinHandler.HandleAvailableStartbahns)

		admin.POST("/beers/checkin", checkinHandler.HandleCheckinBeer)
		admin.GET("/beers/registrations", checkinHandler.HandleListRegistrations)
		admin.PATCH("/beers/:beerID/registration", checkinHandler.HandleUpdateRegistration)
		admin.DELETE("/beers/:beerID/registration", checkinHandler.HandleUnregisterBeer)
		admin.GET("/beers/votes", resultsHandler.HandleBeerVoteTable)

		admin.PUT("/startbahns", checkinHandler.HandleUpsertStartbahnConfig)
		admin.GET("/startbahns", checkinHandler.HandleListStartbahnConfigs)
		admin.DELETE("/startbahns/:startbahn", checkinHandler.HandleDeleteStartbahnConfig)

		admin.POST("/voters/generate", votersHandler.HandleGenerateVoters)
		admin.POST("/voters", votersHandler.HandleAddVoter)
		admin.GET("/voters", votersHandler.HandleListVoters)

		admin.GET("/settings", settingsHandler.HandleGetSettings)
		admin.PATCH("/settings", settingsHandler.HandleUpdateSettings)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Beer Festival Voting API"
	docs.SwaggerInfo.Description = "Weighted beer and presentation voting for festival competition rounds."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
