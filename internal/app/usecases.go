package app

import (
	"time"

	"skill-matrix/internal/database"
	"skill-matrix/internal/pkg/jwt"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase"
)

// Usecases is the application layer wired over one database handle.
type Usecases struct {
	Skills      *usecase.Skill
	Personnel   *usecase.Personnel
	Assignments *usecase.Assignment
	Projects    *usecase.Project
	Matching    *usecase.Matching
	Reports     *usecase.Report
	// Auth is nil when Deps.Tokens is nil.
	Auth *usecase.Auth
}

// Deps are the optional collaborators. Zero values disable caching,
// notifications, metrics and auth.
type Deps struct {
	Cache         usecase.Cache
	CacheObserver usecase.CacheObserver
	MatchObserver usecase.MatchObserver
	Notifier      usecase.ChangeNotifier
	Tokens        jwt.Service
	Log           logger.Logger
	StatsTTL      time.Duration
}

func NewUsecases(db database.DB, deps Deps) *Usecases {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}

	skills := repository.NewPostgresSkillRepository(db)
	people := repository.NewPostgresPersonnelRepository(db)
	assignments := repository.NewPostgresAssignmentRepository(db)
	projects := repository.NewPostgresProjectRepository(db)
	requirements := repository.NewPostgresRequirementRepository(db)
	reports := repository.NewPostgresReportRepository(db)

	feed := usecase.NewChangeFeed(deps.Cache, deps.Notifier, log.Named("changes"))

	uc := &Usecases{
		Skills:      usecase.NewSkillUsecase(skills, feed),
		Personnel:   usecase.NewPersonnelUsecase(people, feed),
		Assignments: usecase.NewAssignmentUsecase(assignments, people, skills, feed),
		Projects:    usecase.NewProjectUsecase(projects, requirements, skills, feed),
		Matching:    usecase.NewMatchingUsecase(projects, requirements, assignments, deps.MatchObserver, log.Named("matching")),
		Reports:     usecase.NewReportUsecase(reports, deps.Cache, deps.StatsTTL, deps.CacheObserver, log.Named("reports")),
	}
	if deps.Tokens != nil {
		uc.Auth = usecase.NewAuthUsecase(repository.NewPostgresUserRepository(db), deps.Tokens)
	}
	return uc
}
