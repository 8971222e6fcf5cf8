package config

import (
	"syllabus-analyzer/internal/domain"
	"syllabus-analyzer/internal/repository"
	"syllabus-analyzer/internal/service"
	"syllabus-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	CourseRepository domain.CourseRepository
	Extractor        domain.TextExtractor
	Analyzer         domain.SyllabusAnalyzer
	CourseService    domain.CourseService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	courseRepo := repository.NewCourseRepository()
	extractor := service.NewDocumentExtractor(appLogger)
	analyzer := service.NewOpenAIAnalyzer(cfg, appLogger)
	courseService := service.NewCourseService(courseRepo, extractor, analyzer, appLogger)

	return &Container{
		Config:           cfg,
		Logger:           appLogger,
		CourseRepository: courseRepo,
		Extractor:        extractor,
		Analyzer:         analyzer,
		CourseService:    courseService,
	}
}
