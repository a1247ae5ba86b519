package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/google/uuid"
)

// Storage interfaces for the CRUD controller. One per resource kind so
// tests can fake exactly what they exercise.

type HeroStore interface {
	Get(ctx context.Context) (*models.Hero, error)
	Upsert(ctx context.Context, hero *models.Hero) error
}

type AboutStore interface {
	Get(ctx context.Context) (*models.About, error)
	Upsert(ctx context.Context, about *models.About) error
}

type StatStore interface {
	List(ctx context.Context) ([]*models.Stat, error)
	Create(ctx context.Context, stat *models.Stat) (int, error)
	Update(ctx context.Context, id int, stat *models.Stat) error
	Delete(ctx context.Context, id int) error
}

type ProjectStore interface {
	List(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, project *models.Project) (int, error)
	Update(ctx context.Context, id int, project *models.Project) error
	Delete(ctx context.Context, id int) error
}

type SkillStore interface {
	List(ctx context.Context) ([]*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) (int, error)
	Update(ctx context.Context, id int, skill *models.Skill) error
	Delete(ctx context.Context, id int) error
}

type EducationStore interface {
	List(ctx context.Context) ([]*models.EducationEntry, error)
	Create(ctx context.Context, entry *models.EducationEntry) (int, error)
	Update(ctx context.Context, id int, entry *models.EducationEntry) error
	Delete(ctx context.Context, id int) error
}

type ContactStore interface {
	Get(ctx context.Context) (*models.Contact, error)
}

// PortfolioData is the aggregate content document the public site renders.
type PortfolioData struct {
	Hero           *models.Hero              `json:"hero"`
	Stats          []*models.Stat            `json:"stats"`
	About          *models.About             `json:"about"`
	CurrentStudies []*models.Project         `json:"current_studies"`
	Projects       []*models.Project         `json:"projects"`
	Skills         map[string][]*models.Skill `json:"skills"`
	Education      []*models.EducationEntry  `json:"education"`
	Contact        *models.Contact           `json:"contact"`
}

// AdminSnapshot is the flat view the admin dashboard edits against.
type AdminSnapshot struct {
	Hero      *models.Hero             `json:"hero"`
	Stats     []*models.Stat           `json:"stats"`
	About     *models.About            `json:"about"`
	Projects  []*models.Project        `json:"projects"`
	Skills    []*models.Skill          `json:"skills"`
	Education []*models.EducationEntry `json:"education"`
	Contact   *models.Contact          `json:"contact"`
}

// ExportSnapshot is an AdminSnapshot stamped for backup purposes.
type ExportSnapshot struct {
	AdminSnapshot
	ExportID   string    `json:"export_id"`
	ExportedAt time.Time `json:"exported_at"`
}

// ContentService mediates all reads and writes of portfolio content.
type ContentService struct {
	heroes    HeroStore
	abouts    AboutStore
	stats     StatStore
	projects  ProjectStore
	skills    SkillStore
	education EducationStore
	contacts  ContactStore
	logger    *slog.Logger
}

func NewContentService(
	heroes HeroStore,
	abouts AboutStore,
	stats StatStore,
	projects ProjectStore,
	skills SkillStore,
	education EducationStore,
	contacts ContactStore,
	logger *slog.Logger,
) *ContentService {
	return &ContentService{
		heroes:    heroes,
		abouts:    abouts,
		stats:     stats,
		projects:  projects,
		skills:    skills,
		education: education,
		contacts:  contacts,
		logger:    logger,
	}
}

// Singleton upserts

func (s *ContentService) UpdateHero(ctx context.Context, hero *models.Hero) error {
	if err := s.heroes.Upsert(ctx, hero); err != nil {
		s.logger.Error("failed to update hero", slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}

func (s *ContentService) UpdateAbout(ctx context.Context, about *models.About) error {
	if err := s.abouts.Upsert(ctx, about); err != nil {
		s.logger.Error("failed to update about", slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}

// Stats

func (s *ContentService) CreateStat(ctx context.Context, stat *models.Stat) (int, error) {
	id, err := s.stats.Create(ctx, stat)
	if err != nil {
		s.logger.Error("failed to create stat", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}
	return id, nil
}

func (s *ContentService) UpdateStat(ctx context.Context, id int, stat *models.Stat) error {
	return s.mapWriteError("stat", id, s.stats.Update(ctx, id, stat))
}

func (s *ContentService) DeleteStat(ctx context.Context, id int) error {
	return s.mapDeleteError("stat", id, s.stats.Delete(ctx, id))
}

// Projects

func (s *ContentService) CreateProject(ctx context.Context, project *models.Project) (int, error) {
	id, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error("failed to create project", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}
	return id, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id int, project *models.Project) error {
	return s.mapWriteError("project", id, s.projects.Update(ctx, id, project))
}

func (s *ContentService) DeleteProject(ctx context.Context, id int) error {
	return s.mapDeleteError("project", id, s.projects.Delete(ctx, id))
}

// Skills

func (s *ContentService) CreateSkill(ctx context.Context, skill *models.Skill) (int, error) {
	id, err := s.skills.Create(ctx, skill)
	if err != nil {
		s.logger.Error("failed to create skill", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}
	return id, nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, id int, skill *models.Skill) error {
	return s.mapWriteError("skill", id, s.skills.Update(ctx, id, skill))
}

func (s *ContentService) DeleteSkill(ctx context.Context, id int) error {
	return s.mapDeleteError("skill", id, s.skills.Delete(ctx, id))
}

// Education

func (s *ContentService) CreateEducation(ctx context.Context, entry *models.EducationEntry) (int, error) {
	id, err := s.education.Create(ctx, entry)
	if err != nil {
		s.logger.Error("failed to create education entry", slog.Any("error", err))
		return 0, models.ErrInternalServer
	}
	return id, nil
}

func (s *ContentService) UpdateEducation(ctx context.Context, id int, entry *models.EducationEntry) error {
	return s.mapWriteError("education entry", id, s.education.Update(ctx, id, entry))
}

func (s *ContentService) DeleteEducation(ctx context.Context, id int) error {
	return s.mapDeleteError("education entry", id, s.education.Delete(ctx, id))
}

// Aggregates

// PortfolioData assembles the public content document. Absent singletons
// are returned as nulls rather than failing the page.
func (s *ContentService) PortfolioData(ctx context.Context) (*PortfolioData, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	data := &PortfolioData{
		Hero:           snapshot.Hero,
		Stats:          snapshot.Stats,
		About:          snapshot.About,
		CurrentStudies: make([]*models.Project, 0),
		Projects:       make([]*models.Project, 0),
		Skills:         make(map[string][]*models.Skill),
		Education:      snapshot.Education,
		Contact:        snapshot.Contact,
	}

	for _, project := range snapshot.Projects {
		if project.IsCurrentStudy {
			data.CurrentStudies = append(data.CurrentStudies, project)
		} else {
			data.Projects = append(data.Projects, project)
		}
	}

	// List is already ordered by category then sort_order, so each
	// category's slice stays in display order.
	for _, skill := range snapshot.Skills {
		data.Skills[skill.Category] = append(data.Skills[skill.Category], skill)
	}

	return data, nil
}

func (s *ContentService) AdminSnapshot(ctx context.Context) (*AdminSnapshot, error) {
	return s.snapshot(ctx)
}

func (s *ContentService) Export(ctx context.Context) (*ExportSnapshot, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportSnapshot{
		AdminSnapshot: *snapshot,
		ExportID:      uuid.New().String(),
		ExportedAt:    time.Now().UTC(),
	}, nil
}

func (s *ContentService) snapshot(ctx context.Context) (*AdminSnapshot, error) {
	snapshot := &AdminSnapshot{}

	var err error
	if snapshot.Hero, err = s.optionalHero(ctx); err != nil {
		return nil, err
	}
	if snapshot.About, err = s.optionalAbout(ctx); err != nil {
		return nil, err
	}
	if snapshot.Contact, err = s.optionalContact(ctx); err != nil {
		return nil, err
	}

	if snapshot.Stats, err = s.stats.List(ctx); err != nil {
		s.logger.Error("failed to list stats", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	if snapshot.Projects, err = s.projects.List(ctx); err != nil {
		s.logger.Error("failed to list projects", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	if snapshot.Skills, err = s.skills.List(ctx); err != nil {
		s.logger.Error("failed to list skills", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	if snapshot.Education, err = s.education.List(ctx); err != nil {
		s.logger.Error("failed to list education entries", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return snapshot, nil
}

func (s *ContentService) optionalHero(ctx context.Context) (*models.Hero, error) {
	hero, err := s.heroes.Get(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to get hero", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return hero, nil
}

func (s *ContentService) optionalAbout(ctx context.Context) (*models.About, error) {
	about, err := s.abouts.Get(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to get about", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return about, nil
}

func (s *ContentService) optionalContact(ctx context.Context) (*models.Contact, error) {
	contact, err := s.contacts.Get(ctx)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to get contact info", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return contact, nil
}

func (s *ContentService) mapWriteError(kind string, id int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Info("update target not found", slog.String("kind", kind), slog.Int("id", id))
		return models.ErrNotFound
	}
	s.logger.Error("failed to update "+kind, slog.Int("id", id), slog.Any("error", err))
	return models.ErrInternalServer
}

func (s *ContentService) mapDeleteError(kind string, id int, err error) error {
	if err == nil {
		return nil
	}
	s.logger.Error("failed to delete "+kind, slog.Int("id", id), slog.Any("error", err))
	return models.ErrInternalServer
}
