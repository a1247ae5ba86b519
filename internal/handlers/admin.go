package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/services"
	"github.com/Hereaj/portfolio-api/internal/session"
	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
	"github.com/go-chi/chi/v5"
)

// AuthService defines the interface for login/logout business logic
type AuthService interface {
	Login(ctx context.Context, username, password, origin string) (string, error)
	Logout(ctx context.Context, token string)
}

// ContentService defines the interface for the CRUD controller
type ContentService interface {
	UpdateHero(ctx context.Context, hero *models.Hero) error
	UpdateAbout(ctx context.Context, about *models.About) error

	CreateStat(ctx context.Context, stat *models.Stat) (int, error)
	UpdateStat(ctx context.Context, id int, stat *models.Stat) error
	DeleteStat(ctx context.Context, id int) error

	CreateProject(ctx context.Context, project *models.Project) (int, error)
	UpdateProject(ctx context.Context, id int, project *models.Project) error
	DeleteProject(ctx context.Context, id int) error

	CreateSkill(ctx context.Context, skill *models.Skill) (int, error)
	UpdateSkill(ctx context.Context, id int, skill *models.Skill) error
	DeleteSkill(ctx context.Context, id int) error

	CreateEducation(ctx context.Context, entry *models.EducationEntry) (int, error)
	UpdateEducation(ctx context.Context, id int, entry *models.EducationEntry) error
	DeleteEducation(ctx context.Context, id int) error

	AdminSnapshot(ctx context.Context) (*services.AdminSnapshot, error)
	Export(ctx context.Context) (*services.ExportSnapshot, error)
}

// AdminHandler handles the password-protected dashboard API
type AdminHandler struct {
	auth     AuthService
	content  ContentService
	ipConfig *pkghttp.IPConfig
}

func NewAdminHandler(auth AuthService, content ContentService, ipConfig *pkghttp.IPConfig) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		content:  content,
		ipConfig: ipConfig,
	}
}

// Request DTOs. Field names follow the dashboard's payloads.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type HeroRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type AboutRequest struct {
	Content string `json:"content" validate:"required"`
}

type StatRequest struct {
	Number    string `json:"number" validate:"required"`
	Label     string `json:"label" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

type ProjectRequest struct {
	Category       string   `json:"category" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Technologies   []string `json:"technologies"`
	Link           string   `json:"link"`
	LinkText       string   `json:"linkText"`
	IsCurrentStudy bool     `json:"isCurrentStudy"`
	SortOrder      int      `json:"sortOrder"`
}

type SkillRequest struct {
	Category  string `json:"category" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Level     string `json:"level" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

type EducationRequest struct {
	Title       string `json:"title" validate:"required"`
	DateRange   string `json:"dateRange" validate:"required"`
	Description string `json:"description" validate:"required"`
	SortOrder   int    `json:"sortOrder"`
}

// Response DTOs

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type MutationResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id,omitempty"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	origin := pkghttp.ClientOrigin(r, h.ipConfig)

	token, err := h.auth.Login(r.Context(), req.Username, req.Password, origin)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRateLimited):
			pkghttp.WriteRateLimited(w, "too many failed login attempts, try again later")
		case errors.Is(err, models.ErrInvalidCredentials):
			pkghttp.WriteInvalidCredentials(w, "invalid credentials")
		default:
			pkghttp.WriteStorageError(w)
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token})
}

// Logout handles POST /admin/logout. Always succeeds: revoking an
// unknown token still leaves the client logged out.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context(), r.Header.Get(session.TokenHeader))
	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

// GetData handles GET /admin/data
func (h *AdminHandler) GetData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.content.AdminSnapshot(r.Context())
	if err != nil {
		pkghttp.WriteStorageError(w)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, snapshot)
}

// Export handles GET /admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.content.Export(r.Context())
	if err != nil {
		pkghttp.WriteStorageError(w)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, export)
}

// UpdateHero handles PUT /admin/hero
func (h *AdminHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	hero := &models.Hero{Name: req.Name, Title: req.Title, Description: req.Description}
	if err := h.content.UpdateHero(r.Context(), hero); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

// UpdateAbout handles PUT /admin/about
func (h *AdminHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req AboutRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.content.UpdateAbout(r.Context(), &models.About{Content: req.Content}); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

// Stats

func (h *AdminHandler) CreateStat(w http.ResponseWriter, r *http.Request) {
	var req StatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	id, err := h.content.CreateStat(r.Context(), statFromRequest(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true, ID: id})
}

func (h *AdminHandler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req StatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.content.UpdateStat(r.Context(), id, statFromRequest(&req)); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

func (h *AdminHandler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.content.DeleteStat)
}

// Projects

func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	id, err := h.content.CreateProject(r.Context(), projectFromRequest(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true, ID: id})
}

func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.content.UpdateProject(r.Context(), id, projectFromRequest(&req)); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.content.DeleteProject)
}

// Skills

func (h *AdminHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	id, err := h.content.CreateSkill(r.Context(), skillFromRequest(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true, ID: id})
}

func (h *AdminHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req SkillRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.content.UpdateSkill(r.Context(), id, skillFromRequest(&req)); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

func (h *AdminHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.content.DeleteSkill)
}

// Education

func (h *AdminHandler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var req EducationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	id, err := h.content.CreateEducation(r.Context(), educationFromRequest(&req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true, ID: id})
}

func (h *AdminHandler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req EducationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.content.UpdateEducation(r.Context(), id, educationFromRequest(&req)); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

func (h *AdminHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.content.DeleteEducation)
}

// Helpers

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, fn func(context.Context, int) error) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, MutationResponse{Success: true})
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		pkghttp.WriteBadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

func statFromRequest(req *StatRequest) *models.Stat {
	return &models.Stat{Number: req.Number, Label: req.Label, SortOrder: req.SortOrder}
}

func projectFromRequest(req *ProjectRequest) *models.Project {
	return &models.Project{
		Category:       req.Category,
		Title:          req.Title,
		Description:    req.Description,
		Technologies:   req.Technologies,
		Link:           req.Link,
		LinkText:       req.LinkText,
		IsCurrentStudy: req.IsCurrentStudy,
		SortOrder:      req.SortOrder,
	}
}

func skillFromRequest(req *SkillRequest) *models.Skill {
	return &models.Skill{Category: req.Category, Name: req.Name, Level: req.Level, SortOrder: req.SortOrder}
}

func educationFromRequest(req *EducationRequest) *models.EducationEntry {
	return &models.EducationEntry{
		Title:       req.Title,
		DateRange:   req.DateRange,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
}

// writeRequestError maps decode/validation failures to structured 400s.
func writeRequestError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		pkghttp.WriteValidationError(w, ve.Error(), ve.Fields)
		return
	}
	pkghttp.WriteBadRequest(w, err.Error())
}

// writeServiceError maps service failures to structured rejections
// without leaking storage internals.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		pkghttp.WriteNotFound(w, "no such resource")
	default:
		pkghttp.WriteStorageError(w)
	}
}
