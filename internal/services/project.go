package services

import (
	"errors"
	"time"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db             *gorm.DB
	participantSvc *ParticipantService
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:             db,
		participantSvc: NewParticipantService(db),
	}
}

type ProjectListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Name     string `form:"name"`
	Status   string `form:"status"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

// List returns paginated projects the caller participates in.
func (s *ProjectService) List(callerID uint, req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{}).
		Joins("JOIN project_participants pp ON pp.project_id = projects.id").
		Where("pp.profile_id = ? AND pp.deleted_at IS NULL", callerID)

	if req.Name != "" {
		query = query.Where("projects.name LIKE ?", "%"+req.Name+"%")
	}
	if req.Status != "" {
		query = query.Where("projects.status = ?", req.Status)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("projects.created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project visible to the caller.
func (s *ProjectService) GetByID(id, callerID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	if err := s.participantSvc.RequireParticipant(id, callerID); err != nil {
		return nil, err
	}
	return &project, nil
}

type CreateProjectRequest struct {
	Name             string     `json:"name" binding:"required"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"start_date"`
	TargetCompletion *time.Time `json:"target_completion"`
}

// Create creates a project and enrolls the caller as its creator, in one
// transaction.
func (s *ProjectService) Create(req *CreateProjectRequest, callerID uint) (*models.Project, error) {
	if req.Status == "" {
		req.Status = models.ProjectStatusPlanning
	}
	if !models.ValidProjectStatus(req.Status) {
		return nil, errors.New("invalid project status")
	}

	project := models.Project{
		Name:             req.Name,
		Description:      req.Description,
		Status:           req.Status,
		StartDate:        req.StartDate,
		TargetCompletion: req.TargetCompletion,
		CreatedBy:        callerID,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		creator := models.ProjectParticipant{
			ProjectID: project.ID,
			ProfileID: callerID,
			Role:      models.RoleCreator,
		}
		return tx.Create(&creator).Error
	}); err != nil {
		return nil, err
	}

	return &project, nil
}

type UpdateProjectRequest struct {
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"start_date"`
	TargetCompletion *time.Time `json:"target_completion"`
}

// Update applies a partial update. Only the creator may update a project.
// Any status-to-status transition is accepted as long as the target status
// is a member of the set.
func (s *ProjectService) Update(id, callerID uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	if err := s.participantSvc.RequireCreator(id, callerID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != "" {
		if !models.ValidProjectStatus(req.Status) {
			return nil, errors.New("invalid project status")
		}
		updates["status"] = req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate
	}
	if req.TargetCompletion != nil {
		updates["target_completion"] = req.TargetCompletion
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &project, nil
}

// Delete removes a project and all its collaboration data. Soft deletes do
// not fire FK cascades, so children are removed explicitly, inside one
// transaction, leaves first.
func (s *ProjectService) Delete(id, callerID uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return err
	}
	if err := s.participantSvc.RequireCreator(id, callerID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectDiscussion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectResource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTimeline{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
