package services

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"gorm.io/gorm"
)

type UpdateService struct {
	db             *gorm.DB
	participantSvc *ParticipantService
}

func NewUpdateService(db *gorm.DB) *UpdateService {
	return &UpdateService{
		db:             db,
		participantSvc: NewParticipantService(db),
	}
}

// ListByProject returns a project's updates, newest first. Any participant
// may read.
func (s *UpdateService) ListByProject(projectID, callerID uint) ([]models.ProjectUpdate, error) {
	if err := s.participantSvc.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var updates []models.ProjectUpdate
	if err := s.db.Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

type UpdateRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// Create publishes an update and enqueues the notification fan-out.
// Creator role required. A queue failure does not fail the publish.
func (s *UpdateService) Create(projectID, callerID uint, req *UpdateRequest) (*models.ProjectUpdate, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}

	update := models.ProjectUpdate{
		ProjectID: projectID,
		AuthorID:  callerID,
		Title:     req.Title,
		Body:      req.Body,
	}
	if err := s.db.Create(&update).Error; err != nil {
		return nil, err
	}

	s.enqueueNotify(&update)

	return &update, nil
}

func (s *UpdateService) enqueueNotify(update *models.ProjectUpdate) {
	queue := GetTaskQueue()
	if queue == nil {
		return
	}

	var project models.Project
	projectName := ""
	if err := s.db.First(&project, update.ProjectID).Error; err == nil {
		projectName = project.Name
	}

	task := &NotifyTask{
		UpdateID:    update.ID,
		ProjectID:   update.ProjectID,
		AuthorID:    update.AuthorID,
		ProjectName: projectName,
		Title:       update.Title,
	}
	if err := queue.Enqueue(task); err != nil {
		logger.Error().Err(err).Uint("update_id", update.ID).Msg("failed to enqueue notify task")
	}
}

// Update edits an update. Creator role required.
func (s *UpdateService) Update(projectID, updateID, callerID uint, req *UpdateRequest) (*models.ProjectUpdate, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}

	var update models.ProjectUpdate
	if err := s.db.Where("id = ? AND project_id = ?", updateID, projectID).First(&update).Error; err != nil {
		return nil, err
	}

	update.Title = req.Title
	update.Body = req.Body
	if err := s.db.Save(&update).Error; err != nil {
		return nil, err
	}
	return &update, nil
}

// Delete removes an update and its discussions in one transaction.
// Creator role required.
func (s *UpdateService) Delete(projectID, updateID, callerID uint) error {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return err
	}

	var update models.ProjectUpdate
	if err := s.db.Where("id = ? AND project_id = ?", updateID, projectID).First(&update).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("update_id = ?", updateID).Delete(&models.ProjectDiscussion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&update).Error
	})
}
