package services

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

type DiscussionService struct {
	db             *gorm.DB
	participantSvc *ParticipantService
}

func NewDiscussionService(db *gorm.DB) *DiscussionService {
	return &DiscussionService{
		db:             db,
		participantSvc: NewParticipantService(db),
	}
}

// ListByUpdate returns the discussion thread under an update, oldest first.
// Any participant of the owning project may read.
func (s *DiscussionService) ListByUpdate(projectID, updateID, callerID uint) ([]models.ProjectDiscussion, error) {
	if err := s.participantSvc.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var discussions []models.ProjectDiscussion
	if err := s.db.Preload("Author").
		Where("update_id = ? AND project_id = ?", updateID, projectID).
		Order("created_at ASC").
		Find(&discussions).Error; err != nil {
		return nil, err
	}
	return discussions, nil
}

type DiscussionRequest struct {
	Body string `json:"body" binding:"required"`
}

// Create posts a discussion entry under an update. Any participant may
// post, regardless of role.
func (s *DiscussionService) Create(projectID, updateID, callerID uint, req *DiscussionRequest) (*models.ProjectDiscussion, error) {
	if err := s.participantSvc.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var update models.ProjectUpdate
	if err := s.db.Where("id = ? AND project_id = ?", updateID, projectID).First(&update).Error; err != nil {
		return nil, err
	}

	discussion := models.ProjectDiscussion{
		UpdateID:  updateID,
		ProjectID: projectID,
		AuthorID:  callerID,
		Body:      req.Body,
	}
	if err := s.db.Create(&discussion).Error; err != nil {
		return nil, err
	}
	return &discussion, nil
}

// Update edits a discussion entry. Author only, even for the project
// creator.
func (s *DiscussionService) Update(projectID, discussionID, callerID uint, req *DiscussionRequest) (*models.ProjectDiscussion, error) {
	var discussion models.ProjectDiscussion
	if err := s.db.Where("id = ? AND project_id = ?", discussionID, projectID).First(&discussion).Error; err != nil {
		return nil, err
	}

	if discussion.AuthorID != callerID {
		return nil, ErrNotAuthor
	}

	discussion.Body = req.Body
	if err := s.db.Save(&discussion).Error; err != nil {
		return nil, err
	}
	return &discussion, nil
}

// Delete removes a discussion entry. Author only.
func (s *DiscussionService) Delete(projectID, discussionID, callerID uint) error {
	var discussion models.ProjectDiscussion
	if err := s.db.Where("id = ? AND project_id = ?", discussionID, projectID).First(&discussion).Error; err != nil {
		return err
	}

	if discussion.AuthorID != callerID {
		return ErrNotAuthor
	}

	return s.db.Delete(&discussion).Error
}
