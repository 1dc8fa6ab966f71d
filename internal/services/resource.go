package services

import (
	"errors"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

type ResourceService struct {
	db             *gorm.DB
	participantSvc *ParticipantService
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{
		db:             db,
		participantSvc: NewParticipantService(db),
	}
}

// ListByProject returns a project's resources. Any participant may read.
func (s *ResourceService) ListByProject(projectID, callerID uint) ([]models.ProjectResource, error) {
	if err := s.participantSvc.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var resources []models.ProjectResource
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

type ResourceRequest struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Create adds a resource to a project. Creator role required.
func (s *ResourceService) Create(projectID, callerID uint, req *ResourceRequest) (*models.ProjectResource, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}
	if !models.ValidResourceType(req.Type) {
		return nil, errors.New("invalid resource type")
	}

	resource := models.ProjectResource{
		ProjectID:    projectID,
		Type:         req.Type,
		Title:        req.Title,
		URL:          req.URL,
		Content:      req.Content,
		CreatedBy:    callerID,
		LastEditedBy: callerID,
	}
	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// Update edits a resource and records the editor. Creator role required.
func (s *ResourceService) Update(projectID, resourceID, callerID uint, req *ResourceRequest) (*models.ProjectResource, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}
	if !models.ValidResourceType(req.Type) {
		return nil, errors.New("invalid resource type")
	}

	var resource models.ProjectResource
	if err := s.db.Where("id = ? AND project_id = ?", resourceID, projectID).First(&resource).Error; err != nil {
		return nil, err
	}

	resource.Type = req.Type
	resource.Title = req.Title
	resource.URL = req.URL
	resource.Content = req.Content
	resource.LastEditedBy = callerID

	if err := s.db.Save(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// Delete removes a resource. Creator role required.
func (s *ResourceService) Delete(projectID, resourceID, callerID uint) error {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return err
	}

	var resource models.ProjectResource
	if err := s.db.Where("id = ? AND project_id = ?", resourceID, projectID).First(&resource).Error; err != nil {
		return err
	}
	return s.db.Delete(&resource).Error
}
