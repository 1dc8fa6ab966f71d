package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

type TimelineService struct {
	db             *gorm.DB
	participantSvc *ParticipantService
}

func NewTimelineService(db *gorm.DB) *TimelineService {
	return &TimelineService{
		db:             db,
		participantSvc: NewParticipantService(db),
	}
}

// ListByProject returns a project's timeline entries, oldest first.
// Any participant may read.
func (s *TimelineService) ListByProject(projectID, callerID uint) ([]models.ProjectTimeline, error) {
	if err := s.participantSvc.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var timelines []models.ProjectTimeline
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&timelines).Error; err != nil {
		return nil, err
	}
	return timelines, nil
}

type TimelineRequest struct {
	Phase       string     `json:"phase" binding:"required"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Attachments []string   `json:"attachments"`
}

func (r *TimelineRequest) validate() error {
	if !models.ValidTimelinePhase(r.Phase) {
		return errors.New("invalid timeline phase")
	}
	if r.Status != "" && !models.ValidTimelineStatus(r.Status) {
		return errors.New("invalid timeline status")
	}
	return nil
}

// Create adds a timeline entry. Creator role required.
func (s *TimelineService) Create(projectID, callerID uint, req *TimelineRequest) (*models.ProjectTimeline, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = models.TimelineStatusPending
	}

	attachments, err := marshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	timeline := models.ProjectTimeline{
		ProjectID:   projectID,
		Phase:       req.Phase,
		Status:      req.Status,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Attachments: attachments,
	}
	if err := s.db.Create(&timeline).Error; err != nil {
		return nil, err
	}
	return &timeline, nil
}

// Update replaces the mutable fields of a timeline entry. Creator role
// required. Attachment order is preserved as given.
func (s *TimelineService) Update(projectID, timelineID, callerID uint, req *TimelineRequest) (*models.ProjectTimeline, error) {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	var timeline models.ProjectTimeline
	if err := s.db.Where("id = ? AND project_id = ?", timelineID, projectID).First(&timeline).Error; err != nil {
		return nil, err
	}

	timeline.Phase = req.Phase
	if req.Status != "" {
		timeline.Status = req.Status
	}
	timeline.Description = req.Description
	timeline.StartDate = req.StartDate
	timeline.EndDate = req.EndDate

	if req.Attachments != nil {
		attachments, err := marshalAttachments(req.Attachments)
		if err != nil {
			return nil, err
		}
		timeline.Attachments = attachments
	}

	if err := s.db.Save(&timeline).Error; err != nil {
		return nil, err
	}
	return &timeline, nil
}

// Delete removes a timeline entry. Creator role required.
func (s *TimelineService) Delete(projectID, timelineID, callerID uint) error {
	if err := s.participantSvc.RequireCreator(projectID, callerID); err != nil {
		return err
	}

	var timeline models.ProjectTimeline
	if err := s.db.Where("id = ? AND project_id = ?", timelineID, projectID).First(&timeline).Error; err != nil {
		return err
	}
	return s.db.Delete(&timeline).Error
}

func marshalAttachments(attachments []string) (string, error) {
	if attachments == nil {
		attachments = []string{}
	}
	b, err := json.Marshal(attachments)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
