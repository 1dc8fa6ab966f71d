package services

import (
	"errors"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

// Authorization failures for project collaboration. Handlers map these to
// 403; missing parents map to 404.
var (
	ErrNotParticipant = errors.New("you are not a participant of this project")
	ErrNotCreator     = errors.New("only the project creator can do this")
	ErrNotAuthor      = errors.New("only the author can modify this")
)

// ParticipantService manages project membership and answers the three
// authorization questions for collaboration data: participants may read,
// the creator role may manage, and discussion authors own their entries.
type ParticipantService struct {
	db *gorm.DB
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{db: db}
}

// GetRole returns the caller's role in the project, or ErrNotParticipant.
func (s *ParticipantService) GetRole(projectID, profileID uint) (string, error) {
	var participant models.ProjectParticipant
	err := s.db.Where("project_id = ? AND profile_id = ?", projectID, profileID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotParticipant
		}
		return "", err
	}
	return participant.Role, nil
}

// RequireParticipant authorizes read access and discussion creation.
func (s *ParticipantService) RequireParticipant(projectID, profileID uint) error {
	_, err := s.GetRole(projectID, profileID)
	return err
}

// RequireCreator authorizes managing timelines, resources and updates.
func (s *ParticipantService) RequireCreator(projectID, profileID uint) error {
	role, err := s.GetRole(projectID, profileID)
	if err != nil {
		return err
	}
	if role != models.RoleCreator {
		return ErrNotCreator
	}
	return nil
}

func (s *ParticipantService) ListByProject(projectID, callerID uint) ([]models.ProjectParticipant, error) {
	if err := s.RequireParticipant(projectID, callerID); err != nil {
		return nil, err
	}

	var participants []models.ProjectParticipant
	if err := s.db.Preload("Profile").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// ListProjectIDs returns the ids of all projects the profile participates in.
func (s *ParticipantService) ListProjectIDs(profileID uint) ([]uint, error) {
	var ids []uint
	if err := s.db.Model(&models.ProjectParticipant{}).
		Where("profile_id = ?", profileID).
		Pluck("project_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

type AddParticipantRequest struct {
	ProfileID uint   `json:"profile_id" binding:"required"`
	Role      string `json:"role"`
}

// Add enrolls a profile into a project. Only the creator may add members.
func (s *ParticipantService) Add(projectID, callerID uint, req *AddParticipantRequest) (*models.ProjectParticipant, error) {
	if err := s.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}

	if req.Role == "" {
		req.Role = models.RoleContributor
	}
	if !models.ValidParticipantRole(req.Role) {
		return nil, errors.New("invalid participant role")
	}

	var profile models.Profile
	if err := s.db.First(&profile, req.ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("profile not found")
		}
		return nil, err
	}

	// The (project_id, profile_id) unique index also covers soft-deleted
	// rows, so a previously removed participant is restored rather than
	// re-created, which would violate the index.
	var existing models.ProjectParticipant
	err := s.db.Unscoped().
		Where("project_id = ? AND profile_id = ?", projectID, req.ProfileID).
		First(&existing).Error
	if err == nil {
		if !existing.DeletedAt.Valid {
			return nil, errors.New("profile is already a participant")
		}
		existing.DeletedAt = gorm.DeletedAt{}
		existing.Role = req.Role
		if err := s.db.Unscoped().Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := models.ProjectParticipant{
		ProjectID: projectID,
		ProfileID: req.ProfileID,
		Role:      req.Role,
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

type UpdateParticipantRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (s *ParticipantService) UpdateRole(projectID, participantID, callerID uint, req *UpdateParticipantRoleRequest) (*models.ProjectParticipant, error) {
	if err := s.RequireCreator(projectID, callerID); err != nil {
		return nil, err
	}
	if !models.ValidParticipantRole(req.Role) {
		return nil, errors.New("invalid participant role")
	}

	var participant models.ProjectParticipant
	if err := s.db.Where("id = ? AND project_id = ?", participantID, projectID).First(&participant).Error; err != nil {
		return nil, err
	}

	// A project must always keep its creator.
	if participant.Role == models.RoleCreator && req.Role != models.RoleCreator {
		return nil, errors.New("cannot demote the project creator")
	}

	participant.Role = req.Role
	if err := s.db.Save(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *ParticipantService) Remove(projectID, participantID, callerID uint) error {
	if err := s.RequireCreator(projectID, callerID); err != nil {
		return err
	}

	var participant models.ProjectParticipant
	if err := s.db.Where("id = ? AND project_id = ?", participantID, projectID).First(&participant).Error; err != nil {
		return err
	}

	if participant.Role == models.RoleCreator {
		return errors.New("cannot remove the project creator")
	}

	return s.db.Delete(&participant).Error
}
