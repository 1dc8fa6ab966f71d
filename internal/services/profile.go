package services

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

// ProfileService handles profile self-service and the admin user listing.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type ProfileListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
}

type ProfileListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Profile `json:"items"`
}

// List returns paginated profiles. Admin only, enforced at the route level.
func (s *ProfileService) List(req *ProfileListRequest) (*ProfileListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Profile{})
	if req.Search != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+req.Search+"%", "%"+req.Search+"%")
	}
	if req.Active != nil {
		query = query.Where("is_active = ?", *req.Active)
	}

	var total int64
	query.Count(&total)

	var profiles []models.Profile
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	return &ProfileListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    profiles,
	}, nil
}

func (s *ProfileService) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

type UpdateProfileRequest struct {
	Name         string  `json:"name"`
	LearningGoal *string `json:"learning_goal"`
}

// Update edits the caller's own display name and learning goal.
func (s *ProfileService) Update(id uint, req *UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.LearningGoal != nil {
		updates["learning_goal"] = *req.LearningGoal
	}

	if len(updates) > 0 {
		if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

// SetActive enables or disables an account. Admin only. Disabling revokes
// the profile's outstanding refresh tokens so sessions cannot be renewed.
func (s *ProfileService) SetActive(id uint, active bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Profile{}).Where("id = ?", id).Update("is_active", active)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if !active {
			if err := tx.Model(&models.RefreshToken{}).
				Where("profile_id = ? AND revoked_at IS NULL", id).
				Update("revoked_at", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
