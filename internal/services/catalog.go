package services

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/gorm"
)

// CatalogService manages the platform-wide learning resource and study
// group catalogs counted by the dashboard. Writes are admin-only, enforced
// at the route level.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type CatalogListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

type LearningResourceListResponse struct {
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
	Items    []models.LearningResource `json:"items"`
}

func (s *CatalogService) ListLearningResources(req *CatalogListRequest) (*LearningResourceListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.LearningResource{})
	if req.Search != "" {
		query = query.Where("title LIKE ?", "%"+req.Search+"%")
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}

	var total int64
	query.Count(&total)

	var items []models.LearningResource
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &LearningResourceListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

type LearningResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

func (s *CatalogService) CreateLearningResource(req *LearningResourceRequest, callerID uint) (*models.LearningResource, error) {
	resource := models.LearningResource{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Category:    req.Category,
		CreatedBy:   callerID,
	}
	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (s *CatalogService) UpdateLearningResource(id uint, req *LearningResourceRequest) (*models.LearningResource, error) {
	var resource models.LearningResource
	if err := s.db.First(&resource, id).Error; err != nil {
		return nil, err
	}

	resource.Title = req.Title
	resource.Description = req.Description
	resource.URL = req.URL
	resource.Category = req.Category

	if err := s.db.Save(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (s *CatalogService) DeleteLearningResource(id uint) error {
	result := s.db.Delete(&models.LearningResource{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type StudyGroupListResponse struct {
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Items    []models.StudyGroup `json:"items"`
}

func (s *CatalogService) ListStudyGroups(req *CatalogListRequest) (*StudyGroupListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.StudyGroup{})
	if req.Search != "" {
		query = query.Where("name LIKE ?", "%"+req.Search+"%")
	}

	var total int64
	query.Count(&total)

	var items []models.StudyGroup
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &StudyGroupListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

type StudyGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateStudyGroup(req *StudyGroupRequest, callerID uint) (*models.StudyGroup, error) {
	group := models.StudyGroup{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   callerID,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *CatalogService) UpdateStudyGroup(id uint, req *StudyGroupRequest) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if err := s.db.First(&group, id).Error; err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description

	if err := s.db.Save(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *CatalogService) DeleteStudyGroup(id uint) error {
	result := s.db.Delete(&models.StudyGroup{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
