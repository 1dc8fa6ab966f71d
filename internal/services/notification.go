package services

import (
	"context"
	"fmt"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ProcessNotifyTask fans a published update out to every project
// participant except its author. Registered as the task queue processor.
func (s *NotificationService) ProcessNotifyTask(ctx context.Context, task *NotifyTask) error {
	var participants []models.ProjectParticipant
	if err := s.db.Where("project_id = ?", task.ProjectID).Find(&participants).Error; err != nil {
		return err
	}

	message := fanOutMessage(task.ProjectName, task.Title)

	notifications := make([]models.Notification, 0, len(participants))
	for _, p := range participants {
		if p.ProfileID == task.AuthorID {
			continue
		}
		notifications = append(notifications, models.Notification{
			RecipientID: p.ProfileID,
			ProjectID:   task.ProjectID,
			UpdateID:    task.UpdateID,
			Message:     message,
		})
	}

	if len(notifications) == 0 {
		return nil
	}

	if err := s.db.Create(&notifications).Error; err != nil {
		return err
	}

	logger.Info().
		Uint("update_id", task.UpdateID).
		Int("recipients", len(notifications)).
		Msg("update fan-out complete")
	return nil
}

func fanOutMessage(projectName, title string) string {
	if projectName == "" {
		return fmt.Sprintf("New project update: %s", title)
	}
	return fmt.Sprintf("New update in %s: %s", projectName, title)
}

type NotificationListRequest struct {
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
	UnreadOnly bool `form:"unread_only"`
}

type NotificationListResponse struct {
	Total    int64                 `json:"total"`
	Unread   int64                 `json:"unread"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Items    []models.Notification `json:"items"`
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(profileID uint, req *NotificationListRequest) (*NotificationListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Notification{}).Where("recipient_id = ?", profileID)
	if req.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	var unread int64
	s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", profileID, false).
		Count(&unread)

	var items []models.Notification
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &NotificationListResponse{
		Total:    total,
		Unread:   unread,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkRead(id, profileID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, profileID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead marks all of the caller's notifications as read.
func (s *NotificationService) MarkAllRead(profileID uint) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", profileID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
