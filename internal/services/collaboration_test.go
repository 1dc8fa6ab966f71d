package services

import (
	"errors"
	"testing"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.AdminMembership{},
		&models.Project{},
		&models.ProjectParticipant{},
		&models.ProjectTimeline{},
		&models.ProjectResource{},
		&models.ProjectUpdate{},
		&models.ProjectDiscussion{},
		&models.LearningResource{},
		&models.StudyGroup{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, email string) *models.Profile {
	t.Helper()
	profile := &models.Profile{Email: email, Name: email}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile %s: %v", email, err)
	}
	return profile
}

func seedProject(t *testing.T, db *gorm.DB, creatorID uint) *models.Project {
	t.Helper()
	project, err := NewProjectService(db).Create(&CreateProjectRequest{Name: "Learn Go"}, creatorID)
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func TestParticipantAdd_RestoresRemovedParticipant(t *testing.T) {
	db := newTestDB(t)
	creator := seedProfile(t, db, "creator@example.com")
	member := seedProfile(t, db, "member@example.com")
	project := seedProject(t, db, creator.ID)
	svc := NewParticipantService(db)

	added, err := svc.Add(project.ID, creator.ID, &AddParticipantRequest{
		ProfileID: member.ID,
		Role:      models.RoleContributor,
	})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	if _, err := svc.Add(project.ID, creator.ID, &AddParticipantRequest{ProfileID: member.ID}); err == nil {
		t.Error("expected error when adding an active participant twice")
	}

	if err := svc.Remove(project.ID, added.ID, creator.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// The unique (project_id, profile_id) index still holds the soft-deleted
	// row; re-adding must restore it instead of colliding.
	readded, err := svc.Add(project.ID, creator.ID, &AddParticipantRequest{
		ProfileID: member.ID,
		Role:      models.RoleViewer,
	})
	if err != nil {
		t.Fatalf("re-adding a removed participant failed: %v", err)
	}
	if readded.Role != models.RoleViewer {
		t.Errorf("restored role = %q, expected %q", readded.Role, models.RoleViewer)
	}

	participants, err := svc.ListByProject(project.ID, creator.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(participants) != 2 {
		t.Errorf("got %d participants, expected 2", len(participants))
	}
}

func TestProjectDelete_CascadesToChildren(t *testing.T) {
	db := newTestDB(t)
	creator := seedProfile(t, db, "creator@example.com")
	member := seedProfile(t, db, "member@example.com")
	project := seedProject(t, db, creator.ID)

	if _, err := NewParticipantService(db).Add(project.ID, creator.ID, &AddParticipantRequest{ProfileID: member.ID}); err != nil {
		t.Fatalf("add participant failed: %v", err)
	}
	if _, err := NewTimelineService(db).Create(project.ID, creator.ID, &TimelineRequest{Phase: models.PhasePlanning}); err != nil {
		t.Fatalf("create timeline failed: %v", err)
	}
	if _, err := NewResourceService(db).Create(project.ID, creator.ID, &ResourceRequest{
		Type:  models.ResourceTypeLink,
		Title: "Go tour",
		URL:   "https://go.dev/tour",
	}); err != nil {
		t.Fatalf("create resource failed: %v", err)
	}
	update, err := NewUpdateService(db).Create(project.ID, creator.ID, &UpdateRequest{Title: "Kickoff", Body: "We are live"})
	if err != nil {
		t.Fatalf("create update failed: %v", err)
	}
	if _, err := NewDiscussionService(db).Create(project.ID, update.ID, member.ID, &DiscussionRequest{Body: "Great start"}); err != nil {
		t.Fatalf("create discussion failed: %v", err)
	}

	if err := NewProjectService(db).Delete(project.ID, creator.ID); err != nil {
		t.Fatalf("delete project failed: %v", err)
	}

	children := []struct {
		name  string
		model interface{}
	}{
		{"timelines", &models.ProjectTimeline{}},
		{"resources", &models.ProjectResource{}},
		{"updates", &models.ProjectUpdate{}},
		{"discussions", &models.ProjectDiscussion{}},
		{"participants", &models.ProjectParticipant{}},
	}
	for _, child := range children {
		var n int64
		db.Model(child.model).Where("project_id = ?", project.ID).Count(&n)
		if n != 0 {
			t.Errorf("%s: %d rows left after project delete", child.name, n)
		}
	}

	var projects int64
	db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&projects)
	if projects != 0 {
		t.Errorf("project row still visible after delete")
	}
}

func TestResourceDelete_CreatorOnly(t *testing.T) {
	db := newTestDB(t)
	creator := seedProfile(t, db, "creator@example.com")
	member := seedProfile(t, db, "member@example.com")
	project := seedProject(t, db, creator.ID)

	if _, err := NewParticipantService(db).Add(project.ID, creator.ID, &AddParticipantRequest{ProfileID: member.ID}); err != nil {
		t.Fatalf("add participant failed: %v", err)
	}

	svc := NewResourceService(db)
	resource, err := svc.Create(project.ID, creator.ID, &ResourceRequest{
		Type:  models.ResourceTypeDocument,
		Title: "Notes",
	})
	if err != nil {
		t.Fatalf("create resource failed: %v", err)
	}

	if err := svc.Delete(project.ID, resource.ID, member.ID); !errors.Is(err, ErrNotCreator) {
		t.Errorf("contributor delete: got %v, expected ErrNotCreator", err)
	}
	if err := svc.Delete(project.ID, resource.ID, creator.ID); err != nil {
		t.Errorf("creator delete failed: %v", err)
	}
}

func TestDiscussionMutation_AuthorOnly(t *testing.T) {
	db := newTestDB(t)
	creator := seedProfile(t, db, "creator@example.com")
	member := seedProfile(t, db, "member@example.com")
	project := seedProject(t, db, creator.ID)

	if _, err := NewParticipantService(db).Add(project.ID, creator.ID, &AddParticipantRequest{ProfileID: member.ID}); err != nil {
		t.Fatalf("add participant failed: %v", err)
	}
	update, err := NewUpdateService(db).Create(project.ID, creator.ID, &UpdateRequest{Title: "Kickoff", Body: "We are live"})
	if err != nil {
		t.Fatalf("create update failed: %v", err)
	}

	svc := NewDiscussionService(db)
	discussion, err := svc.Create(project.ID, update.ID, member.ID, &DiscussionRequest{Body: "First"})
	if err != nil {
		t.Fatalf("create discussion failed: %v", err)
	}

	// The project creator is not the author; role grants no authorship.
	if _, err := svc.Update(project.ID, discussion.ID, creator.ID, &DiscussionRequest{Body: "Edited"}); !errors.Is(err, ErrNotAuthor) {
		t.Errorf("creator update: got %v, expected ErrNotAuthor", err)
	}
	if err := svc.Delete(project.ID, discussion.ID, creator.ID); !errors.Is(err, ErrNotAuthor) {
		t.Errorf("creator delete: got %v, expected ErrNotAuthor", err)
	}

	if _, err := svc.Update(project.ID, discussion.ID, member.ID, &DiscussionRequest{Body: "Edited"}); err != nil {
		t.Errorf("author update failed: %v", err)
	}
	if err := svc.Delete(project.ID, discussion.ID, member.ID); err != nil {
		t.Errorf("author delete failed: %v", err)
	}
}

func TestAdminServiceIsAdmin_Lookup(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	if svc.IsAdmin("nobody@example.com") {
		t.Error("expected false for an email with no membership row")
	}

	if err := db.Create(&models.AdminMembership{Email: "root@example.com", IsActive: true}).Error; err != nil {
		t.Fatalf("seed membership failed: %v", err)
	}
	if !svc.IsAdmin("root@example.com") {
		t.Error("expected true for an active membership")
	}

	if err := db.Create(&models.AdminMembership{Email: "former@example.com", IsActive: false}).Error; err != nil {
		t.Fatalf("seed membership failed: %v", err)
	}
	if svc.IsAdmin("former@example.com") {
		t.Error("expected false for an inactive membership")
	}
}
