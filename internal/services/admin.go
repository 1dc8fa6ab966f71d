package services

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// IsAdmin reports whether the email belongs to an active admin membership.
// The check fails closed: an empty email skips the query, a missing row is
// a normal negative answer, and any other lookup failure is logged and
// answered with false.
func (s *AdminService) IsAdmin(email string) bool {
	if email == "" {
		return false
	}

	var membership models.AdminMembership
	err := s.db.Where("email = ? AND is_active = ?", email, true).First(&membership).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error().Err(err).Str("email", email).Msg("admin membership lookup failed")
		}
		return false
	}
	return true
}

// LookupFunc answers whether an email holds admin privilege.
type LookupFunc func(email string) bool

// AdminResolver caches the most recent admin answer per identity. Lookups
// carry a generation id; a lookup that finishes after a newer one started
// returns its own answer to the caller but never overwrites the cache, so a
// slow stale lookup cannot shadow the result for the current identity.
type AdminResolver struct {
	lookup LookupFunc
	gen    atomic.Uint64

	mu      sync.Mutex
	email   string
	isAdmin bool
	valid   bool
}

func NewAdminResolver(lookup LookupFunc) *AdminResolver {
	return &AdminResolver{lookup: lookup}
}

// IsAdmin resolves admin status for the email, serving from cache when the
// email matches the last published result.
func (r *AdminResolver) IsAdmin(email string) bool {
	if email == "" {
		return false
	}

	r.mu.Lock()
	if r.valid && r.email == email {
		v := r.isAdmin
		r.mu.Unlock()
		return v
	}
	r.mu.Unlock()

	gen := r.gen.Add(1)
	ok := r.lookup(email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen.Load() == gen {
		r.email = email
		r.isAdmin = ok
		r.valid = true
	}
	return ok
}

// Invalidate drops the cached result. Called when admin memberships change.
func (r *AdminResolver) Invalidate() {
	r.gen.Add(1)
	r.mu.Lock()
	r.valid = false
	r.mu.Unlock()
}

type MembershipService struct {
	db       *gorm.DB
	resolver *AdminResolver
}

func NewMembershipService(db *gorm.DB, resolver *AdminResolver) *MembershipService {
	return &MembershipService{db: db, resolver: resolver}
}

type MembershipListResponse struct {
	Total int64                    `json:"total"`
	Items []models.AdminMembership `json:"items"`
}

func (s *MembershipService) List() (*MembershipListResponse, error) {
	var items []models.AdminMembership
	var total int64

	s.db.Model(&models.AdminMembership{}).Count(&total)
	if err := s.db.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &MembershipListResponse{Total: total, Items: items}, nil
}

type CreateMembershipRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *MembershipService) Create(req *CreateMembershipRequest) (*models.AdminMembership, error) {
	var existing models.AdminMembership
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			return nil, errors.New("membership already exists")
		}
		// Reactivate a previously disabled membership rather than violating
		// the unique email index.
		existing.IsActive = true
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		s.invalidate()
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	membership := models.AdminMembership{Email: req.Email, IsActive: true}
	if err := s.db.Create(&membership).Error; err != nil {
		return nil, err
	}
	s.invalidate()
	return &membership, nil
}

func (s *MembershipService) Deactivate(id uint) error {
	result := s.db.Model(&models.AdminMembership{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.invalidate()
	return nil
}

func (s *MembershipService) invalidate() {
	if s.resolver != nil {
		s.resolver.Invalidate()
	}
}

// SeedFirstAdmin grants admin privilege to the given email if no active
// membership exists yet. Used at bootstrap so a fresh install has an admin.
func (s *MembershipService) SeedFirstAdmin(email string) error {
	if email == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.AdminMembership{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := s.Create(&CreateMembershipRequest{Email: email})
	return err
}
