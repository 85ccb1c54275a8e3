package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tbeckert/admindash/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedAdminEmail    = "admin@example.com"
	seedAdminPassword = "admin123"
	seedUserPassword  = "user123"
	seedUserCount     = 10
	seedRecordCount   = 6
)

// SeedService populates an empty database with a demo admin, sample users,
// and sample analytics records.
type SeedService struct {
	accounts   domain.AccountRepository
	records    domain.AnalyticsRepository
	bcryptCost int
}

// NewSeedService creates a new SeedService.
func NewSeedService(accounts domain.AccountRepository, records domain.AnalyticsRepository, bcryptCost int) *SeedService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &SeedService{accounts: accounts, records: records, bcryptCost: bcryptCost}
}

// Seed is idempotent: if the demo admin already exists it reports so
// without creating anything. Otherwise it creates the admin, ten sample
// users (every third one inactive), and six months of analytics records.
func (s *SeedService) Seed(ctx context.Context) (string, error) {
	_, err := s.accounts.GetByEmail(ctx, seedAdminEmail)
	if err == nil {
		return "Database already seeded! Use admin@example.com / admin123 to login.", nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("check admin account: %w", err)
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	admin := &domain.Account{
		Name:         "Admin User",
		Email:        seedAdminEmail,
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
	}
	if err := s.accounts.Create(ctx, admin); err != nil {
		return "", fmt.Errorf("create admin account: %w", err)
	}

	userHash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash user password: %w", err)
	}
	for i := 1; i <= seedUserCount; i++ {
		status := domain.StatusActive
		if i%3 == 0 {
			status = domain.StatusInactive
		}
		user := &domain.Account{
			Name:         fmt.Sprintf("User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(userHash),
			Role:         domain.RoleUser,
			Status:       status,
		}
		if err := s.accounts.Create(ctx, user); err != nil {
			return "", fmt.Errorf("create sample user %d: %w", i, err)
		}
	}

	for i := 0; i < seedRecordCount; i++ {
		record := &domain.AnalyticsRecord{
			Date:        time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			ActiveUsers: 200 + rand.Int64N(200),
			NewSignups:  50 + rand.Int64N(100),
			Sales:       3000 + rand.Int64N(3000),
			Revenue:     float64(30000 + rand.Int64N(30000)),
		}
		if err := s.records.Create(ctx, record); err != nil {
			return "", fmt.Errorf("create sample record %d: %w", i, err)
		}
	}

	return "Database seeded successfully! Login with admin@example.com / admin123", nil
}
