package authController

import (
	"context"
	"errors"
	"time"

	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/services"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrNotAGuest      = errors.New("onboarding applies to guests only")
)

// Session pairs a signed token with the member profile it belongs to
type Session struct {
	Token   string               `json:"token"`
	Member  models.MemberProfile `json:"member"`
	Expires time.Time            `json:"expires"`
}

type AuthControllerInterface interface {
	CreateSession(ctx context.Context, memberID uuid.UUID) (*Session, error)
	GetMember(ctx context.Context, memberID uuid.UUID) (*models.Member, error)
	ListMembers(ctx context.Context) []models.MemberProfile
	GetOnboarding(ctx context.Context, memberID uuid.UUID) (*models.GuestOnboarding, error)
	CompleteOnboardingStep(ctx context.Context, memberID uuid.UUID, step string) (*models.GuestOnboarding, error)
	AcknowledgeOnboardingRules(ctx context.Context, memberID uuid.UUID) (*models.GuestOnboarding, error)
}

type AuthController struct {
	store *store.Store
	token *services.TokenService
	log   logger.Logger
}

func New(domainStore *store.Store, token *services.TokenService) AuthControllerInterface {
	return &AuthController{
		store: domainStore,
		token: token,
		log:   logger.New("authController"),
	}
}

// CreateSession issues a signed session token for a group member. The demo
// deliberately skips credentials: picking a member is the login.
func (ac *AuthController) CreateSession(
	ctx context.Context,
	memberID uuid.UUID,
) (*Session, error) {
	log := ac.log.Function("CreateSession")

	member, found := queries.MemberByID(ac.store.Snapshot(), memberID)
	if !found {
		return nil, log.Err("member not found", ErrMemberNotFound, "memberID", memberID)
	}

	token, err := ac.token.Generate(member)
	if err != nil {
		return nil, log.Err("failed to generate session token", err, "memberID", memberID)
	}

	log.Info("session created", "memberID", memberID, "role", member.Role)
	return &Session{
		Token:   token,
		Member:  member.ToProfile(),
		Expires: time.Now().Add(services.SessionDuration),
	}, nil
}

func (ac *AuthController) GetMember(
	ctx context.Context,
	memberID uuid.UUID,
) (*models.Member, error) {
	log := ac.log.Function("GetMember")

	member, found := queries.MemberByID(ac.store.Snapshot(), memberID)
	if !found {
		return nil, log.Err("member not found", ErrMemberNotFound, "memberID", memberID)
	}

	return &member, nil
}

func (ac *AuthController) ListMembers(ctx context.Context) []models.MemberProfile {
	state := ac.store.Snapshot()
	profiles := make([]models.MemberProfile, 0, len(state.PropertyGroup.Members))
	for _, member := range state.PropertyGroup.Members {
		profiles = append(profiles, member.ToProfile())
	}
	return profiles
}

// GetOnboarding returns the guest's onboarding record, creating an empty one
// in memory if none exists yet.
func (ac *AuthController) GetOnboarding(
	ctx context.Context,
	memberID uuid.UUID,
) (*models.GuestOnboarding, error) {
	log := ac.log.Function("GetOnboarding")

	record, err := ac.onboardingFor(memberID)
	if err != nil {
		return nil, log.Err("failed to load onboarding", err, "memberID", memberID)
	}

	return record, nil
}

func (ac *AuthController) CompleteOnboardingStep(
	ctx context.Context,
	memberID uuid.UUID,
	step string,
) (*models.GuestOnboarding, error) {
	log := ac.log.Function("CompleteOnboardingStep")

	record, err := ac.onboardingFor(memberID)
	if err != nil {
		return nil, log.Err("failed to load onboarding", err, "memberID", memberID)
	}

	for _, completed := range record.CompletedSteps {
		if completed == step {
			return record, nil
		}
	}

	record.CompletedSteps = append(record.CompletedSteps, step)
	record.UpdatedAt = time.Now()
	ac.store.Dispatch(store.UpsertOnboarding(*record))

	log.Info("onboarding step completed", "memberID", memberID, "step", step)
	return record, nil
}

func (ac *AuthController) AcknowledgeOnboardingRules(
	ctx context.Context,
	memberID uuid.UUID,
) (*models.GuestOnboarding, error) {
	log := ac.log.Function("AcknowledgeOnboardingRules")

	record, err := ac.onboardingFor(memberID)
	if err != nil {
		return nil, log.Err("failed to load onboarding", err, "memberID", memberID)
	}

	if record.RulesAcknowledged {
		return record, nil
	}

	record.RulesAcknowledged = true
	record.UpdatedAt = time.Now()
	ac.store.Dispatch(store.UpsertOnboarding(*record))

	return record, nil
}

func (ac *AuthController) onboardingFor(memberID uuid.UUID) (*models.GuestOnboarding, error) {
	state := ac.store.Snapshot()

	member, found := queries.MemberByID(state, memberID)
	if !found {
		return nil, ErrMemberNotFound
	}
	if member.Role != models.RoleGuest {
		return nil, ErrNotAGuest
	}

	if record, found := queries.OnboardingForMember(state, memberID); found {
		return &record, nil
	}

	return &models.GuestOnboarding{
		MemberID:       memberID,
		CompletedSteps: make([]string, 0),
		UpdatedAt:      time.Now(),
	}, nil
}
