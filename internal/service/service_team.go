package service

import (
	"context"
	"fmt"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/models"
)

// teamService is the concrete implementation of TeamService.
type teamService struct {
	teamRepository store.TeamRepository
	logger         *logger.Logger
}

// NewTeamService constructs a TeamService backed by the given repository.
func NewTeamService(teamRepository store.TeamRepository, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository: teamRepository,
		logger:         logger,
	}
}

// List returns the full roster in insertion order.
func (s *teamService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.teamRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("roster listing failed: %w", err)
	}

	return members, nil
}

// Add registers a new roster member. Username and display name are required;
// an empty cargo falls back to the default role.
//
// Returns ErrInvalidDataProvided on missing fields or
// store.ErrUsernameAlreadyExists (wrapped) when the username is taken.
func (s *teamService) Add(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	log := logger.FromContext(ctx)

	if member.Username == "" || member.Name == "" {
		log.Error().Str("username", member.Username).Msg("invalid member data provided")
		return models.TeamMember{}, ErrInvalidDataProvided
	}
	if member.Role == "" {
		member.Role = models.DefaultMemberRole
	}

	added, err := s.teamRepository.Add(ctx, member)
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("member creation failed: %w", err)
	}

	log.Info().Int64("id", added.ID).Str("username", added.Username).Msg("team member added")

	return added, nil
}

// Remove deletes one roster member by id.
func (s *teamService) Remove(ctx context.Context, id int64) error {
	if err := s.teamRepository.Remove(ctx, id); err != nil {
		return fmt.Errorf("member removal failed: %w", err)
	}

	return nil
}
