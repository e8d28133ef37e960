package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"rally-backend/internal/database/models"
	apperrors "rally-backend/internal/errors"
	"rally-backend/internal/logger"
	"rally-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchType identifies which strategy produced a candidate
type MatchType string

const (
	MatchTypeExactName     MatchType = "exact_name"
	MatchTypeEmail         MatchType = "email"
	MatchTypeNameVariation MatchType = "name_variation"
)

// DefaultMinConfidence is the acceptance floor for filtered candidates. All
// current strategies score 85 or higher, so the floor only bites if a
// lower-confidence strategy is added later; it stays configurable for that
// reason rather than being folded into the strategy constants.
const DefaultMinConfidence = 80

const (
	exactNameConfidence          = 90
	exactNameEmailConfidence     = 100
	emailConfidence              = 95
	nameVariationConfidence      = 85
	nameVariationEmailConfidence = 95
)

// matchTypePriority breaks confidence ties during dedup: an email-confirmed
// match is a stronger signal than a nickname match, which beats a bare
// exact-name match.
var matchTypePriority = map[MatchType]int{
	MatchTypeEmail:         3,
	MatchTypeNameVariation: 2,
	MatchTypeExactName:     1,
}

// Candidate is a player directory entry annotated with how and how confidently
// it matched. Candidates exist only within a single discovery run.
type Candidate struct {
	Player     models.Player
	Confidence int
	MatchType  MatchType
}

// NewAssociation describes one association created by a discovery run
type NewAssociation struct {
	TenniscoresPlayerID string `json:"tenniscores_player_id"`
	League              string `json:"league"`
	Club                string `json:"club"`
	Series              string `json:"series"`
	Confidence          int    `json:"confidence"`
}

// DiscoveryResult summarizes a single-user discovery run
type DiscoveryResult struct {
	ExistingAssociations int              `json:"existing_associations"`
	AssociationsCreated  int              `json:"associations_created"`
	NewAssociations      []NewAssociation `json:"new_associations"`
	Errors               []string         `json:"errors,omitempty"`
	Summary              string           `json:"summary"`
}

// BatchResult aggregates discovery runs across many users
type BatchResult struct {
	UsersProcessed      int      `json:"users_processed"`
	UsersFailed         int      `json:"users_failed"`
	AssociationsCreated int      `json:"associations_created"`
	Errors              []string `json:"errors,omitempty"`
}

// DiscoveryService links user accounts to the player directory entries that
// represent the same person across leagues. Discovery is a best-effort
// enrichment: per-candidate failures degrade to partial success, and re-running
// it is always safe because creation is idempotent.
type DiscoveryService struct {
	users         repository.UserRepositoryInterface
	players       repository.PlayerRepositoryInterface
	associations  repository.AssociationRepositoryInterface
	leagues       repository.LeagueRepositoryInterface
	minConfidence int
	log           *logger.Logger
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(
	users repository.UserRepositoryInterface,
	players repository.PlayerRepositoryInterface,
	associations repository.AssociationRepositoryInterface,
	leagues repository.LeagueRepositoryInterface,
) *DiscoveryService {
	return &DiscoveryService{
		users:         users,
		players:       players,
		associations:  associations,
		leagues:       leagues,
		minConfidence: DefaultMinConfidence,
		log:           logger.New().WithField("component", "discovery"),
	}
}

// SetMinConfidence overrides the acceptance floor for filtered candidates
func (s *DiscoveryService) SetMinConfidence(threshold int) {
	s.minConfidence = threshold
}

// FindCandidates runs all matching strategies for one identity and returns the
// raw, un-deduplicated candidate list. All comparisons are case-insensitive and
// whitespace-trimmed; only active directory entries are considered.
func (s *DiscoveryService) FindCandidates(firstName, lastName, email string) ([]Candidate, error) {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))
	mail := strings.ToLower(strings.TrimSpace(email))

	var candidates []Candidate
	seen := make(map[string]bool)

	// Strategy A: exact first+last name
	exact, err := s.players.FindActiveByName(first, last)
	if err != nil {
		return nil, apperrors.NewCandidateLookupError(string(MatchTypeExactName), err)
	}
	for _, p := range exact {
		confidence := exactNameConfidence
		if mail != "" && emailMatches(p.Email, mail) {
			confidence = exactNameEmailConfidence
		}
		candidates = append(candidates, Candidate{Player: p, Confidence: confidence, MatchType: MatchTypeExactName})
		seen[p.TenniscoresPlayerID] = true
	}

	// Strategy B: stored email, regardless of name. Skipped entirely when the
	// caller has no email; never run as an empty-string match.
	if mail != "" {
		byEmail, err := s.players.FindActiveByEmail(mail)
		if err != nil {
			return nil, apperrors.NewCandidateLookupError(string(MatchTypeEmail), err)
		}
		for _, p := range byEmail {
			if seen[p.TenniscoresPlayerID] {
				// already found by name; the filter would dedup anyway
				continue
			}
			candidates = append(candidates, Candidate{Player: p, Confidence: emailConfidence, MatchType: MatchTypeEmail})
			seen[p.TenniscoresPlayerID] = true
		}
	}

	// Strategy C: nickname variants of the first name, last name fixed
	for _, variant := range NicknameVariants(first) {
		matches, err := s.players.FindActiveByName(variant, last)
		if err != nil {
			return nil, apperrors.NewCandidateLookupError(string(MatchTypeNameVariation), err)
		}
		for _, p := range matches {
			if seen[p.TenniscoresPlayerID] {
				continue
			}
			confidence := nameVariationConfidence
			if mail != "" && emailMatches(p.Email, mail) {
				confidence = nameVariationEmailConfidence
			}
			candidates = append(candidates, Candidate{Player: p, Confidence: confidence, MatchType: MatchTypeNameVariation})
			seen[p.TenniscoresPlayerID] = true
		}
	}

	return candidates, nil
}

// FilterCandidates reduces a raw candidate list to at most one candidate per
// player identifier, keeping the highest confidence (ties broken by match-type
// priority), and drops anything below the acceptance floor. Output is sorted by
// confidence descending with stable order among equals, which fixes the
// creation order downstream.
func (s *DiscoveryService) FilterCandidates(raw []Candidate) []Candidate {
	best := make(map[string]Candidate, len(raw))
	order := make([]string, 0, len(raw))

	for _, c := range raw {
		id := c.Player.TenniscoresPlayerID
		cur, ok := best[id]
		if !ok {
			best[id] = c
			order = append(order, id)
			continue
		}
		if c.Confidence > cur.Confidence ||
			(c.Confidence == cur.Confidence && matchTypePriority[c.MatchType] > matchTypePriority[cur.MatchType]) {
			best[id] = c
		}
	}

	filtered := make([]Candidate, 0, len(best))
	for _, id := range order {
		if c := best[id]; c.Confidence >= s.minConfidence {
			filtered = append(filtered, c)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Confidence > filtered[j].Confidence
	})
	return filtered
}

// DiscoverMissingAssociations finds directory entries matching the user's
// identity and links any that are not yet associated. The caller-supplied email
// overrides the stored one when non-empty. A user lookup failure aborts with no
// writes; everything past that point degrades to partial success.
func (s *DiscoveryService) DiscoverMissingAssociations(userID uuid.UUID, email string) (*DiscoveryResult, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	existingIDs, err := s.associations.GetPlayerIDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load existing associations: %w", err)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	resolvedEmail := strings.TrimSpace(email)
	if resolvedEmail == "" {
		resolvedEmail = user.Email
	}

	raw, err := s.FindCandidates(user.FirstName, user.LastName, resolvedEmail)
	if err != nil {
		return nil, err
	}
	filtered := s.FilterCandidates(raw)

	result := &DiscoveryResult{
		ExistingAssociations: len(existingIDs),
		NewAssociations:      []NewAssociation{},
	}
	var firstCreatedLeagueID uuid.UUID

	for _, cand := range filtered {
		playerID := cand.Player.TenniscoresPlayerID
		if existing[playerID] {
			continue
		}

		// Re-check right before inserting: a concurrent run (login + registration
		// retry overlap) may have created the link since the initial load.
		already, err := s.associations.Exists(userID, playerID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("check association for %s: %v", playerID, err))
			continue
		}
		if already {
			continue
		}

		assoc := &models.UserPlayerAssociation{
			UserID:              userID,
			TenniscoresPlayerID: playerID,
		}
		if err := s.associations.Create(assoc); err != nil {
			if isDuplicateKey(err) {
				// lost the race to a concurrent run; the link exists, so this is a no-op
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("create association for %s: %v", playerID, err))
			continue
		}

		if result.AssociationsCreated == 0 {
			firstCreatedLeagueID = cand.Player.LeagueID
		}
		result.AssociationsCreated++
		result.NewAssociations = append(result.NewAssociations, NewAssociation{
			TenniscoresPlayerID: playerID,
			League:              cand.Player.League.LeagueID,
			Club:                cand.Player.Club.Name,
			Series:              cand.Player.Series.Name,
			Confidence:          cand.Confidence,
		})
	}

	// First-association-wins: only a user with no prior links gets a default
	// league context, taken from the first created association. Context failures
	// never fail the run; the associations are already durable.
	if len(existingIDs) == 0 && result.AssociationsCreated > 0 {
		s.assignLeagueContext(userID, firstCreatedLeagueID)
	}

	result.Summary = fmt.Sprintf("%d existing, %d created, %d errors",
		result.ExistingAssociations, result.AssociationsCreated, len(result.Errors))

	s.log.WithFields(map[string]interface{}{
		"user_id": userID,
		"created": result.AssociationsCreated,
		"errors":  len(result.Errors),
	}).Info("association discovery completed")

	return result, nil
}

func (s *DiscoveryService) assignLeagueContext(userID, leagueID uuid.UUID) {
	league, err := s.leagues.GetByID(leagueID)
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("resolve league for context: %v", err)
		return
	}
	if err := s.users.UpdateLeagueContext(userID, league.ID); err != nil {
		s.log.WithField("user_id", userID).Warnf("set league context: %v", err)
		return
	}
	s.log.WithFields(map[string]interface{}{
		"user_id": userID,
		"league":  league.LeagueID,
	}).Info("league context assigned from first association")
}

// DiscoverForAllUsers runs discovery for up to limit users, fewest-associated
// and newest first. One user's failure never aborts the rest of the batch.
func (s *DiscoveryService) DiscoverForAllUsers(limit int) (*BatchResult, error) {
	users, err := s.users.FindDiscoveryTargets(limit)
	if err != nil {
		return nil, fmt.Errorf("select discovery targets: %w", err)
	}

	batch := &BatchResult{}
	for _, u := range users {
		batch.UsersProcessed++
		res, err := s.DiscoverMissingAssociations(u.ID, "")
		if err != nil {
			batch.UsersFailed++
			batch.Errors = append(batch.Errors, fmt.Sprintf("user %s: %v", u.Email, err))
			continue
		}
		batch.AssociationsCreated += res.AssociationsCreated
		for _, e := range res.Errors {
			batch.Errors = append(batch.Errors, fmt.Sprintf("user %s: %s", u.Email, e))
		}
	}
	return batch, nil
}

func emailMatches(stored, normalizedInput string) bool {
	return strings.ToLower(strings.TrimSpace(stored)) == normalizedInput
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value")
}
