package game

import (
	"github.com/burracoapp/scoretracker/internal/models"
)

// UnknownTeamPolicy controls what RecordSets does with entries whose team
// name is not part of the active game.
type UnknownTeamPolicy int

const (
	// IgnoreUnknownTeams silently drops entries for unknown teams
	IgnoreUnknownTeams UnknownTeamPolicy = iota

	// RejectUnknownTeams fails the whole batch without applying anything
	RejectUnknownTeams
)

// Session holds the game currently being played, if any, together with the
// authoritative in-memory per-team totals. It has two states: idle (no
// current game) and active. The zero value is an idle session with the
// ignore policy.
type Session struct {
	currentGame *models.Game
	teams       []*models.TeamScore
	policy      UnknownTeamPolicy
}

// NewSession creates an idle session with the given unknown-team policy
func NewSession(policy UnknownTeamPolicy) *Session {
	return &Session{
		policy: policy,
	}
}

// Active reports whether a game is currently being played
func (s *Session) Active() bool {
	return s.currentGame != nil
}

// Game returns the current game, or nil when the session is idle
func (s *Session) Game() *models.Game {
	return s.currentGame
}

// Teams returns the per-team scores for the current game
func (s *Session) Teams() []*models.TeamScore {
	return s.teams
}

// Team returns the score entry for a team name, or nil if the team is not
// part of the current game
func (s *Session) Team(name string) *models.TeamScore {
	for _, team := range s.teams {
		if team.Name == name {
			return team
		}
	}
	return nil
}

// Start replaces the session state with a fresh view of the given game:
// every team begins at zero with an empty set history. Persisting the game
// is the caller's responsibility; Start touches local state only.
func (s *Session) Start(game *models.Game) {
	teams := make([]*models.TeamScore, 0, 3)
	for _, name := range game.TeamNames() {
		teams = append(teams, &models.TeamScore{
			Name: name,
			Sets: []*models.Set{},
		})
	}

	s.currentGame = game
	s.teams = teams
}

// RecordSets appends each entry to its team's history and recomputes that
// team's total. Teams not referenced are untouched. Entries for unknown
// teams are handled per the session's policy; with RejectUnknownTeams
// nothing is applied. Calling on an idle session returns ErrNoActiveGame.
func (s *Session) RecordSets(sets []*models.Set) error {
	if !s.Active() {
		return ErrNoActiveGame
	}

	if s.policy == RejectUnknownTeams {
		for _, set := range sets {
			if s.Team(set.Team) == nil {
				return ErrUnknownTeam
			}
		}
	}

	for _, team := range s.teams {
		var teamSets []*models.Set
		for _, set := range sets {
			if set.Team == team.Name {
				teamSets = append(teamSets, set)
			}
		}
		if len(teamSets) > 0 {
			team.AddSets(teamSets)
		}
	}

	return nil
}

// End clears the session back to idle
func (s *Session) End() {
	s.currentGame = nil
	s.teams = nil
}
