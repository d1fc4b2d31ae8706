package models

// TeamScore is the in-memory running total and set history for one team in
// the active game. It is rebuilt from stored sets when a game is resumed.
type TeamScore struct {
	// Name is the team name
	Name string

	// TotalScore is the sum of Total across Sets
	TotalScore int

	// Sets is the ordered set history for the team
	Sets []*Set
}

// AddSets appends entries to the history and recomputes the running total
// from the full history, so the total can never drift from the sets.
func (t *TeamScore) AddSets(sets []*Set) {
	t.Sets = append(t.Sets, sets...)

	total := 0
	for _, set := range t.Sets {
		total += set.Total
	}
	t.TotalScore = total
}
