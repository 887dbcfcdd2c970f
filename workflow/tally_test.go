package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
)

func TestTallyVotes_GroupsAndRanks(t *testing.T) {
	event := &domain.Event{AwardCategories: "A, B, C"}
	votes := []domain.Vote{
		{VoterID: "v1", NomineeID: "x", AwardCategory: "A"},
		{VoterID: "v2", NomineeID: "y", AwardCategory: "A"},
		{VoterID: "v3", NomineeID: "x", AwardCategory: "A"},
		{VoterID: "v1", NomineeID: "z", AwardCategory: "B"},
	}
	users := []domain.User{
		{ID: "x", Name: "Xena"},
		{ID: "y", Name: "Yuri"},
		{ID: "z", Name: "Zoe"},
	}

	tallies := TallyVotes(event, votes, users)

	// C has no votes and is omitted.
	require.Len(t, tallies, 2)

	assert.Equal(t, "A", tallies[0].Category)
	require.Len(t, tallies[0].Ranking, 2)
	assert.Equal(t, "x", tallies[0].Ranking[0].NomineeID)
	assert.Equal(t, 2, tallies[0].Ranking[0].Count)
	assert.Equal(t, "y", tallies[0].Ranking[1].NomineeID)
	assert.Equal(t, 1, tallies[0].Ranking[1].Count)

	assert.Equal(t, "B", tallies[1].Category)
	require.Len(t, tallies[1].Ranking, 1)
	assert.Equal(t, "z", tallies[1].Ranking[0].NomineeID)
}

func TestTallyVotes_TiesKeepEncounterOrder(t *testing.T) {
	event := &domain.Event{AwardCategories: "A"}
	votes := []domain.Vote{
		{VoterID: "v1", NomineeID: "y", AwardCategory: "A"},
		{VoterID: "v2", NomineeID: "x", AwardCategory: "A"},
	}

	tallies := TallyVotes(event, votes, nil)

	require.Len(t, tallies, 1)
	require.Len(t, tallies[0].Ranking, 2)
	// Both have one vote; the first-seen nominee stays first.
	assert.Equal(t, "y", tallies[0].Ranking[0].NomineeID)
	assert.Equal(t, "x", tallies[0].Ranking[1].NomineeID)
}

func TestTallyVotes_CategoriesFollowDeclaredOrder(t *testing.T) {
	event := &domain.Event{AwardCategories: "B, A"}
	votes := []domain.Vote{
		{VoterID: "v1", NomineeID: "x", AwardCategory: "A"},
		{VoterID: "v2", NomineeID: "x", AwardCategory: "B"},
	}

	tallies := TallyVotes(event, votes, nil)

	require.Len(t, tallies, 2)
	assert.Equal(t, "B", tallies[0].Category)
	assert.Equal(t, "A", tallies[1].Category)
}

func TestTallyVotes_UnknownNominee(t *testing.T) {
	event := &domain.Event{AwardCategories: "A"}
	votes := []domain.Vote{
		{VoterID: "v1", NomineeID: "ghost", AwardCategory: "A"},
	}

	tallies := TallyVotes(event, votes, nil)

	require.Len(t, tallies, 1)
	assert.Equal(t, "Unknown", tallies[0].Ranking[0].NomineeName)
}

func TestTallyVotes_NoVotes(t *testing.T) {
	event := &domain.Event{AwardCategories: "A, B"}

	assert.Empty(t, TallyVotes(event, nil, nil))
}
