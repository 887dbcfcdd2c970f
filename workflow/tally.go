package workflow

import (
	"sort"

	"github.com/teampulse/teampulse/internal/domain"
)

// CategoryTally is the ranked vote breakdown for one award category.
type CategoryTally struct {
	Category string
	Ranking  []domain.VoteCount
}

// TallyVotes groups raw vote records into per-category rankings. Categories
// follow the event's declared order and categories without votes are
// omitted. Within a category nominees are ordered by vote count descending;
// nominees with equal counts keep the order their first vote arrived in.
// Nominee names and avatars are resolved from the user directory.
func TallyVotes(event *domain.Event, votes []domain.Vote, users []domain.User) []CategoryTally {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	type bucket struct {
		counts map[string]*domain.VoteCount
		order  []string
	}
	buckets := make(map[string]*bucket)

	for _, v := range votes {
		b, ok := buckets[v.AwardCategory]
		if !ok {
			b = &bucket{counts: make(map[string]*domain.VoteCount)}
			buckets[v.AwardCategory] = b
		}

		vc, ok := b.counts[v.NomineeID]
		if !ok {
			name := "Unknown"
			if u, found := byID[v.NomineeID]; found {
				name = u.Name
			}
			vc = &domain.VoteCount{
				AwardCategory: v.AwardCategory,
				NomineeID:     v.NomineeID,
				NomineeName:   name,
				NomineeAvatar: domain.AvatarURL(name),
			}
			b.counts[v.NomineeID] = vc
			b.order = append(b.order, v.NomineeID)
		}
		vc.Count++
	}

	var tallies []CategoryTally
	for _, category := range event.Categories() {
		b, ok := buckets[category]
		if !ok {
			continue
		}

		ranking := make([]domain.VoteCount, 0, len(b.order))
		for _, nomineeID := range b.order {
			ranking = append(ranking, *b.counts[nomineeID])
		}
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].Count > ranking[j].Count
		})

		tallies = append(tallies, CategoryTally{Category: category, Ranking: ranking})
	}

	return tallies
}
