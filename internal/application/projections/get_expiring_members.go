package projections

import (
	"context"
	"sort"
	"time"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/member"
)

// ExpiringMemberStore defines the member listing for the expiring view.
type ExpiringMemberStore interface {
	ListAll(ctx context.Context) ([]member.Member, error)
}

// ExpiringDeps holds dependencies for the expiring-members projection.
type ExpiringDeps struct {
	MemberStore ExpiringMemberStore
	Now         func() time.Time
}

// ExpiringMember pairs a member with the days left on their subscription.
type ExpiringMember struct {
	Member   member.Member
	DaysLeft int
}

// QueryExpiringMembers lists active members whose subscription ends
// within the given window, soonest first. Frozen, inactive and
// archived members are excluded: their clock is not running.
// PRE: withinDays >= 1
// POST: Every result has 1 <= DaysLeft <= withinDays
func QueryExpiringMembers(ctx context.Context, withinDays int, deps ExpiringDeps) ([]ExpiringMember, error) {
	members, err := deps.MemberStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := deps.Now()
	var results []ExpiringMember
	for _, m := range members {
		if m.IsArchived {
			continue
		}
		if checkin.Resolve(m, now) != checkin.StatusActive {
			continue
		}
		days := m.RemainingDays(now)
		if days >= 1 && days <= withinDays {
			results = append(results, ExpiringMember{Member: m, DaysLeft: days})
		}
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].DaysLeft != results[b].DaysLeft {
			return results[a].DaysLeft < results[b].DaysLeft
		}
		return results[a].Member.Name < results[b].Member.Name
	})
	return results, nil
}
