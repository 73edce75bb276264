package service

import "github.com/nirco-cloud/tripsync/models"

// VisibleEntries filters the live entry set for display. Shared entries are
// always visible; private-owner entries only appear when the session has
// unlocked the matching owner tag. Visibility is a display concern: hidden
// entries still persist and still sync.
func VisibleEntries(entries []models.PlanEntry, unlockedOwners []string) []models.PlanEntry {
	unlocked := make(map[string]struct{}, len(unlockedOwners))
	for _, owner := range unlockedOwners {
		unlocked[owner] = struct{}{}
	}

	visible := make([]models.PlanEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Owner == models.OwnerShared {
			visible = append(visible, entry)
			continue
		}
		if _, ok := unlocked[entry.Owner]; ok {
			visible = append(visible, entry)
		}
	}

	return visible
}
