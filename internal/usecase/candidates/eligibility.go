package candidates

import "github.com/KaiMitchell/ssbackendreg/internal/domain"

// filterEligible drops every candidate the viewer must not be shown: the
// viewer themselves and anyone the viewer already has a pending request
// (either direction) or match with. Pure function of the inputs; the related
// set is read once per query so exclusion is symmetric regardless of which
// side initiated a pending request.
func filterEligible(viewerID int, related map[int]struct{}, candidates []domain.Candidate) []domain.Candidate {
	eligible := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == viewerID {
			continue
		}
		if _, found := related[c.UserID]; found {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

// attachPriorities is the second enrichment pass: each candidate gets their
// declared priority skill for the queried facet, when one exists.
func attachPriorities(candidates []domain.Candidate, priorities map[string]string) {
	for i := range candidates {
		if skill, ok := priorities[candidates[i].Username]; ok {
			s := skill
			candidates[i].PrioritySkill = &s
		}
	}
}
