package catalog

import (
	"regexp"
	"sort"
	"strings"

	"cineMatch/domain"
)

const DefaultCastLimit = 10

var actorProfession = regexp.MustCompile(`(?i)\b(actor|actress)\b`)

// Cast joins credits and people for one movie. Directors are every credited
// person whose professions mention "director". Actors are ordered by billing,
// with people that have a usable photo first, and capped at limit.
func (c *Catalog) Cast(movieID string, limit int) domain.Cast {
	if limit <= 0 {
		limit = DefaultCastLimit
	}

	cast := domain.Cast{
		Directors: []string{},
		Actors:    []domain.CastMember{},
	}

	type candidate struct {
		member   domain.CastMember
		ordering int
		hasPhoto bool
	}

	var actors []candidate
	seenDirector := make(map[string]struct{})
	seenActor := make(map[string]struct{})

	for _, cr := range c.creditsMovie[movieID] {
		p, ok := c.people[cr.PersonID]
		if !ok || strings.TrimSpace(p.Name) == "" {
			continue
		}

		if strings.Contains(strings.ToLower(p.Professions), "director") {
			if _, dup := seenDirector[p.ID]; !dup {
				seenDirector[p.ID] = struct{}{}
				cast.Directors = append(cast.Directors, p.Name)
			}
		}

		if actorProfession.MatchString(p.Professions) {
			if _, dup := seenActor[p.ID]; dup {
				continue
			}
			seenActor[p.ID] = struct{}{}
			photo := CleanPhotoURL(p.ProfileURL)
			actors = append(actors, candidate{
				member:   domain.CastMember{PersonID: p.ID, Name: p.Name, Photo: photo},
				ordering: cr.Ordering,
				hasPhoto: photo != "",
			})
		}
	}

	sort.SliceStable(actors, func(i, j int) bool {
		if actors[i].hasPhoto != actors[j].hasPhoto {
			return actors[i].hasPhoto
		}
		return billingBefore(actors[i].ordering, actors[j].ordering)
	})

	for i := 0; i < len(actors) && i < limit; i++ {
		cast.Actors = append(cast.Actors, actors[i].member)
	}

	return cast
}

// billingBefore orders known billing positions ascending and unknown (0) last.
func billingBefore(a, b int) bool {
	switch {
	case a == b:
		return false
	case a == 0:
		return false
	case b == 0:
		return true
	default:
		return a < b
	}
}

// CleanPhotoURL upgrades http to https and rejects anything that is not a URL.
func CleanPhotoURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.EqualFold(u, "nan") {
		return ""
	}
	if strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}
	if !strings.HasPrefix(u, "http") {
		return ""
	}
	return u
}
