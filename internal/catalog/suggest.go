package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the title of the record closest to the query, used for
// the "closest match" hint on an empty result list. Exact, prefix and
// substring matches on title or id win before fuzzy ranking kicks in; ok
// is false when the query is blank or nothing comes close.
func (c Catalog) Suggest(query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(c.Commands) == 0 {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, r := range c.Commands {
		if strings.EqualFold(r.Title, trimmed) || strings.EqualFold(r.ID, trimmed) {
			return r.Title, true
		}
	}
	for _, r := range c.Commands {
		if strings.HasPrefix(strings.ToLower(r.Title), lower) {
			return r.Title, true
		}
	}
	for _, r := range c.Commands {
		if strings.Contains(strings.ToLower(r.Title), lower) || strings.Contains(strings.ToLower(r.ID), lower) {
			return r.Title, true
		}
	}
	titles := make([]string, len(c.Commands))
	for i, r := range c.Commands {
		titles[i] = r.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.Target, true
}
