package library

import (
	"path"
	"sort"
)

// keyLess orders page ids by (weight, id). Unweighted sorts after every
// integer weight so the comparator stays total when unweighted pages
// appear in tag lists.
func keyLess(pages map[string]*Page, a, b string) bool {
	wa, wb := pages[a].Weight, pages[b].Weight
	if wa.Unweighted != wb.Unweighted {
		return wb.Unweighted
	}
	if !wa.Unweighted && wa.Value != wb.Value {
		return wa.Value < wb.Value
	}
	return a < b
}

func sortByKey(ids []string, pages map[string]*Page) {
	sort.Slice(ids, func(i, j int) bool { return keyLess(pages, ids[i], ids[j]) })
}

// sortSiblings establishes the relationship between pages sharing a
// directory. It returns the sibling list ordered by (weight, id) minus
// the subject page, plus the ids of the immediate lighter and heavier
// neighbors (empty when absent).
//
// An unweighted subject sees the full sibling set but has no defined
// position, so both neighbors are absent.
func sortSiblings(siblings map[string]struct{}, me string, pages map[string]*Page) (order []string, lighter, heavier string) {
	if pages[me].Weight.Unweighted {
		all := make([]string, 0, len(siblings))
		for id := range siblings {
			all = append(all, id)
		}
		sortByKey(all, pages)
		return all, "", ""
	}

	var lighterSet, heavierSet []string
	for id := range siblings {
		if id == me {
			continue
		}
		if keyLess(pages, id, me) {
			lighterSet = append(lighterSet, id)
		} else {
			heavierSet = append(heavierSet, id)
		}
	}
	sortByKey(lighterSet, pages)
	sortByKey(heavierSet, pages)

	if len(lighterSet) > 0 {
		lighter = lighterSet[len(lighterSet)-1]
	}
	if len(heavierSet) > 0 {
		heavier = heavierSet[0]
	}
	return append(lighterSet, heavierSet...), lighter, heavier
}

// fixSiblings computes sibling relationships per directory and rebuilds
// the page map with updated copies. Only pages with a defined weight and
// a non-empty output path enter sibling sets; pages in directories with
// no such member keep their empty defaults.
func fixSiblings(pages map[string]*Page) map[string]*Page {
	sets := map[string]map[string]struct{}{}
	for id, p := range pages {
		if p.Weight.Unweighted || p.OutputPath == "" {
			continue
		}
		dir := path.Dir(id)
		if sets[dir] == nil {
			sets[dir] = map[string]struct{}{}
		}
		sets[dir][id] = struct{}{}
	}

	fixed := make(map[string]*Page, len(pages))
	for id, p := range pages {
		set, ok := sets[path.Dir(id)]
		if !ok {
			fixed[id] = p
			continue
		}
		order, lighter, heavier := sortSiblings(set, id, pages)
		cp := *p
		cp.Siblings = order
		cp.Lighter = lighter
		cp.Heavier = heavier
		fixed[id] = &cp
	}
	return fixed
}
