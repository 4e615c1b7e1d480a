package library

// buildTagIndex maps each tag to the ids of the pages carrying it, every
// list sorted by the same (weight, id) key used for siblings.
func buildTagIndex(pages map[string]*Page) map[string][]string {
	tags := map[string][]string{}
	for id, p := range pages {
		for _, tag := range p.Tags {
			tags[tag] = append(tags[tag], id)
		}
	}
	for _, ids := range tags {
		sortByKey(ids, pages)
	}
	return tags
}
