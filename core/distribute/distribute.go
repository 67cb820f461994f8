// Package distribute packs an ordered list of sections onto a fixed
// number of pages. With enough sections the partition is balanced and
// order-preserving; with too few, the longest content is split until every
// page has something to show.
package distribute

import (
	"regexp"
	"sort"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/split"
)

var wordRegex = regexp.MustCompile(`\w+`)

func wordCount(s core.Section) int {
	return len(wordRegex.FindAllString(s.Content, -1))
}

// Pages distributes sections across numPages pages (clamped to at least 1)
// and returns a map keyed by every page number in 1..numPages.
//
// With len(sections) >= numPages the input is partitioned into contiguous
// balanced runs: the first len%numPages pages take one extra section, and
// input order is preserved unsplit.
//
// With fewer sections than pages, sections are ranked by word count
// (stable on ties), seeded one per page, and then the page with the most
// words repeatedly has its first section split in two, the second half
// filling the next empty page. This greedy split-the-fattest-page rule is
// a heuristic, not an optimal bin-packing; it terminates because every
// split fills exactly one empty page. If no page with any words remains
// while pages are still empty, the partial result is returned and those
// pages stay empty.
func Pages(sections []core.Section, numPages int) core.PageMap {
	if numPages < 1 {
		numPages = 1
	}

	pages := make(core.PageMap, numPages)
	for p := 1; p <= numPages; p++ {
		pages[p] = []core.Section{}
	}

	total := len(sections)
	if total == 0 {
		return pages
	}

	if total >= numPages {
		base := total / numPages
		rem := total % numPages
		idx := 0
		for p := 1; p <= numPages; p++ {
			take := base
			if p <= rem {
				take++
			}
			pages[p] = append(pages[p], sections[idx:idx+take]...)
			idx += take
		}
		return pages
	}

	// Fewer sections than pages: longest content first, one per page.
	ranked := make([]core.Section, total)
	copy(ranked, sections)
	sort.SliceStable(ranked, func(i, j int) bool {
		return wordCount(ranked[i]) > wordCount(ranked[j])
	})

	buckets := make([][]core.Section, numPages)
	for i, s := range ranked {
		buckets[i] = append(buckets[i], s)
	}

	emptySlots := numPages - total
	for emptySlots > 0 {
		// First page found with the strictly greatest word count wins;
		// callers depend on this tie-break, don't change it.
		fattest := -1
		fattestWords := 0
		for i, bucket := range buckets {
			wc := 0
			for _, s := range bucket {
				wc += wordCount(s)
			}
			if len(bucket) > 0 && wc > fattestWords {
				fattestWords = wc
				fattest = i
			}
		}
		if fattest == -1 {
			// Nothing left with content to split from.
			break
		}

		victim := buckets[fattest][0]
		buckets[fattest] = buckets[fattest][1:]

		parts := split.Section(victim, 2)
		buckets[fattest] = append(buckets[fattest], parts[0])

		next := -1
		for j, bucket := range buckets {
			if len(bucket) == 0 {
				next = j
				break
			}
		}
		if next == -1 {
			break
		}
		buckets[next] = append(buckets[next], parts[1])
		emptySlots--
	}

	for i, bucket := range buckets {
		if bucket == nil {
			bucket = []core.Section{}
		}
		pages[i+1] = bucket
	}
	return pages
}

// AssignPositions fills in PageNumber and SectionIndex on every section in
// the map, in page order.
func AssignPositions(pages core.PageMap) {
	for p, secs := range pages {
		for i := range secs {
			secs[i].PageNumber = p
			secs[i].SectionIndex = i + 1
		}
	}
}

// Flatten returns all sections in page order, after position assignment.
func Flatten(pages core.PageMap) []core.Section {
	pageNums := make([]int, 0, len(pages))
	for p := range pages {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)

	var out []core.Section
	for _, p := range pageNums {
		out = append(out, pages[p]...)
	}
	return out
}
