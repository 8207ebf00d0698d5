package search

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/blevesearch/bleve/v2"
	bsearch "github.com/blevesearch/bleve/v2/search"
)

// CueHit is a cue whose caption text matched a query.
type CueHit struct {
	StartTime time.Duration
	EndTime   time.Duration
	Score     float64
	Terms     []string // matched terms within the cue
}

// Result groups the matching cues of a single recitation.
type Result struct {
	ID    string
	Score float64
	Cues  []CueHit
}

// Query runs a plain text match query and maps the hits back to cue time
// ranges using the stored segment triples.
func Query(index bleve.Index, query string) ([]Result, error) {
	request := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	request.Fields = []string{"Segments"}
	request.IncludeLocations = true

	raw, err := index.Search(request)
	if err != nil {
		return nil, err
	}
	return assembleResults(raw)
}

// locateCue maps a term location back to the index of the cue containing it.
func locateCue(segments []interface{}, location *bsearch.Location) int {
	failed := false
	pos := sort.Search(len(segments)/3, func(i int) bool {
		endOffset, isFloat := segments[i*3+2].(float64)
		if isFloat && endOffset > 0 {
			return uint64(endOffset) > location.Start
		}
		failed = true
		return false
	})
	if failed {
		return -1
	}
	return pos
}

// cueRange extracts the time range of the cue at the given position.
func cueRange(segments []interface{}, cuePos int) (time.Duration, time.Duration, error) {
	extract := func(i int) (float64, error) {
		value, valid := segments[i].(float64)
		if !valid {
			return -1, fmt.Errorf(
				"expected segments[%d] to be float64, got %T",
				i,
				segments[i],
			)
		}
		return value, nil
	}

	start, err := extract(cuePos * 3)
	if err != nil {
		return 0, 0, err
	}
	end, err := extract(cuePos*3 + 1)
	if err != nil {
		return 0, 0, err
	}
	return time.Duration(start * float64(time.Second)),
		time.Duration(end * float64(time.Second)),
		nil
}

func assembleResults(raw *bleve.SearchResult) ([]Result, error) {
	results := []Result{}
	for _, hit := range raw.Hits {
		rawSegments, exists := hit.Fields["Segments"]
		if !exists {
			return nil, errors.New("segments missing from search results")
		}
		segments, valid := rawSegments.([]interface{})
		if !valid {
			return nil, fmt.Errorf("segments should be an array, got %T", rawSegments)
		}
		if len(segments)%3 != 0 {
			return nil, fmt.Errorf(
				"stored segments should come in triples, got %d values",
				len(segments),
			)
		}

		// Hits for different terms can land in the same cue, so they are
		// merged through a cache keyed on cue position.
		hitCache := map[int]*CueHit{}
		for _, locationMap := range hit.Locations {
			for term, locations := range locationMap {
				for _, location := range locations {
					i := locateCue(segments, location)
					if i < 0 {
						return nil, errors.New("failed to locate cue for hit")
					}
					start, end, err := cueRange(segments, i)
					if err != nil {
						return nil, err
					}
					if cached, isCached := hitCache[i]; isCached {
						cached.Score += hit.Score
						cached.Terms = append(cached.Terms, term)
					} else {
						hitCache[i] = &CueHit{
							StartTime: start,
							EndTime:   end,
							Score:     hit.Score,
							Terms:     []string{term},
						}
					}
				}
			}
		}

		cues := make([]CueHit, 0, len(hitCache))
		for _, el := range hitCache {
			sort.Strings(el.Terms) // consistent from one search to the next
			cues = append(cues, *el)
		}
		sort.Slice(cues, func(i, j int) bool {
			ci, cj := cues[i], cues[j]
			if len(ci.Terms) != len(cj.Terms) { // keeps the ordering stable
				return len(ci.Terms) > len(cj.Terms)
			}
			return ci.StartTime < cj.StartTime
		})

		results = append(results, Result{
			ID:    hit.ID,
			Score: hit.Score,
			Cues:  cues,
		})
	}
	return results, nil
}
