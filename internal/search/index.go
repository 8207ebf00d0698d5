package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve/v2"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/ar"

	"github.com/RZI3D/HifdhApp/internal/subtitle"
)

// Document stores a recitation's caption text together with per-cue time
// ranges in a form bleve can index and store. Segments holds flattened
// (startSeconds, endSeconds, endOffset) triples because bleve only stores
// numeric fields as float64.
type Document struct {
	Words    string
	Segments []float64
}

// BleveType tells bleve what type of document a Document is.
func (Document) BleveType() string {
	return "Recitation"
}

// FromCues flattens a cue sequence into an indexable document. endOffset is
// the position of the cue's last character within the concatenated text,
// which lets query hits be mapped back to the owning cue.
func FromCues(cues []subtitle.Cue) *Document {
	segments := make([]float64, 0, 3*len(cues))
	var sb strings.Builder
	for i, cue := range cues {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.ReplaceAll(cue.Text, "\n", " "))
		segments = append(segments,
			cue.StartTime.Seconds(),
			cue.EndTime.Seconds(),
			float64(sb.Len()),
		)
	}
	return &Document{Words: sb.String(), Segments: segments}
}

// CreateIndex parses every .srt file in dir and indexes it under its base
// name. The index is written to indexPath. lang selects the bleve analyzer
// ("ar" for Arabic caption text, "standard" otherwise).
func CreateIndex(indexPath, dir, lang string) (bleve.Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle directory: %w", err)
	}

	segmentsMap := bleve.NewNumericFieldMapping()
	segmentsMap.Store = true
	segmentsMap.Index = false
	docMap := bleve.NewDocumentMapping()
	docMap.AddFieldMappingsAt("Segments", segmentsMap)
	mapping := bleve.NewIndexMapping()
	mapping.DefaultAnalyzer = lang
	mapping.AddDocumentMapping("Recitation", docMap)

	index, err := bleve.New(indexPath, mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	indexed := 0
	for _, entry := range entries {
		if entry.IsDir() ||
			!strings.EqualFold(filepath.Ext(entry.Name()), ".srt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf(
				"failed to read %s: %w",
				entry.Name(),
				err,
			)
		}
		cues := subtitle.Parse(string(data))
		if len(cues) == 0 {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := index.Index(id, FromCues(cues)); err != nil {
			return nil, fmt.Errorf(
				"failed to index %s: %w",
				entry.Name(),
				err,
			)
		}
		indexed++
	}

	if indexed == 0 {
		_ = index.Close()
		_ = os.RemoveAll(indexPath)
		return nil, fmt.Errorf("no parseable subtitle files in %s", dir)
	}
	return index, nil
}

// OpenIndex opens an index previously written by CreateIndex.
func OpenIndex(indexPath string) (bleve.Index, error) {
	return bleve.Open(indexPath)
}
