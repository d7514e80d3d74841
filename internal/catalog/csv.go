package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// columnAliases maps RawRecord fields to accepted header spellings, covering
// the upstream dataset's naming ("Unnamed: 0", "EpisodeTitle", "Ratings").
var columnAliases = map[string][]string{
	"id":       {"id", "unnamed: 0", "index"},
	"season":   {"season"},
	"title":    {"title", "episodetitle", "episode_title", "name"},
	"about":    {"about", "description", "summary", "plot"},
	"rating":   {"rating", "ratings", "imdb_rating"},
	"votes":    {"votes", "vote_count"},
	"duration": {"duration", "runtime"},
	"date":     {"date", "airdate", "air_date"},
	"cringe":   {"cringe"},
}

// ReadCSV parses a headered CSV stream into raw records. Column naming is
// resolved through aliases; missing columns leave the corresponding fields
// empty. Records missing an id column receive their 0-based row position.
func ReadCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := resolveColumns(header)

	var records []RawRecord
	for row := 0; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row+1, err)
		}

		pick := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(fields) {
				return ""
			}
			return fields[idx]
		}

		rec := RawRecord{
			ID:       pick("id"),
			Season:   pick("season"),
			Title:    pick("title"),
			About:    pick("about"),
			Rating:   pick("rating"),
			Votes:    pick("votes"),
			Duration: pick("duration"),
			Date:     pick("date"),
			Cringe:   pick("cringe"),
		}
		if strings.TrimSpace(rec.ID) == "" {
			rec.ID = strconv.Itoa(row)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ReadCSVFile reads raw records from a CSV file on disk.
func ReadCSVFile(path string) ([]RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	return ReadCSV(file)
}

func resolveColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			for i, h := range normalized {
				if h == alias {
					columns[field] = i
					break
				}
			}
			if _, ok := columns[field]; ok {
				break
			}
		}
	}
	return columns
}
