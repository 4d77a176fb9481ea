package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"novelverse/pkg/models"
)

// CSVHeader is the column order written by WriteCSV. ReadCSV matches columns
// by name, so extra or reordered columns are fine.
var CSVHeader = []string{
	"id", "title", "author", "description", "cover_image", "genres",
	"rating", "views", "likes", "chapters", "status", "last_updated", "is_bookmarked",
}

// genreSep joins genres inside the single genres column.
const genreSep = "|"

// ReadCSV parses a catalog CSV. Rows without an id or title are skipped.
func ReadCSV(r io.Reader) ([]models.NovelSummary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []models.NovelSummary
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		n := models.NovelSummary{
			ID:          valueAt(header, row, "id"),
			Title:       valueAt(header, row, "title"),
			Author:      valueAt(header, row, "author"),
			Description: valueAt(header, row, "description"),
			CoverImage:  valueAt(header, row, "cover_image"),
			Genres:      splitGenres(valueAt(header, row, "genres")),
			Status:      models.Status(strings.ToLower(valueAt(header, row, "status"))),
			LastUpdated: valueAt(header, row, "last_updated"),
		}
		if n.ID == "" || n.Title == "" {
			continue
		}
		switch n.Status {
		case "":
			n.Status = models.StatusOngoing
		case models.StatusOngoing, models.StatusCompleted, models.StatusHiatus:
		default:
			return nil, fmt.Errorf("parse status for %s: unknown status %q", n.ID, n.Status)
		}

		if n.Rating, err = parseFloat(valueAt(header, row, "rating")); err != nil {
			return nil, fmt.Errorf("parse rating for %s: %w", n.ID, err)
		}
		for _, f := range []struct {
			col string
			dst *int
		}{
			{"views", &n.Views},
			{"likes", &n.Likes},
			{"chapters", &n.Chapters},
		} {
			if *f.dst, err = parseInt(valueAt(header, row, f.col)); err != nil {
				return nil, fmt.Errorf("parse %s for %s: %w", f.col, n.ID, err)
			}
		}
		if raw := valueAt(header, row, "is_bookmarked"); raw != "" {
			if n.IsBookmarked, err = strconv.ParseBool(raw); err != nil {
				return nil, fmt.Errorf("parse is_bookmarked for %s: %w", n.ID, err)
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// WriteCSV writes novels in CSVHeader order.
func WriteCSV(w io.Writer, novels []models.NovelSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, n := range novels {
		if err := cw.Write([]string{
			n.ID,
			n.Title,
			n.Author,
			n.Description,
			n.CoverImage,
			strings.Join(n.Genres, genreSep),
			strconv.FormatFloat(n.Rating, 'f', -1, 64),
			strconv.Itoa(n.Views),
			strconv.Itoa(n.Likes),
			strconv.Itoa(n.Chapters),
			string(n.Status),
			n.LastUpdated,
			strconv.FormatBool(n.IsBookmarked),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitGenres(raw string) []string {
	out := []string{}
	for _, g := range strings.Split(raw, genreSep) {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func parseInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
