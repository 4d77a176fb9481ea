package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/georgysavva/scany/v2/sqlscan"

	"novelverse/pkg/models"
)

const novelsTable = "novels"

var novelColumns = []any{
	"id", "position", "title", "author", "description", "cover_image",
	"genres", "rating", "views", "likes", "chapters", "status",
	"last_updated", "is_bookmarked",
}

// SQLiteStore reads a catalog snapshot written by SaveSnapshot.
type SQLiteStore struct {
	DB *sql.DB
	g  goqu.DialectWrapper
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db, g: goqu.Dialect("sqlite3")}
}

type novelRow struct {
	ID           string  `db:"id"`
	Position     int     `db:"position"`
	Title        string  `db:"title"`
	Author       string  `db:"author"`
	Description  string  `db:"description"`
	CoverImage   string  `db:"cover_image"`
	Genres       string  `db:"genres"`
	Rating       float64 `db:"rating"`
	Views        int     `db:"views"`
	Likes        int     `db:"likes"`
	Chapters     int     `db:"chapters"`
	Status       string  `db:"status"`
	LastUpdated  string  `db:"last_updated"`
	IsBookmarked bool    `db:"is_bookmarked"`
}

func (r novelRow) toModel() (models.NovelSummary, error) {
	n := models.NovelSummary{
		ID:           r.ID,
		Title:        r.Title,
		Author:       r.Author,
		Description:  r.Description,
		CoverImage:   r.CoverImage,
		Rating:       r.Rating,
		Views:        r.Views,
		Likes:        r.Likes,
		Chapters:     r.Chapters,
		Status:       models.Status(r.Status),
		LastUpdated:  r.LastUpdated,
		IsBookmarked: r.IsBookmarked,
	}
	if r.Genres != "" {
		if err := json.Unmarshal([]byte(r.Genres), &n.Genres); err != nil {
			return n, fmt.Errorf("decode genres for %s: %w", r.ID, err)
		}
	}
	if n.Genres == nil {
		n.Genres = []string{}
	}
	return n, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.NovelSummary, error) {
	query, args, err := s.g.From(novelsTable).
		Select(novelColumns...).
		Order(goqu.C("position").Asc(), goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var rows []novelRow
	if err := sqlscan.Select(ctx, s.DB, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list novels: %w", err)
	}

	out := make([]models.NovelSummary, 0, len(rows))
	for _, r := range rows {
		n, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.NovelSummary, error) {
	query, args, err := s.g.From(novelsTable).
		Select(novelColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var row novelRow
	if err := sqlscan.Get(ctx, s.DB, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get novel %s: %w", id, err)
	}

	n, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// SaveSnapshot replaces the stored catalog with novels, keeping their order.
func SaveSnapshot(ctx context.Context, db *sql.DB, novels []models.NovelSummary) error {
	g := goqu.Dialect("sqlite3")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	del, args, err := g.Delete(novelsTable).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	for i, n := range novels {
		genres := n.Genres
		if genres == nil {
			genres = []string{}
		}
		genresJSON, err := json.Marshal(genres)
		if err != nil {
			return fmt.Errorf("marshal genres for %s: %w", n.ID, err)
		}

		ins, args, err := g.Insert(novelsTable).Rows(goqu.Record{
			"id":            n.ID,
			"position":      i,
			"title":         n.Title,
			"author":        n.Author,
			"description":   n.Description,
			"cover_image":   n.CoverImage,
			"genres":        string(genresJSON),
			"rating":        n.Rating,
			"views":         n.Views,
			"likes":         n.Likes,
			"chapters":      n.Chapters,
			"status":        string(n.Status),
			"last_updated":  n.LastUpdated,
			"is_bookmarked": n.IsBookmarked,
		}).Prepared(true).ToSQL()
		if err != nil {
			return fmt.Errorf("build insert for %s: %w", n.ID, err)
		}
		if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
			return fmt.Errorf("insert %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
