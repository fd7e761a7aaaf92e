package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ stylesnatcher.PaletteService = (*PaletteService)(nil)

// PaletteService implements stylesnatcher.PaletteService using SQLite.
// Color and font lists are stored as JSON arrays in TEXT columns.
type PaletteService struct {
	db *DB
}

// NewPaletteService creates a new PaletteService.
func NewPaletteService(db *DB) *PaletteService {
	return &PaletteService{db: db}
}

// CreatePalette persists a new palette and assigns its ID and creation time.
func (s *PaletteService) CreatePalette(ctx context.Context, palette *stylesnatcher.Palette) error {
	if err := palette.Validate(); err != nil {
		return err
	}

	palette.ID = uuid.New().String()
	palette.CreatedAt = time.Now().UTC()

	colors, err := json.Marshal(palette.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}
	fonts, err := json.Marshal(palette.Fonts)
	if err != nil {
		return fmt.Errorf("failed to encode fonts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO palettes (id, source_url, colors, fonts, style_hash, style_bytes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, palette.ID, palette.SourceURL, string(colors), string(fonts), palette.StyleHash,
		palette.StyleBytes, palette.CreatedAt.Format(time.RFC3339))

	return err
}

// FindPaletteByID retrieves a palette by ID.
func (s *PaletteService) FindPaletteByID(ctx context.Context, id string) (*stylesnatcher.Palette, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, colors, fonts, style_hash, style_bytes, created_at
		FROM palettes
		WHERE id = ?
	`, id)

	palette, err := scanPalette(row.Scan)
	if err == sql.ErrNoRows {
		return nil, stylesnatcher.Errorf(stylesnatcher.ENOTFOUND, "palette not found")
	}
	if err != nil {
		return nil, err
	}

	return palette, nil
}

// FindPalettes retrieves palettes matching the filter, newest first.
func (s *PaletteService) FindPalettes(ctx context.Context, filter stylesnatcher.PaletteFilter) ([]*stylesnatcher.Palette, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, colors, fonts, style_hash, style_bytes, created_at FROM palettes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.StyleHash != nil {
		query.WriteString(" AND style_hash = ?")
		args = append(args, *filter.StyleHash)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var palettes []*stylesnatcher.Palette
	for rows.Next() {
		palette, err := scanPalette(rows.Scan)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, palette)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return palettes, nil
}

// DeletePalette permanently removes a palette.
func (s *PaletteService) DeletePalette(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM palettes WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return stylesnatcher.Errorf(stylesnatcher.ENOTFOUND, "palette not found")
	}

	return nil
}

// scanPalette reads one palette row via the given scan function.
func scanPalette(scan func(dest ...any) error) (*stylesnatcher.Palette, error) {
	var palette stylesnatcher.Palette
	var colors, fonts, createdAt string

	if err := scan(&palette.ID, &palette.SourceURL, &colors, &fonts,
		&palette.StyleHash, &palette.StyleBytes, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(colors), &palette.Colors); err != nil {
		return nil, fmt.Errorf("failed to decode colors: %w", err)
	}
	if err := json.Unmarshal([]byte(fonts), &palette.Fonts); err != nil {
		return nil, fmt.Errorf("failed to decode fonts: %w", err)
	}

	var err error
	palette.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &palette, nil
}
