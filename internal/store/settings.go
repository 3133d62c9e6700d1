package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hirabolta/internal/settings"
)

// SettingsRepo persists the preferences chosen on the settings screen, one
// row per learner. The guest row uses an empty learner id.
type SettingsRepo struct {
	drv *entsql.Driver
}

type settingsRow struct {
	CharactersPerRow int    `sql:"characters_per_row"`
	Theme            string `sql:"theme"`
	Language         string `sql:"language"`
}

// Load overlays the stored preferences for learnerID onto base. It reports
// whether a row was found.
func (r *SettingsRepo) Load(ctx context.Context, learnerID string, base settings.Settings) (settings.Settings, bool, error) {
	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Select("characters_per_row", "theme", "language").
		From(b.Table(tableSettings)).
		Where(entsql.EQ("learner_id", learnerID)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return base, false, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	var out []settingsRow
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return base, false, fmt.Errorf("scan settings: %w", err)
	}
	if len(out) == 0 {
		return base, false, nil
	}

	s := base
	s.CharactersPerRow = out[0].CharactersPerRow
	s.Theme = out[0].Theme
	s.Language = out[0].Language
	s.Learner = learnerID
	return s, true, nil
}

// Save upserts the preferences of s.Learner.
func (r *SettingsRepo) Save(ctx context.Context, s settings.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSettings).
		Columns("learner_id", "characters_per_row", "theme", "language", "updated_at").
		Values(s.Learner, s.CharactersPerRow, s.Theme, s.Language, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
