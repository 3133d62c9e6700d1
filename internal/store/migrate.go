package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/hirabolta/ent/schema"
)

// Table names.
const (
	tableProgress = "progress_records"
	tableSettings = "settings"
	tableAnswers  = "answer_events"
	tableSessions = "session_events"
)

// Tables returns the schema tables managed by the store, derived from the
// ent schema definitions.
func Tables() []*schema.Table {
	return []*schema.Table{
		tableFor(tableProgress, entschema.ProgressRecord{}),
		tableFor(tableSettings, entschema.Setting{}),
		tableFor(tableAnswers, entschema.AnswerEvent{}),
		tableFor(tableSessions, entschema.SessionEvent{}),
	}
}

// migrate creates or updates all tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, Tables()...)
}

// tableFor translates an ent schema into a table with an auto-increment
// "id" primary key, the way generated ent migrations lay them out.
func tableFor(name string, s ent.Interface) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		switch v := d.Default.(type) {
		case int, int64, string, bool:
			col.Default = v
		}
		t.Columns = append(t.Columns, col)
		byName[d.Name] = col
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &schema.Index{
			Name:   strings.ReplaceAll(name, "_", "") + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			if c, ok := byName[f]; ok {
				ix.Columns = append(ix.Columns, c)
			}
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t
}
