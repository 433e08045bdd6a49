package db

import (
	"testing"

	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTableSQL(t *testing.T, model interface{}) string {
	t.Helper()
	q := orm.NewCreateTableQuery(orm.NewQuery(nil, model), &orm.CreateTableOptions{IfNotExists: true})
	b, err := q.AppendQuery(orm.NewFormatter().WithModel(q), nil)
	require.NoError(t, err)
	return string(b)
}

func TestOverlayColumnsDefaultToMainTree(t *testing.T) {
	for name, model := range map[string]interface{}{
		"version":     (*entity.VersionEntity)(nil),
		"version_log": (*entity.VersionLogEntity)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, createTableSQL(t, model), `"overlay" varchar NOT NULL DEFAULT ''`)
		})
	}
}
