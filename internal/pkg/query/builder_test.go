package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_SelectAll(t *testing.T) {
	stmt := From("revisions").Build()
	assert.Equal(t, "SELECT * FROM revisions", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Columns(t *testing.T) {
	stmt := From("revisions").Select("revision_id", "uid").Build()
	assert.Equal(t, "SELECT revision_id, uid FROM revisions", stmt.SQL)
}

func TestBuilder_WhereEq(t *testing.T) {
	stmt := From("revisions").WhereEq("uid", "c-1").Build()
	assert.Equal(t, "SELECT * FROM revisions WHERE uid = @p0", stmt.SQL)
	assert.Equal(t, "c-1", stmt.Params["p0"])
}

func TestBuilder_MultipleConditions(t *testing.T) {
	stmt := From("revisions").WhereEq("uid", "c-1").WhereEq("code", "UK").Build()
	assert.Equal(t, "SELECT * FROM revisions WHERE uid = @p0 AND code = @p1", stmt.SQL)
	assert.Equal(t, "c-1", stmt.Params["p0"])
	assert.Equal(t, "UK", stmt.Params["p1"])
}

func TestBuilder_OrderAndLimit(t *testing.T) {
	stmt := From("revisions").
		WhereEq("uid", "c-1").
		OrderBy("saved_at", Desc).
		Limit(20).
		Build()
	assert.Equal(t, "SELECT * FROM revisions WHERE uid = @p0 ORDER BY saved_at DESC LIMIT @limit", stmt.SQL)
	assert.Equal(t, int64(20), stmt.Params["limit"])
}

func TestBuilder_Immutable(t *testing.T) {
	base := From("revisions").Select("uid")
	withWhere := base.WhereEq("uid", "c-1")

	assert.Equal(t, "SELECT uid FROM revisions", base.Build().SQL)
	assert.Equal(t, "SELECT uid FROM revisions WHERE uid = @p0", withWhere.Build().SQL)
}
