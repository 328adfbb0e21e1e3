package driver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/drcalc/drcalc"
)

// TestCompiledSQLThroughGorm wraps a ramsql connection in gorm's postgres
// dialect (the same trick the teacher's own gorm_test.go used) and runs
// compiled DRC output through db.Raw, proving the emitted SQL also reads
// fine through a driver layer the compiler never sees directly.
func TestCompiledSQLThroughGorm(t *testing.T) {
	ramdb, schema := universitySchema(t, "TestCompiledSQLThroughGorm", "ramsql")

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: ramdb}), &gorm.Config{})
	require.NoError(t, err, "setup gorm")

	compiled, err := drcalc.Compile(`student(S,SD) && registered(S,*)`, schema, nil, []string{"S", "SD"})
	require.NoError(t, err, "compile")

	type row struct {
		S  string
		SD string
	}
	var results []row
	require.NoError(t, db.Raw(compiled).Scan(&results).Error, "raw query through gorm")
	require.Len(t, results, 2)
}
