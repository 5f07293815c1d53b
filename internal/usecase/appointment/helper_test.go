package appointment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	dbpkg "github.com/autoservicehub/workshop-scheduler/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database so the connection pool shares one store.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	return gdb
}

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	return audit.NewDispatcher(audit.New(newTestDB(t)), zerolog.Nop())
}
