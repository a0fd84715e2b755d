package helper

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("offset", func(t *testing.T) {
		assert.Equal(t, 0, CalculateOffset(0, 10))
		assert.Equal(t, 20, CalculateOffset(3, 10))
	})

	t.Run("total pages", func(t *testing.T) {
		assert.Equal(t, 1, CalculateTotalPages(0, 10))
		assert.Equal(t, 3, CalculateTotalPages(21, 10))
	})

	t.Run("total price", func(t *testing.T) {
		assert.Equal(t, int64(200000), CalculateTotalPrice(100000, 2))
		assert.Equal(t, int64(0), CalculateTotalPrice(0, 2))
		assert.Equal(t, int64(0), CalculateTotalPrice(100000, 0))
	})
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "courtside:cache:court", BuildCacheKey("court"))
	assert.Equal(t, "courtside:cache:court:7", BuildCacheKey("court", "7"))
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
}

func TestPgConverters(t *testing.T) {
	assert.Equal(t, "08:30", PgTimeToString(PgTime(8, 30)))
	assert.Equal(t, "", PgTimeToString(pgtype.Time{}))
	assert.Equal(t, int64(150000), Int64FromPg(PgInt64(150000)))
	assert.False(t, PgString("").Valid)

	d := PgDate(2026, time.October, 16)
	assert.Equal(t, "2026-10-16", d.Time.Format("2006-01-02"))
}

func TestInitTimezone(t *testing.T) {
	defer func() { AppTimezone = nil }()

	assert.NoError(t, InitTimezone("Asia/Ho_Chi_Minh"))
	assert.Equal(t, "Asia/Ho_Chi_Minh", NowInAppTimezone().Location().String())

	assert.Error(t, InitTimezone("UTC+7"))
	assert.Equal(t, time.UTC, AppTimezone)
}
