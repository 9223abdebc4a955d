package businessday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayProvider struct {
	dates map[string]bool
}

func newFakeHolidayProvider(dates ...string) *fakeHolidayProvider {
	p := &fakeHolidayProvider{dates: make(map[string]bool)}
	for _, d := range dates {
		p.dates[d] = true
	}
	return p
}

func (p *fakeHolidayProvider) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	return p.dates[date.Format("2006-01-02")], nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestIsBusinessDay_Weekend(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	saturday := mustDate(t, "2025-06-07")
	sunday := mustDate(t, "2025-06-08")
	monday := mustDate(t, "2025-06-09")

	ok, err := calc.IsBusinessDay(ctx, saturday)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = calc.IsBusinessDay(ctx, sunday)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = calc.IsBusinessDay(ctx, monday)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsBusinessDay_Holiday(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider("2025-06-10"))

	ok, err := calc.IsBusinessDay(ctx, mustDate(t, "2025-06-10"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsBusinessDay_NilProvider(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(nil)

	ok, err := calc.IsBusinessDay(ctx, mustDate(t, "2025-06-10"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCalculateEndDate_HalfDay(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	start := mustDate(t, "2025-06-09")
	end, err := calc.CalculateEndDate(ctx, start, 0.5)
	require.NoError(t, err)
	assert.Equal(t, start, end)

	// Half-day path also applies to a weekend start.
	saturday := mustDate(t, "2025-06-07")
	end, err = calc.CalculateEndDate(ctx, saturday, 0.5)
	require.NoError(t, err)
	assert.Equal(t, saturday, end)
}

func TestCalculateEndDate_OneDayOnBusinessDay(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	monday := mustDate(t, "2025-06-09")
	end, err := calc.CalculateEndDate(ctx, monday, 1)
	require.NoError(t, err)
	assert.Equal(t, monday, end)
}

func TestCalculateEndDate_OneDayFromWeekend(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	saturday := mustDate(t, "2025-06-07")
	end, err := calc.CalculateEndDate(ctx, saturday, 1)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-06-09"), end) // following Monday
}

func TestCalculateEndDate_SkipsWeekend(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	friday := mustDate(t, "2025-06-06")
	end, err := calc.CalculateEndDate(ctx, friday, 2)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-06-09"), end) // following Monday
}

func TestCalculateEndDate_SkipsMidweekHoliday(t *testing.T) {
	ctx := context.Background()
	// Wednesday 2025-06-11 is a holiday.
	calc := NewCalculator(newFakeHolidayProvider("2025-06-11"))

	tuesday := mustDate(t, "2025-06-10")
	end, err := calc.CalculateEndDate(ctx, tuesday, 2)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-06-12"), end) // Thursday
}

func TestCalculateEndDate_FractionalDuration(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	// 1.5 days consumes a second business day like 2 would.
	monday := mustDate(t, "2025-06-09")
	end, err := calc.CalculateEndDate(ctx, monday, 1.5)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-06-10"), end)
}

func TestCalculateEndDate_ThreeDaysAcrossWeekend(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider())

	thursday := mustDate(t, "2025-06-05")
	end, err := calc.CalculateEndDate(ctx, thursday, 3)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-06-09"), end) // Thu, Fri, Mon
}

func TestCountBusinessDays(t *testing.T) {
	ctx := context.Background()
	calc := NewCalculator(newFakeHolidayProvider("2025-06-11"))

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"full week minus holiday", "2025-06-09", "2025-06-13", 4},
		{"weekend only", "2025-06-07", "2025-06-08", 0},
		{"single business day", "2025-06-09", "2025-06-09", 1},
		{"end before start", "2025-06-13", "2025-06-09", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CountBusinessDays(ctx, mustDate(t, tt.start), mustDate(t, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
