package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-08")
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2026, Month: time.February, Day: 8}, d)
	require.Equal(t, "2026-02-08", d.String())

	_, err = ParseDate("08/02/2026")
	require.Error(t, err)
}

func TestDate_AddDaysCrossesBoundaries(t *testing.T) {
	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{Date{2026, time.March, 1}, -1, Date{2026, time.February, 28}},
		{Date{2024, time.March, 1}, -1, Date{2024, time.February, 29}},
		{Date{2026, time.January, 1}, -1, Date{2025, time.December, 31}},
		{Date{2026, time.December, 31}, 1, Date{2027, time.January, 1}},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, tc.from.AddDays(tc.n), "%s %+d", tc.from, tc.n)
	}
}

func TestDate_Before(t *testing.T) {
	a := Date{2026, time.February, 8}
	require.True(t, a.AddDays(-1).Before(a))
	require.False(t, a.Before(a))
	require.True(t, Date{2025, time.December, 31}.Before(a))
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Day Date `json:"day"`
	}

	raw, err := json.Marshal(wrapper{Day: Date{2026, time.February, 8}})
	require.NoError(t, err)
	require.JSONEq(t, `{"day":"2026-02-08"}`, string(raw))

	raw, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	require.JSONEq(t, `{"day":null}`, string(raw))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2026-02-07"}`), &w))
	require.Equal(t, Date{2026, time.February, 7}, w.Day)

	require.Error(t, json.Unmarshal([]byte(`{"day":20260207}`), &w))
	require.Error(t, json.Unmarshal([]byte(`{"day":"yesterday"}`), &w))
}

func TestDate_SQL(t *testing.T) {
	v, err := Date{2026, time.February, 8}.Value()
	require.NoError(t, err)
	require.Equal(t, "2026-02-08", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	tests := []struct {
		name string
		src  interface{}
		want Date
	}{
		{name: "time", src: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), want: Date{2026, time.February, 8}},
		{name: "string", src: "2026-02-08", want: Date{2026, time.February, 8}},
		{name: "timestamp text", src: []byte("2026-02-08T00:00:00Z"), want: Date{2026, time.February, 8}},
		{name: "null", src: nil, want: Date{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.src))
			require.Equal(t, tc.want, d)
		})
	}

	var d Date
	require.Error(t, d.Scan(42))
}

func TestDate_In(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	midnight := Date{2026, time.February, 8}.In(wib)
	require.Equal(t, time.Date(2026, 2, 7, 17, 0, 0, 0, time.UTC), midnight.UTC())
}
