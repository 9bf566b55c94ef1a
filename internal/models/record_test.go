package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSavedDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", in: "2024-01-01T10:30:00Z", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "date and time", in: "2024-01-01 10:30:00", want: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{name: "date only", in: "2024-01-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSavedDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestRecord_SavedTime(t *testing.T) {
	r := &Record{SavedDate: "2024-06-15"}
	ts, err := r.SavedTime()
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())

	r = &Record{SavedDate: "later"}
	_, err = r.SavedTime()
	require.Error(t, err)
}
