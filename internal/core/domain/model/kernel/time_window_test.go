package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var windowBase = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestNewTimeWindow(t *testing.T) {
	tests := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantErr error
	}{
		{
			name: "valid window",
			from: windowBase,
			to:   windowBase.Add(time.Hour),
		},
		{
			name: "degenerate single-instant window",
			from: windowBase,
			to:   windowBase,
		},
		{
			name:    "zero from",
			to:      windowBase,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "zero to",
			from:    windowBase,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "inverted bounds",
			from:    windowBase.Add(time.Hour),
			to:      windowBase,
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := kernel.NewTimeWindow(tt.from, tt.to)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, w)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.from, w.From())
			assert.Equal(t, tt.to, w.To())
		})
	}
}

func TestNewOrderWindow(t *testing.T) {
	d := 2 * time.Hour
	w := kernel.NewOrderWindow(windowBase, d)

	assert.Equal(t, windowBase.Add(-d), w.From())
	assert.Equal(t, windowBase.Add(d), w.To())
}

func TestTimeWindow_Contains(t *testing.T) {
	w := kernel.NewOrderWindow(windowBase, time.Hour)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "pickup itself", at: windowBase, want: true},
		{name: "lower bound is inclusive", at: windowBase.Add(-time.Hour), want: true},
		{name: "upper bound is inclusive", at: windowBase.Add(time.Hour), want: true},
		{name: "just before lower bound", at: windowBase.Add(-time.Hour - time.Second), want: false},
		{name: "just after upper bound", at: windowBase.Add(time.Hour + time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.at))
		})
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	d := time.Hour
	w := kernel.NewOrderWindow(windowBase, d)

	tests := []struct {
		name  string
		other kernel.TimeWindow
		want  bool
	}{
		{
			name:  "identical windows",
			other: kernel.NewOrderWindow(windowBase, d),
			want:  true,
		},
		{
			name:  "touching at a bound still conflicts",
			other: kernel.NewOrderWindow(windowBase.Add(2*d), d),
			want:  true,
		},
		{
			name:  "disjoint windows",
			other: kernel.NewOrderWindow(windowBase.Add(2*d+time.Second), d),
			want:  false,
		},
		{
			name:  "contained window",
			other: kernel.NewOrderWindow(windowBase, time.Minute),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(w))
		})
	}
}
