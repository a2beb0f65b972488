package core

import "testing"

func TestNewPoolSizeBounds(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		wantPanic bool
	}{
		{name: "below minimum", size: 2, wantPanic: true},
		{name: "minimum", size: 3, wantPanic: false},
		{name: "typical", size: 8, wantPanic: false},
		{name: "maximum", size: 255, wantPanic: false},
		{name: "above maximum", size: 256, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Errorf("newPool(size=%d): expected panic, got none", tt.size)
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("newPool(size=%d): unexpected panic: %v", tt.size, r)
				}
			}()
			values := make([]int, tt.size)
			p := newPool(values)
			if p.length() != tt.size {
				t.Errorf("length() = %d, want %d", p.length(), tt.size)
			}
		})
	}
}

func TestPoolNumReaders(t *testing.T) {
	p := newPool(make([]int, 5))
	if got := p.numReaders(); got != 3 {
		t.Errorf("numReaders() = %d, want 3", got)
	}
}

func TestPoolMostRecentRoundTrip(t *testing.T) {
	p := newPool(make([]int, 4))
	if got := p.loadMostRecent(); got != 0 {
		t.Errorf("initial loadMostRecent() = %d, want 0", got)
	}
	p.storeMostRecent(2)
	if got := p.loadMostRecent(); got != 2 {
		t.Errorf("loadMostRecent() after store = %d, want 2", got)
	}
}
