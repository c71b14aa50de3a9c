package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager(t *testing.T) {
	tests := []struct {
		name    string
		pager   Pager
		offset  int
		wantErr bool
	}{
		{"First", Pager{Page: 1, PageSize: 10}, 0, false},
		{"Third", Pager{Page: 3, PageSize: 20}, 40, false},
		{"Last", Pager{Page: MaxPage, PageSize: 100}, (MaxPage - 1) * 100, false},
		{"ZeroPage", Pager{Page: 0, PageSize: 10}, 0, true},
		{"ZeroSize", Pager{Page: 1, PageSize: 0}, 0, true},
		{"BeyondMax", Pager{Page: MaxPage + 1, PageSize: 10}, MaxPage * 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pager.validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.offset, tt.pager.Offset())
		})
	}
}
