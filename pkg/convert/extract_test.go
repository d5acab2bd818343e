package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailtpl/pkg/convert"
)

func TestExtractContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{
			name: "content cell",
			html: `<table class="header row"><tr><td>logo</td></tr></table>` +
				`<table class="row content"><tr><td>
  <h2>Your order is on the way</h2>
</td></tr></table>
<table class="row footer"><tr><td>footer</td></tr></table>`,
			want:   "<h2>Your order is on the way</h2>",
			wantOK: true,
		},
		{
			name:   "content section without cell",
			html:   `<table class="row content"> <p>Hi</p> </table><table class="row footer"></table>`,
			want:   "<p>Hi</p>",
			wantOK: true,
		},
		{
			name:   "first cell only",
			html:   `<table class="row content"><tr><td>one</td><td>two</td></tr></table><table class="row footer"></table>`,
			want:   "one",
			wantOK: true,
		},
		{
			name:   "header fallback",
			html:   `<table class="header row"><tr><td>logo</td></tr></table>` + "\n<div>Body</div>\n" + `<table class="row footer"></table>`,
			want:   "<div>Body</div>",
			wantOK: true,
		},
		{
			name:   "no sections",
			html:   `<html><body><p>plain</p></body></html>`,
			want:   "",
			wantOK: false,
		},
		{
			name:   "empty content cell",
			html:   `<table class="row content"><tr><td>   </td></tr></table><table class="row footer"></table>`,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := convert.ExtractContent(tt.html)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
