package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Kahve", "kahve"},
		{"Türk Kahvesi", "turk-kahvesi"},
		{"ığüşöç", "igusoc"},
		{"İSTANBUL Boğazı", "istanbul-bogazi"},
		{"  hello   world  ", "hello-world"},
		{"C++ vs. Go!", "c-vs-go"},
		{"---already---slugged---", "already-slugged"},
		{"123 sayılar 456", "123-sayilar-456"},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Make(c.title), "title %q", c.title)
	}
}

func TestMakeCollision(t *testing.T) {
	// Distinct titles folding to the same slug is exactly the case the
	// pre-insert existence check must catch.
	assert.Equal(t, Make("Kahve"), Make("KAHVE!"))
	assert.Equal(t, Make("şeker"), Make("Şeker"))
}
