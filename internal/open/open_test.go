package open

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewerCommand(t *testing.T) {
	cases := []struct {
		name, viewer, goos string
		want               []string
	}{
		{"viewer env", "feh --scale-down", "linux", []string{"feh", "--scale-down", "knee_3d.png"}},
		{"darwin", "", "darwin", []string{"open", "-W", "knee_3d.png"}},
		{"windows", "", "windows", []string{"cmd", "/c", "start", "/wait", "", "knee_3d.png"}},
		{"linux", "  ", "linux", []string{"xdg-open", "knee_3d.png"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmd := viewerCommand(c.viewer, c.goos, "knee_3d.png")
			assert.Equal(t, c.want, cmd.Args)
		})
	}
}

func TestShowFigureMissing(t *testing.T) {
	err := ShowFigure(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorContains(t, err, "figure not found")
}
