package installctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		project  *string
		pkg      *string
		expected InstallContext
	}{
		{
			name:     "both absent",
			expected: Package,
		},
		{
			name:     "project absent",
			pkg:      Dir("/home/u/app"),
			expected: Package,
		},
		{
			name:     "package absent",
			project:  Dir("/home/u/app"),
			expected: Package,
		},
		{
			name:     "empty strings count as absent",
			project:  Dir(""),
			pkg:      Dir(""),
			expected: Package,
		},
		{
			name:     "same directory",
			project:  Dir("/home/u/app"),
			pkg:      Dir("/home/u/app"),
			expected: Project,
		},
		{
			name:     "nested dependency",
			project:  Dir("/home/u/app"),
			pkg:      Dir("/home/u/app/node_modules/dep"),
			expected: Package,
		},
		{
			name:     "trailing separator",
			project:  Dir("/home/u/app/"),
			pkg:      Dir("/home/u/app"),
			expected: Project,
		},
		{
			name:     "dot segments",
			project:  Dir("/home/u/app/./lib/.."),
			pkg:      Dir("/home/u//app"),
			expected: Project,
		},
		{
			name:     "sibling with common prefix",
			project:  Dir("/home/u/app"),
			pkg:      Dir("/home/u/app2"),
			expected: Package,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.project, tt.pkg))
			assert.Equal(t, tt.expected, Dirs{Project: tt.project, Package: tt.pkg}.Resolve())
		})
	}
}

func TestResolveRelativeAgainstWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, Project, Resolve(Dir("."), Dir(wd)))
	assert.Equal(t, Project, Resolve(Dir(wd+string(filepath.Separator)), Dir(".")))
	assert.Equal(t, Package, Resolve(Dir("sub"), Dir(wd)))
}

func TestResolveIsDeterministic(t *testing.T) {
	dirs := Dirs{Project: Dir("/srv/app"), Package: Dir("/srv/app/")}
	first := dirs.Resolve()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, dirs.Resolve())
	}
}

func TestInstallContextString(t *testing.T) {
	assert.Equal(t, "project", Project.String())
	assert.Equal(t, "package", Package.String())

	var zero InstallContext
	assert.Equal(t, Package, zero)

	text, err := Project.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "project", string(text))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "/a/b", Canonical("/a/b/"))
	assert.Equal(t, "/a/b", Canonical("/a/./b/c/.."))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "x"), Canonical("x/"))
}
