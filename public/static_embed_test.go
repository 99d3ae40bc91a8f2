package public

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticFSServesStylesheet(t *testing.T) {
	fsys, err := StaticFS()
	require.NoError(t, err)

	css, err := fs.ReadFile(fsys, "css/site.css")
	require.NoError(t, err)
	require.Contains(t, string(css), ".jump-in-card")
}
