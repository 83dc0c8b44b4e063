package uploads

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	for _, name := range []string{"logo.png", "logo.PNG", "face.jpeg", "face.jpg", "anim.gif", "pic.webp"} {
		require.True(t, AllowedExtension(name), name)
	}
	for _, name := range []string{"script.php", "archive.zip", "noext", "logo.png.exe", ""} {
		require.False(t, AllowedExtension(name), name)
	}
}

func TestSaveIgnoresMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), "/public/uploads/")
	require.Equal(t, "", store.Save(nil, nil, "logos"))
}
