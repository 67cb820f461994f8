package styleconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsEmptyConfiguration(t *testing.T) {
	require.NoError(t, Configuration{}.Validate())
}

func TestValidateAcceptsFullConfiguration(t *testing.T) {
	conf := Configuration{
		ThemeID:         "ppt3",
		FontName:        "Poppins",
		FontColor:       "#1a2b3c",
		BackgroundColor: "#fff",
		AccentColor:     "#ABCDEF",
	}
	require.NoError(t, conf.Validate())
}

func TestValidateRejectsUnknownFont(t *testing.T) {
	err := Configuration{FontName: "Comic Sans"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font_name")
	assert.Contains(t, err.Error(), "Comic Sans")
	// The error names the accepted set.
	assert.Contains(t, err.Error(), "Times New Roman")
}

func TestValidateRejectsBadColors(t *testing.T) {
	cases := []struct {
		field string
		conf  Configuration
	}{
		{"font_color", Configuration{FontColor: "red"}},
		{"background_color", Configuration{BackgroundColor: "#12345"}},
		{"accent_color", Configuration{AccentColor: "123456"}},
	}
	for _, c := range cases {
		err := c.conf.Validate()
		require.Error(t, err, c.field)
		assert.Contains(t, err.Error(), c.field)
	}
}

func TestValidateDoesNotCorrectValues(t *testing.T) {
	// Validation surfaces errors; it never silently rewrites a field.
	conf := Configuration{FontColor: "#GGGGGG"}
	_ = conf.Validate()
	assert.Equal(t, "#GGGGGG", conf.FontColor)
}
