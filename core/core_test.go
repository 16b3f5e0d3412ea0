package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "", want: LanguageJA},
		{in: "ja", want: LanguageJA},
		{in: " EN ", want: LanguageEN},
		{in: "fr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Language: LanguageEN, Format: FormatJSON, Timeout: 10 * time.Second}
	require.NoError(t, valid.Validate())

	badLang := valid
	badLang.Language = "de"
	assert.Error(t, badLang.Validate())

	badFormat := valid
	badFormat.Format = "pdf"
	assert.ErrorContains(t, badFormat.Validate(), "unsupported format")

	badTimeout := valid
	badTimeout.Timeout = -time.Second
	assert.Error(t, badTimeout.Validate())
}
