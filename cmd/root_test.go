package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/manara-app/manara/internal/catalog"
)

func TestResolveLang(t *testing.T) {
	cases := []struct {
		name string
		flag string
		env  string
		want catalog.Language
	}{
		{"defaults to arabic", "", "", catalog.LangArabic},
		{"flag en", "en", "", catalog.LangEnglish},
		{"env en", "", "en", catalog.LangEnglish},
		{"flag overrides env", "ar", "en", catalog.LangArabic},
		{"unknown value falls back to arabic", "fr", "", catalog.LangArabic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("MANARA_LANG", tc.env)
			cmd := &cobra.Command{}
			cmd.Flags().String("lang", tc.flag, "")
			if got := resolveLang(cmd); got != tc.want {
				t.Errorf("resolveLang() = %q, want %q", got, tc.want)
			}
		})
	}
}
