package i18n

import (
	"testing"

	"github.com/manara-app/manara/internal/catalog"
)

func TestT_BothLanguages(t *testing.T) {
	if got := T("quiz", catalog.LangEnglish); got != "Quick Quiz" {
		t.Errorf("T(quiz, en) = %q", got)
	}
	if got := T("quiz", catalog.LangArabic); got != "اختبار سريع" {
		t.Errorf("T(quiz, ar) = %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T("no-such-key", catalog.LangEnglish); got != "no-such-key" {
		t.Errorf("T(no-such-key) = %q, want key echoed back", got)
	}
}

func TestT_TablesCoverSameKeys(t *testing.T) {
	for k := range en {
		if _, ok := ar[k]; !ok {
			t.Errorf("key %q missing from Arabic table", k)
		}
	}
	for k := range ar {
		if _, ok := en[k]; !ok {
			t.Errorf("key %q missing from English table", k)
		}
	}
}
