package ruleset

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
)

func Test_Load(t *testing.T) {
	fs := memfs.New()

	files := map[string]string{
		"rules/high-earner.rule": "income > 50000 AND spend < 10000\n",
		"rules/sales-adult.rule": "age >= 18 AND department == sales",
		"rules/notes.txt":        "not a rule file",
		"rules/big-spender.rule": "  spend > 1000  ",
	}
	for name, body := range files {
		if err := util.WriteFile(fs, name, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	c, err := Load(fs, "rules")
	if err != nil {
		t.Fatal(err)
	}

	want := []Preset{
		{Name: "big-spender", Text: "spend > 1000"},
		{Name: "high-earner", Text: "income > 50000 AND spend < 10000"},
		{Name: "sales-adult", Text: "age >= 18 AND department == sales"},
	}
	if diff := cmp.Diff(want, c.Presets()); diff != "" {
		t.Error(diff)
	}
}

func Test_Load_InvalidRule(t *testing.T) {
	fs := memfs.New()

	if err := util.WriteFile(fs, "rules/broken.rule", []byte("age >> 30"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(fs, "rules")
	if err == nil {
		t.Fatal("expected an error for a broken rule file")
	}

	if !strings.Contains(err.Error(), "broken.rule") {
		t.Errorf("error %q does not name the offending file", err)
	}
}

func Test_Presets_NilCatalog(t *testing.T) {
	var c *Catalog

	if got := c.Presets(); got != nil {
		t.Errorf("Presets() = %v, want nil", got)
	}
}
