package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Reference
	}{
		{"plain absolute", "/src/Main.java", PlainPathRef("/src/Main.java")},
		{"plain relative", "src/Main.java", PlainPathRef("src/Main.java")},
		{"empty", "", PlainPathRef("")},
		{
			"class with package",
			"classpath:com.foo.Bar",
			Reference{Kind: KindSymbolicClass, Namespace: "com.foo", SimpleName: "Bar"},
		},
		{
			"class without package",
			"classpath:Bar",
			Reference{Kind: KindSymbolicClass, SimpleName: "Bar"},
		},
		{
			"archive entry",
			"/libs/a.jar!/com/foo/Bar.java",
			Reference{Kind: KindArchiveEntry, Archive: "/libs/a.jar", Inner: "com/foo/Bar.java"},
		},
		{
			"archive splits at first separator",
			"/libs/a.jar!/nested.jar!/X.java",
			Reference{Kind: KindArchiveEntry, Archive: "/libs/a.jar", Inner: "nested.jar!/X.java"},
		},
		{"class prefix only", "classpath:", PlainPathRef("classpath:")},
		{"class trailing dot", "classpath:com.foo.", PlainPathRef("classpath:com.foo.")},
		{"class leading dot", "classpath:.Bar", PlainPathRef("classpath:.Bar")},
		{"archive without entry", "/libs/a.jar!/", PlainPathRef("/libs/a.jar!/")},
		{"archive without archive", "!/com/Bar.java", PlainPathRef("!/com/Bar.java")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReference(tt.raw))
		})
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	inputs := []string{
		"/src/Main.java",
		`C:\work\src\Main.java`,
		"classpath:com.foo.Bar",
		"classpath:Bar",
		"classpath:a..b",
		"/libs/a.jar!/com/foo/Bar.java",
		"/libs/a.jar!/x!/y",
		"classpath:",
		"classpath:.Bar",
		"!/only-entry",
		"",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, raw, ParseReference(raw).Encode())
		})
	}
}

func TestReference_BaseName(t *testing.T) {
	assert.Equal(t, "Main.java", ParseReference("/src/Main.java").BaseName())
	assert.Equal(t, "Main.java", ParseReference(`C:\src\Main.java`).BaseName())
	assert.Equal(t, "Bar.java", ParseReference("/a.jar!/com/foo/Bar.java").BaseName())
	assert.Equal(t, "Bar", ParseReference("classpath:com.foo.Bar").BaseName())
}

func TestReference_QualifiedName(t *testing.T) {
	assert.Equal(t, "com.foo.Bar", SymbolicClassRef("com.foo.Bar").QualifiedName())
	assert.Equal(t, "Bar", SymbolicClassRef("Bar").QualifiedName())
}

func TestTemplate_Clone(t *testing.T) {
	original := Template{Name: "t", ReferencesA: []string{"a"}, ReferencesB: []string{"b"}}
	clone := original.Clone()
	clone.ReferencesA[0] = "changed"

	assert.Equal(t, "a", original.ReferencesA[0])
	assert.Equal(t, []string{"b"}, clone.References(AdditionalPanel))
	assert.Equal(t, []string{"changed"}, clone.References(ProjectPanel))
}
