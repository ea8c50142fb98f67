// internal/form/form_test.go
//
// Run: go test ./internal/form -v

package form

import (
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
)

const headingYAML = `
id: test/heading
title: Editar Encabezado
fields:
  - name: text
    label: Texto
    type: text
    required: true
    maxlength: 120
  - name: align
    label: Alineación
    type: select
    options: [left, center, right]
`

func loadTestForms(t *testing.T) {
	t.Helper()
	SetKey("0123456789abcdef0123456789abcdef")
	fsys := fstest.MapFS{
		"forms/heading.yaml": {Data: []byte(headingYAML)},
	}
	if err := RegisterForms(fsys); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestRegisterAndRender(t *testing.T) {
	loadTestForms(t)

	fd, ok := GetFormDef("test/heading")
	if !ok || len(fd.Fields) != 2 {
		t.Fatalf("definition not registered: %+v", fd)
	}

	html, err := RenderForm("test/heading", RenderOptions{
		Prefill: map[string]string{"text": `Hola <mundo>`},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`name="text"`,
		` required`,
		`maxlength="120"`,
		`value="Hola &lt;mundo&gt;"`,
		`name="csrf_token"`,
		`<option value="center">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestLoadFormDef_Rejections(t *testing.T) {
	bad := []string{
		"title: no id\nfields:\n  - {name: a, label: A, type: text}\n",
		"id: x\n",
		"id: x\nfields:\n  - {name: a, label: A, type: text}\n  - {name: a, label: B, type: text}\n",
		"id: x\nfields:\n  - {name: a, label: A, type: text, pattern: '['}\n",
	}
	for i, y := range bad {
		if _, err := LoadFormDef([]byte(y), "test.yaml"); err == nil {
			t.Errorf("case %d: bad definition accepted", i)
		}
	}
}

func TestValidateForm(t *testing.T) {
	loadTestForms(t)

	token, err := GenerateToken()
	if err != nil {
		t.Fatal(err)
	}

	vals := url.Values{
		"csrf_token": {token},
		"text":       {"  Hola  "},
		"align":      {"center"},
	}
	clean, errs := ValidateForm("test/heading", vals)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if clean["text"] != "Hola" || clean["align"] != "center" {
		t.Fatalf("clean = %+v", clean)
	}
}

func TestValidateForm_CSRFRequired(t *testing.T) {
	loadTestForms(t)

	_, errs := ValidateForm("test/heading", url.Values{"text": {"Hola"}})
	if len(errs) == 0 {
		t.Fatal("missing token must fail")
	}

	_, errs = ValidateForm("test/heading", url.Values{
		"csrf_token": {"forged"},
		"text":       {"Hola"},
	})
	if len(errs) == 0 {
		t.Fatal("forged token must fail")
	}
}

func TestValidateForm_FieldRules(t *testing.T) {
	loadTestForms(t)
	token, _ := GenerateToken()

	// Required field absent.
	_, errs := ValidateForm("test/heading", url.Values{"csrf_token": {token}})
	if len(errs) != 1 || errs[0].Name != "text" {
		t.Fatalf("errs = %+v", errs)
	}

	// Option outside the allowed set.
	token2, _ := GenerateToken()
	_, errs = ValidateForm("test/heading", url.Values{
		"csrf_token": {token2},
		"text":       {"Hola"},
		"align":      {"diagonal"},
	})
	if len(errs) != 1 || errs[0].Name != "align" {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	SetKey("0123456789abcdef0123456789abcdef")
	if VerifyToken("") || VerifyToken("AAAA") {
		t.Fatal("garbage token accepted")
	}
	token, _ := GenerateToken()
	if !VerifyToken(token) {
		t.Fatal("fresh token rejected")
	}
}
