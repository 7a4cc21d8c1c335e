package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() Record {
	return Record{
		ID:          "git-init",
		Category:    "Setup",
		Title:       "git init",
		Description: "Create an empty repository.",
		Syntax:      "git init [<directory>]",
		Examples:    []string{"git init"},
	}
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, validRecord().Validate())
}

func TestRecordValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing id", func(r *Record) { r.ID = "" }},
		{"missing category", func(r *Record) { r.Category = "" }},
		{"missing title", func(r *Record) { r.Title = "" }},
		{"missing description", func(r *Record) { r.Description = "" }},
		{"missing syntax", func(r *Record) { r.Syntax = "" }},
		{"nil examples", func(r *Record) { r.Examples = nil }},
		{"empty examples", func(r *Record) { r.Examples = []string{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestRecordValidateNotesOptional(t *testing.T) {
	r := validRecord()
	r.Notes = nil
	assert.NoError(t, r.Validate())

	r.Notes = []string{"a caveat"}
	assert.NoError(t, r.Validate())
}

func TestCatalogValidate(t *testing.T) {
	c := Catalog{Commands: []Record{validRecord()}}
	assert.NoError(t, c.Validate())
}

func TestCatalogValidateEmpty(t *testing.T) {
	var c Catalog
	assert.ErrorContains(t, c.Validate(), "no commands")
}

func TestCatalogValidateDuplicateIDs(t *testing.T) {
	first := validRecord()
	second := validRecord()
	second.Category = "Basics"

	c := Catalog{Commands: []Record{first, second}}

	err := c.Validate()
	assert.ErrorContains(t, err, `duplicate command id "git-init"`)
}

func TestCatalogValidateNamesOffendingRecord(t *testing.T) {
	bad := validRecord()
	bad.ID = "git-broken"
	bad.Examples = nil

	c := Catalog{Commands: []Record{validRecord(), bad}}

	err := c.Validate()
	assert.ErrorContains(t, err, `command 1 (id "git-broken")`)
}
