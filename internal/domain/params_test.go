package domain

import "testing"

func TestEnsureDefaults_NilFacetsBecomeEmpty(t *testing.T) {
	var p SearchParameters
	p.EnsureDefaults()

	for _, f := range p.facetRefs() {
		if *f.values == nil {
			t.Errorf("facet %s is nil after EnsureDefaults", f.name)
		}
		if len(*f.values) != 0 {
			t.Errorf("facet %s should be empty, got %v", f.name, *f.values)
		}
	}
}

func TestEnsureDefaults_KeepsExistingValues(t *testing.T) {
	p := SearchParameters{Program: []string{"Iran"}}
	p.EnsureDefaults()

	if len(p.Program) != 1 || p.Program[0] != "Iran" {
		t.Errorf("existing facet values changed: %v", p.Program)
	}
}

func TestMapFacets_RewritesInPlace(t *testing.T) {
	p := SearchParameters{
		Program:  []string{"Iran", "Cuba"},
		Industry: []string{"Shipping"},
	}
	p.EnsureDefaults()

	p.MapFacets(func(facet, value string) string {
		return facet + ":" + value
	})

	if p.Program[0] != "Program:Iran" || p.Program[1] != "Program:Cuba" {
		t.Errorf("unexpected Program mapping: %v", p.Program)
	}
	if p.Industry[0] != "Industry:Shipping" {
		t.Errorf("unexpected Industry mapping: %v", p.Industry)
	}
}

func TestMapFacets_Idempotent(t *testing.T) {
	identity := func(_, value string) string { return value }

	p := SearchParameters{DocumentType: []string{"Enforcement Action"}}
	p.MapFacets(identity)
	p.MapFacets(identity)

	if p.DocumentType[0] != "Enforcement Action" {
		t.Errorf("identity mapping changed value: %v", p.DocumentType)
	}
}
