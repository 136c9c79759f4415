package parser

import (
	"reflect"
	"testing"
)

func TestVariables_ExpressionReference(t *testing.T) {
	doc := `{"nodes": [{"parameters": {"url": "{{ $env.API_BASE }}/orders"}}]}`

	workflow, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !reflect.DeepEqual(workflow.Variables, []string{"API_BASE"}) {
		t.Errorf("Expected [API_BASE], got %v", workflow.Variables)
	}
}

func TestVariables_BareAccessorReference(t *testing.T) {
	// References also appear in plain string fragments outside complete
	// expressions; the scan is textual and catches those too.
	doc := `{"nodes": [{"parameters": {"note": "token ENV.API_KEY expires"}}]}`

	workflow, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !reflect.DeepEqual(workflow.Variables, []string{"API_KEY"}) {
		t.Errorf("Expected [API_KEY], got %v", workflow.Variables)
	}
}

func TestVariables_DeduplicatedAndSorted(t *testing.T) {
	doc := `{"nodes": [
		{"parameters": {"a": "{{ $env.ZULU }}", "b": "{{ $env.ALPHA }}"}},
		{"parameters": {"c": "{{ $env.ZULU }} and {{ $env.MIKE }}"}}
	]}`

	workflow, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"ALPHA", "MIKE", "ZULU"}
	if !reflect.DeepEqual(workflow.Variables, want) {
		t.Errorf("Expected %v, got %v", want, workflow.Variables)
	}
}

func TestVariables_Deterministic(t *testing.T) {
	doc := `{"nodes": [{"parameters": {
		"k1": "{{ $env.B_VAR }}",
		"k2": "{{ $env.A_VAR }}",
		"k3": {"nested": "{{ $env.C_VAR }}"}
	}}]}`

	var previous []string

	for i := 0; i < 20; i++ {
		workflow, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		if previous != nil && !reflect.DeepEqual(previous, workflow.Variables) {
			t.Fatalf("Variable extraction not deterministic: %v vs %v", previous, workflow.Variables)
		}

		previous = workflow.Variables
	}

	want := []string{"A_VAR", "B_VAR", "C_VAR"}
	if !reflect.DeepEqual(previous, want) {
		t.Errorf("Expected %v, got %v", want, previous)
	}
}

func TestVariables_NestedOrComputedNamesNotDetected(t *testing.T) {
	doc := `{"nodes": [{"parameters": {"expr": "{{ $env[$json.key] }}"}}]}`

	workflow, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(workflow.Variables) != 0 {
		t.Errorf("Computed variable names are out of scope for the scan, got %v", workflow.Variables)
	}
}
