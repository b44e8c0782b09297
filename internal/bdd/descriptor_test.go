package bdd

import "testing"

func TestRegistry_DescribeIt(t *testing.T) {
	reg := NewRegistry()

	reg.Describe("TestBasicOutput", "Python Basics - Output and Printing").
		It("test_basic_print", "should demonstrate basic print functionality").
		It("test_special_chars", "should demonstrate special characters")

	d, ok := reg.Lookup("TestBasicOutput", "test_basic_print")
	if !ok {
		t.Fatal("expected descriptor for registered case")
	}
	if d.SuiteDesc != "Python Basics - Output and Printing" {
		t.Errorf("unexpected suite description: %q", d.SuiteDesc)
	}
	if d.CaseDesc != "should demonstrate basic print functionality" {
		t.Errorf("unexpected case description: %q", d.CaseDesc)
	}

	if got := len(reg.Cases()); got != 2 {
		t.Errorf("expected 2 cases, got %d", got)
	}
}

func TestRegistry_DuplicateKeepsFirst(t *testing.T) {
	reg := NewRegistry()

	reg.Describe("TestSuite", "first description").It("test_case", "first")
	reg.Describe("TestSuite", "second description").It("test_case", "second")

	d, ok := reg.Lookup("TestSuite", "test_case")
	if !ok {
		t.Fatal("expected descriptor")
	}
	if d.CaseDesc != "first" {
		t.Errorf("duplicate registration should keep the first descriptor, got %q", d.CaseDesc)
	}
	if got := len(reg.Cases()); got != 1 {
		t.Errorf("expected 1 case, got %d", got)
	}
}

func TestRegistry_LookupFallsBackAcrossSuites(t *testing.T) {
	reg := NewRegistry()
	reg.Describe("TestSuite", "suite").It("test_case", "described")

	// A caller that only knows the case name still finds the descriptor
	d, ok := reg.Lookup("", "test_case")
	if !ok {
		t.Fatal("expected fallback lookup to succeed")
	}
	if d.CaseDesc != "described" {
		t.Errorf("unexpected descriptor: %+v", d)
	}

	if _, ok := reg.Lookup("", "test_unknown"); ok {
		t.Error("unknown case should report absence")
	}
}

func TestRegistry_CasesPreserveOrder(t *testing.T) {
	reg := NewRegistry()
	suite := reg.Describe("TestSuite", "suite")
	names := []string{"test_a", "test_b", "test_c"}
	for _, name := range names {
		suite.It(name, "")
	}

	cases := reg.Cases()
	if len(cases) != len(names) {
		t.Fatalf("expected %d cases, got %d", len(names), len(cases))
	}
	for i, name := range names {
		if cases[i].CaseName != name {
			t.Errorf("case %d: expected %s, got %s", i, name, cases[i].CaseName)
		}
	}
}
