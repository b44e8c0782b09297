// Package bdd attaches describe/it style descriptions to test suites
// and cases. Descriptions are pure metadata: they are read by reporting
// output only and never influence which tests run or whether they pass.
package bdd

import "sync"

// Descriptor ties human-readable descriptions to one test case.
type Descriptor struct {
	SuiteName string // Suite (class) identity, may be empty
	SuiteDesc string // describe(...) text for the suite
	CaseName  string // Case (function) identity
	CaseDesc  string // it(...) text for the case
}

// Registry holds descriptors registered at definition time. All methods
// are safe for concurrent use and never fail: registering a duplicate
// keeps the first descriptor, lookups of unknown cases report absence.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Descriptor
	order []string
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Descriptor)}
}

// Suite is a handle for registering cases under one suite description.
type Suite struct {
	reg  *Registry
	name string
	desc string
}

// Describe opens a suite with a human-readable description. The
// returned handle registers cases that share the description.
func (r *Registry) Describe(name, description string) *Suite {
	return &Suite{reg: r, name: name, desc: description}
}

// It registers a case description under the suite. Safe to call any
// number of times; re-registering a case is a no-op.
func (s *Suite) It(caseName, description string) *Suite {
	s.reg.register(Descriptor{
		SuiteName: s.name,
		SuiteDesc: s.desc,
		CaseName:  caseName,
		CaseDesc:  description,
	})
	return s
}

func (r *Registry) register(d Descriptor) {
	key := d.SuiteName + "::" + d.CaseName
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[key]; ok {
		return
	}
	r.byKey[key] = d
	r.order = append(r.order, key)
}

// Lookup returns the descriptor for a case. The suite name may be empty
// for module-level cases; if no exact match exists, the first case with
// a matching name in any suite is returned.
func (r *Registry) Lookup(suiteName, caseName string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byKey[suiteName+"::"+caseName]; ok {
		return d, true
	}
	for _, key := range r.order {
		d := r.byKey[key]
		if d.CaseName == caseName {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Cases returns all registered descriptors in registration order.
func (r *Registry) Cases() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}
