package diag

// Policy overrides the default severity of diagnostic kinds.
// The zero value applies no overrides.
type Policy struct {
	// Overrides maps a diagnostic id to the severity it should be reported with.
	Overrides map[string]Severity
	// WarningsAsErrors promotes every warning that has no explicit override.
	WarningsAsErrors bool
}

// SeverityOf returns the effective severity of k under the policy.
func (p *Policy) SeverityOf(k Kind) Severity {
	if p == nil {
		return k.Severity
	}
	if sev, ok := p.Overrides[k.ID]; ok {
		return sev
	}
	if p.WarningsAsErrors && k.Severity == SeverityWarning {
		return SeverityError
	}
	return k.Severity
}

// Bag accumulates the diagnostics of one pass.
type Bag struct {
	policy *Policy
	items  []Diagnostic
	errors int
}

// NewBag creates a bag applying the given policy (which may be nil).
func NewBag(policy *Policy) *Bag {
	return &Bag{policy: policy}
}

// Report records a diagnostic of kind k at span.
func (b *Bag) Report(k Kind, span Span, args ...any) {
	d := Diagnostic{
		Stage:    k.Stage,
		Code:     k.Code,
		ID:       k.ID,
		Severity: b.policy.SeverityOf(k),
		Args:     args,
		Span:     span,
	}
	b.Add(d)
}

// Add appends an already built diagnostic.
func (b *Bag) Add(d Diagnostic) {
	if d.Severity == SeverityError {
		b.errors++
	}
	b.items = append(b.items, d)
}

// Merge appends all diagnostics from ds.
func (b *Bag) Merge(ds []Diagnostic) {
	for _, d := range ds {
		b.Add(d)
	}
}

// HasErrors returns true if any error-severity diagnostic has been reported.
func (b *Bag) HasErrors() bool {
	return b.errors > 0
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Diagnostics returns the accumulated diagnostics in report order.
func (b *Bag) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasErrors reports whether ds contains an error-severity diagnostic.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
