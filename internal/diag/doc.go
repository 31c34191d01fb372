// Package diag defines the diagnostic model shared by all compiler phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human-oriented Message, a Primary source span, and optional Notes adding
// secondary context. Producers emit through the Reporter interface (usually a
// BagReporter writing into a capacity-bounded Bag) so that emission stays
// decoupled from storage and rendering.
//
// The core never aborts on a semantic error: phases report here, substitute a
// sentinel value, and keep going, so one pass collects as many findings as
// the bag allows. Bag.Sort gives a deterministic order for output and for
// golden-file tests (see FormatGolden).
package diag
