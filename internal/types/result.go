package types

// ApplicationMetric records a single extraction event. Metrics are append-only:
// the pipeline creates them fully populated and never mutates them afterwards.
type ApplicationMetric struct {
	// Field is empty for pure misc captures that map to no taxonomy key.
	Field       ProfileField `json:"field,omitempty"`
	Label       string       `json:"label"`
	RawValue    string       `json:"raw_value"`
	MappedValue string       `json:"mapped_value,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	MiscEntry   string       `json:"misc_entry,omitempty"`
}

// Diagnostic is one phase-tagged trace entry emitted for observability.
type Diagnostic struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

// ParsedApplicationData is the sole output of a parse invocation.
type ParsedApplicationData struct {
	// Updates holds at most one value per field; within a single pass the
	// last writer wins.
	Updates map[ProfileField]string `json:"updates"`
	// Misc is the ordered, deduplicated list of highlight notes.
	Misc []string `json:"misc"`
	// Metrics lists every extraction event in insertion order.
	Metrics []ApplicationMetric `json:"metrics"`
	// Diagnostics carries the phase-tagged trace of the run.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewParsedApplicationData returns an empty, fully initialized result.
func NewParsedApplicationData() *ParsedApplicationData {
	return &ParsedApplicationData{
		Updates: make(map[ProfileField]string),
		Misc:    []string{},
		Metrics: []ApplicationMetric{},
	}
}

// SetUpdate writes a field value and records the metric that explains it.
func (d *ParsedApplicationData) SetUpdate(field ProfileField, value string, metric ApplicationMetric) {
	d.Updates[field] = value
	d.Metrics = append(d.Metrics, metric)
}

// HasUpdate reports whether a value has already been extracted for field.
func (d *ParsedApplicationData) HasUpdate(field ProfileField) bool {
	_, ok := d.Updates[field]
	return ok
}

// AddDiagnostic appends one trace entry for the given phase.
func (d *ParsedApplicationData) AddDiagnostic(phase, message string) {
	d.Diagnostics = append(d.Diagnostics, Diagnostic{Phase: phase, Message: message})
}
