package recall

// Record holds one NHTSA recall campaign.
//
// All fields are optional: the registry's payloads are sparse and
// inconsistently populated. String fields are normalized at construction
// time (trimmed, placeholder values like "null" or "Not Applicable"
// scrubbed), so a stored string is never empty and the empty string always
// means the field was absent. The three safety flags are tri-state: nil
// means the registry did not say, which is distinct from false.
//
// AdditionalFields carries the complete raw source entry, untouched by
// normalization, so no upstream information is silently dropped.
//
// Records are never mutated after construction and are safe for concurrent
// reads.
type Record struct {
	Manufacturer       string `json:"manufacturer,omitempty"`         // Manufacturer name (may be empty)
	CampaignNumber     string `json:"nhtsa_campaign_number,omitempty"` // NHTSA-assigned campaign id (may be empty)
	ActionNumber       string `json:"nhtsa_action_number,omitempty"`   // NHTSA action number (may be empty)
	ReportReceivedDate string `json:"report_received_date,omitempty"`  // Date string as reported upstream, format varies
	Component          string `json:"component,omitempty"`             // Free-text component taxonomy path (may be empty)
	Summary            string `json:"summary,omitempty"`               // Defect summary (may be empty)
	Consequence        string `json:"consequence,omitempty"`           // Safety consequence (may be empty)
	Remedy             string `json:"remedy,omitempty"`                // Remedy description (may be empty)
	Notes              string `json:"notes,omitempty"`                 // Additional notes (may be empty)
	ModelYear          string `json:"model_year,omitempty"`            // Model year string, not parsed as an integer
	Make               string `json:"make,omitempty"`                  // Vehicle make (may be empty)
	Model              string `json:"model,omitempty"`                 // Vehicle model (may be empty)
	MfrRecallNumber    string `json:"mfr_recall_number,omitempty"`     // Manufacturer's own recall number (may be empty)

	OverTheAirUpdate *bool `json:"over_the_air_update,omitempty"` // Remedy deliverable via OTA update (nil = unknown)
	ParkIt           *bool `json:"park_it,omitempty"`             // Vehicle should not be driven (nil = unknown)
	ParkOutside      *bool `json:"park_outside,omitempty"`        // Park away from structures, fire risk (nil = unknown)

	AdditionalFields map[string]any `json:"additional_fields,omitempty"` // Raw source entry, verbatim
}

// IsCriticalSafety reports whether this recall requires immediate attention:
// the vehicle must not be driven, or must be parked outside due to fire risk.
// Unknown flags count as not critical.
func (r *Record) IsCriticalSafety() bool {
	return boolTrue(r.ParkIt) || boolTrue(r.ParkOutside)
}

// IsOverTheAir reports whether this recall can be resolved via an
// over-the-air software update.
func (r *Record) IsOverTheAir() bool {
	return boolTrue(r.OverTheAirUpdate)
}

func boolTrue(b *bool) bool { return b != nil && *b }
