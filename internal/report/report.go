package report

// NormalizedReport is the fixed output contract for copyright metadata.
// Every container field is always non-nil, so callers only ever need a
// null check on Error.
type NormalizedReport struct {
	Publisher          []string       `json:"publisher"`
	MasterRightsHolder []string       `json:"master_rights_holder"`
	PROs               []string       `json:"pros"`
	LicensingPaths     LicensingPaths `json:"licensing_paths"`
	SourceLinks        []string       `json:"source_links"`
	Error              *string        `json:"error"`
}

type LicensingPaths struct {
	Composition     []string `json:"composition"`
	MasterRecording []string `json:"master_recording"`
}

// Empty returns a well-formed report with all containers empty.
func Empty() NormalizedReport {
	return NormalizedReport{
		Publisher:          []string{},
		MasterRightsHolder: []string{},
		PROs:               []string{},
		LicensingPaths: LicensingPaths{
			Composition:     []string{},
			MasterRecording: []string{},
		},
		SourceLinks: []string{},
	}
}

// Fallback is the report substituted when generation, extraction or
// normalization fails: empty containers plus the failure description.
func Fallback(err error) NormalizedReport {
	rep := Empty()
	if err != nil {
		msg := err.Error()
		rep.Error = &msg
	}
	return rep
}
