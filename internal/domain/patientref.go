package domain

import (
	"strings"

	"github.com/autismo-mochis/clinic-service/pkg/util"
)

// PatientRef is the tagged choice of how an appointment names its patient:
// a registered child, an intake prospect, or a free-text name. An
// appointment must always carry at least one of the three.
type PatientRef struct {
	ChildID    *int64
	ProspectID *int64
	FreeName   *string
}

// Validate enforces the discriminator invariant.
func (r PatientRef) Validate() error {
	if r.ChildID == nil && r.ProspectID == nil && !r.hasFreeName() {
		return util.NewMissingPatientReference()
	}
	return nil
}

func (r PatientRef) hasFreeName() bool {
	return r.FreeName != nil && strings.TrimSpace(*r.FreeName) != ""
}

// PatientRefPatch carries only the discriminator fields the caller supplied.
// The Set flags distinguish an absent field from an explicit clear.
type PatientRefPatch struct {
	SetChildID    bool
	ChildID       *int64
	SetProspectID bool
	ProspectID    *int64
	SetFreeName   bool
	FreeName      *string
}

// Touches reports whether the patch names any discriminator field.
func (p PatientRefPatch) Touches() bool {
	return p.SetChildID || p.SetProspectID || p.SetFreeName
}

// Apply merges the supplied fields into r and re-validates the result.
// On validation failure the original reference is returned unchanged, so
// a rejected sparse update commits nothing.
func (r PatientRef) Apply(p PatientRefPatch) (PatientRef, error) {
	merged := r
	if p.SetChildID {
		merged.ChildID = p.ChildID
	}
	if p.SetProspectID {
		merged.ProspectID = p.ProspectID
	}
	if p.SetFreeName {
		merged.FreeName = p.FreeName
	}
	if err := merged.Validate(); err != nil {
		return r, err
	}
	return merged, nil
}

// Promoted returns the reference after upgrading to a registered child:
// the child reference is set and the prospect reference cleared. The
// free-text label is kept so operators still see the intake name.
func (r PatientRef) Promoted(childID int64) PatientRef {
	r.ChildID = &childID
	r.ProspectID = nil
	return r
}
