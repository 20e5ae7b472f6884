package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autismo-mochis/clinic-service/pkg/util"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestPatientRefValidate(t *testing.T) {
	tests := []struct {
		name    string
		ref     PatientRef
		wantErr bool
	}{
		{"all empty", PatientRef{}, true},
		{"whitespace free name only", PatientRef{FreeName: strPtr("   ")}, true},
		{"child only", PatientRef{ChildID: int64Ptr(1)}, false},
		{"prospect only", PatientRef{ProspectID: int64Ptr(2)}, false},
		{"free name only", PatientRef{FreeName: strPtr("Juan Perez")}, false},
		{"child and free name", PatientRef{ChildID: int64Ptr(1), FreeName: strPtr("Juan")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ref.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *util.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "MISSING_PATIENT_REFERENCE", domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatientRefApplyMerges(t *testing.T) {
	ref := PatientRef{ProspectID: int64Ptr(7)}

	merged, err := ref.Apply(PatientRefPatch{SetChildID: true, ChildID: int64Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), *merged.ChildID)
	assert.Equal(t, int64(7), *merged.ProspectID)
}

func TestPatientRefApplyRejectsClearingLastReference(t *testing.T) {
	ref := PatientRef{ProspectID: int64Ptr(7)}

	got, err := ref.Apply(PatientRefPatch{SetProspectID: true, ProspectID: nil})
	require.Error(t, err)
	// rejected patch leaves the original untouched
	require.NotNil(t, got.ProspectID)
	assert.Equal(t, int64(7), *got.ProspectID)
}

func TestPatientRefApplyAllowsSwappingReference(t *testing.T) {
	ref := PatientRef{ProspectID: int64Ptr(7)}

	got, err := ref.Apply(PatientRefPatch{
		SetProspectID: true, ProspectID: nil,
		SetFreeName: true, FreeName: strPtr("Ana Lopez"),
	})
	require.NoError(t, err)
	assert.Nil(t, got.ProspectID)
	assert.Equal(t, "Ana Lopez", *got.FreeName)
}

func TestPatientRefPatchTouches(t *testing.T) {
	assert.False(t, PatientRefPatch{}.Touches())
	assert.True(t, PatientRefPatch{SetFreeName: true}.Touches())
}

func TestPatientRefPromoted(t *testing.T) {
	ref := PatientRef{ProspectID: int64Ptr(7), FreeName: strPtr("Juan Perez")}

	promoted := ref.Promoted(42)
	assert.Equal(t, int64(42), *promoted.ChildID)
	assert.Nil(t, promoted.ProspectID)
	// intake label stays visible after promotion
	require.NotNil(t, promoted.FreeName)
	assert.Equal(t, "Juan Perez", *promoted.FreeName)
}
