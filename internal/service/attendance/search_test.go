package attendance

import (
	"testing"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconciledWithEmployee(id, employeeID string) attendance.ReconciledRecordResponse {
	return attendance.ReconciledRecordResponse{ID: id, EmployeeID: employeeID}
}

func TestFilterByIdentity_HexTokenFiltersExactly(t *testing.T) {
	records := []attendance.ReconciledRecordResponse{
		reconciledWithEmployee("r1", "64a7f0c2e4b0a1b2c3d4e5f6"),
		reconciledWithEmployee("r2", "74b8f1d3e5c1b2c3d4e5f6a7"),
		reconciledWithEmployee("r3", "64a7f0c2e4b0a1b2c3d4e5f6"),
	}

	got := FilterByIdentity(records, "64a7f0c2e4b0a1b2c3d4e5f6")

	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)
}

func TestFilterByIdentity_UppercaseHexToken(t *testing.T) {
	// Upper-case hex still counts as an id token, so it filters instead of
	// passing through; but the id comparison itself stays exact, so it
	// matches nothing stored in canonical lower case.
	records := []attendance.ReconciledRecordResponse{
		reconciledWithEmployee("r1", "64a7f0c2e4b0a1b2c3d4e5f6"),
	}

	got := FilterByIdentity(records, "64A7F0C2E4B0A1B2C3D4E5F6")

	assert.Empty(t, got)
}

func TestFilterByIdentity_NonHexTokenPassesThrough(t *testing.T) {
	records := []attendance.ReconciledRecordResponse{
		reconciledWithEmployee("r1", "64a7f0c2e4b0a1b2c3d4e5f6"),
		reconciledWithEmployee("r2", "74b8f1d3e5c1b2c3d4e5f6a7"),
	}

	for _, token := range []string{"", "Dela Cruz", "64a7f0c2", "64a7f0c2e4b0a1b2c3d4e5zz"} {
		got := FilterByIdentity(records, token)
		assert.Len(t, got, 2, "token %q must pass records through", token)
	}
}

func TestFilterByIdentity_NoMatchYieldsEmpty(t *testing.T) {
	records := []attendance.ReconciledRecordResponse{
		reconciledWithEmployee("r1", "64a7f0c2e4b0a1b2c3d4e5f6"),
	}

	got := FilterByIdentity(records, "ffffffffffffffffffffffff")
	assert.Empty(t, got)
}

func TestPager_ResetsOnlyOnTokenChange(t *testing.T) {
	pager := NewPager()
	pager.SetPage(3)

	assert.True(t, pager.SetSearchToken("64a7f0c2e4b0a1b2c3d4e5f6"))
	assert.Equal(t, 1, pager.Page(), "a new token resets to page 1")

	pager.SetPage(2)
	assert.False(t, pager.SetSearchToken("64a7f0c2e4b0a1b2c3d4e5f6"))
	assert.Equal(t, 2, pager.Page(), "repeating the same token keeps the page")

	assert.True(t, pager.SetSearchToken(""))
	assert.Equal(t, 1, pager.Page())

	// Clearing an already empty token is not a change and must not reset.
	pager.SetPage(4)
	assert.False(t, pager.SetSearchToken(""))
	assert.Equal(t, 4, pager.Page())
}

func TestPaginate(t *testing.T) {
	records := make([]attendance.ReconciledRecordResponse, 0, 5)
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
		records = append(records, reconciledWithEmployee(id, "64a7f0c2e4b0a1b2c3d4e5f6"))
	}

	first := Paginate(records, 1, 2)
	require.Len(t, first, 2)
	assert.Equal(t, "r1", first[0].ID)

	last := Paginate(records, 3, 2)
	require.Len(t, last, 1)
	assert.Equal(t, "r5", last[0].ID)

	assert.Empty(t, Paginate(records, 4, 2), "out-of-range page yields an empty slice")
	assert.Empty(t, Paginate(records, 0, 2))
}
