package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpenseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.ExpenseStatus
		wantErr bool
	}{
		{name: "pending", input: "pending", want: domain.ExpensePending},
		{name: "approved with mixed case", input: "Approved", want: domain.ExpenseApproved},
		{name: "rejected with whitespace", input: "  rejected ", want: domain.ExpenseRejected},
		{name: "income-only status", input: "completed", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseExpenseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIncomeStatus(t *testing.T) {
	got, err := domain.ParseIncomeStatus("COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, domain.IncomeCompleted, got)

	_, err = domain.ParseIncomeStatus("approved")
	assert.Error(t, err)
}

func TestExpenseStatus_UnmarshalJSON_RejectsNonScalar(t *testing.T) {
	var body struct {
		Status domain.ExpenseStatus `json:"status"`
	}

	assert.Error(t, json.Unmarshal([]byte(`{"status":{"status":"approved"}}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"status":1}`), &body))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"status":"done"}`), &body), domain.ErrInvalidStatus)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"approved"}`), &body))
	assert.Equal(t, domain.ExpenseApproved, body.Status)
}

func TestIncomeStatus_UnmarshalJSON(t *testing.T) {
	var s domain.IncomeStatus
	require.NoError(t, json.Unmarshal([]byte(`"rejected"`), &s))
	assert.Equal(t, domain.IncomeRejected, s)
	assert.Error(t, json.Unmarshal([]byte(`["completed"]`), &s))
}
