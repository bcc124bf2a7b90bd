package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	servicemock "github.com/MKhiriev/go-policy-desk/internal/service/mock"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ledgerOf(policyID string, emails ...string) models.ShareLedger {
	ledger := models.ShareLedger{PolicyID: policyID}
	for _, e := range emails {
		ledger.Grants = append(ledger.Grants, models.ShareGrant{
			PolicyID:       policyID,
			RecipientEmail: e,
			GrantedBy:      meera.UserID,
			CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		})
	}
	return ledger
}

func openShares(t *testing.T) (*sharesModel, *servicemock.MockClientSharingService) {
	t.Helper()
	sharing := servicemock.NewMockClientSharingService(gomock.NewController(t))
	m := newSharesModel(context.Background(), sharing)

	sharing.EXPECT().Ledger(gomock.Any(), "p-1").Return(ledgerOf("p-1", "arjun@agency.in"), nil)
	_, cmd := m.Update(sharesOpenedMsg{policyID: "p-1", customer: "Ravi Kumar"})
	for _, msg := range execute(cmd) {
		m.Update(msg)
	}
	return m, sharing
}

func TestShares_OpenLoadsLedger(t *testing.T) {
	m, _ := openShares(t)

	assert.False(t, m.loading)
	assert.Equal(t, []string{"arjun@agency.in"}, m.ledger.Recipients())
	assert.Contains(t, m.View(), "Ravi Kumar")
}

func TestShares_GrantShowsReturnedLedger(t *testing.T) {
	m, sharing := openShares(t)
	sharing.EXPECT().Grant(gomock.Any(), "p-1", " Priya@Agency.in").
		Return(ledgerOf("p-1", "arjun@agency.in", "priya@agency.in"), nil)

	m.input.SetValue(" Priya@Agency.in")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range execute(cmd) {
		m.Update(msg)
	}

	assert.Equal(t, []string{"arjun@agency.in", "priya@agency.in"}, m.ledger.Recipients())
	assert.Equal(t, "Shared with priya@agency.in", m.status)
	assert.Empty(t, m.input.Value())
}

func TestShares_GrantErrorsKeepLedger(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate", store.ErrDuplicateGrant, "Already shared with this email"},
		{"self", service.ErrSelfShare, "You cannot share a policy with yourself"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sharing := openShares(t)
			sharing.EXPECT().Grant(gomock.Any(), "p-1", "arjun@agency.in").Return(models.ShareLedger{}, tt.err)

			m.input.SetValue("arjun@agency.in")
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			for _, msg := range execute(cmd) {
				m.Update(msg)
			}

			assert.Equal(t, tt.want, m.errMsg)
			assert.Equal(t, []string{"arjun@agency.in"}, m.ledger.Recipients())
		})
	}
}

func TestShares_RevokeSelected(t *testing.T) {
	m, sharing := openShares(t)
	sharing.EXPECT().Revoke(gomock.Any(), "p-1", "arjun@agency.in").Return(ledgerOf("p-1"), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	for _, msg := range execute(cmd) {
		m.Update(msg)
	}

	assert.Empty(t, m.ledger.Grants)
	assert.Contains(t, m.View(), "not shared yet")
}

func TestShares_EmptyInputDoesNothing(t *testing.T) {
	m, _ := openShares(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestShares_EscRefreshesDashboard(t *testing.T) {
	m, _ := openShares(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, []tea.Msg{NavigateTo{Page: pageDashboard, Payload: refreshRequestedMsg{}}}, execute(cmd))
}
