package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dashboard-approval-backend/models"
	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

func TestExportApprovalHistory(t *testing.T) {
	t.Run(`export check`, func(t *testing.T) {
		list := []approvalapimodels.ApprovalHistoryView{
			{
				EntityID:   "socials-1",
				EntityType: models.EntitySocials,
				CampaignID: "campaign-1",
				Status:     "pending",
				UserID:     "user-1",
				CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				EntityID:   "socials-1",
				EntityType: models.EntitySocials,
				CampaignID: "campaign-1",
				Status:     "rejected",
				UserID:     "admin-1",
				Comment:    "broken link",
				CreatedAt:  time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
			},
		}
		buf, err := NewHandler().ExportApprovalHistory(list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(historySheet)
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, historyHeaders, rows[0])
		require.Equal(t, []string{"2024-03-02 09:30:00", "campaign-1", "Socials", "socials-1", "rejected", "admin-1", "broken link"}, rows[2])
	})

	t.Run(`empty export check`, func(t *testing.T) {
		buf, err := NewHandler().ExportApprovalHistory(nil)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(historySheet)
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}
