package xlsexport

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	approvalapimodels "dashboard-approval-backend/models/api/approval"
)

type Provider interface {
	ExportApprovalHistory(list []approvalapimodels.ApprovalHistoryView) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

const historySheet = "History"

var historyHeaders = []string{"Date", "Campaign", "Section", "Entity", "Status", "User", "Comment"}
var historyWidths = []float64{20, 38, 22, 38, 12, 38, 60}

func (i impl) ExportApprovalHistory(list []approvalapimodels.ApprovalHistoryView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, historyHeaders, historyWidths)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		if _, err = writeHistoryData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	if err = f.SetSheetName(sheet, historySheet); err != nil {
		return nil, errors.Wrap(err, "xlsx sheet rename failed")
	}
	return f.WriteToBuffer()
}

func writeHistoryData(f *excelize.File, sheet string, list []approvalapimodels.ApprovalHistoryView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(historyHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.CreatedAt.UTC().Format(time.DateTime),
			item.CampaignID,
			item.EntityType.ToHuman(),
			item.EntityID,
			item.Status,
			item.UserID,
			item.Comment,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
