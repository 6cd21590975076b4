package service

import (
	"context"
	"fmt"

	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/moderation"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	// ParticipantsWorkbook membuat workbook xlsx berisi seluruh peserta
	// beserta status check-in dan kelompoknya.
	ParticipantsWorkbook(ctx context.Context) (*excelize.File, error)
}

type exportService struct {
	participants repository.ParticipantRepository
	groups       repository.GroupRepository
}

func NewExportService(participants repository.ParticipantRepository, groups repository.GroupRepository) ExportService {
	return &exportService{
		participants: participants,
		groups:       groups,
	}
}

func (s *exportService) ParticipantsWorkbook(ctx context.Context) (*excelize.File, error) {
	participants, err := s.participants.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.FindAllWithMembers(ctx)
	if err != nil {
		return nil, err
	}

	groupNames := make(map[uint]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.GroupName
	}

	f := excelize.NewFile()
	const sheet = "Peserta"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "NPK", "Nama", "Section", "Kesediaan", "Check-In", "Kelompok", "Waktu Daftar"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, p := range participants {
		checkedIn := "-"
		if p.IsCheckedIn {
			checkedIn = "Hadir"
		}

		groupName := "-"
		if p.GroupID != nil {
			if name, ok := groupNames[*p.GroupID]; ok {
				groupName = name
			}
		}

		values := []interface{}{
			row + 1,
			p.NPK,
			moderation.StripMarkup(p.Name),
			p.Section,
			p.Attendance,
			checkedIn,
			groupName,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFileName nama unduhan default, mis. "peserta-pitstop-20260315.xlsx".
func ExportFileName(date string) string {
	return fmt.Sprintf("peserta-pitstop-%s.xlsx", date)
}
