package usecase

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type spreadsheetUsecase struct {
	repo domain.DataRepository
}

func NewSpreadsheetUsecase(repo domain.DataRepository) domain.SpreadsheetUsecase {
	return &spreadsheetUsecase{repo: repo}
}

// Header-to-field mapping. Korean and English column names are both
// accepted; the first matching header per field wins.
var headerAliases = map[string][]string{
	"name":       {"이름", "성명", "Name"},
	"email":      {"이메일", "Email"},
	"phone":      {"전화번호", "연락처", "Phone"},
	"position":   {"지원직무", "직무", "Position"},
	"notes":      {"메모", "비고"},
	"experience": {"경험", "경력"},
}

// ImportCandidates processes the first sheet of the workbook, first row as
// headers. Rows missing both name and email are counted as failures; every
// accepted row becomes a candidate with status "new" and no technical tags.
func (u *spreadsheetUsecase) ImportCandidates(r io.Reader) (*domain.UploadResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.BadRequest("Unreadable workbook: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.BadRequest("Workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(rows) < 2 {
		return &domain.UploadResult{}, nil
	}

	columns := headerIndex(rows[0])
	pick := func(row []string, field string) string {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var result domain.UploadResult
	for _, row := range rows[1:] {
		input := domain.CandidateInput{
			Name:          pick(row, "name"),
			Email:         pick(row, "email"),
			Phone:         pick(row, "phone"),
			Position:      pick(row, "position"),
			Status:        domain.StatusNew,
			Notes:         pick(row, "notes"),
			TechnicalTags: []string{},
			ExperienceTag: pick(row, "experience"),
		}
		if input.Name == "" || input.Email == "" {
			result.Failed++
			continue
		}
		u.repo.AddCandidate(input)
		result.Success++
	}
	return &result, nil
}

// headerIndex maps field names to column positions using headerAliases.
func headerIndex(headers []string) map[string]int {
	index := make(map[string]int)
	for col, header := range headers {
		header = strings.TrimSpace(header)
		for field, aliases := range headerAliases {
			if _, taken := index[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if header == alias {
					index[field] = col
					break
				}
			}
		}
	}
	return index
}

// ExportCandidates generates an Excel workbook from the filtered candidate
// list.
func (u *spreadsheetUsecase) ExportCandidates(filter domain.CandidateFilter) ([]byte, string, error) {
	candidates := filterCandidates(u.repo.Candidates(), filter)

	f := excelize.NewFile()
	sheetName := "Candidates"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"이름", "이메일", "전화번호", "지원직무", "상태", "경력", "기술태그", "등록일"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		values := []interface{}{
			c.Name,
			c.Email,
			c.Phone,
			c.Position,
			c.Status,
			c.ExperienceTag,
			strings.Join(c.TechnicalTags, ", "),
			c.CreatedAt.Format("2006-01-02"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("ats_candidates_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
