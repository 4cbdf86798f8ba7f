package service

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "learnhub_backend/internals/features/users/user/dto"
	model "learnhub_backend/internals/features/users/user/model"
)

// ImportRow is one spreadsheet line as handed to the import rules.
type ImportRow struct {
	Name        string
	Email       string
	Password    string
	Role        string
	PhoneNumber string
}

// ParseUsersSheet reads the first sheet of an Excel workbook. The first row
// is a header (name, email, password, role, phoneNumber); column order is
// fixed, extra columns are ignored.
func ParseUsersSheet(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	out := make([]ImportRow, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		get := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		out = append(out, ImportRow{
			Name:        get(0),
			Email:       get(1),
			Password:    get(2),
			Role:        get(3),
			PhoneNumber: get(4),
		})
	}
	return out, nil
}

// ImportUsers applies the single-user creation rule to every row and reports
// a per-row outcome. Imported accounts are created pre-approved.
func ImportUsers(db *gorm.DB, rows []ImportRow) []dto.BulkRowResult {
	results := make([]dto.BulkRowResult, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.Email == "" || row.Password == "" {
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: "skipped", Reason: "Invalid input"})
			continue
		}
		if row.Role != "" && !model.ValidRole(row.Role) {
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: "skipped", Reason: "Invalid role"})
			continue
		}

		var existing model.UserModel
		err := db.Where("email = ?", row.Email).First(&existing).Error
		if err == nil {
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: "skipped", Reason: "User already exists"})
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: "failed", Reason: err.Error()})
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: "failed", Reason: err.Error()})
			continue
		}

		role := row.Role
		if role == "" {
			role = model.RoleStudent
		}
		user := model.UserModel{
			Name:     row.Name,
			Email:    row.Email,
			Password: string(hashed),
			Role:     role,
			Approved: true,
		}
		if row.PhoneNumber != "" {
			phone := row.PhoneNumber
			user.PhoneNumber = &phone
		}
		if err := db.Create(&user).Error; err != nil {
			status := "failed"
			reason := err.Error()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				status, reason = "skipped", "User already exists"
			}
			results = append(results, dto.BulkRowResult{Email: row.Email, Status: status, Reason: reason})
			continue
		}
		results = append(results, dto.BulkRowResult{Email: row.Email, Status: "success"})
	}
	return results
}
