package service_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	userModel "learnhub_backend/internals/features/users/user/model"
	"learnhub_backend/internals/features/users/user/service"
	"learnhub_backend/internals/testutil"
)

func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"name", "email", "password", "role", "phoneNumber"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseUsersSheet(t *testing.T) {
	buf := buildSheet(t, [][]string{
		{"Eve", "eve@example.com", "pass1234", "teacher", "555-0100"},
		{"", "blank@example.com", ""},
	})

	rows, err := service.ParseUsersSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Eve", rows[0].Name)
	assert.Equal(t, "teacher", rows[0].Role)
	assert.Equal(t, "555-0100", rows[0].PhoneNumber)
	assert.Empty(t, rows[1].Password)
}

func TestImportUsers(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "Existing", "taken@example.com", "secret123", userModel.RoleStudent, true)

	results := service.ImportUsers(db, []service.ImportRow{
		{Name: "Frank", Email: "frank@example.com", Password: "pass1234"},
		{Name: "No Password", Email: "nopass@example.com"},
		{Name: "Bad Role", Email: "badrole@example.com", Password: "pass1234", Role: "janitor"},
		{Name: "Dup", Email: "taken@example.com", Password: "pass1234"},
	})
	require.Len(t, results, 4)

	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, "skipped", results[1].Status)
	assert.Equal(t, "Invalid input", results[1].Reason)
	assert.Equal(t, "skipped", results[2].Status)
	assert.Equal(t, "Invalid role", results[2].Reason)
	assert.Equal(t, "skipped", results[3].Status)
	assert.Equal(t, "User already exists", results[3].Reason)

	// imported accounts come in approved and default to student
	var user userModel.UserModel
	require.NoError(t, db.Where("email = ?", "frank@example.com").First(&user).Error)
	assert.True(t, user.Approved)
	assert.Equal(t, userModel.RoleStudent, user.Role)
}
