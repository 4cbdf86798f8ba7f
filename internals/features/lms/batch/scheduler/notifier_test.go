package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	batchModel "learnhub_backend/internals/features/lms/batch/model"
	"learnhub_backend/internals/features/lms/batch/scheduler"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	"learnhub_backend/internals/testutil"
)

func TestNotifierWindowAndDedup(t *testing.T) {
	db := testutil.NewDB(t)

	course := &courseModel.CourseModel{Name: "Go Basics"}
	require.NoError(t, db.Create(course).Error)

	link := "https://meet.example.com/abc"
	soon := time.Now().Add(55 * time.Minute)
	farOff := time.Now().Add(5 * time.Hour)

	inWindow := &batchModel.BatchModel{CourseID: course.ID, BatchName: "Soon", LiveLink: &link, LiveStartTime: &soon}
	outOfWindow := &batchModel.BatchModel{CourseID: course.ID, BatchName: "Later", LiveLink: &link, LiveStartTime: &farOff}
	require.NoError(t, db.Create(inWindow).Error)
	require.NoError(t, db.Create(outOfWindow).Error)

	student := testutil.CreateUser(t, db, "S", "s@example.com", "secret123", userModel.RoleStudent, true)
	require.NoError(t, db.Create(&batchModel.StudentBatchModel{StudentID: student.ID, BatchID: inWindow.ID}).Error)

	other := testutil.CreateUser(t, db, "O", "o@example.com", "secret123", userModel.RoleStudent, true)
	require.NoError(t, db.Create(&batchModel.StudentBatchModel{StudentID: other.ID, BatchID: outOfWindow.ID}).Error)

	notifier := scheduler.NewNotifier(db, zap.NewNop().Sugar())
	notifier.RunOnce()

	var notifications []batchModel.NotificationModel
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, student.ID, notifications[0].UserID)
	assert.Equal(t, inWindow.ID, notifications[0].BatchID)

	// a second scan over the same window adds nothing
	notifier.RunOnce()
	var count int64
	require.NoError(t, db.Model(&batchModel.NotificationModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
