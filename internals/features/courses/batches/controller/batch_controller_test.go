// file: internals/features/courses/batches/controller/batch_controller_test.go
package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Enum checks run before any database access, so a nil-DB handler is enough
// to exercise the rejection paths.
func newBatchTestApp() *fiber.App {
	app := fiber.New()
	h := &BatchHandler{DB: nil}
	app.Post("/batches", h.CreateBatch)
	return app
}

func postBatch(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/batches", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateBatchRejectsInvalidInlineEntryStatus(t *testing.T) {
	app := newBatchTestApp()
	year := time.Now().Year()

	t.Run("invalid payment status", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"batch_course_id": "7d4f2c1a-9f1e-4c7b-8a3d-2b6e5f0c9d11",
			"batch_name": "Batch A",
			"batch_year": %d,
			"batch_month": 3,
			"lecturer_courses": [{
				"lecturer_course_name": "React Basics",
				"lecturer_course_lecture_name": "Anitha",
				"lecturer_course_salary": 5000,
				"lecturer_course_payment_status": "Partial"
			}]
		}`, year)
		assert.Equal(t, fiber.StatusBadRequest, postBatch(t, app, body))
	})

	t.Run("invalid work status", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"batch_course_id": "7d4f2c1a-9f1e-4c7b-8a3d-2b6e5f0c9d11",
			"batch_name": "Batch A",
			"batch_year": %d,
			"batch_month": 3,
			"lecturer_courses": [{
				"lecturer_course_name": "React Basics",
				"lecturer_course_lecture_name": "Anitha",
				"lecturer_course_salary": 5000,
				"lecturer_course_work_status": "Paused"
			}]
		}`, year)
		assert.Equal(t, fiber.StatusBadRequest, postBatch(t, app, body))
	})
}
