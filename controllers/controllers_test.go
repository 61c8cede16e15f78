package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnity/database"
	"learnity/dto"
	"learnity/models"
	"learnity/repository"
	"learnity/services"
	"learnity/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUploader struct {
	calls int
	url   string
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, name, container string) (string, error) {
	f.calls++
	return f.url, nil
}

type fakeContactSender struct {
	sent []dto.ContactMessage
}

func (f *fakeContactSender) SendContactUsEmail(msg dto.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCategoryEndpoints(t *testing.T) {
	db := newTestDB(t)
	stored := models.CourseCategory{Name: "Programming", Description: "Software courses"}
	require.NoError(t, db.Create(&stored).Error)

	ctl := NewCategoryController(services.NewCategoryService(repository.NewCategoryRepository(db)))
	app := fiber.New()
	app.Get("/category", ctl.GetAll)
	app.Get("/category/:id", validators.IDParam("id"), ctl.GetByID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/category/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Programming", data["name"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/category/999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/category/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadThumbnailRejectsEmptyFileBeforeStorage(t *testing.T) {
	db := newTestDB(t)
	uploader := &fakeUploader{url: "http://blob.test/course-preview/1.png"}

	ctl := NewCourseController(services.NewCourseService(repository.NewCourseRepository(db)), uploader)
	app := fiber.New()
	app.Post("/course/upload-thumbnail", validators.UploadThumbnail(), ctl.UploadThumbnail)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "empty.png")
	require.NoError(t, err)
	_ = part // zero bytes written: the file is empty
	require.NoError(t, writer.WriteField("courseId", "1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/course/upload-thumbnail", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, uploader.calls)
}

func TestUploadThumbnailUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	uploader := &fakeUploader{url: "http://blob.test/course-preview/1.png"}

	ctl := NewCourseController(services.NewCourseService(repository.NewCourseRepository(db)), uploader)
	app := fiber.New()
	app.Post("/course/upload-thumbnail", validators.UploadThumbnail(), ctl.UploadThumbnail)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "thumb.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("courseId", "42"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/course/upload-thumbnail", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, uploader.calls)
}

func TestUploadThumbnailStoresAndRecordsURL(t *testing.T) {
	db := newTestDB(t)
	course := models.Course{Title: "Analytical Engines 101"}
	require.NoError(t, db.Create(&course).Error)
	uploader := &fakeUploader{url: "http://blob.test/course-preview/1.png"}

	ctl := NewCourseController(services.NewCourseService(repository.NewCourseRepository(db)), uploader)
	app := fiber.New()
	app.Post("/course/upload-thumbnail", validators.UploadThumbnail(), ctl.UploadThumbnail)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "thumb.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("courseId", "1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/course/upload-thumbnail", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, uploader.calls)

	var updated models.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uploader.url, updated.ThumbnailURL)
}

func TestContactRejectsEmptyBody(t *testing.T) {
	sender := &fakeContactSender{}
	ctl := NewContactController(services.NewContactService(sender))
	app := fiber.New()
	app.Post("/contact", validators.ContactBody(), ctl.SendMessage)

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, sender.sent)
}

func TestContactDispatchesEmail(t *testing.T) {
	sender := &fakeContactSender{}
	ctl := NewContactController(services.NewContactService(sender))
	app := fiber.New()
	app.Post("/contact", validators.ContactBody(), ctl.SendMessage)

	payload, _ := json.Marshal(dto.ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I have a question about a course.",
	})
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Hello", sender.sent[0].Subject)
}

func TestEnrollmentEndpointConflict(t *testing.T) {
	db := newTestDB(t)
	user := models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "Analytical Engines 101"}
	require.NoError(t, db.Create(&course).Error)

	svc := services.NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
	)
	ctl := NewEnrollmentController(svc)
	app := fiber.New()
	app.Post("/enrollment", validators.EnrollmentBody(), ctl.Enroll)

	payload, _ := json.Marshal(dto.EnrollmentModel{UserID: user.ID, CourseID: course.ID})

	req := httptest.NewRequest(http.MethodPost, "/enrollment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/enrollment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
