package collections

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"museum-app/database"
	"museum-app/internal/domain/collections"
	"museum-app/internal/domain/objects"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.DB = db
	return db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r *gin.Engine, method string, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedArtObject(t *testing.T, db *gorm.DB, title string) *objects.ArtObject {
	t.Helper()
	base := &objects.ArtObject{Title: title, Year: "1900", Style: objects.StyleModern, ObjectType: objects.KindSculpture}
	require.NoError(t, db.Create(base).Error)
	require.NoError(t, db.Create(&objects.Sculpture{ID: base.ID, Material: "bronze"}).Error)
	return base
}

func seedCollection(t *testing.T, db *gorm.DB, name string) *collections.Collection {
	t.Helper()
	col := &collections.Collection{Name: name, Contact: name + "@example.org"}
	require.NoError(t, db.Create(col).Error)
	return col
}

func TestCreateBorrowedSingleActiveLoan(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "On Tour")
	col := seedCollection(t, db, "Prado")

	r := newRouter()
	r.POST("/create/collection/borrowed", CreateBorrowed)

	rec := doJSON(t, r, http.MethodPost, "/create/collection/borrowed", []BorrowedInput{
		{DateBorrowed: "2026-01-10", ArtObjectID: obj.ID, CollectionID: col.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data BatchResponse[collections.BorrowedArtObject] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Created, 1)
	assert.Empty(t, resp.Data.Failures)

	// second open loan for the same object is refused
	rec = doJSON(t, r, http.MethodPost, "/create/collection/borrowed", []BorrowedInput{
		{DateBorrowed: "2026-02-01", ArtObjectID: obj.ID, CollectionID: col.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp.Data = BatchResponse[collections.BorrowedArtObject]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Created)
	require.Len(t, resp.Data.Failures, 1)
	assert.Equal(t, types.KindConflict, resp.Data.Failures[0].Kind)

	// a historical, already-closed loan is fine to record alongside the
	// open one
	returned := "2026-03-01"
	rec = doJSON(t, r, http.MethodPost, "/create/collection/borrowed", []BorrowedInput{
		{DateBorrowed: "2026-02-01", DateReturned: &returned, ArtObjectID: obj.ID, CollectionID: col.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp.Data = BatchResponse[collections.BorrowedArtObject]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Created, 1)
	require.NotNil(t, resp.Data.Created[0].DateReturned)
}

func TestCreateBorrowedValidation(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "Validated")
	col := seedCollection(t, db, "Uffizi")

	r := newRouter()
	r.POST("/create/collection/borrowed", CreateBorrowed)

	backwards := "2025-01-01"
	rec := doJSON(t, r, http.MethodPost, "/create/collection/borrowed", []BorrowedInput{
		{DateBorrowed: "2026-01-10", DateReturned: &backwards, ArtObjectID: obj.ID, CollectionID: col.ID},
		{DateBorrowed: "not-a-date", ArtObjectID: obj.ID, CollectionID: col.ID},
		{DateBorrowed: "2026-01-10", ArtObjectID: obj.ID, CollectionID: "00000000-0000-0000-0000-000000000000"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data BatchResponse[collections.BorrowedArtObject] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Created)
	require.Len(t, resp.Data.Failures, 3)
	assert.Equal(t, types.KindValidation, resp.Data.Failures[0].Kind)
	assert.Equal(t, types.KindValidation, resp.Data.Failures[1].Kind)
	assert.Equal(t, types.KindNotFound, resp.Data.Failures[2].Kind)
	for i, f := range resp.Data.Failures {
		assert.Equal(t, i, f.Index)
	}
}

func TestCreatePermanentOnePerObject(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "Acquired")

	r := newRouter()
	r.POST("/create/collection/permanent", CreatePermanent)

	rec := doJSON(t, r, http.MethodPost, "/create/collection/permanent", []PermanentInput{
		{DateAcquired: "2020-05-01", Status: "display", ArtObjectID: obj.ID},
		{DateAcquired: "2021-05-01", Status: "stored", ArtObjectID: obj.ID},
		{DateAcquired: "2021-05-01", Status: "teleported", ArtObjectID: obj.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data BatchResponse[collections.PermanentCollection] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Created, 1)
	assert.Equal(t, collections.StatusDisplay, resp.Data.Created[0].Status)

	require.Len(t, resp.Data.Failures, 2)
	assert.Equal(t, 1, resp.Data.Failures[0].Index)
	assert.Equal(t, types.KindConflict, resp.Data.Failures[0].Kind)
	assert.Equal(t, 2, resp.Data.Failures[1].Index)
	assert.Equal(t, types.KindValidation, resp.Data.Failures[1].Kind)
}

func TestReturnBorrowed(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "Returning")
	col := seedCollection(t, db, "Tate")

	row := collections.BorrowedArtObject{
		DateBorrowed: mustDate(t, "2026-01-10"),
		ArtObjectID:  obj.ID,
		CollectionID: col.ID,
	}
	require.NoError(t, db.Create(&row).Error)

	r := newRouter()
	r.PUT("/update/collection/borrowed/:id/return", ReturnBorrowed)

	rec := doJSON(t, r, http.MethodPut, "/update/collection/borrowed/"+row.ID+"/return",
		gin.H{"date_returned": "2025-12-01"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "return cannot precede the loan")

	rec = doJSON(t, r, http.MethodPut, "/update/collection/borrowed/"+row.ID+"/return",
		gin.H{"date_returned": "2026-02-01"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var reloaded collections.BorrowedArtObject
	require.NoError(t, db.First(&reloaded, "id = ?", row.ID).Error)
	require.NotNil(t, reloaded.DateReturned)
}

func TestUpdatePermanentStatus(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "Shuffled")
	row := collections.PermanentCollection{
		DateAcquired: mustDate(t, "2020-05-01"),
		Status:       collections.StatusStored,
		ArtObjectID:  obj.ID,
	}
	require.NoError(t, db.Create(&row).Error)

	r := newRouter()
	r.PUT("/update/collection/permanent/:id/status", UpdatePermanentStatus)

	rec := doJSON(t, r, http.MethodPut, "/update/collection/permanent/"+row.ID+"/status",
		gin.H{"status": "basement"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/update/collection/permanent/"+row.ID+"/status",
		gin.H{"status": "display"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var reloaded collections.PermanentCollection
	require.NoError(t, db.First(&reloaded, "id = ?", row.ID).Error)
	assert.Equal(t, collections.StatusDisplay, reloaded.Status)
}

func TestGetPermanentGroupsByKind(t *testing.T) {
	db := setupTestDB(t)

	obj := seedArtObject(t, db, "Held")
	row := collections.PermanentCollection{
		DateAcquired: mustDate(t, "2020-05-01"),
		Status:       collections.StatusDisplay,
		ArtObjectID:  obj.ID,
	}
	require.NoError(t, db.Create(&row).Error)

	r := newRouter()
	r.GET("/get/collection/permanent/:permanents_id/:skip/:limit", GetPermanent)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/collection/permanent/"+row.ID+"/0/10", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data map[string][]objects.ArtObject `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data["sculpture"], 1)
	assert.Equal(t, obj.ID, resp.Data["sculpture"][0].ID)
	assert.Empty(t, resp.Data["painting"])
	assert.Empty(t, resp.Data["other"])
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := parseDate(s)
	require.NoError(t, err)
	return parsed
}
