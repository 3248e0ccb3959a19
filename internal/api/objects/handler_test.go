package objects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"museum-app/database"
	"museum-app/internal/domain/artists"
	"museum-app/internal/domain/collections"
	"museum-app/internal/domain/exhibitions"
	"museum-app/internal/domain/objects"
	"museum-app/internal/infra/storage"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema and
// points the global handle at it.
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
	// a second connection would see a different empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.DB = db
	return db
}

// stubUploader answers uploads with a predictable URL and records destroys.
type stubUploader struct {
	uploaded  []string
	destroyed []string
	failNext  bool
}

func (s *stubUploader) Upload(r io.Reader, key string) (string, error) {
	if s.failNext {
		return "", types.Dependency("storage upload failed: stub")
	}
	_, _ = io.ReadAll(r)
	s.uploaded = append(s.uploaded, key)
	return "https://img.test/" + key, nil
}

func (s *stubUploader) Destroy(key string) error {
	s.destroyed = append(s.destroyed, key)
	return nil
}

func setupStorage(t *testing.T) *stubUploader {
	t.Helper()
	stub := &stubUploader{}
	storage.Default = stub
	return stub
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func seedSculpture(t *testing.T, db *gorm.DB, title string, year string, images ...string) *objects.ArtObject {
	t.Helper()
	base := &objects.ArtObject{Title: title, Year: year, Style: objects.StyleModern, ObjectType: objects.KindSculpture}
	require.NoError(t, db.Create(base).Error)
	imgs := make(datatypes.JSONSlice[string], 0, len(images))
	imgs = append(imgs, images...)
	spec := &objects.Sculpture{ID: base.ID, Material: "bronze", Images: imgs}
	require.NoError(t, db.Create(spec).Error)
	return base
}

func TestCreateSculptureWithoutFiles(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	r := newRouter()
	r.POST("/create/art_object/sculpture", CreateSculpture)

	body, contentType := multipartBody(t, map[string]string{
		"title":    "The Thinker",
		"year":     "1904",
		"style":    string(objects.StyleModern),
		"material": "bronze",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/create/art_object/sculpture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var base objects.ArtObject
	require.NoError(t, db.First(&base, "title = ?", "The Thinker").Error)
	assert.Equal(t, objects.KindSculpture, base.ObjectType)

	var spec objects.Sculpture
	require.NoError(t, db.First(&spec, "id = ?", base.ID).Error)
	assert.Equal(t, "bronze", spec.Material)
	// zero uploads still serialize as [], never null
	assert.NotNil(t, spec.Images)
	assert.Len(t, spec.Images, 0)
}

func TestCreateSculptureUploadsKeyedImages(t *testing.T) {
	setupTestDB(t)
	stub := setupStorage(t)

	r := newRouter()
	r.POST("/create/art_object/sculpture", CreateSculpture)

	body, contentType := multipartBody(t, map[string]string{
		"title":    "Winged Victory",
		"year":     "-190",
		"style":    string(objects.StyleClassic),
		"material": "marble",
	}, map[string][]byte{
		"front.jpg": []byte("front"),
		"back.jpg":  []byte("back"),
	})

	req := httptest.NewRequest(http.MethodPost, "/create/art_object/sculpture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, stub.uploaded, 2)

	var base objects.ArtObject
	require.NoError(t, database.DB.First(&base, "title = ?", "Winged Victory").Error)
	assert.Equal(t, storage.ImageKey(base.ID, 0, "sculpture"), stub.uploaded[0])
	assert.Equal(t, storage.ImageKey(base.ID, 1, "sculpture"), stub.uploaded[1])

	var spec objects.Sculpture
	require.NoError(t, database.DB.First(&spec, "id = ?", base.ID).Error)
	require.Len(t, spec.Images, 2)
	assert.Equal(t, "https://img.test/"+stub.uploaded[0], spec.Images[0])
}

func TestCreateTypedValidation(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	cases := []struct {
		name string
		base *objects.ArtObject
		kind types.Kind
	}{
		{"missing title", &objects.ArtObject{Year: "1900", Style: objects.StyleModern, ObjectType: objects.KindSculpture}, types.KindValidation},
		{"missing year", &objects.ArtObject{Title: "x", Style: objects.StyleModern, ObjectType: objects.KindSculpture}, types.KindValidation},
		{"bad style", &objects.ArtObject{Title: "x", Year: "1900", Style: "cubist-nonsense", ObjectType: objects.KindSculpture}, types.KindValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := createTyped(db, tc.base, nil, func(id string, images datatypes.JSONSlice[string]) any {
				return &objects.Sculpture{ID: id, Material: "clay", Images: images}
			})
			require.Error(t, err)
			assert.True(t, types.IsKind(err, tc.kind), "got %v", err)
		})
	}

	// unknown artist is a not-found, checked before any write
	unknown := "00000000-0000-0000-0000-000000000000"
	base := &objects.ArtObject{Title: "x", Year: "1900", Style: objects.StyleModern, ObjectType: objects.KindSculpture, ArtistID: &unknown}
	_, err := createTyped(db, base, nil, func(id string, images datatypes.JSONSlice[string]) any {
		return &objects.Sculpture{ID: id, Material: "clay", Images: images}
	})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNotFound))

	var count int64
	db.Model(&objects.ArtObject{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateTypedDuplicateSpecializationConflict(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	first := seedSculpture(t, db, "Original", "1900")

	// force the second specialization onto the same id
	base := &objects.ArtObject{Title: "Impostor", Year: "1900", Style: objects.StyleModern, ObjectType: objects.KindSculpture}
	_, err := createTyped(db, base, nil, func(id string, images datatypes.JSONSlice[string]) any {
		return &objects.Sculpture{ID: first.ID, Material: "wax", Images: images}
	})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindConflict), "got %v", err)

	// the losing base row was compensated away
	var count int64
	db.Model(&objects.ArtObject{}).Where("title = ?", "Impostor").Count(&count)
	assert.Zero(t, count)
}

func TestCreateTypedCompensatesOnUploadFailure(t *testing.T) {
	db := setupTestDB(t)
	stub := setupStorage(t)
	stub.failNext = true

	r := newRouter()
	r.POST("/create/art_object/painting", CreatePainting)

	body, contentType := multipartBody(t, map[string]string{
		"title":      "Starry Night",
		"year":       "1889",
		"style":      string(objects.StyleModern),
		"paint_type": "oil",
		"drawn_on":   "canvas",
	}, map[string][]byte{"img.jpg": []byte("pixels")})

	req := httptest.NewRequest(http.MethodPost, "/create/art_object/painting", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())

	// no orphan base row survives the failed upload
	var count int64
	db.Model(&objects.ArtObject{}).Count(&count)
	assert.Zero(t, count)
}

func TestCompositeSortStability(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	seedSculpture(t, db, "Zephyr", "1999")
	seedSculpture(t, db, "Atlas", "2000")
	seedSculpture(t, db, "Boreas", "2000")

	var rows []objects.ArtObject
	require.NoError(t, CompositeSort(KindQuery(db, objects.KindSculpture), true, true).Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Zephyr", "Atlas", "Boreas"}, []string{rows[0].Title, rows[1].Title, rows[2].Title})

	rows = nil
	require.NoError(t, CompositeSort(KindQuery(db, objects.KindSculpture), true, false).Find(&rows).Error)
	assert.Equal(t, []string{"Zephyr", "Boreas", "Atlas"}, []string{rows[0].Title, rows[1].Title, rows[2].Title})

	rows = nil
	require.NoError(t, CompositeSort(KindQuery(db, objects.KindSculpture), false, true).Find(&rows).Error)
	assert.Equal(t, []string{"Atlas", "Boreas", "Zephyr"}, []string{rows[0].Title, rows[1].Title, rows[2].Title})
}

func TestListByKindPagination(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	seedSculpture(t, db, "A", "2000")
	seedSculpture(t, db, "B", "2000")
	seedSculpture(t, db, "C", "2000")

	r := newRouter()
	r.GET("/get/sculptures/:skip/:limit", ListByKind(objects.KindSculpture))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/sculptures/1/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []objects.ArtObject `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "B", resp.Data[0].Title)
	// specialization rides along with the page
	require.NotNil(t, resp.Data[0].Sculpture)
	assert.Equal(t, "bronze", resp.Data[0].Sculpture.Material)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/sculptures/-1/5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKindQueryExcludesOtherKinds(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	seedSculpture(t, db, "Stone", "1900")

	base := &objects.ArtObject{Title: "Canvas", Year: "1900", Style: objects.StyleModern, ObjectType: objects.KindPainting}
	require.NoError(t, db.Create(base).Error)
	require.NoError(t, db.Create(&objects.Painting{ID: base.ID, PaintType: "oil", DrawnOn: "canvas", Images: datatypes.JSONSlice[string]{}}).Error)

	var rows []objects.ArtObject
	require.NoError(t, KindQuery(db, objects.KindSculpture).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Stone", rows[0].Title)
}

func TestSearchByNameCapAndCase(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	for i := 0; i < 7; i++ {
		seedSculpture(t, db, fmt.Sprintf("Fountain %d", i), "1917")
	}

	r := newRouter()
	r.GET("/get/art_object/search", SearchByName)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/art_object/search?term=FOUNTAIN", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []objects.ArtObject `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, searchLimit)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/art_object/search?term=x&object_type=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByIDResolvesSpecialization(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	base := seedSculpture(t, db, "David", "1504")

	r := newRouter()
	r.GET("/get/art_object/", GetByID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/art_object/?art_object_id="+base.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			ArtObject      objects.ArtObject `json:"art_object"`
			Specialization objects.Sculpture `json:"specialization"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, base.ID, resp.Data.ArtObject.ID)
	assert.Equal(t, "bronze", resp.Data.Specialization.Material)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/art_object/?art_object_id=missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListByArtistExcludesImageless(t *testing.T) {
	db := setupTestDB(t)
	setupStorage(t)

	artist := &artists.Artist{Name: "Rodin"}
	require.NoError(t, db.Create(artist).Error)

	withImages := seedSculpture(t, db, "Gates of Hell", "1917", "https://img.test/a")
	require.NoError(t, db.Model(&objects.ArtObject{}).Where("id = ?", withImages.ID).Update("artist_id", artist.ID).Error)

	imageless := seedSculpture(t, db, "Plaster Study", "1890")
	require.NoError(t, db.Model(&objects.ArtObject{}).Where("id = ?", imageless.ID).Update("artist_id", artist.ID).Error)

	r := newRouter()
	r.GET("/get/art_object/artist/:artist_id", ListByArtist)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get/art_object/artist/"+artist.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ArtObjects []ImageProjection `json:"art_objects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.ArtObjects, 1)
	assert.Equal(t, withImages.ID, resp.ArtObjects[0].ID)
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	stub := setupStorage(t)

	base := seedSculpture(t, db, "Doomed", "1900", "https://img.test/a", "https://img.test/b")

	ex := &exhibitions.Exhibition{Name: "Retrospective"}
	require.NoError(t, db.Create(ex).Error)
	require.NoError(t, db.Create(&exhibitions.ExhibitionArtObject{ArtObjectID: base.ID, ExhibitionID: ex.ID}).Error)

	col := &collections.Collection{Name: "Louvre", Contact: "louvre@example.org"}
	require.NoError(t, db.Create(col).Error)
	require.NoError(t, db.Create(&collections.PermanentCollection{ArtObjectID: base.ID, Status: collections.StatusStored}).Error)

	r := newRouter()
	r.DELETE("/delete/art_object/:id", Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/delete/art_object/"+base.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var count int64
	db.Model(&objects.ArtObject{}).Where("id = ?", base.ID).Count(&count)
	assert.Zero(t, count, "base row")
	db.Model(&objects.Sculpture{}).Where("id = ?", base.ID).Count(&count)
	assert.Zero(t, count, "specialization row")
	db.Model(&exhibitions.ExhibitionArtObject{}).Where("art_object_id = ?", base.ID).Count(&count)
	assert.Zero(t, count, "exhibition association")
	db.Model(&collections.PermanentCollection{}).Where("art_object_id = ?", base.ID).Count(&count)
	assert.Zero(t, count, "permanent record")

	// both stored blobs were destroyed
	assert.Equal(t, []string{
		storage.ImageKey(base.ID, 0, "sculpture"),
		storage.ImageKey(base.ID, 1, "sculpture"),
	}, stub.destroyed)

	// the exhibition itself survives
	db.Model(&exhibitions.Exhibition{}).Where("id = ?", ex.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResolveSpecializationMismatch(t *testing.T) {
	o := &objects.ArtObject{ObjectType: objects.KindPainting}
	_, err := resolveSpecialization(o)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNotFound))
}
