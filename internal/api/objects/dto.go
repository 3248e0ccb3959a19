package objects

import (
	"mime/multipart"
	"strconv"

	"museum-app/internal/domain/objects"
	"museum-app/internal/types"

	"github.com/gin-gonic/gin"
)

// baseForm is the shared multipart part of every typed create request.
type baseForm struct {
	Title         string
	Description   string
	Dimensions    string
	Department    string
	Style         string
	Epoch         string
	OriginCountry string
	Year          string
	ArtistID      string
}

func bindBaseForm(c *gin.Context) baseForm {
	return baseForm{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		Dimensions:    c.PostForm("dimensions"),
		Department:    c.PostForm("department"),
		Style:         c.PostForm("style"),
		Epoch:         c.PostForm("epoch"),
		OriginCountry: c.PostForm("origin_country"),
		Year:          c.PostForm("year"),
		ArtistID:      c.PostForm("artist_id"),
	}
}

func (f baseForm) toModel(kind objects.Kind) *objects.ArtObject {
	o := &objects.ArtObject{
		Title:      f.Title,
		Style:      objects.Style(f.Style),
		ObjectType: kind,
		Year:       f.Year,
	}
	o.Description = optional(f.Description)
	o.Dimensions = optional(f.Dimensions)
	o.Department = optional(f.Department)
	o.Epoch = optional(f.Epoch)
	o.OriginCountry = optional(f.OriginCountry)
	o.ArtistID = optional(f.ArtistID)
	return o
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["files"]
}

// ImageProjection is the gallery view of an object: id, kind and the image
// list of its specialization. Objects without images are left out of
// image-bearing listings.
type ImageProjection struct {
	ID         string       `json:"id"`
	ObjectType objects.Kind `json:"object_type"`
	Images     []string     `json:"images"`
}

func imageProjections(rows []objects.ArtObject) []ImageProjection {
	out := make([]ImageProjection, 0, len(rows))
	for i := range rows {
		images, ok := specializationImages(&rows[i])
		if !ok || len(images) == 0 {
			continue
		}
		out = append(out, ImageProjection{
			ID:         rows[i].ID,
			ObjectType: rows[i].ObjectType,
			Images:     images,
		})
	}
	return out
}

type CreatedResponse struct {
	ArtObject      *objects.ArtObject `json:"art_object"`
	Specialization any                `json:"specialization"`
}

// pageParams reads the zero-based skip/limit path segments. No maximum limit
// is imposed here.
func pageParams(c *gin.Context) (int, int, error) {
	skip, err := atoiParam(c, "skip")
	if err != nil {
		return 0, 0, err
	}
	limit, err := atoiParam(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	if skip < 0 || limit < 0 {
		return 0, 0, types.Validation("skip and limit must be non-negative")
	}
	return skip, limit, nil
}

func atoiParam(c *gin.Context, name string) (int, error) {
	v := c.Param(name)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, types.Validation("invalid %s %q", name, v)
	}
	return n, nil
}

func sortFlags(c *gin.Context) (bool, bool) {
	yearAsc := c.DefaultQuery("sort_data_asc", "true") == "true"
	titleAsc := c.DefaultQuery("sort_data_title", "true") == "true"
	return yearAsc, titleAsc
}
