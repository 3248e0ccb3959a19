package objects

import (
	"errors"
	"mime/multipart"

	"museum-app/internal/domain/artists"
	"museum-app/internal/domain/objects"
	"museum-app/internal/infra/storage"
	"museum-app/internal/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// createTyped persists the base ArtObject, pushes the uploaded images to the
// storage collaborator, then persists the specialization row under the same
// id. Uploads run outside any DB transaction so a slow storage call never
// holds a connection; if anything after the base write fails, the base row is
// removed again with a compensating delete so no orphan survives.
func createTyped(db *gorm.DB, base *objects.ArtObject, files []*multipart.FileHeader, build func(id string, images datatypes.JSONSlice[string]) any) (any, error) {
	if err := validateBase(db, base); err != nil {
		return nil, err
	}

	if err := db.Create(base).Error; err != nil {
		return nil, err
	}

	images, err := uploadImages(base.ID, string(base.ObjectType), files)
	if err != nil {
		db.Delete(&objects.ArtObject{}, "id = ?", base.ID)
		return nil, err
	}

	spec := build(base.ID, images)
	if err := db.Create(spec).Error; err != nil {
		db.Delete(&objects.ArtObject{}, "id = ?", base.ID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.Conflict("specialization already exists for art object %s", base.ID)
		}
		return nil, err
	}

	return spec, nil
}

func validateBase(db *gorm.DB, base *objects.ArtObject) error {
	if base.Title == "" {
		return types.Validation("title is required")
	}
	if base.Year == "" {
		return types.Validation("year is required")
	}
	if !base.ObjectType.Valid() {
		return types.Validation("invalid object type %q", base.ObjectType)
	}
	if !base.Style.Valid() {
		return types.Validation("invalid style %q", base.Style)
	}
	if base.ArtistID != nil {
		var count int64
		if err := db.Model(&artists.Artist{}).Where("id = ?", *base.ArtistID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return types.NotFound("artist %s not found", *base.ArtistID)
		}
	}
	return nil
}

// uploadImages returns the ordered URL list for the owner. Zero files is
// legal and yields an empty list, never nil.
func uploadImages(ownerID string, kind string, files []*multipart.FileHeader) (datatypes.JSONSlice[string], error) {
	urls := make(datatypes.JSONSlice[string], 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, types.Dependency("read upload %q: %v", fh.Filename, err)
		}
		url, uerr := storage.Default.Upload(f, storage.ImageKey(ownerID, i, kind))
		f.Close()
		if uerr != nil {
			return nil, uerr
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// resolveSpecialization dispatches strictly on the stored discriminator and
// fails when the joined row disagrees with it.
func resolveSpecialization(o *objects.ArtObject) (any, error) {
	switch o.ObjectType {
	case objects.KindSculpture:
		if o.Sculpture == nil {
			return nil, types.NotFound("sculpture row missing for art object %s", o.ID)
		}
		return o.Sculpture, nil
	case objects.KindPainting:
		if o.Painting == nil {
			return nil, types.NotFound("painting row missing for art object %s", o.ID)
		}
		return o.Painting, nil
	case objects.KindOther:
		if o.OtherArt == nil {
			return nil, types.NotFound("other art row missing for art object %s", o.ID)
		}
		return o.OtherArt, nil
	default:
		return nil, types.Validation("unknown object type %q", o.ObjectType)
	}
}

// specializationImages returns the image list of whichever specialization is
// present, following the discriminator.
func specializationImages(o *objects.ArtObject) (datatypes.JSONSlice[string], bool) {
	switch {
	case o.ObjectType == objects.KindSculpture && o.Sculpture != nil:
		return o.Sculpture.Images, true
	case o.ObjectType == objects.KindPainting && o.Painting != nil:
		return o.Painting.Images, true
	case o.ObjectType == objects.KindOther && o.OtherArt != nil:
		return o.OtherArt.Images, true
	}
	return nil, false
}
